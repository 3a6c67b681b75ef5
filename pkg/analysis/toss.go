package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/myusername/cricket-match-analyzer/pkg/models"
)

// TossTeams returns the teams analysed for toss decisions: every distinct winner
// value in order of first appearance. Teams that never won are not included.
func TossTeams(ds *models.Dataset) []string {
	seen := make(map[string]bool)
	var teams []string
	for _, m := range ds.Matches {
		if seen[m.Winner] {
			continue
		}
		seen[m.Winner] = true
		teams = append(teams, m.Winner)
	}
	return teams
}

// Probability returns wins/total, or 0 when total is 0
func Probability(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total)
}

// Recommend returns "bat" only when batting first has a strictly higher win
// probability; equal probabilities, including 0 and 0, give "field".
func Recommend(pBat, pField float64) string {
	if pBat > pField {
		return models.DecisionBat
	}
	return models.DecisionField
}

// AnalyzeTeam breaks down the matches where team won the toss by the decision taken
func AnalyzeTeam(ds *models.Dataset, team string) models.TossAnalysis {
	var bat, field models.TossOutcome
	for _, m := range ds.Matches {
		if m.TossWinner != team {
			continue
		}
		won := m.Winner == team
		switch m.TossDecision {
		case models.DecisionBat:
			bat.Total++
			if won {
				bat.Wins++
			}
		case models.DecisionField:
			field.Total++
			if won {
				field.Wins++
			}
		}
	}
	bat.Probability = Probability(bat.Wins, bat.Total)
	field.Probability = Probability(field.Wins, field.Total)

	return models.TossAnalysis{
		Team:        team,
		Bat:         bat,
		Field:       field,
		Recommended: Recommend(bat.Probability, field.Probability),
	}
}

// TossDecisions analyses every team from TossTeams using at most workers
// goroutines. Results keep the TossTeams order.
func TossDecisions(ctx context.Context, ds *models.Dataset, workers int) ([]models.TossAnalysis, error) {
	teams := TossTeams(ds)
	results := make([]models.TossAnalysis, len(teams))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, team := range teams {
		i, team := i, team
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = AnalyzeTeam(ds, team)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
