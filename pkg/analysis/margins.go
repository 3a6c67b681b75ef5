package analysis

import (
	"fmt"
	"sort"

	"github.com/myusername/cricket-match-analyzer/pkg/models"
)

// MaxRunsVictory returns the match won by the most runs. ok is false when no
// match has a runs margin. Ties go to the earliest match.
func MaxRunsVictory(ds *models.Dataset) (victory models.MarginVictory, ok bool) {
	return maxMargin(ds, func(m models.MatchRecord) models.NullInt { return m.WinByRuns })
}

// MaxWicketsVictory returns the match won by the most wickets, with the same
// skip and tie rules as MaxRunsVictory
func MaxWicketsVictory(ds *models.Dataset) (victory models.MarginVictory, ok bool) {
	return maxMargin(ds, func(m models.MatchRecord) models.NullInt { return m.WinByWickets })
}

func maxMargin(ds *models.Dataset, margin func(models.MatchRecord) models.NullInt) (models.MarginVictory, bool) {
	best := -1
	for i, m := range ds.Matches {
		v := margin(m)
		if !v.Valid {
			continue
		}
		if best < 0 || v.Int > margin(ds.Matches[best]).Int {
			best = i
		}
	}
	if best < 0 {
		return models.MarginVictory{}, false
	}

	m := ds.Matches[best]
	return models.MarginVictory{
		Winner: m.Winner,
		Margin: margin(m).Int,
		Venue:  m.Venue,
	}, true
}

// HighestAverageMargin returns the team with the highest mean runs margin across
// the matches it is recorded as winning. Matches without a result are grouped
// under the no-result sentinel like any other winner. Ties go to the
// lexicographically smallest team.
func HighestAverageMargin(ds *models.Dataset) (string, error) {
	type acc struct {
		sum   int
		count int
	}
	groups := make(map[string]*acc)
	for _, m := range ds.Matches {
		if !m.WinByRuns.Valid {
			continue
		}
		g, ok := groups[m.Winner]
		if !ok {
			g = &acc{}
			groups[m.Winner] = g
		}
		g.sum += m.WinByRuns.Int
		g.count++
	}
	if len(groups) == 0 {
		return "", fmt.Errorf("averaging win_by_runs by winner: %w", ErrEmptyAggregation)
	}

	teams := make([]string, 0, len(groups))
	for team := range groups {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	bestTeam := ""
	bestMean := 0.0
	for i, team := range teams {
		g := groups[team]
		mean := float64(g.sum) / float64(g.count)
		if i == 0 || mean > bestMean {
			bestTeam, bestMean = team, mean
		}
	}
	return bestTeam, nil
}
