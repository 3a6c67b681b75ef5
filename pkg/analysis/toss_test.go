package analysis

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/myusername/cricket-match-analyzer/pkg/models"
)

// toss builds a match where tossWinner chose decision and winner won
func toss(tossWinner, decision, winner string) models.MatchRecord {
	m := win("Mumbai", "Wankhede", winner, 0)
	m.TossWinner = tossWinner
	m.TossDecision = decision
	return m
}

func TestAnalyzeTeamPrefersField(t *testing.T) {
	ds := dataset(
		toss("MI", models.DecisionBat, "MI"),
		toss("MI", models.DecisionBat, "CSK"),
		toss("MI", models.DecisionField, "MI"),
		toss("MI", models.DecisionField, "MI"),
		toss("MI", models.DecisionField, "MI"),
		toss("CSK", models.DecisionBat, "MI"), // MI did not win this toss
	)

	got := AnalyzeTeam(ds, "MI")
	want := models.TossAnalysis{
		Team:        "MI",
		Bat:         models.TossOutcome{Total: 2, Wins: 1, Probability: 0.5},
		Field:       models.TossOutcome{Total: 3, Wins: 3, Probability: 1.0},
		Recommended: models.DecisionField,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AnalyzeTeam mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeTeamPrefersBat(t *testing.T) {
	ds := dataset(
		toss("RR", models.DecisionBat, "RR"),
		toss("RR", models.DecisionField, "DD"),
	)

	got := AnalyzeTeam(ds, "RR")
	assert.Equal(t, 1.0, got.Bat.Probability)
	assert.Equal(t, 0.0, got.Field.Probability)
	assert.Equal(t, models.DecisionBat, got.Recommended)
}

func TestAnalyzeTeamWithoutTossesRecommendsField(t *testing.T) {
	ds := dataset(toss("CSK", models.DecisionBat, "KTK"))

	got := AnalyzeTeam(ds, "KTK")
	assert.Equal(t, models.TossOutcome{}, got.Bat)
	assert.Equal(t, models.TossOutcome{}, got.Field)
	assert.Equal(t, models.DecisionField, got.Recommended)
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name   string
		pBat   float64
		pField float64
		want   string
	}{
		{name: "bat strictly higher", pBat: 0.6, pField: 0.5, want: models.DecisionBat},
		{name: "field higher", pBat: 0.5, pField: 1.0, want: models.DecisionField},
		{name: "equal", pBat: 0.5, pField: 0.5, want: models.DecisionField},
		{name: "both zero", pBat: 0, pField: 0, want: models.DecisionField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.pBat, tt.pField))
		})
	}
}

func TestProbability(t *testing.T) {
	assert.Equal(t, 0.0, Probability(0, 0))
	assert.Equal(t, 0.5, Probability(1, 2))
	assert.Equal(t, 1.0, Probability(3, 3))
}

func TestTossTeamsFirstAppearanceOrder(t *testing.T) {
	ds := dataset(
		toss("KKR", models.DecisionField, "SRH"),
		toss("MI", models.DecisionBat, "MI"),
		toss("SRH", models.DecisionBat, "SRH"),
		toss("GL", models.DecisionField, models.NoResult),
		toss("KKR", models.DecisionField, "KKR"),
	)

	assert.Equal(t, []string{"SRH", "MI", models.NoResult, "KKR"}, TossTeams(ds))
}

func TestTossDecisions(t *testing.T) {
	defer goleak.VerifyNone(t)

	ds := dataset(
		toss("SRH", models.DecisionBat, "SRH"),
		toss("MI", models.DecisionField, "MI"),
		toss("MI", models.DecisionBat, "SRH"),
		toss("RCB", models.DecisionField, models.NoResult),
		toss("KKR", models.DecisionField, "KKR"),
		toss("KKR", models.DecisionBat, "KKR"),
	)

	for _, workers := range []int{0, 1, 3} {
		got, err := TossDecisions(context.Background(), ds, workers)
		require.NoError(t, err)
		require.Len(t, got, 4)

		teams := make([]string, len(got))
		for i, a := range got {
			teams[i] = a.Team
			assert.Equal(t, AnalyzeTeam(ds, a.Team), a, "workers=%d team=%s", workers, a.Team)
		}
		assert.Equal(t, []string{"SRH", "MI", models.NoResult, "KKR"}, teams, "workers=%d", workers)
	}
}

func TestTossDecisionsCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := TossDecisions(ctx, dataset(toss("MI", models.DecisionBat, "MI")), 2)
	assert.ErrorIs(t, err, context.Canceled)
}
