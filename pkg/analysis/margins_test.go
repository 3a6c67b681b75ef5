package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/cricket-match-analyzer/pkg/models"
)

func TestMaxRunsVictory(t *testing.T) {
	ds := dataset(
		win("Delhi", "Feroz Shah Kotla", "DD", 12),
		win("Mumbai", "Wankhede Stadium", "MI", 100),
		win("Pune", "MCA Stadium", "RPS", 97),
	)

	got, ok := MaxRunsVictory(ds)
	require.True(t, ok)
	assert.Equal(t, models.MarginVictory{Winner: "MI", Margin: 100, Venue: "Wankhede Stadium"}, got)
}

func TestMaxRunsVictoryTieKeepsFirst(t *testing.T) {
	ds := dataset(
		win("Delhi", "Feroz Shah Kotla", "DD", 50),
		win("Mumbai", "Wankhede Stadium", "MI", 50),
	)

	got, ok := MaxRunsVictory(ds)
	require.True(t, ok)
	assert.Equal(t, "DD", got.Winner)
}

func TestMaxRunsVictorySkipsMissing(t *testing.T) {
	missing := win("Delhi", "Feroz Shah Kotla", "DD", 0)
	missing.WinByRuns = models.NullInt{}

	_, ok := MaxRunsVictory(dataset(missing, missing))
	assert.False(t, ok)

	_, ok = MaxRunsVictory(dataset())
	assert.False(t, ok)

	counted := win("Jaipur", "Sawai Mansingh Stadium", "RR", 3)
	got, ok := MaxRunsVictory(dataset(missing, counted))
	require.True(t, ok)
	assert.Equal(t, "RR", got.Winner)
}

func TestMaxWicketsVictory(t *testing.T) {
	a := win("Rajkot", "Saurashtra Cricket Association Stadium", "GL", 0)
	a.WinByWickets = models.Int(4)
	b := win("Kolkata", "Eden Gardens", "KKR", 0)
	b.WinByWickets = models.Int(10)
	c := win("Hyderabad", "Rajiv Gandhi Stadium", "SRH", 0)
	c.WinByWickets = models.Int(10)

	got, ok := MaxWicketsVictory(dataset(a, b, c))
	require.True(t, ok)
	assert.Equal(t, "KKR", got.Winner)
	assert.Equal(t, 10, got.Margin)

	a.WinByWickets = models.NullInt{}
	_, ok = MaxWicketsVictory(dataset(a))
	assert.False(t, ok)
}

func TestHighestAverageMargin(t *testing.T) {
	ds := dataset(
		win("Mumbai", "Wankhede", "MI", 10),
		win("Mumbai", "Wankhede", "MI", 30),  // MI mean 20
		win("Chennai", "Chepauk", "CSK", 25), // CSK mean 25
		win("Delhi", "Kotla", "DD", 0),
	)

	team, err := HighestAverageMargin(ds)
	require.NoError(t, err)
	assert.Equal(t, "CSK", team)
}

func TestHighestAverageMarginIncludesNoResult(t *testing.T) {
	noResult := win("Bangalore", "Chinnaswamy", models.NoResult, 60)

	team, err := HighestAverageMargin(dataset(win("Delhi", "Kotla", "DD", 40), noResult))
	require.NoError(t, err)
	assert.Equal(t, models.NoResult, team)
}

func TestHighestAverageMarginTieAndEmpty(t *testing.T) {
	team, err := HighestAverageMargin(dataset(
		win("Mumbai", "Wankhede", "MI", 20),
		win("Chennai", "Chepauk", "CSK", 20),
	))
	require.NoError(t, err)
	assert.Equal(t, "CSK", team)

	missing := win("Delhi", "Kotla", "DD", 0)
	missing.WinByRuns = models.NullInt{}
	_, err = HighestAverageMargin(dataset(missing))
	assert.ErrorIs(t, err, ErrEmptyAggregation)
}
