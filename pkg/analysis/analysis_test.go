package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/cricket-match-analyzer/pkg/models"
)

// win builds a match won by winner at city/venue with a runs margin
func win(city, venue, winner string, runs int) models.MatchRecord {
	return models.MatchRecord{
		City:          city,
		Venue:         venue,
		Winner:        winner,
		PlayerOfMatch: models.NotDisclosed,
		WinByRuns:     models.Int(runs),
		WinByWickets:  models.Int(0),
	}
}

func dataset(matches ...models.MatchRecord) *models.Dataset {
	return &models.Dataset{Source: "test", Matches: matches}
}

func TestCityWinLeader(t *testing.T) {
	var matches []models.MatchRecord
	for i := 0; i < 3; i++ {
		matches = append(matches, win("A", "Ground A", "Team X", 10))
	}
	for i := 0; i < 5; i++ {
		matches = append(matches, win("B", "Ground B", "Team Y", 10))
	}
	// No-result matches do not count towards a city's wins
	for i := 0; i < 4; i++ {
		matches = append(matches, win("A", "Ground A", models.NoResult, 0))
	}

	leader, err := CityWinLeader(dataset(matches...))
	require.NoError(t, err)
	assert.Equal(t, models.GroupLeader{Name: "B", Count: 5}, leader)

	venue, err := VenueWinLeader(dataset(matches...))
	require.NoError(t, err)
	assert.Equal(t, models.GroupLeader{Name: "Ground B", Count: 5}, venue)
}

func TestWinLeaderTieBreak(t *testing.T) {
	ds := dataset(
		win("Mumbai", "Wankhede", "MI", 5),
		win("Chennai", "Chepauk", "CSK", 5),
		win("Mumbai", "Wankhede", "MI", 5),
		win("Chennai", "Chepauk", "CSK", 5),
	)

	leader, err := CityWinLeader(ds)
	require.NoError(t, err)
	assert.Equal(t, "Chennai", leader.Name)
	assert.Equal(t, 2, leader.Count)

	venue, err := VenueWinLeader(ds)
	require.NoError(t, err)
	assert.Equal(t, "Chepauk", venue.Name)
}

func TestWinLeaderEmpty(t *testing.T) {
	tests := []struct {
		name string
		ds   *models.Dataset
	}{
		{name: "no rows", ds: dataset()},
		{name: "only no-result rows", ds: dataset(
			win("Bangalore", "Chinnaswamy", models.NoResult, 0),
			win("Delhi", "Kotla", models.NoResult, 0),
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CityWinLeader(tt.ds)
			assert.ErrorIs(t, err, ErrEmptyAggregation)

			_, err = VenueWinLeader(tt.ds)
			assert.ErrorIs(t, err, ErrEmptyAggregation)
		})
	}
}

func TestVenueWinLeaderSkipsMissingVenue(t *testing.T) {
	ds := dataset(
		win("Pune", "", "RPS", 1),
		win("Pune", "", "RPS", 1),
		win("Pune", "MCA Stadium", "RPS", 1),
	)

	venue, err := VenueWinLeader(ds)
	require.NoError(t, err)
	assert.Equal(t, models.GroupLeader{Name: "MCA Stadium", Count: 1}, venue)
}

func TestTopPlayerOfMatch(t *testing.T) {
	players := []string{"CH Gayle", "AB de Villiers", "CH Gayle", models.NotDisclosed, "AB de Villiers", "CH Gayle"}
	var matches []models.MatchRecord
	for _, p := range players {
		m := win("Bangalore", "Chinnaswamy", "RCB", 1)
		m.PlayerOfMatch = p
		matches = append(matches, m)
	}

	leader, err := TopPlayerOfMatch(dataset(matches...))
	require.NoError(t, err)
	assert.Equal(t, models.GroupLeader{Name: "CH Gayle", Count: 3}, leader)

	_, err = TopPlayerOfMatch(dataset())
	assert.ErrorIs(t, err, ErrEmptyAggregation)
}

func TestTopPlayerOfMatchCountsUndisclosed(t *testing.T) {
	m := win("Delhi", "Kotla", models.NoResult, 0)
	leader, err := TopPlayerOfMatch(dataset(m, m))
	require.NoError(t, err)
	assert.Equal(t, models.GroupLeader{Name: models.NotDisclosed, Count: 2}, leader)
}

func TestDuckworthLewisCount(t *testing.T) {
	flags := []bool{false, true, false, true, true, false}
	var matches []models.MatchRecord
	for _, dl := range flags {
		m := win("Kolkata", "Eden Gardens", "KKR", 0)
		m.DLApplied = dl
		matches = append(matches, m)
	}
	ds := dataset(matches...)

	assert.Equal(t, 3, DuckworthLewisCount(ds))
	assert.Equal(t, 3, DuckworthLewisCount(ds), "re-running on the same dataset")
	assert.Equal(t, 0, DuckworthLewisCount(dataset()))
}
