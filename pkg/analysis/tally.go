// Package analysis computes the match reports over a cleaned dataset
package analysis

import (
	"fmt"
	"sort"

	"github.com/myusername/cricket-match-analyzer/pkg/models"
)

// CityWinLeader returns the city hosting the most matches that produced a winner
func CityWinLeader(ds *models.Dataset) (models.GroupLeader, error) {
	return tally(ds, "city", func(m models.MatchRecord) (string, bool) {
		return m.City, m.HasResult()
	})
}

// VenueWinLeader returns the venue hosting the most matches that produced a winner.
// Matches with no recorded venue are not grouped.
func VenueWinLeader(ds *models.Dataset) (models.GroupLeader, error) {
	return tally(ds, "venue", func(m models.MatchRecord) (string, bool) {
		return m.Venue, m.HasResult() && m.Venue != ""
	})
}

// TopPlayerOfMatch returns the player with the most Player of the Match awards.
// Every row counts, including undisclosed awards.
func TopPlayerOfMatch(ds *models.Dataset) (models.GroupLeader, error) {
	return tally(ds, "player_of_match", func(m models.MatchRecord) (string, bool) {
		return m.PlayerOfMatch, true
	})
}

// tally counts rows per key and returns the largest group.
// Ties go to the lexicographically smallest key.
func tally(ds *models.Dataset, column string, key func(models.MatchRecord) (string, bool)) (models.GroupLeader, error) {
	counts := make(map[string]int)
	for _, m := range ds.Matches {
		if k, ok := key(m); ok {
			counts[k]++
		}
	}
	if len(counts) == 0 {
		return models.GroupLeader{}, fmt.Errorf("grouping by %s: %w", column, ErrEmptyAggregation)
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	leader := models.GroupLeader{Name: keys[0], Count: counts[keys[0]]}
	for _, k := range keys[1:] {
		if counts[k] > leader.Count {
			leader = models.GroupLeader{Name: k, Count: counts[k]}
		}
	}
	return leader, nil
}
