package analysis

import "github.com/myusername/cricket-match-analyzer/pkg/models"

// DuckworthLewisCount returns the number of matches decided with the
// Duckworth-Lewis method applied
func DuckworthLewisCount(ds *models.Dataset) int {
	n := 0
	for _, m := range ds.Matches {
		if m.DLApplied {
			n++
		}
	}
	return n
}
