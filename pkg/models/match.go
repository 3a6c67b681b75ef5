// Package models contains data structures for cricket match statistics
package models

// Sentinel values written into nullable columns during cleaning
const (
	NoLocation   = "No location"
	NoResult     = "NO RESULT"
	NotDisclosed = "Not disclosed"
)

// Toss decisions recorded in the toss_decision column
const (
	DecisionBat   = "bat"
	DecisionField = "field"
)

// NullInt is an integer column value that may be missing from the source
type NullInt struct {
	Int   int
	Valid bool
}

// Int returns a valid NullInt holding v
func Int(v int) NullInt {
	return NullInt{Int: v, Valid: true}
}

// MatchRecord holds a single cleaned match row
type MatchRecord struct {
	ID            string
	Season        string
	Date          string
	Team1         string
	Team2         string
	City          string
	Venue         string
	Winner        string
	PlayerOfMatch string
	WinByRuns     NullInt
	WinByWickets  NullInt
	TossWinner    string
	TossDecision  string
	DLApplied     bool
}

// HasResult reports whether the match produced a winner
func (m MatchRecord) HasResult() bool {
	return m.Winner != NoResult
}

// Dataset is the cleaned, read-only table of matches for one run
type Dataset struct {
	Source  string
	Columns []string
	Matches []MatchRecord
}

// Len returns the number of matches in the dataset
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Matches)
}
