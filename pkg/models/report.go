package models

import "errors"

// GroupLeader holds the group with the highest count in a tally
type GroupLeader struct {
	Name  string
	Count int
}

// MarginVictory holds the details of the match with the largest victory margin
type MarginVictory struct {
	Winner string
	Margin int
	Venue  string
}

// TossOutcome holds the results for one toss decision of a team
type TossOutcome struct {
	Total       int
	Wins        int
	Probability float64
}

// TossAnalysis holds the toss decision breakdown and recommendation for a team
type TossAnalysis struct {
	Team        string
	Bat         TossOutcome
	Field       TossOutcome
	Recommended string
}

// Report holds the results of every report produced for a dataset.
// Pointer fields are nil when the report was skipped or failed.
type Report struct {
	CityLeader         *GroupLeader
	VenueLeader        *GroupLeader
	TopPlayer          *GroupLeader
	MaxRunsVictory     *MarginVictory
	HighestAverageTeam *string
	MaxWicketsVictory  *MarginVictory
	TossAnalyses       []TossAnalysis
	DuckworthLewis     *int
	Failures           []error
}

// Err joins every report failure, or returns nil if all reports succeeded
func (r *Report) Err() error {
	if r == nil {
		return nil
	}
	return errors.Join(r.Failures...)
}
