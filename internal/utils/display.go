// Package utils provides utility functions for the cricket-match-analyzer
package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/myusername/cricket-match-analyzer/pkg/analysis"
	"github.com/myusername/cricket-match-analyzer/pkg/models"
)

// TossSeparator is printed after every team's toss analysis
var TossSeparator = strings.Repeat("-", 50)

// DisplayReport writes every produced report to w in the fixed report order.
// Reports that were skipped or failed are left out.
func DisplayReport(w io.Writer, r *models.Report) error {
	var b strings.Builder

	if r.CityLeader != nil {
		fmt.Fprintf(&b, "City with the most wins: %s (%d wins)\n", r.CityLeader.Name, r.CityLeader.Count)
	}
	if r.VenueLeader != nil {
		fmt.Fprintf(&b, "Stadium with the most wins: %s (%d wins)\n", r.VenueLeader.Name, r.VenueLeader.Count)
	}
	if r.TopPlayer != nil {
		fmt.Fprintf(&b, "%s won the most Player of the Match awards (%d awards)\n", r.TopPlayer.Name, r.TopPlayer.Count)
	}
	if v := r.MaxRunsVictory; v != nil {
		fmt.Fprintf(&b, "Highest victory by runs: %s (%d runs) at %s\n", v.Winner, v.Margin, v.Venue)
	}
	if r.HighestAverageTeam != nil {
		fmt.Fprintf(&b, "Team with the highest average victory margin: %s\n", *r.HighestAverageTeam)
	}
	if v := r.MaxWicketsVictory; v != nil {
		fmt.Fprintf(&b, "Highest victory by wickets: %s (%d wickets)\n", v.Winner, v.Margin)
	}

	for _, t := range r.TossAnalyses {
		writeTossAnalysis(&b, t)
	}

	if r.DuckworthLewis != nil {
		fmt.Fprintf(&b, "Total matches affected by Duckworth-Lewis method: %d\n", *r.DuckworthLewis)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTossAnalysis(b *strings.Builder, t models.TossAnalysis) {
	fmt.Fprintf(b, "%s Toss Decisions Analysis:\n", t.Team)
	fmt.Fprintf(b, "  Matches chosen to bat: %d, Wins: %d (Win Probability: %.2f)\n",
		t.Bat.Total, t.Bat.Wins, t.Bat.Probability)
	fmt.Fprintf(b, "  Matches chosen to field: %d, Wins: %d (Win Probability: %.2f)\n",
		t.Field.Total, t.Field.Wins, t.Field.Probability)
	fmt.Fprintf(b, "  Recommended decision: %s\n", t.Recommended)
	fmt.Fprintln(b, TossSeparator)
}

// DisplayFailures writes one diagnostic line per failed report
func DisplayFailures(w io.Writer, r *models.Report) error {
	for _, failure := range r.Failures {
		var reportErr *analysis.ReportError
		if errors.As(failure, &reportErr) {
			if _, err := fmt.Fprintf(w, "error: %s\n", reportErr.Error()); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "error: %v\n", failure); err != nil {
			return err
		}
	}
	return nil
}
