package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/myusername/cricket-match-analyzer/pkg/models"
)

// Report names used in diagnostics
const (
	ReportCityWins       = "city win leader"
	ReportVenueWins      = "venue win leader"
	ReportPlayerOfMatch  = "player of the match"
	ReportMaxRuns        = "highest victory by runs"
	ReportAverageMargin  = "highest average victory margin"
	ReportMaxWickets     = "highest victory by wickets"
	ReportTossDecisions  = "toss decisions"
	ReportDuckworthLewis = "duckworth-lewis"
)

// Options controls how the Analyzer runs the reports
type Options struct {
	// FailFast stops at the first report that fails instead of running the rest
	FailFast bool
	// Workers bounds the goroutines used for the toss analysis; 0 means unbounded
	Workers int
}

// Analyzer runs every report over a dataset in a fixed order
type Analyzer struct {
	logger *zap.Logger
	opts   Options
}

// NewAnalyzer creates an Analyzer
func NewAnalyzer(logger *zap.Logger, opts Options) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger, opts: opts}
}

// Run produces the report for ds. Failed reports are collected in
// Report.Failures; with FailFast the remaining reports are skipped.
func (a *Analyzer) Run(ctx context.Context, ds *models.Dataset) *models.Report {
	report := &models.Report{}

	steps := []struct {
		name string
		run  func() error
	}{
		{ReportCityWins, func() error {
			leader, err := CityWinLeader(ds)
			if err == nil {
				report.CityLeader = &leader
			}
			return err
		}},
		{ReportVenueWins, func() error {
			leader, err := VenueWinLeader(ds)
			if err == nil {
				report.VenueLeader = &leader
			}
			return err
		}},
		{ReportPlayerOfMatch, func() error {
			leader, err := TopPlayerOfMatch(ds)
			if err == nil {
				report.TopPlayer = &leader
			}
			return err
		}},
		{ReportMaxRuns, func() error {
			if v, ok := MaxRunsVictory(ds); ok {
				report.MaxRunsVictory = &v
			} else {
				a.logger.Debug("no runs margins recorded, skipping report", zap.String("report", ReportMaxRuns))
			}
			return nil
		}},
		{ReportAverageMargin, func() error {
			team, err := HighestAverageMargin(ds)
			if err == nil {
				report.HighestAverageTeam = &team
			}
			return err
		}},
		{ReportMaxWickets, func() error {
			if v, ok := MaxWicketsVictory(ds); ok {
				report.MaxWicketsVictory = &v
			} else {
				a.logger.Debug("no wickets margins recorded, skipping report", zap.String("report", ReportMaxWickets))
			}
			return nil
		}},
		{ReportTossDecisions, func() error {
			analyses, err := TossDecisions(ctx, ds, a.opts.Workers)
			if err == nil {
				report.TossAnalyses = analyses
			}
			return err
		}},
		{ReportDuckworthLewis, func() error {
			n := DuckworthLewisCount(ds)
			report.DuckworthLewis = &n
			return nil
		}},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			// The failure itself reaches the user through Report.Failures
			a.logger.Debug("report failed", zap.String("report", step.name), zap.Error(err))
			report.Failures = append(report.Failures, &ReportError{Report: step.name, Err: err})
			if a.opts.FailFast {
				break
			}
			continue
		}
		a.logger.Debug("report complete", zap.String("report", step.name))
	}

	return report
}
