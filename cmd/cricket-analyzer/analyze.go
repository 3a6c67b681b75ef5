package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/myusername/cricket-match-analyzer/internal/utils"
	"github.com/myusername/cricket-match-analyzer/pkg/analysis"
	"github.com/myusername/cricket-match-analyzer/pkg/parser"
	"github.com/myusername/cricket-match-analyzer/pkg/scraper"
)

// errReportsFailed is returned after report diagnostics have been printed
var errReportsFailed = errors.New("one or more reports could not be produced")

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Print every report for the configured dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd)
		},
	}
}

func (a *app) runAnalyze(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := a.cfg

	a.logger.Info("cricket-analyzer starting", zap.String("version", version))

	fetcher := scraper.NewFetcher(a.logger, cfg.Dataset.CacheDir, cfg.Dataset.Timeout, cfg.Dataset.Refresh)
	path, err := fetcher.Resolve(ctx, cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("dataset could not be fetched: %w", err)
	}

	ds, err := parser.NewLoader(a.logger, cfg.Dataset.Table).Load(ctx, path)
	if err != nil {
		return fmt.Errorf("dataset could not be loaded: %w", err)
	}

	analyzer := analysis.NewAnalyzer(a.logger, analysis.Options{
		FailFast: cfg.Analysis.FailFast,
		Workers:  cfg.Analysis.Workers,
	})
	report := analyzer.Run(ctx, ds)

	if err := utils.DisplayReport(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if len(report.Failures) > 0 {
		if err := utils.DisplayFailures(cmd.ErrOrStderr(), report); err != nil {
			return fmt.Errorf("writing diagnostics: %w", err)
		}
		a.logger.Debug("run finished with failures", zap.Error(report.Err()))
		return errReportsFailed
	}

	a.logger.Info("analysis complete", zap.Int("matches", ds.Len()))
	return nil
}
