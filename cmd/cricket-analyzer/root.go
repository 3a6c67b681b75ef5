package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/myusername/cricket-match-analyzer/internal/config"
	"github.com/myusername/cricket-match-analyzer/internal/logging"
)

// app holds what every command needs once configuration has been read
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd builds the command tree. Running the root command with no
// subcommand analyzes the configured dataset.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cricket-analyzer",
		Short: "Descriptive statistics and toss recommendations for cricket match records",
		Long: `cricket-analyzer reads a table of cricket match records (CSV, HTML, PDF or SQLite,
local or over HTTP) and prints win leaders, award tallies, victory margins,
per-team toss decision recommendations and the Duckworth-Lewis match count.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default ./cricket-analyzer.yaml, then $XDG_CONFIG_HOME/cricket-analyzer/config.yaml)")
	flags.StringP("dataset", "d", "", "dataset file or http(s) URL (default data.csv)")
	flags.String("table", "", "table to read from SQLite datasets (default matches)")
	flags.Bool("refresh", false, "download remote datasets again even when cached")
	flags.Bool("fail-fast", false, "stop at the first report that cannot be produced")
	flags.Int("workers", 0, "goroutines used for the toss analysis (default 4)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default warn)")
	flags.String("log-format", "", "log format: console or json (default console)")

	bindings := map[string]string{
		"config":             "config",
		"dataset.path":       "dataset",
		"dataset.table":      "table",
		"dataset.refresh":    "refresh",
		"analysis.fail_fast": "fail-fast",
		"analysis.workers":   "workers",
		"logging.level":      "log-level",
		"logging.format":     "log-format",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(newAnalyzeCmd(a), newConfigCmd(a), newVersionCmd())
	return rootCmd
}

func (a *app) init() error {
	if err := initConfig(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	a.logger = logger

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config file", zap.String("path", used))
	}
	return nil
}

func initConfig() error {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CRICKET")
	// e.g., CRICKET_DATASET_PATH for dataset.path
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// An explicit config file must exist; the default locations are optional
	cfgFile := viper.GetString("config")
	if cfgFile == "" {
		cfgFile = config.FindConfigFile()
		if cfgFile == "" {
			return nil
		}
	}

	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}
