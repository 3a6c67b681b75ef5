// Package config loads the cricket-match-analyzer configuration through viper
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete analyzer configuration
type Config struct {
	Dataset  DatasetConfig  `mapstructure:"dataset" yaml:"dataset"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// DatasetConfig controls where the match data is read from
type DatasetConfig struct {
	// Path is a local file or an http(s) URL
	Path string `mapstructure:"path" yaml:"path"`
	// Table is the table read from SQLite datasets
	Table string `mapstructure:"table" yaml:"table"`
	// CacheDir holds downloaded datasets
	CacheDir string `mapstructure:"cache_dir" yaml:"cache_dir"`
	// Refresh downloads remote datasets again even when cached
	Refresh bool `mapstructure:"refresh" yaml:"refresh"`
	// Timeout bounds each HTTP download
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// AnalysisConfig controls how reports are run
type AnalysisConfig struct {
	// FailFast aborts on the first failed report
	FailFast bool `mapstructure:"fail_fast" yaml:"fail_fast"`
	// Workers bounds the goroutines used by the toss analysis
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// LoggingConfig controls diagnostic logging on stderr
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "json" or "console"
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:     "data.csv",
			Table:    "matches",
			CacheDir: filepath.Join(os.TempDir(), "cricket-analyzer"),
			Refresh:  false,
			Timeout:  30 * time.Second,
		},
		Analysis: AnalysisConfig{
			FailFast: false,
			Workers:  4,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("dataset.path", defaults.Dataset.Path)
	viper.SetDefault("dataset.table", defaults.Dataset.Table)
	viper.SetDefault("dataset.cache_dir", defaults.Dataset.CacheDir)
	viper.SetDefault("dataset.refresh", defaults.Dataset.Refresh)
	viper.SetDefault("dataset.timeout", defaults.Dataset.Timeout)

	viper.SetDefault("analysis.fail_fast", defaults.Analysis.FailFast)
	viper.SetDefault("analysis.workers", defaults.Analysis.Workers)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cricket-analyzer")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cricket-analyzer"
	}
	return filepath.Join(home, ".config", "cricket-analyzer")
}

// ConfigFile returns the path to the user config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LocalConfigFile is the config file looked up in the working directory
const LocalConfigFile = "cricket-analyzer.yaml"

// SearchPaths lists the config files tried, in order, when none is given explicitly
func SearchPaths() []string {
	return []string{LocalConfigFile, ConfigFile()}
}

// FindConfigFile returns the first existing file from SearchPaths, or "" if there is none
func FindConfigFile() string {
	for _, candidate := range SearchPaths() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
