// Package parser provides functionality to load cricket match data from various formats
package parser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/myusername/cricket-match-analyzer/pkg/models"
)

// Format identifies the kind of file a dataset is stored in
type Format string

// Supported dataset formats
const (
	FormatCSV    Format = "csv"
	FormatHTML   Format = "html"
	FormatPDF    Format = "pdf"
	FormatSQLite Format = "sqlite"
)

// FormatFromPath picks the dataset format from the file extension.
// Unknown extensions are read as CSV.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	case ".pdf":
		return FormatPDF
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// Loader reads a dataset from disk and cleans it
type Loader struct {
	logger *zap.Logger
	table  string
}

// NewLoader creates a Loader. sqliteTable names the table read from SQLite sources.
func NewLoader(logger *zap.Logger, sqliteTable string) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sqliteTable == "" {
		sqliteTable = DefaultTable
	}
	return &Loader{logger: logger, table: sqliteTable}
}

// Load reads the dataset at path and returns it cleaned. No dataset is returned on error.
func (l *Loader) Load(ctx context.Context, path string) (*models.Dataset, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnreadable, path)
	}

	format := FormatFromPath(path)
	l.logger.Info("loading dataset", zap.String("path", path), zap.String("format", string(format)))

	table, err := l.readTable(ctx, path, format)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	l.logger.Debug("read raw table",
		zap.Strings("columns", table.Header),
		zap.Int("rows", len(table.Rows)))

	ds, err := Clean(table, path)
	if err != nil {
		return nil, fmt.Errorf("cleaning %s: %w", path, err)
	}

	l.logger.Info("dataset ready",
		zap.Int("matches", ds.Len()),
		zap.Int("columns", len(ds.Columns)))
	return ds, nil
}

func (l *Loader) readTable(ctx context.Context, path string, format Format) (*Table, error) {
	switch format {
	case FormatSQLite:
		return ReadSQLiteTable(ctx, path, l.table)
	case FormatPDF:
		return ReadPDFTable(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	if format == FormatHTML {
		return ReadHTMLTable(f)
	}
	return ReadCSV(f)
}
