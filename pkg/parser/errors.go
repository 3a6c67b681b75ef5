package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputNotFound indicates the dataset source does not exist
	ErrInputNotFound = errors.New("input not found")
	// ErrUnreadable indicates the dataset source exists but could not be read or parsed
	ErrUnreadable = errors.New("input unreadable")
)

// MissingColumnError is returned when required columns are absent from the source.
// The message leaves out Source; callers wrap it with the path they loaded.
type MissingColumnError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Columns, ", "))
}

// CellError is returned when a cell cannot be converted to its column type
type CellError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %s: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

// Unwrap lets errors.Is match both ErrUnreadable and the conversion error
func (e *CellError) Unwrap() []error {
	return []error{ErrUnreadable, e.Err}
}
