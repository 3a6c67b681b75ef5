package analysis

import (
	"errors"
	"fmt"
)

// ErrEmptyAggregation indicates a grouping had no rows to aggregate
var ErrEmptyAggregation = errors.New("no rows to aggregate")

// ReportError records which report could not be produced and why
type ReportError struct {
	Report string
	Err    error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("%s report could not be produced: %v", e.Report, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
