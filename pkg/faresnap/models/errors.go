package models

import (
	"errors"
	"fmt"
)

// ErrNoMatchingRow indicates that no record matches a lookup key.
var ErrNoMatchingRow = errors.New("no matching row")

// ErrAmbiguousRow indicates that more than one record matches a lookup key.
var ErrAmbiguousRow = errors.New("ambiguous row")

// ErrColumnCountMismatch indicates that a metric family block does not hold
// exactly two columns per snapshot date.
var ErrColumnCountMismatch = errors.New("column count mismatch")

// ErrInvalidWindow indicates a rolling window smaller than one.
var ErrInvalidWindow = errors.New("invalid window")

// ErrMissingValue indicates a blank or non-numeric cell inside a snapshot block.
var ErrMissingValue = errors.New("missing value")

// ErrInvalidSelection indicates a selector tuple not drawn from the dataset.
var ErrInvalidSelection = errors.New("invalid selection")

// LookupError reports a lookup that did not resolve to exactly one record.
type LookupError struct {
	Key     Key
	Matches int
}

func (e *LookupError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no data found for %s", e.Key)
	}
	return fmt.Sprintf("%d rows match %s, expected exactly one", e.Matches, e.Key)
}

func (e *LookupError) Unwrap() error {
	if e.Matches == 0 {
		return ErrNoMatchingRow
	}
	return ErrAmbiguousRow
}

// ColumnCountError reports a metric family block of the wrong width.
type ColumnCountError struct {
	Family MetricFamily
	Got    int
	Want   int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("%s block has %d columns, want %d", e.Family, e.Got, e.Want)
}

func (e *ColumnCountError) Unwrap() error {
	return ErrColumnCountMismatch
}

// WindowError reports an unusable rolling window size.
type WindowError struct {
	Window int
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("window must be at least 1, got %d", e.Window)
}

func (e *WindowError) Unwrap() error {
	return ErrInvalidWindow
}

// ValueError reports a cell in a snapshot block that holds no number.
type ValueError struct {
	Family MetricFamily
	Column int    // 0-based column index in the dataset header
	Header string // header text of the column, if known
}

func (e *ValueError) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("%s value in column %q is blank or not a number", e.Family, e.Header)
	}
	return fmt.Sprintf("%s value in column %d is blank or not a number", e.Family, e.Column+1)
}

func (e *ValueError) Unwrap() error {
	return ErrMissingValue
}
