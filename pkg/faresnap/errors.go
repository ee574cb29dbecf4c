package faresnap

import (
	"errors"
	"fmt"

	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// Lookup, layout and window errors. See the models package for the typed
// errors that wrap them.
var (
	ErrNoMatchingRow       = models.ErrNoMatchingRow
	ErrAmbiguousRow        = models.ErrAmbiguousRow
	ErrColumnCountMismatch = models.ErrColumnCountMismatch
	ErrInvalidWindow       = models.ErrInvalidWindow
	ErrMissingValue        = models.ErrMissingValue
	ErrInvalidSelection    = models.ErrInvalidSelection
)

// LoadError represents an error while loading a workbook.
type LoadError struct {
	Path  string
	Sheet string
	Stage string // "open", "read", "records", "layout"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in %s sheet %q (%s): %v", e.Path, e.Sheet, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheet, stage string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}

// IsRequestError reports whether err is a per-request validation failure that a
// caller should show as a warning rather than treat as fatal.
func IsRequestError(err error) bool {
	return errors.Is(err, ErrNoMatchingRow) ||
		errors.Is(err, ErrAmbiguousRow) ||
		errors.Is(err, ErrColumnCountMismatch) ||
		errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrMissingValue) ||
		errors.Is(err, ErrInvalidSelection)
}
