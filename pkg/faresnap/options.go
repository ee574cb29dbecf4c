// Package faresnap compares this-year and last-year fare and passenger snapshots
// loaded from a fixed-format workbook.
package faresnap

import (
	"github.com/ukaji3/faresnap-go/pkg/faresnap/compare"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/parser"
)

// DefaultSheet is the worksheet holding the snapshot table.
const DefaultSheet = "AVG_FARE"

// DefaultHeaderRow is the 1-based row holding the column headers.
const DefaultHeaderRow = 4

// LoadOptions configures how a workbook is read.
type LoadOptions struct {
	// Sheet is the worksheet name.
	Sheet string
	// HeaderRow is the 1-based header row.
	HeaderRow int
	// Keys names the key columns.
	Keys parser.KeyColumns
	// Layout describes the metric family blocks.
	Layout parser.LayoutSpec
	// Axis is the snapshot axis. If nil, defaults to models.DefaultAxis().
	Axis []string
}

// DefaultLoadOptions returns options matching the standard snapshot workbook.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sheet:     DefaultSheet,
		HeaderRow: DefaultHeaderRow,
		Keys:      parser.DefaultKeyColumns(),
		Layout:    parser.DefaultLayoutSpec(),
	}
}

// SnapshotAxis returns the axis to align series to.
func (o LoadOptions) SnapshotAxis() []string {
	if o.Axis != nil {
		return append([]string(nil), o.Axis...)
	}
	return models.DefaultAxis()
}

// Options configures a comparison request.
type Options struct {
	// Window is the rolling window size.
	// If nil, defaults to compare.DefaultWindow.
	Window *int
	// ValidateSelection checks the selection against the dataset's choices
	// before lookup. If nil, defaults to false.
	ValidateSelection *bool
}

// DefaultOptions returns default comparison options.
func DefaultOptions() Options {
	return Options{}
}

// WindowSize returns the rolling window to use.
func (o Options) WindowSize() int {
	if o.Window != nil {
		return *o.Window
	}
	return compare.DefaultWindow
}

// ShouldValidateSelection returns whether to validate the selection first.
func (o Options) ShouldValidateSelection() bool {
	if o.ValidateSelection != nil {
		return *o.ValidateSelection
	}
	return false
}
