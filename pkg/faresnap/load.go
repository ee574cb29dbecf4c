package faresnap

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/parser"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/series"
	"github.com/xuri/excelize/v2"
)

// Book is an immutable loaded dataset together with the extractor resolved
// against its header. Replace a Book wholesale; never modify one in place.
type Book struct {
	Dataset   *models.Dataset
	Extractor *series.Extractor
	// Range is the worksheet cell range the dataset was read from, if known.
	Range string
}

// NewBook resolves the column layout of ds and builds its extractor.
func NewBook(ds *models.Dataset, spec parser.LayoutSpec, axis []string) (*Book, error) {
	layout, err := parser.ResolveLayout(ds.Header(), spec, axis)
	if err != nil {
		return nil, err
	}
	ext, err := series.NewExtractor(layout, axis)
	if err != nil {
		return nil, err
	}
	return &Book{Dataset: ds, Extractor: ext}, nil
}

// Load reads the snapshot sheet of an xlsx workbook into a Book.
func Load(path string, opts LoadOptions) (*Book, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, NewLoadError(path, opts.Sheet, "open", ErrFileNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, opts.Sheet, "open", err)
	}
	defer f.Close()

	return LoadFile(f, filepath.Base(path), opts)
}

// LoadFile builds a Book from an already opened workbook.
func LoadFile(f *excelize.File, source string, opts LoadOptions) (*Book, error) {
	sheet, err := parser.ReadSheet(f, opts.Sheet, opts.HeaderRow)
	if err != nil {
		return nil, NewLoadError(source, opts.Sheet, "read", err)
	}

	records, err := parser.ParseRecords(sheet, opts.Keys)
	if err != nil {
		return nil, NewLoadError(source, opts.Sheet, "records", err)
	}

	ds := models.NewDataset(source, sheet.Header, records)
	book, err := NewBook(ds, opts.Layout, opts.SnapshotAxis())
	if err != nil {
		return nil, NewLoadError(source, opts.Sheet, "layout", err)
	}
	book.Range = sheet.Range
	return book, nil
}
