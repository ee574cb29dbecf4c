package faresnap

import (
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/compare"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/series"
)

// Compare looks up sel in book, extracts its series and computes the comparison.
func Compare(book *Book, sel models.Selection, opts Options) (*models.Report, error) {
	window := opts.WindowSize()
	if window < 1 {
		return nil, &models.WindowError{Window: window}
	}

	if opts.ShouldValidateSelection() {
		if err := sel.Validate(book.Dataset.Choices()); err != nil {
			return nil, err
		}
	}

	rec, err := series.Lookup(book.Dataset, sel.Key)
	if err != nil {
		return nil, err
	}

	pair, err := book.Extractor.Extract(rec, sel.Family)
	if err != nil {
		return nil, err
	}

	records, err := compare.Compare(pair, window)
	if err != nil {
		return nil, err
	}

	return &models.Report{
		ID:          uuid.New().String(),
		Source:      book.Dataset.Source,
		Key:         sel.Key,
		RegionCode:  rec.RegionCode,
		Family:      sel.Family,
		Window:      window,
		GeneratedAt: time.Now(),
		Pair:        pair,
		Records:     records,
		Summary:     compare.Summarize(records),
	}, nil
}
