// Package series extracts aligned TY/LY snapshot series from wide dataset rows.
package series

import (
	"errors"
	"math"

	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
)

// Extractor pulls TY and LY sub-series out of a record using a column layout
// fixed at construction. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	axis       []string
	blocks     map[models.MetricFamily][]int
	invalid    map[models.MetricFamily]error
	references map[models.MetricFamily]int
	header     []string
}

// NewExtractor validates layout against axis. A block that does not hold exactly
// two columns per snapshot date makes its family unusable: every Extract for it
// fails with models.ErrColumnCountMismatch. Validate reports such blocks up front.
func NewExtractor(layout models.ColumnLayout, axis []string) (*Extractor, error) {
	if len(axis) == 0 {
		return nil, errors.New("snapshot axis must not be empty")
	}
	want := 2 * len(axis)
	e := &Extractor{
		axis:       append([]string(nil), axis...),
		blocks:     make(map[models.MetricFamily][]int, len(layout.Blocks)),
		invalid:    make(map[models.MetricFamily]error),
		references: make(map[models.MetricFamily]int, len(layout.References)),
		header:     append([]string(nil), layout.Header...),
	}
	for family, block := range layout.Blocks {
		if len(block) != want {
			e.invalid[family] = &models.ColumnCountError{Family: family, Got: len(block), Want: want}
			continue
		}
		e.blocks[family] = append([]int(nil), block...)
	}
	for family, col := range layout.References {
		e.references[family] = col
	}
	return e, nil
}

// Validate returns the column count errors of every unusable family, joined.
func (e *Extractor) Validate() error {
	var errs []error
	for _, family := range models.Families {
		if err, ok := e.invalid[family]; ok {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Axis returns a copy of the snapshot axis the extractor aligns to.
func (e *Extractor) Axis() []string {
	return append([]string(nil), e.axis...)
}

// Extract returns the TY and LY series of family for rec in ascending date order.
func (e *Extractor) Extract(rec *models.Record, family models.MetricFamily) (*models.AlignedSeriesPair, error) {
	want := 2 * len(e.axis)
	if err, ok := e.invalid[family]; ok {
		return nil, err
	}
	block, ok := e.blocks[family]
	if !ok {
		return nil, &models.ColumnCountError{Family: family, Got: 0, Want: want}
	}

	raw, err := e.slice(rec, family, block)
	if err != nil {
		return nil, err
	}

	// Even positions hold TY, odd positions LY, newest date first.
	ty := make([]float64, 0, len(e.axis))
	ly := make([]float64, 0, len(e.axis))
	for i, v := range raw {
		if i%2 == 0 {
			ty = append(ty, v)
		} else {
			ly = append(ly, v)
		}
	}

	pair := &models.AlignedSeriesPair{
		Family: family,
		Axis:   e.Axis(),
		TY:     Reverse(ty),
		LY:     Reverse(ly),
	}
	if col, ok := e.references[family]; ok && col >= 0 && col < len(rec.Values) {
		if v := rec.Values[col]; !math.IsNaN(v) {
			pair.Reference = &v
		}
	}
	return pair, nil
}

// slice copies the block's cells out of rec in layout order.
func (e *Extractor) slice(rec *models.Record, family models.MetricFamily, block []int) ([]float64, error) {
	available := 0
	for _, col := range block {
		if col >= 0 && col < len(rec.Values) {
			available++
		}
	}
	if available != len(block) {
		return nil, &models.ColumnCountError{Family: family, Got: available, Want: len(block)}
	}

	raw := make([]float64, len(block))
	for i, col := range block {
		v := rec.Values[col]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			header := ""
			if col < len(e.header) {
				header = e.header[col]
			}
			return nil, &models.ValueError{Family: family, Column: col, Header: header}
		}
		raw[i] = v
	}
	return raw, nil
}

// Reverse returns a reversed copy of values.
func Reverse(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}
