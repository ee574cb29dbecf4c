package models

import (
	"fmt"
	"time"
)

// Key identifies a record by city pair and travel month.
type Key struct {
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
	Month    string `json:"month"`
}

func (k Key) String() string {
	return fmt.Sprintf("%s-%s (%s)", k.FromCity, k.ToCity, k.Month)
}

// Record is one wide row of the dataset.
type Record struct {
	// Row is the 1-based worksheet row the record was read from (0 if built in memory).
	Row int `json:"row,omitempty"`
	// FromCity is the origin city.
	FromCity string `json:"from_city"`
	// ToCity is the destination city.
	ToCity string `json:"to_city"`
	// Month is the travel month.
	Month string `json:"month"`
	// SnapshotMonthLY is the last-year month the LY columns were captured for.
	SnapshotMonthLY string `json:"snapshot_month_ly,omitempty"`
	// RegionCode is the region the city pair belongs to.
	RegionCode string `json:"region_code,omitempty"`
	// Values holds every column of the row, aligned to Dataset.Header.
	// Blank or non-numeric cells are NaN.
	Values []float64 `json:"-"`
}

// Key returns the lookup key of the record.
func (r *Record) Key() Key {
	return Key{FromCity: r.FromCity, ToCity: r.ToCity, Month: r.Month}
}

// Dataset is an immutable snapshot of a loaded sheet.
type Dataset struct {
	// Source names where the dataset came from (file name or "memory").
	Source string
	// LoadedAt is when the snapshot was built.
	LoadedAt time.Time

	header  []string
	records []Record
	index   map[Key][]int
}

// NewDataset builds a dataset and its key index. The slices are copied so later
// changes by the caller cannot leak into the snapshot.
func NewDataset(source string, header []string, records []Record) *Dataset {
	ds := &Dataset{
		Source:   source,
		LoadedAt: time.Now(),
		header:   append([]string(nil), header...),
		records:  make([]Record, len(records)),
		index:    make(map[Key][]int, len(records)),
	}
	for i, r := range records {
		r.Values = append([]float64(nil), r.Values...)
		ds.records[i] = r
		k := r.Key()
		ds.index[k] = append(ds.index[k], i)
	}
	return ds
}

// Header returns a copy of the header row.
func (d *Dataset) Header() []string {
	return append([]string(nil), d.header...)
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Record returns the i-th record. The returned pointer must be treated as read-only.
func (d *Dataset) Record(i int) *Record {
	return &d.records[i]
}

// Find returns the single record matching key exactly.
// Zero or multiple matches are reported as a *LookupError.
func (d *Dataset) Find(key Key) (*Record, error) {
	idx := d.index[key]
	if len(idx) != 1 {
		return nil, &LookupError{Key: key, Matches: len(idx)}
	}
	return &d.records[idx[0]], nil
}

// Choices holds the distinct selector values present in a dataset.
type Choices struct {
	FromCities []string `json:"from_cities"`
	ToCities   []string `json:"to_cities"`
	Months     []string `json:"months"`
}

// Choices returns distinct FromCity, ToCity and Month values in first-seen order.
func (d *Dataset) Choices() Choices {
	var c Choices
	seenFrom := make(map[string]bool)
	seenTo := make(map[string]bool)
	seenMonth := make(map[string]bool)
	for _, r := range d.records {
		if !seenFrom[r.FromCity] {
			seenFrom[r.FromCity] = true
			c.FromCities = append(c.FromCities, r.FromCity)
		}
		if !seenTo[r.ToCity] {
			seenTo[r.ToCity] = true
			c.ToCities = append(c.ToCities, r.ToCity)
		}
		if !seenMonth[r.Month] {
			seenMonth[r.Month] = true
			c.Months = append(c.Months, r.Month)
		}
	}
	return c
}

// Selection is a request tuple supplied by a selector.
type Selection struct {
	Key
	Family MetricFamily `json:"family"`
}

// Validate checks that every field of the selection is one of the dataset's choices.
func (s Selection) Validate(c Choices) error {
	if s.Family != Fare && s.Family != Passengers {
		return fmt.Errorf("%w: unknown metric family %q", ErrInvalidSelection, s.Family)
	}
	if !contains(c.FromCities, s.FromCity) {
		return fmt.Errorf("%w: unknown from city %q", ErrInvalidSelection, s.FromCity)
	}
	if !contains(c.ToCities, s.ToCity) {
		return fmt.Errorf("%w: unknown to city %q", ErrInvalidSelection, s.ToCity)
	}
	if !contains(c.Months, s.Month) {
		return fmt.Errorf("%w: unknown month %q", ErrInvalidSelection, s.Month)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
