// Package compare computes TY versus LY comparisons over an aligned series pair.
//
// For each snapshot date it produces the difference (TY minus LY), a trend
// classification and, over TY, a trailing rolling mean, rolling sample standard
// deviation and Bollinger bands (mean ± 2 std). Rolling statistics are absent
// (nil) until the window has filled; they are never reported as zero.
package compare

import (
	"github.com/sartorproj/goarima/timeseries"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
)

// DefaultWindow is the rolling window used when none is configured.
const DefaultWindow = 3

// BandWidth is the number of standard deviations between the mean and a band.
const BandWidth = 2.0

// Compare builds one ComparisonRecord per snapshot date of pair.
func Compare(pair *models.AlignedSeriesPair, window int) ([]models.ComparisonRecord, error) {
	if window < 1 {
		return nil, &models.WindowError{Window: window}
	}
	n := len(pair.Axis)
	if len(pair.TY) != n {
		return nil, &models.ColumnCountError{Family: pair.Family, Got: len(pair.TY), Want: n}
	}
	if len(pair.LY) != n {
		return nil, &models.ColumnCountError{Family: pair.Family, Got: len(pair.LY), Want: n}
	}

	diff := Difference(pair.TY, pair.LY)
	mean, std := Rolling(pair.TY, window)

	records := make([]models.ComparisonRecord, n)
	for i := 0; i < n; i++ {
		rec := models.ComparisonRecord{
			Date:       pair.Axis[i],
			TY:         pair.TY[i],
			LY:         pair.LY[i],
			Difference: diff[i],
			Trend:      models.TrendOf(diff[i]),
		}
		if mean[i] != nil {
			m, s := *mean[i], *std[i]
			upper := m + BandWidth*s
			lower := m - BandWidth*s
			rec.Mean = mean[i]
			rec.Std = std[i]
			rec.Upper = &upper
			rec.Lower = &lower
		}
		records[i] = rec
	}
	return records, nil
}

// Difference returns ty[i] - ly[i] for every i. The slices must have equal length.
func Difference(ty, ly []float64) []float64 {
	out := make([]float64, len(ty))
	for i := range ty {
		out[i] = ty[i] - ly[i]
	}
	return out
}

// Rolling returns the trailing mean and sample standard deviation of values
// over window. Entries before index window-1 are nil. A single-value window
// has a standard deviation of 0.
func Rolling(values []float64, window int) (mean, std []*float64) {
	mean = make([]*float64, len(values))
	std = make([]*float64, len(values))
	if window < 1 {
		return mean, std
	}

	ts := timeseries.New(values)
	for i := window - 1; i < len(values); i++ {
		w := ts.Slice(i-window+1, i+1)
		m, s := w.Mean(), w.Std()
		mean[i] = &m
		std[i] = &s
	}
	return mean, std
}

// Summarize aggregates trend counts and differences over records.
func Summarize(records []models.ComparisonRecord) models.Summary {
	var s models.Summary
	for _, r := range records {
		switch r.Trend {
		case models.Up:
			s.Up++
		case models.Down:
			s.Down++
		default:
			s.Flat++
		}
		s.TotalDifference += r.Difference
	}
	if len(records) > 0 {
		s.MeanDifference = s.TotalDifference / float64(len(records))
		s.Latest = records[len(records)-1].Trend
	}
	return s
}
