package compare

import (
	"errors"
	"math"
	"testing"

	"github.com/ukaji3/faresnap-go/internal/fixture"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
)

func scenarioPair() *models.AlignedSeriesPair {
	return &models.AlignedSeriesPair{
		Family: models.Fare,
		Axis:   models.DefaultAxis(),
		TY:     append([]float64(nil), fixture.ScenarioTY...),
		LY:     append([]float64(nil), fixture.ScenarioLY...),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompareDifferenceAndTrend(t *testing.T) {
	records, err := Compare(scenarioPair(), DefaultWindow)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	wantDiff := []float64{10, 10, 10, -5, 5, 5, 5, 5, 5}
	wantTrend := []models.Trend{
		models.Up, models.Up, models.Up, models.Down,
		models.Up, models.Up, models.Up, models.Up, models.Up,
	}

	if len(records) != len(wantDiff) {
		t.Fatalf("Expected %d records, got %d", len(wantDiff), len(records))
	}
	axis := models.DefaultAxis()
	for i, r := range records {
		if r.Date != axis[i] {
			t.Errorf("records[%d].Date = %q, expected %q", i, r.Date, axis[i])
		}
		if !almostEqual(r.Difference, wantDiff[i]) {
			t.Errorf("records[%d].Difference = %v, expected %v", i, r.Difference, wantDiff[i])
		}
		if r.Trend != wantTrend[i] {
			t.Errorf("records[%d].Trend = %v, expected %v", i, r.Trend, wantTrend[i])
		}
	}
}

func TestCompareRollingWindow(t *testing.T) {
	records, err := Compare(scenarioPair(), 3)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		r := records[i]
		if r.Mean != nil || r.Std != nil || r.Upper != nil || r.Lower != nil {
			t.Errorf("records[%d] should have absent rolling stats, got mean=%v std=%v", i, r.Mean, r.Std)
		}
	}

	r := records[2]
	if r.Mean == nil || !almostEqual(*r.Mean, 110) {
		t.Fatalf("Expected mean 110 at index 2, got %v", r.Mean)
	}
	// Sample standard deviation of 100, 110, 120.
	wantStd := 10.0
	if r.Std == nil || !almostEqual(*r.Std, wantStd) {
		t.Errorf("Expected std %v at index 2, got %v", wantStd, r.Std)
	}
	if r.Upper == nil || !almostEqual(*r.Upper, 130) {
		t.Errorf("Expected upper 130, got %v", r.Upper)
	}
	if r.Lower == nil || !almostEqual(*r.Lower, 90) {
		t.Errorf("Expected lower 90, got %v", r.Lower)
	}

	// Last window: 115, 125, 130.
	last := records[8]
	if last.Mean == nil || !almostEqual(*last.Mean, 370.0/3.0) {
		t.Errorf("Expected last mean %v, got %v", 370.0/3.0, last.Mean)
	}
	for i := 2; i < len(records); i++ {
		if *records[i].Lower > *records[i].Mean || *records[i].Mean > *records[i].Upper {
			t.Errorf("records[%d] bands out of order", i)
		}
	}
}

func TestCompareWindowOne(t *testing.T) {
	pair := scenarioPair()
	records, err := Compare(pair, 1)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	for i, r := range records {
		if r.Mean == nil || *r.Mean != pair.TY[i] {
			t.Errorf("records[%d].Mean = %v, expected %v", i, r.Mean, pair.TY[i])
		}
		if r.Std == nil || *r.Std != 0 {
			t.Errorf("records[%d].Std = %v, expected 0", i, r.Std)
		}
		if *r.Upper != pair.TY[i] || *r.Lower != pair.TY[i] {
			t.Errorf("records[%d] bands should collapse onto TY", i)
		}
	}
}

func TestCompareWindowLargerThanSeries(t *testing.T) {
	records, err := Compare(scenarioPair(), 10)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	for i, r := range records {
		if r.Mean != nil {
			t.Errorf("records[%d].Mean should be absent, got %v", i, *r.Mean)
		}
	}
}

func TestCompareInvalidWindow(t *testing.T) {
	for _, window := range []int{0, -1} {
		_, err := Compare(scenarioPair(), window)
		if !errors.Is(err, models.ErrInvalidWindow) {
			t.Errorf("window %d: expected ErrInvalidWindow, got %v", window, err)
		}
	}
}

func TestCompareLengthMismatch(t *testing.T) {
	pair := scenarioPair()
	pair.LY = pair.LY[:8]
	_, err := Compare(pair, 3)
	if !errors.Is(err, models.ErrColumnCountMismatch) {
		t.Errorf("Expected ErrColumnCountMismatch, got %v", err)
	}
}

func TestTrendOf(t *testing.T) {
	tests := []struct {
		diff float64
		want models.Trend
	}{
		{10, models.Up},
		{0.0001, models.Up},
		{0, models.Flat},
		{math.Copysign(0, -1), models.Flat},
		{-0.0001, models.Down},
		{-5, models.Down},
	}
	for _, tt := range tests {
		if got := models.TrendOf(tt.diff); got != tt.want {
			t.Errorf("TrendOf(%v) = %v, expected %v", tt.diff, got, tt.want)
		}
	}
}

func TestTrendExhaustive(t *testing.T) {
	pair := scenarioPair()
	pair.TY[4] = pair.LY[4]
	records, err := Compare(pair, DefaultWindow)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	for i, r := range records {
		want := models.Flat
		switch {
		case r.TY > r.LY:
			want = models.Up
		case r.TY < r.LY:
			want = models.Down
		}
		if r.Trend != want {
			t.Errorf("records[%d].Trend = %v, expected %v", i, r.Trend, want)
		}
	}
	if records[4].Trend != models.Flat {
		t.Errorf("Expected Flat at index 4, got %v", records[4].Trend)
	}
}

func TestRollingSampleStd(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean, std := Rolling(values, len(values))
	last := len(values) - 1
	for i := 0; i < last; i++ {
		if mean[i] != nil || std[i] != nil {
			t.Errorf("Expected absent stats at index %d", i)
		}
	}
	if mean[last] == nil || !almostEqual(*mean[last], 5) {
		t.Errorf("Expected mean 5, got %v", mean[last])
	}
	// Squared deviations sum to 32 over 8 values: sample variance 32/7.
	if std[last] == nil || !almostEqual(*std[last], math.Sqrt(32.0/7.0)) {
		t.Errorf("Expected std %v, got %v", math.Sqrt(32.0/7.0), std[last])
	}

	mean, _ = Rolling(values, 2)
	if !almostEqual(*mean[1], 3) || !almostEqual(*mean[7], 8) {
		t.Errorf("Unexpected window-2 means %v %v", *mean[1], *mean[7])
	}
}

func TestRollingEmpty(t *testing.T) {
	mean, std := Rolling(nil, 3)
	if len(mean) != 0 || len(std) != 0 {
		t.Errorf("Expected empty results, got %v %v", mean, std)
	}
}

func TestSummarize(t *testing.T) {
	records, err := Compare(scenarioPair(), DefaultWindow)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	s := Summarize(records)
	if s.Up != 8 || s.Down != 1 || s.Flat != 0 {
		t.Errorf("Unexpected counts: up=%d down=%d flat=%d", s.Up, s.Down, s.Flat)
	}
	if !almostEqual(s.TotalDifference, 50) {
		t.Errorf("Expected total difference 50, got %v", s.TotalDifference)
	}
	if !almostEqual(s.MeanDifference, 50.0/9.0) {
		t.Errorf("Expected mean difference %v, got %v", 50.0/9.0, s.MeanDifference)
	}
	if s.Latest != models.Up {
		t.Errorf("Expected latest Up, got %v", s.Latest)
	}

	if empty := Summarize(nil); empty != (models.Summary{}) {
		t.Errorf("Expected zero summary, got %+v", empty)
	}
}
