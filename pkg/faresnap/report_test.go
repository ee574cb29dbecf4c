package faresnap

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ukaji3/faresnap-go/internal/fixture"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
)

func loadScenarioBook(t *testing.T) *Book {
	t.Helper()
	path := writeBook(t,
		fixture.Scenario("SYD", "MEL", "Jan"),
		fixture.Scenario("SYD", "PER", "Jan"),
		fixture.Scenario("SYD", "PER", "Jan"),
	)
	book, err := Load(path, testLoadOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return book
}

func TestCompare(t *testing.T) {
	book := loadScenarioBook(t)
	sel := models.Selection{
		Key:    models.Key{FromCity: "SYD", ToCity: "MEL", Month: "Jan"},
		Family: models.Fare,
	}

	report, err := Compare(book, sel, DefaultOptions())
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if _, err := uuid.Parse(report.ID); err != nil {
		t.Errorf("Expected a UUID report ID, got %q", report.ID)
	}
	if report.Window != 3 {
		t.Errorf("Expected default window 3, got %d", report.Window)
	}
	if report.RegionCode != "APAC" || report.Source != "snap.xlsx" {
		t.Errorf("Unexpected report metadata: region=%q source=%q", report.RegionCode, report.Source)
	}
	if len(report.Records) != models.SnapshotCount {
		t.Fatalf("Expected %d records, got %d", models.SnapshotCount, len(report.Records))
	}

	wantDiff := []float64{10, 10, 10, -5, 5, 5, 5, 5, 5}
	for i, r := range report.Records {
		if r.Difference != wantDiff[i] {
			t.Errorf("records[%d].Difference = %v, expected %v", i, r.Difference, wantDiff[i])
		}
	}
	if report.Records[1].Mean != nil || report.Records[2].Mean == nil || *report.Records[2].Mean != 110 {
		t.Errorf("Unexpected rolling mean at start of series")
	}
	if report.Summary.Up != 8 || report.Summary.Down != 1 {
		t.Errorf("Unexpected summary %+v", report.Summary)
	}
}

func TestComparePassengersReference(t *testing.T) {
	book := loadScenarioBook(t)
	window := 1
	sel := models.Selection{
		Key:    models.Key{FromCity: "SYD", ToCity: "MEL", Month: "Jan"},
		Family: models.Passengers,
	}

	report, err := Compare(book, sel, Options{Window: &window})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if report.Pair.Reference == nil || *report.Pair.Reference != 1150 {
		t.Errorf("Expected reference 1150, got %v", report.Pair.Reference)
	}
	if report.Records[0].TY != 1000 || *report.Records[0].Std != 0 {
		t.Errorf("Unexpected first record %+v", report.Records[0])
	}
}

func TestCompareErrors(t *testing.T) {
	book := loadScenarioBook(t)
	zero := 0
	validate := true

	tests := []struct {
		name    string
		sel     models.Selection
		opts    Options
		wantErr error
	}{
		{
			name:    "no matching row",
			sel:     models.Selection{Key: models.Key{FromCity: "SYD", ToCity: "MEL", Month: "Feb"}, Family: models.Fare},
			wantErr: ErrNoMatchingRow,
		},
		{
			name:    "ambiguous row",
			sel:     models.Selection{Key: models.Key{FromCity: "SYD", ToCity: "PER", Month: "Jan"}, Family: models.Fare},
			wantErr: ErrAmbiguousRow,
		},
		{
			name:    "invalid window",
			sel:     models.Selection{Key: models.Key{FromCity: "SYD", ToCity: "MEL", Month: "Jan"}, Family: models.Fare},
			opts:    Options{Window: &zero},
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "unknown city with validation",
			sel:     models.Selection{Key: models.Key{FromCity: "SYD", ToCity: "ADL", Month: "Jan"}, Family: models.Fare},
			opts:    Options{ValidateSelection: &validate},
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "unknown family with validation",
			sel:     models.Selection{Key: models.Key{FromCity: "SYD", ToCity: "MEL", Month: "Jan"}, Family: "yield"},
			opts:    Options{ValidateSelection: &validate},
			wantErr: ErrInvalidSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compare(book, tt.sel, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if !IsRequestError(err) {
				t.Errorf("Expected %v to be a request error", err)
			}
		})
	}
}

func TestIsRequestError(t *testing.T) {
	if IsRequestError(NewLoadError("x.xlsx", DefaultSheet, "open", ErrFileNotFound)) {
		t.Error("A load error must not be a request error")
	}
	if IsRequestError(nil) {
		t.Error("nil must not be a request error")
	}
}
