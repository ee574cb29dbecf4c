package parser

import (
	"testing"

	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
)

func TestSnapshotHeader(t *testing.T) {
	tests := []struct {
		label    string
		year     string
		expected string
	}{
		{"03-Nov", "24", "03Nov'24"},
		{"29-Dec", "23", "29Dec'23"},
	}

	for _, tt := range tests {
		if got := SnapshotHeader(tt.label, tt.year); got != tt.expected {
			t.Errorf("SnapshotHeader(%q, %q) = %q, expected %q", tt.label, tt.year, got, tt.expected)
		}
	}
}

func TestBlockHeadersNewestFirst(t *testing.T) {
	headers := BlockHeaders(models.DefaultAxis(), "24", "23")

	if len(headers) != 18 {
		t.Fatalf("Expected 18 headers, got %d", len(headers))
	}
	if headers[0] != "29Dec'24" || headers[1] != "29Dec'23" {
		t.Errorf("Expected newest TY/LY first, got %q, %q", headers[0], headers[1])
	}
	if headers[16] != "03Nov'24" || headers[17] != "03Nov'23" {
		t.Errorf("Expected oldest TY/LY last, got %q, %q", headers[16], headers[17])
	}
}

func snapshotHeader() []string {
	block := BlockHeaders(models.DefaultAxis(), "24", "23")
	header := []string{"FROM_CITY", "TO_CITY", "Month"}
	header = append(header, block...)
	header = append(header, "PAX LY")
	header = append(header, block...)
	return header
}

func TestResolveLayoutByOccurrence(t *testing.T) {
	header := snapshotHeader()
	spec := DefaultLayoutSpec()
	spec.References = map[models.MetricFamily]string{models.Passengers: "PAX LY"}

	layout, err := ResolveLayout(header, spec, models.DefaultAxis())
	if err != nil {
		t.Fatalf("ResolveLayout failed: %v", err)
	}

	fare := layout.Blocks[models.Fare]
	pax := layout.Blocks[models.Passengers]
	if len(fare) != 18 || len(pax) != 18 {
		t.Fatalf("Expected 18 columns per family, got fare=%d pax=%d", len(fare), len(pax))
	}
	for i := range fare {
		if fare[i] != 3+i {
			t.Errorf("fare[%d] = %d, expected %d", i, fare[i], 3+i)
		}
		if pax[i] != 22+i {
			t.Errorf("pax[%d] = %d, expected %d", i, pax[i], 22+i)
		}
	}
	if layout.References[models.Passengers] != 21 {
		t.Errorf("Expected pax reference at 21, got %d", layout.References[models.Passengers])
	}
	if layout.HeaderAt(3) != "29Dec'24" {
		t.Errorf("Unexpected header at 3: %q", layout.HeaderAt(3))
	}
	if layout.HeaderAt(99) != "" {
		t.Error("Expected empty header out of range")
	}
}

func TestResolveLayoutMissingColumn(t *testing.T) {
	header := snapshotHeader()
	// Drop the second 03Nov'23, leaving the passenger block one short.
	header = header[:len(header)-1]

	layout, err := ResolveLayout(header, DefaultLayoutSpec(), models.DefaultAxis())
	if err != nil {
		t.Fatalf("ResolveLayout failed: %v", err)
	}
	if n := len(layout.Blocks[models.Fare]); n != 18 {
		t.Errorf("Expected 18 fare columns, got %d", n)
	}
	if n := len(layout.Blocks[models.Passengers]); n != 17 {
		t.Errorf("Expected 17 pax columns, got %d", n)
	}
}

func TestResolveLayoutExplicitBlocks(t *testing.T) {
	header := []string{"A", "B", "C", "D"}
	spec := LayoutSpec{
		Blocks: map[models.MetricFamily][]string{
			models.Fare:       {"D", "C"},
			models.Passengers: {"B", "A"},
		},
	}

	layout, err := ResolveLayout(header, spec, []string{"x"})
	if err != nil {
		t.Fatalf("ResolveLayout failed: %v", err)
	}
	if got := layout.Blocks[models.Fare]; len(got) != 2 || got[0] != 3 || got[1] != 2 {
		t.Errorf("Unexpected fare block: %v", got)
	}
	if got := layout.Blocks[models.Passengers]; len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("Unexpected pax block: %v", got)
	}
}

func TestResolveLayoutUnknownReference(t *testing.T) {
	spec := DefaultLayoutSpec()
	spec.References = map[models.MetricFamily]string{models.Fare: "NOPE"}

	if _, err := ResolveLayout(snapshotHeader(), spec, models.DefaultAxis()); err == nil {
		t.Error("Expected error for unknown reference column")
	}
}
