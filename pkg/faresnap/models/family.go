// Package models defines data structures for fare and passenger snapshot comparison.
package models

import (
	"fmt"
	"strings"
)

// MetricFamily identifies one block of snapshot columns in the dataset.
type MetricFamily string

const (
	// Fare is the average fare block.
	Fare MetricFamily = "fare"
	// Passengers is the passenger count block.
	Passengers MetricFamily = "pax"
)

// Families lists every metric family in workbook order.
var Families = []MetricFamily{Fare, Passengers}

// ParseMetricFamily accepts the canonical names plus a few spellings used in
// workbook headers and on the command line.
func ParseMetricFamily(s string) (MetricFamily, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fare", "fares", "avg_fare", "avgfare":
		return Fare, nil
	case "pax", "passengers", "passenger":
		return Passengers, nil
	default:
		return "", fmt.Errorf("invalid metric family: %q (must be fare or pax)", s)
	}
}

// Label returns the human-readable name used for axis titles and table headers.
func (f MetricFamily) Label() string {
	switch f {
	case Fare:
		return "Average Fare"
	case Passengers:
		return "Passengers"
	default:
		return string(f)
	}
}
