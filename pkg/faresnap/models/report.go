package models

import "time"

// Summary aggregates a comparison.
type Summary struct {
	Up              int     `json:"up"`
	Down            int     `json:"down"`
	Flat            int     `json:"flat"`
	TotalDifference float64 `json:"total_difference"`
	MeanDifference  float64 `json:"mean_difference"`
	// Latest is the trend at the most recent snapshot date.
	Latest Trend `json:"latest"`
}

// Report is the full result of one comparison request.
type Report struct {
	// ID uniquely identifies the report.
	ID string `json:"id"`
	// Source names the dataset the report was computed from.
	Source string `json:"source"`
	// Key is the looked-up city pair and month.
	Key Key `json:"key"`
	// RegionCode is copied from the matched record.
	RegionCode string `json:"region_code,omitempty"`
	// Family is the compared metric family.
	Family MetricFamily `json:"family"`
	// Window is the rolling window size.
	Window int `json:"window"`
	// GeneratedAt is when the report was computed.
	GeneratedAt time.Time `json:"generated_at"`
	// Pair is the extracted series.
	Pair *AlignedSeriesPair `json:"series"`
	// Records holds one comparison per snapshot date.
	Records []ComparisonRecord `json:"records"`
	// Summary aggregates Records.
	Summary Summary `json:"summary"`
}
