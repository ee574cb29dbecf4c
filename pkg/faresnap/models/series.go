package models

// AlignedSeriesPair holds TY and LY values positionally aligned to a snapshot axis.
type AlignedSeriesPair struct {
	// Family is the metric family the values were taken from.
	Family MetricFamily `json:"family"`
	// Axis holds the snapshot date labels in ascending order.
	Axis []string `json:"axis"`
	// TY holds this year's values.
	TY []float64 `json:"ty"`
	// LY holds last year's values.
	LY []float64 `json:"ly"`
	// Reference is the last-year actual for the row (nil if not configured or blank).
	Reference *float64 `json:"reference,omitempty"`
}

// Len returns the number of snapshot dates.
func (p *AlignedSeriesPair) Len() int {
	return len(p.Axis)
}
