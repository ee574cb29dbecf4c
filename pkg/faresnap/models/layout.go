package models

// ColumnLayout maps each metric family to the dataset columns it occupies.
//
// A block lists 0-based column indices from the most recent snapshot date to the
// oldest, alternating TY and LY at each date.
type ColumnLayout struct {
	// Blocks holds the column indices per family.
	Blocks map[MetricFamily][]int
	// References holds the optional last-year actual column per family.
	References map[MetricFamily]int
	// Header is the header row the indices were resolved against. Used for messages.
	Header []string
}

// HeaderAt returns the header text of column i, or "" if unknown.
func (l ColumnLayout) HeaderAt(i int) string {
	if i < 0 || i >= len(l.Header) {
		return ""
	}
	return l.Header[i]
}
