package models

// snapshotAxis is the fixed, chronologically ascending set of snapshot dates.
var snapshotAxis = [...]string{
	"03-Nov", "10-Nov", "17-Nov", "24-Nov",
	"01-Dec", "08-Dec", "15-Dec", "22-Dec", "29-Dec",
}

// SnapshotCount is the number of snapshot dates on the axis.
const SnapshotCount = len(snapshotAxis)

// DefaultAxis returns a copy of the snapshot date labels in ascending order.
func DefaultAxis() []string {
	axis := make([]string, len(snapshotAxis))
	copy(axis, snapshotAxis[:])
	return axis
}
