// Package runscan defines the Axis selector for line sweeps.
package runscan

// Axis selects the direction of a line sweep: along a row (Rows) or along
// a column (Columns).
type Axis int

const (
	// Rows scans one row left to right; the line index is a row index.
	Rows Axis = iota
	// Columns scans one column top to bottom; the line index is a column index.
	Columns
)

// String returns a short human-readable axis name.
func (a Axis) String() string {
	if a == Columns {
		return "columns"
	}

	return "rows"
}
