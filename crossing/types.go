// Package crossing defines the mode selector and the witness coordinate
// used by the feasibility oracle.
package crossing

// Mode selects the shape family to maximize.
type Mode int

const (
	// ModeLongestLine maximizes the longest contiguous passable run found
	// in any single row or column.
	ModeLongestLine Mode = iota
	// ModeCrossing maximizes k such that a distinct pair of horizontal and
	// vertical runs of length ≥ k exists.
	ModeCrossing
)

// String returns a short human-readable mode name.
func (m Mode) String() string {
	if m == ModeLongestLine {
		return "longest-line"
	}

	return "crossing"
}

// witness tracks the lexicographically smallest (line, pos) coordinate at
// which a qualifying run has been observed during one sweep. The zero
// value is unset and compares greater than every coordinate.
type witness struct {
	line, pos int
	set       bool
}

// observe lowers the witness to (line, pos) if that coordinate is
// lexicographically smaller than the current one.
func (w *witness) observe(line, pos int) {
	if !w.set || line < w.line || (line == w.line && pos < w.pos) {
		w.line, w.pos, w.set = line, pos, true
	}
}

// certifies reports whether the witness lies at or before (line, pos-k):
// the recorded run and the one ending at (line, pos) are then far enough
// apart to certify feasibility on their own.
func (w *witness) certifies(line, pos, k int) bool {
	if !w.set {
		return false
	}

	return w.line < line || (w.line == line && w.pos <= pos-k)
}
