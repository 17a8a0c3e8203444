package diffarray

// Table is a rows×cols integer matrix held in per-row difference form
// until Materialize converts it to cover counts. The zero Table is not
// usable; construct with New.
type Table struct {
	rows, cols int
	v          [][]int
}

// New returns an all-zero Table with the given dimensions. To register
// intervals over columns [0, n) reserve one extra column (cols = n+1) so
// that a range ending at the right edge still has a slot for its
// decrement.
// Complexity: O(rows·cols).
func New(rows, cols int) *Table {
	v := make([][]int, rows)
	for i := range v {
		v[i] = make([]int, cols)
	}

	return &Table{rows: rows, cols: cols, v: v}
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// RangeAdd registers the half-open column interval [lo, hi) on row,
// incrementing the difference form in O(1). Requires 0 ≤ lo ≤ hi < cols.
// Must not be called after Materialize.
func (t *Table) RangeAdd(row, lo, hi int) {
	t.v[row][lo]++
	t.v[row][hi]--
}

// Materialize prefix-sums every row in place. Afterwards At(row, col)
// equals the number of RangeAdd intervals on row that cover col.
// Complexity: O(rows·cols).
func (t *Table) Materialize() {
	for _, row := range t.v {
		sum := 0
		for j, d := range row {
			sum += d
			row[j] = sum
		}
	}
}

// At returns the cover count of (row, col). Valid only after Materialize.
// Complexity: O(1).
func (t *Table) At(row, col int) int {
	return t.v[row][col]
}

// Window walks one column of a materialized Table from the top row down,
// maintaining the sum of cover counts over a trailing window of width
// rows. Obtain one via Table.Window and advance it with Next.
type Window struct {
	t     *Table
	col   int
	width int
	row   int
	sum   int
}

// Window returns a trailing-window walker over col with the given width.
// width must be ≥ 1.
func (t *Table) Window(col, width int) *Window {
	return &Window{t: t, col: col, width: width}
}

// Next advances the walker one row down and returns the sum of cover
// counts of the last width rows (fewer near the top edge). The r-th call
// returns the windowed sum ending at row r-1.
// Complexity: O(1) per call.
func (w *Window) Next() int {
	w.sum += w.t.At(w.row, w.col)
	if w.row >= w.width {
		w.sum -= w.t.At(w.row-w.width, w.col)
	}
	w.row++

	return w.sum
}
