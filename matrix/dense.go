package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values. Rows() is r,
// Cols() is c, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r x c Dense matrix initialized to zero.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col), or an error if out of range.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// ReadAt is At without the error return, for hot DP loops that have
// already established the index is in range via the loop bounds
// themselves. Out-of-range reads return 0, not a panic.
//
// Complexity: O(1).
func (m *Dense) ReadAt(row, col int) float64 {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0
	}

	return m.data[idx]
}

// Set assigns v at (row, col), or returns an error if out of range.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}

	m.data[idx] = v

	return nil
}

// FillWith assigns v to every cell.
//
// Complexity: O(r*c).
func (m *Dense) FillWith(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep, independent copy of m.
//
// The teacher's original C++ source (Array2D) had a buggy copy
// constructor that called other.get_columns without parentheses; this
// Clone is a correct, explicit deep copy with no such defect.
//
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}
