package munkres

import "errors"

// ErrNilCost indicates a nil *matrix.Dense cost matrix was supplied.
var ErrNilCost = errors.New("munkres: nil cost matrix")

// ErrNotSquare indicates the cost matrix is not square; Solve requires
// a square matrix (callers pad rectangular assignment problems with
// deletion/insertion slack columns/rows before calling Solve).
var ErrNotSquare = errors.New("munkres: cost matrix must be square")
