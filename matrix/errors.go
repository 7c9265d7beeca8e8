// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Algorithms must return these sentinels and
// tests must check them via errors.Is.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions
	// are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index is outside
	// valid range. Public indexers (At/Set) return this, never panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrBadBandwidth indicates a Band was constructed with a negative
	// half-bandwidth k.
	ErrBadBandwidth = errors.New("matrix: band half-width must be >= 0")
)
