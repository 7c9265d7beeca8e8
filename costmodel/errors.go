package costmodel

import "errors"

// Sentinel errors for costmodel construction.
var (
	// ErrNegativeCost indicates a caller supplied a negative default or
	// per-label override cost. Costs must be in [0, +Inf].
	ErrNegativeCost = errors.New("costmodel: cost must be non-negative")
)
