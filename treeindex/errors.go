package treeindex

import "errors"

// Sentinel errors for treeindex construction.
var (
	// ErrNilTree indicates a nil *Tree was passed where a tree is required.
	ErrNilTree = errors.New("treeindex: tree is nil")

	// ErrNilDictionary indicates a nil *label.Dictionary was passed to IndexTree.
	ErrNilDictionary = errors.New("treeindex: label dictionary is nil")

	// ErrNilCostModel indicates a nil costmodel.Model was passed to IndexTree.
	ErrNilCostModel = errors.New("treeindex: cost model is nil")

	// ErrMalformedKeyNode indicates a JSON "key" node (TypeKey) does not
	// have exactly one child, violating the JEDI convention that a key
	// always wraps a single value or array.
	ErrMalformedKeyNode = errors.New("treeindex: key node must have exactly one child")

	// ErrNegativeCost indicates the cost model returned a negative value
	// during indexing; engines assume non-negative costs (spec section
	// on cost model contract) and treat negative costs as caller error
	// rather than silently propagating undefined behaviour.
	ErrNegativeCost = errors.New("treeindex: cost model returned a negative cost")
)
