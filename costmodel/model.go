package costmodel

// NodeType tags a tree node for JSON-aware cost models and JEDI
// engines: 0 plain, 1 array, 2 key, 3 value. Defined here (rather than
// in treeindex) so costmodel.PerType can depend on it without a back
// import of treeindex; treeindex.NodeType is a type alias of this type.
type NodeType uint8

const (
	// TypePlain is a generic tree node carrying no JSON structural role.
	TypePlain NodeType = iota
	// TypeArray is a JSON array node; its children are ordered.
	TypeArray
	// TypeKey is a JSON object key node; it has exactly one child.
	TypeKey
	// TypeValue is a JSON scalar value node (objects use TypePlain).
	TypeValue
)

// Model is the cost-model capability every TED engine depends on.
// Implementations must be pure (no side effects) and total: Del/Ins/Ren
// must return a finite non-negative value, or +Inf to forbid an
// operation, for every label id in range. Ren(l, l) must equal 0 for
// every label id l.
type Model interface {
	// Del returns the cost of deleting a node labelled labelID.
	Del(labelID int32) float64
	// Ins returns the cost of inserting a node labelled labelID.
	Ins(labelID int32) float64
	// Ren returns the cost of relabelling a node from a to b.
	Ren(a, b int32) float64
}
