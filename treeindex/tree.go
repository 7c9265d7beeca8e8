package treeindex

import "github.com/katalvlaran/tedkit/costmodel"

// NodeType tags a node with its JSON structural role. TypePlain is the
// zero value, so ordinary (non-JSON) trees need not set it.
type NodeType = costmodel.NodeType

// JSON node type constants, re-exported from costmodel so callers
// building trees need not import costmodel directly.
const (
	TypePlain = costmodel.TypePlain
	TypeArray = costmodel.TypeArray
	TypeKey   = costmodel.TypeKey
	TypeValue = costmodel.TypeValue
)

// Tree is an immutable, rooted, ordered, labelled tree: the input type
// every engine in tedkit ultimately consumes (after indexing). A Tree
// value owns its Children slice; callers must not mutate it once
// passed to IndexTree.
type Tree struct {
	// Label is the node's raw label; interned into an id by
	// IndexTree via the supplied label.Dictionary.
	Label string

	// Type is the JSON structural role of this node; TypePlain for
	// ordinary (non-JSON) trees.
	Type NodeType

	// Children holds this node's ordered children, left to right.
	// A leaf has a nil or empty slice.
	Children []*Tree
}

// NewLeaf returns a plain leaf node with the given label.
func NewLeaf(label string) *Tree {
	return &Tree{Label: label}
}

// NewNode returns a plain node with the given label and children.
func NewNode(label string, children ...*Tree) *Tree {
	return &Tree{Label: label, Children: children}
}

// Size returns the number of nodes in the subtree rooted at t,
// computed directly from the Children graph (O(n), no index
// required, explicit stack rather than recursion) — useful before
// IndexTree has run.
func (t *Tree) Size() int {
	n := 0
	stack := []*Tree{t}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == nil {
			continue
		}
		n++
		stack = append(stack, top.Children...)
	}

	return n
}

// Mirror returns a new tree with every node's Children slice reversed,
// recursively. Mirroring both operands of a TED computation leaves the
// distance unchanged (every order constraint between two nodes is
// negated in both trees simultaneously, so a mapping is order-valid in
// the originals iff its mirror image is order-valid in the mirrored
// trees). apted's SPF-R/SPF-A rely on the same symmetry, but mirror
// the subtree pair from its Index (mirrorSubtree) rather than calling
// Mirror.
func (t *Tree) Mirror() *Tree {
	if t == nil {
		return nil
	}

	n := len(t.Children)
	mirrored := make([]*Tree, n)
	for i, c := range t.Children {
		mirrored[n-1-i] = c.Mirror()
	}

	return &Tree{Label: t.Label, Type: t.Type, Children: mirrored}
}
