package jedi

import "github.com/katalvlaran/tedkit/treeindex"

// NewObject returns a JSON object node: its children are matched as an
// unordered multiset by Wang/QuickJEDI. Object nodes use
// treeindex.TypePlain, the same structural role a generic (non-JSON)
// tree node carries, since both receive identical unordered-matching
// treatment in the DP.
func NewObject(label string, children ...*treeindex.Tree) *treeindex.Tree {
	return &treeindex.Tree{Label: label, Type: treeindex.TypePlain, Children: children}
}

// NewArray returns a JSON array node: its children stay ordered and
// are compared via a sequence edit distance rather than bipartite
// matching.
func NewArray(label string, children ...*treeindex.Tree) *treeindex.Tree {
	return &treeindex.Tree{Label: label, Type: treeindex.TypeArray, Children: children}
}

// NewKey returns a JSON object key node. A key has exactly one child
// (its value); treeindex.IndexTree rejects a key node with any other
// child count.
func NewKey(label string, child *treeindex.Tree) *treeindex.Tree {
	return &treeindex.Tree{Label: label, Type: treeindex.TypeKey, Children: []*treeindex.Tree{child}}
}

// NewValue returns a JSON scalar value node (a leaf).
func NewValue(label string) *treeindex.Tree {
	return &treeindex.Tree{Label: label, Type: treeindex.TypeValue}
}
