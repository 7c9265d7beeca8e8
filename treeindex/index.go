package treeindex

// Index is the bundle of parallel arrays every TED engine shares,
// built once per tree by IndexTree. Unless stated otherwise, every
// slice has length Size[0] == the tree's node count, addressed by
// postorder id (0 at the first leaf reached in a left-to-right
// postorder walk).
type Index struct {
	// Size[i] is the subtree size rooted at postorder id i.
	Size []int
	// Parent[i] is the parent's postorder id, or -1 for the root.
	Parent []int
	// Children[i] holds i's child postorder ids, left to right.
	Children [][]int
	// LabelID[i] is the interned label id of node i.
	LabelID []int32
	// Depth[i] is the depth of node i from the root (root depth 0).
	Depth []int
	// LLD[i] is the postorder id of node i's leftmost leaf descendant.
	LLD []int
	// LCH[i] is the postorder id of the leaf on the left spine below
	// node i, or -1 if i is a leaf (nothing lies "below" a leaf).
	LCH []int
	// SubtreeMaxDepth[i] is the deepest absolute depth within i's subtree.
	SubtreeMaxDepth []int
	// KRAncestor[i] is the nearest keyroot ancestor of i (i itself if
	// i is a keyroot).
	KRAncestor []int
	// NodeType[i] is the JSON structural role of node i.
	NodeType []NodeType
	// IsKeyRoot[i] reports whether i is a keyroot: the root, or not
	// the leftmost child of its parent.
	IsKeyRoot []bool
	// KeyRoots is the ascending-postorder list of keyroot ids.
	KeyRoots []int

	// DepthIndex[d] holds, in ascending order, the postorder ids at depth d.
	DepthIndex [][]int
	// LabelIndex[labelID] holds, in ascending order, the postorder ids
	// carrying that label id.
	LabelIndex map[int32][]int

	// PreL_to_PostL[p] is the postorder id of the node at preorder rank p.
	PreL_to_PostL []int
	// PostL_to_PreL[i] is the preorder rank of the node at postorder id i.
	PostL_to_PreL []int
	// PreL_to_PreR[p] is the right-to-left preorder rank of the node at
	// (left-to-right) preorder rank p.
	PreL_to_PreR []int
	// PreR_to_PreL[p] is the inverse of PreL_to_PreR.
	PreR_to_PreL []int
	// PreL_to_PostR[p] is the right-to-left postorder rank of the node
	// at (left-to-right) preorder rank p.
	PreL_to_PostR []int
	// PostR_to_PreL[p] is the inverse of PreL_to_PostR.
	PostR_to_PreL []int

	// TypeLeft[p] reports whether the node at preorder rank p is the
	// leftmost child of its parent (true for the root).
	TypeLeft []bool
	// TypeRight[p] reports whether the node at preorder rank p is the
	// rightmost child of its parent (true for the root).
	TypeRight []bool

	// SubtreeDelCost[i] is the total cost of deleting every node in
	// the subtree rooted at postorder id i, under the cost model
	// IndexTree was called with.
	SubtreeDelCost []float64
	// SubtreeInsCost[i] is the total cost of inserting every node in
	// the subtree rooted at postorder id i.
	SubtreeInsCost []float64

	// CostLeft[i] estimates the dynamic-programming workload of
	// decomposing subtree i along its left spine (SPF-L): the cost of
	// its leftmost child's own left decomposition plus one forest-table
	// row/column of width Size[i]-Size[firstChild]. 0 for a leaf.
	CostLeft []int
	// CostRight[i] is CostLeft's mirror image along the right spine
	// (SPF-R), built from the rightmost child.
	CostRight []int
	// CostAll[i] estimates the workload of decomposing subtree i
	// through its heaviest child (SPF-A, the all-paths/heavy-path
	// case): CostAll of the child with the largest Size plus one table
	// slab of width Size[i] minus that child's Size.
	//
	// Each step adds Size[i] minus the chosen child's Size to that
	// child's value, starting from 0 at a leaf, so CostLeft[i],
	// CostRight[i] and CostAll[i] all equal Size[i]-1.
	CostAll []int

	// OriginalTree is the *Tree this Index was built from, retained so
	// callers can reach it (e.g. to call Mirror) without keeping their
	// own reference. apted.Engine.TED rejects an Index whose
	// OriginalTree is nil but otherwise does not read it.
	OriginalTree *Tree
}

// NumNodes returns the number of nodes indexed, or 0 for a zero Index.
func (idx *Index) NumNodes() int {
	return len(idx.Size)
}

// Root returns the postorder id of the tree's root: always the last
// postorder id, NumNodes()-1, for a non-empty index.
func (idx *Index) Root() int {
	return len(idx.Size) - 1
}

// IsLeaf reports whether postorder id i has no children.
func (idx *Index) IsLeaf(i int) bool {
	return len(idx.Children[i]) == 0
}

// newIndex allocates an Index sized for n nodes with all slices ready
// to be filled by IndexTree.
func newIndex(n int) *Index {
	return &Index{
		Size:            make([]int, n),
		Parent:          make([]int, n),
		Children:        make([][]int, n),
		LabelID:         make([]int32, n),
		Depth:           make([]int, n),
		LLD:             make([]int, n),
		LCH:             make([]int, n),
		SubtreeMaxDepth: make([]int, n),
		KRAncestor:      make([]int, n),
		NodeType:        make([]NodeType, n),
		IsKeyRoot:       make([]bool, n),

		LabelIndex: make(map[int32][]int),

		PreL_to_PostL: make([]int, n),
		PostL_to_PreL: make([]int, n),
		PreL_to_PreR:  make([]int, n),
		PreR_to_PreL:  make([]int, n),
		PreL_to_PostR: make([]int, n),
		PostR_to_PreL: make([]int, n),

		TypeLeft:  make([]bool, n),
		TypeRight: make([]bool, n),

		SubtreeDelCost: make([]float64, n),
		SubtreeInsCost: make([]float64, n),

		CostLeft:  make([]int, n),
		CostRight: make([]int, n),
		CostAll:   make([]int, n),
	}
}
