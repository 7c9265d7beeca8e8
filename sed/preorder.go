package sed

import "github.com/katalvlaran/tedkit/treeindex"

// PreorderLabels extracts the left-to-right preorder label-id sequence
// of idx, the input Distance expects when computing a tree edit
// distance lower bound.
func PreorderLabels(idx *treeindex.Index) []int32 {
	n := idx.NumNodes()
	out := make([]int32, n)
	for p := 0; p < n; p++ {
		postID := idx.PreL_to_PostL[p]
		out[p] = idx.LabelID[postID]
	}

	return out
}
