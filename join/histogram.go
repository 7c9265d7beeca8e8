package join

import "github.com/katalvlaran/tedkit/treeindex"

// Histogram bundles the three per-tree bucket histograms a single
// postorder traversal can produce together, plus the tree's total
// node count (used by the prefix-filter bound). Grounded on
// join/histogram/histogram_converter_impl.h's create_histrograms,
// which fills all three maps in one recursive pass.
type Histogram struct {
	Size         int
	Label        map[int32]int
	LeafDistance map[int]int
	Degree       map[int]int
}

// LabelHistogram maps each label id present in idx to the number of
// nodes carrying it.
func LabelHistogram(idx *treeindex.Index) map[int32]int {
	h := make(map[int32]int)
	for i := 0; i < idx.NumNodes(); i++ {
		h[idx.LabelID[i]]++
	}

	return h
}

// DegreeHistogram maps each out-degree present in idx to the number
// of nodes with that many children.
func DegreeHistogram(idx *treeindex.Index) map[int]int {
	h := make(map[int]int)
	for i := 0; i < idx.NumNodes(); i++ {
		h[len(idx.Children[i])]++
	}

	return h
}

// LeafDistanceHistogram maps each node's leaf distance to the number
// of nodes at that distance. A node's leaf distance is the height of
// its subtree: 1 for a leaf, or 1 + the greatest leaf distance among
// its children otherwise. Grounded on
// join/leaf_dist_histogram/leaf_dist_histogram_converter_impl.h's
// create_leaf_dist_histrogram (its "minimum leaf distance" comment
// describes the formula backwards — the recurrence it implements
// takes the max over children, i.e. the farthest leaf, not the
// nearest — this follows the code, not the comment).
func LeafDistanceHistogram(idx *treeindex.Index) map[int]int {
	n := idx.NumNodes()
	dist := make([]int, n)
	h := make(map[int]int)
	for i := 0; i < n; i++ {
		maxChild := 0
		for _, c := range idx.Children[i] {
			if dist[c] > maxChild {
				maxChild = dist[c]
			}
		}
		dist[i] = maxChild + 1
		h[dist[i]]++
	}

	return h
}

// Combined computes all three histograms in a single postorder pass
// over idx, matching create_histrograms's all-at-once traversal.
func Combined(idx *treeindex.Index) Histogram {
	n := idx.NumNodes()
	leafDist := make([]int, n)
	h := Histogram{
		Size:         n,
		Label:        make(map[int32]int, n),
		LeafDistance: make(map[int]int),
		Degree:       make(map[int]int),
	}

	for i := 0; i < n; i++ {
		maxChild := 0
		for _, c := range idx.Children[i] {
			if leafDist[c] > maxChild {
				maxChild = leafDist[c]
			}
		}
		leafDist[i] = maxChild + 1

		h.Label[idx.LabelID[i]]++
		h.Degree[len(idx.Children[i])]++
		h.LeafDistance[leafDist[i]]++
	}

	return h
}
