package join

import (
	"sort"

	"github.com/katalvlaran/tedkit/treeindex"
)

// LabelSetElement is one node's contribution to a tree's T-Join label
// set: its label id, its postorder id within the tree, the node's
// ancestor and descendant counts, and a weight used to sort the set
// by global token-frequency order. Grounded on
// lookup/index/label_set_element.h's LabelSetElement.
type LabelSetElement struct {
	LabelID     int32
	PostorderID int
	Weight      int
	Ancestors   int
	Descendants int
}

// ComputeLabelWeights assigns every label id occurring across indexes
// a weight equal to its ascending document-frequency rank (rarest
// label first), the global token order the T-Join prefix filter sorts
// label sets by so the rarest, most discriminating labels are
// compared first.
func ComputeLabelWeights(indexes []*treeindex.Index) map[int32]int {
	freq := make(map[int32]int)
	for _, idx := range indexes {
		if idx == nil {
			continue
		}
		for i := 0; i < idx.NumNodes(); i++ {
			freq[idx.LabelID[i]]++
		}
	}

	labels := make([]int32, 0, len(freq))
	for l := range freq {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(a, b int) bool {
		if freq[labels[a]] != freq[labels[b]] {
			return freq[labels[a]] < freq[labels[b]]
		}
		return labels[a] < labels[b]
	})

	weights := make(map[int32]int, len(labels))
	for rank, l := range labels {
		weights[l] = rank
	}

	return weights
}

// TJoinLabelSet builds idx's T-Join label set: one LabelSetElement per
// node, with Ancestors read off the node's depth and Descendants off
// its subtree size, sorted ascending by weights (the global
// token-frequency order ComputeLabelWeights produces across the whole
// collection).
func TJoinLabelSet(idx *treeindex.Index, weights map[int32]int) []LabelSetElement {
	n := idx.NumNodes()
	out := make([]LabelSetElement, n)
	for i := 0; i < n; i++ {
		out[i] = LabelSetElement{
			LabelID:     idx.LabelID[i],
			PostorderID: i,
			Weight:      weights[idx.LabelID[i]],
			Ancestors:   idx.Depth[i],
			Descendants: idx.Size[i] - 1,
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Weight < out[b].Weight })

	return out
}
