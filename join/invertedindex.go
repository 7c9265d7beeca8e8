package join

import "sort"

// PostingEntry is one (tree id, bucket count) posting in an
// InvertedIndex bucket.
type PostingEntry struct {
	TreeID int
	Count  int
}

// Query is a histogram being looked up against an InvertedIndex: its
// total tree size (for the prefix-filter bound) and its per-bucket
// counts.
type Query struct {
	Size      int
	Histogram map[int32]int
}

// InvertedIndex maps each bucket (a label id, leaf-distance, or
// degree value) to the postings of every indexed tree that has it,
// grounded on join/label_histogram/lh_candidate_index_impl.h's
// il_index, adapted from its single growing self-join collection into
// a build-once/query-many index over any histogram collection — the
// same "bucket maps to a small slice" shape as core.Graph's
// adjacency-list-of-maps.
type InvertedIndex struct {
	buckets map[int32][]PostingEntry
	sizes   []int
}

// NewInvertedIndex returns an empty, ready-to-Build InvertedIndex.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{buckets: make(map[int32][]PostingEntry)}
}

// Build indexes an entire histogram collection in one pass. histograms[i]
// and sizes[i] describe the tree assigned id i.
func (ix *InvertedIndex) Build(histograms []map[int32]int, sizes []int) {
	ix.buckets = make(map[int32][]PostingEntry)
	ix.sizes = append([]int(nil), sizes...)

	for treeID, h := range histograms {
		for bucket, count := range h {
			ix.buckets[bucket] = append(ix.buckets[bucket], PostingEntry{TreeID: treeID, Count: count})
		}
	}
}

// PrefixFilterBound computes (size1 + size2 - 2*intersection) / 2, the
// lower bound on TED a shared-bucket count intersection implies
// (spec.md section 4.8): a pair can only be a true match if this
// value does not exceed the join threshold.
func PrefixFilterBound(size1, size2, intersection int) float64 {
	return float64(size1+size2-2*intersection) / 2
}

// Candidates returns, in ascending tree id order, every indexed tree
// whose prefix-filter bound against q does not exceed threshold.
// Grounded on lh_candidate_index_impl.h's lookup: bucket postings
// accumulate an intersection count per candidate tree, then every
// tree touched (plus, since a tree sharing nothing with q can still
// pass the bound when both are small, every tree the zero-intersection
// bound alone already admits) is checked against the bound once.
func (ix *InvertedIndex) Candidates(q Query, threshold float64) []int {
	intersection := make(map[int]int)
	for bucket, qCount := range q.Histogram {
		for _, e := range ix.buckets[bucket] {
			c := min(qCount, e.Count)
			if c > 0 {
				intersection[e.TreeID] += c
			}
		}
	}

	var out []int
	for treeID, size := range ix.sizes {
		inter := intersection[treeID]
		if PrefixFilterBound(q.Size, size, inter) <= threshold {
			out = append(out, treeID)
		}
	}
	sort.Ints(out)

	return out
}
