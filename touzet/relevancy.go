package touzet

import "github.com/katalvlaran/tedkit/treeindex"

// lowerBound is the shared term of k_relevant and e: the minimum
// number of structural changes (|T1|, |T2| node deletions/insertions)
// any valid mapping containing the pair (x, y) must pay outside their
// subtrees and for their subtree-size mismatch, grounded on
// touzet_impl.h's k_relevant/e formulas.
func lowerBound(idx1, idx2 *treeindex.Index, x, y int, includeSizeDiff bool) int {
	n1, n2 := idx1.NumNodes(), idx2.NumNodes()
	xSize, ySize := idx1.Size[x], idx2.Size[y]

	outside := absInt((n1 - (x + 1)) - (n2 - (y + 1)))
	fringe := absInt((x+1-xSize) - (y+1-ySize))

	if !includeSizeDiff {
		return outside + fringe
	}

	return outside + absInt(xSize-ySize) + fringe
}

// kRelevant reports whether the subtree pair (x, y) can participate in
// a mapping costing at most k structural changes.
func kRelevant(idx1, idx2 *treeindex.Index, x, y, k int) bool {
	return lowerBound(idx1, idx2, x, y, true) <= k
}

// errorBudget returns e(x, y): the remaining budget of deletions and
// insertions available to align subtrees x and y after accounting for
// the unavoidable cost imposed by everything around them.
func errorBudget(idx1, idx2 *treeindex.Index, x, y, k int) int {
	return k - lowerBound(idx1, idx2, x, y, false)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
