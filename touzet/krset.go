package touzet

import (
	"math"

	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/matrix"
	"github.com/katalvlaran/tedkit/treeindex"
)

// TEDkKRSet restricts TEDk to keyroot pairs: for every (x, y) in
// idx1.KeyRoots x idx2.KeyRoots, it descends the leftmost-child chains
// below x and y to find the single deepest k-relevant pair (top_x,
// top_y) reachable from (x, y), and runs tree_dist only there — every
// other keyroot-pair combination is skipped outright instead of being
// probed individually. Grounded on
// touzet_kr_loop_tree_index_impl.h's ted_k/leftmost-child walk, with
// postl_to_lch_ replaced by treeindex.Index.Children[i][0] (the
// leftmost child is already the first entry of the postorder-ordered
// Children slice, so no separate array is needed).
func (e *Engine) TEDkKRSet(idx1, idx2 *treeindex.Index, cm costmodel.Model, k int) (Result, error) {
	if idx1 == nil || idx2 == nil {
		return Result{}, ErrNilIndex
	}
	if cm == nil {
		return Result{}, ErrNilCostModel
	}
	if idx1.NumNodes() == 0 || idx2.NumNodes() == 0 {
		return Result{}, ErrEmptyTree
	}
	if k < 0 {
		return Result{}, ErrNegativeK
	}

	n1, n2 := idx1.NumNodes(), idx2.NumNodes()
	if absInt(n1-n2) > k {
		return Result{Distance: math.Inf(1)}, nil
	}

	td, err := matrix.NewDense(n1, n2)
	if err != nil {
		return Result{}, err
	}
	td.FillWith(math.Inf(1))

	var subprobs int64
	for _, x := range idx1.KeyRoots {
		for _, y := range idx2.KeyRoots {
			topX, topY := topRelevantPair(idx1, idx2, x, y, k)
			if topX == -1 || topY == -1 {
				continue
			}

			budget := errorBudget(idx1, idx2, topX, topY, k)
			dist, err := treeDist(idx1, idx2, cm, td, topX, topY, budget, &subprobs)
			if err != nil {
				return Result{}, err
			}
			if err := td.Set(topX, topY, dist); err != nil {
				return Result{}, err
			}
		}
	}

	return Result{Distance: td.ReadAt(n1-1, n2-1), Subprobs: subprobs}, nil
}

// topRelevantPair walks x's leftmost-child chain and, for each node on
// it, scans y's leftmost-child chain for the first (deepest so far)
// k-relevant partner strictly below the last one accepted, returning
// the last pair found or (-1, -1) if none is k-relevant.
func topRelevantPair(idx1, idx2 *treeindex.Index, x, y, k int) (int, int) {
	topX, topY := -1, -1
	for xl := x; xl >= 0; xl = leftmostChild(idx1, xl) {
		for yl := y; yl > topY; yl = leftmostChild(idx2, yl) {
			if kRelevant(idx1, idx2, xl, yl, k) {
				if topX == -1 {
					topX = xl
				}
				topY = yl
				break
			}
		}
	}

	return topX, topY
}

// leftmostChild returns i's leftmost child's postorder id, or -1 if i
// is a leaf.
func leftmostChild(idx *treeindex.Index, i int) int {
	if i < 0 || len(idx.Children[i]) == 0 {
		return -1
	}

	return idx.Children[i][0]
}
