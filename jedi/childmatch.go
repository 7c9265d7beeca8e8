package jedi

import (
	"math"
	"sort"

	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/matrix"
	"github.com/katalvlaran/tedkit/munkres"
	"github.com/katalvlaran/tedkit/treeindex"
)

// unmappedChildrenLowerBound bounds the cost any mapping between i's
// children and j's children must pay for the children that cannot be
// matched 1-1 (because the two nodes have a different number of
// children), plus the generic subtree-size-difference bound, grounded
// on quickjedi_index_impl.h's "ed_lb" computation. The original bounds
// the extra-children cost with raw subtree sizes (a valid bound only
// under a unit cost model); this port sums the actual per-child
// SubtreeDelCost/SubtreeInsCost instead. The size-difference term is
// still a raw node count, so the combined bound holds only when every
// delete and insert costs at least 1 (as under costmodel.Unit).
func unmappedChildrenLowerBound(idx1, idx2 *treeindex.Index, i, j int) float64 {
	c1 := idx1.Children[i]
	c2 := idx2.Children[j]

	var lb float64
	if len(c1) > len(c2) {
		lb = smallestKCosts(idx1.SubtreeDelCost, c1, len(c1)-len(c2))
	} else if len(c2) > len(c1) {
		lb = smallestKCosts(idx2.SubtreeInsCost, c2, len(c2)-len(c1))
	}

	sizeDiff := math.Abs(float64(idx1.Size[i] - idx2.Size[j]))
	if sizeDiff > lb {
		lb = sizeDiff
	}

	return lb
}

// smallestKCosts returns the sum of the k smallest costs[id] values
// over id in ids.
func smallestKCosts(costs []float64, ids []int, k int) float64 {
	vals := make([]float64, len(ids))
	for i, id := range ids {
		vals[i] = costs[id]
	}
	sort.Float64s(vals)

	var sum float64
	for i := 0; i < k && i < len(vals); i++ {
		sum += vals[i]
	}

	return sum
}

// hungarianChildrenMatch solves the unordered (object-style) matching
// between i's children and j's children: a square cost matrix padded
// with delete-only and insert-only regions so any child can map to
// "nothing" at the cost of deleting or inserting its whole subtree,
// grounded on quickjedi_index_impl.h's hungarian_cm construction.
func hungarianChildrenMatch(idx1, idx2 *treeindex.Index, dt *matrix.Dense, i, j int) (float64, error) {
	c1 := idx1.Children[i]
	c2 := idx2.Children[j]
	n := len(c1) + len(c2)
	if n == 0 {
		return 0, nil
	}

	cost, err := matrix.NewDense(n, n)
	if err != nil {
		return 0, err
	}

	for s := 0; s < n; s++ {
		for t := 0; t < n; t++ {
			var v float64
			switch {
			case s < len(c1) && t < len(c2):
				v = dt.ReadAt(c1[s]+1, c2[t]+1)
			case s < len(c1):
				v = idx1.SubtreeDelCost[c1[s]]
			case t < len(c2):
				v = idx2.SubtreeInsCost[c2[t]]
			default:
				v = 0
			}
			if err := cost.Set(s, t, v); err != nil {
				return 0, err
			}
		}
	}

	_, total, err := munkres.Solve(cost)

	return total, err
}

// arrayChildEditDistance solves the ordered (array-style) matching
// between i's children and j's children via a sequence edit distance
// over dt(child1, child2) substitution costs, optionally restricted to
// a diagonal band of half-width bound (bound < 0 means unbounded),
// grounded on quickjedi_index_impl.h's "e_" matrix.
func arrayChildEditDistance(idx1, idx2 *treeindex.Index, cm costmodel.Model, dt *matrix.Dense, i, j int, bound int) float64 {
	c1 := idx1.Children[i]
	c2 := idx2.Children[j]
	n1, n2 := len(c1), len(c2)

	e, err := matrix.NewDense(n1+1, n2+1)
	if err != nil {
		return math.Inf(1)
	}
	if bound >= 0 {
		e.FillWith(math.Inf(1))
	}

	_ = e.Set(0, 0, 0)
	for s := 1; s <= n1; s++ {
		_ = e.Set(s, 0, e.ReadAt(s-1, 0)+dt.ReadAt(c1[s-1]+1, 0))
	}
	for t := 1; t <= n2; t++ {
		_ = e.Set(0, t, e.ReadAt(0, t-1)+dt.ReadAt(0, c2[t-1]+1))
	}

	for s := 1; s <= n1; s++ {
		lo, hi := 1, n2
		if bound >= 0 {
			lo = max(1, s-bound)
			hi = min(n2, s+bound)
		}
		for t := lo; t <= hi; t++ {
			ins := e.ReadAt(s, t-1) + dt.ReadAt(0, c2[t-1]+1)
			del := e.ReadAt(s-1, t) + dt.ReadAt(c1[s-1]+1, 0)
			ren := e.ReadAt(s-1, t-1) + dt.ReadAt(c1[s-1]+1, c2[t-1]+1)
			_ = e.Set(s, t, min3(ins, del, ren))
		}
	}

	return e.ReadAt(n1, n2)
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}

	return m
}
