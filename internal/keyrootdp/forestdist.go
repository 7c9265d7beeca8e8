package keyrootdp

import (
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/matrix"
	"github.com/katalvlaran/tedkit/treeindex"
)

// ForestDistance fills td with the tree-distance values reachable from
// the keyroot pair (x, y) — spec.md section 4.3's forest_distance — and
// returns td's value at (x, y), which equals the tree edit distance
// between the subtrees rooted at x and y.
//
// td must be a shared (idx1.NumNodes() x idx2.NumNodes()) matrix that
// persists across calls for different keyroot pairs of the same
// (idx1, idx2): the algorithm's correctness depends on td[i][j] having
// already been populated by a previously processed, smaller keyroot
// pair whenever the recurrence's "otherwise" branch reads it. Callers
// must therefore iterate keyroot pairs in ascending postorder of both
// x and y (treeindex.Index.KeyRoots is already ascending).
//
// counter, if non-nil, is incremented once per forest-distance cell
// evaluated, for engines that report a subproblem count.
func ForestDistance(idx1, idx2 *treeindex.Index, cm costmodel.Model, td *matrix.Dense, counter *int64, x, y int) (float64, error) {
	lx, ly := idx1.LLD[x], idx2.LLD[y]
	rows, cols := x-lx+2, y-ly+2

	fd, err := matrix.NewDense(rows, cols)
	if err != nil {
		return 0, err
	}

	// fd row/col 0 represent the empty forest; row r (1-indexed) is
	// the forest ending at postorder id lx+r-1, likewise for columns.
	for i := lx; i <= x; i++ {
		ii := i - lx + 1
		if err := fd.Set(ii, 0, fd.ReadAt(ii-1, 0)+cm.Del(idx1.LabelID[i])); err != nil {
			return 0, err
		}
	}
	for j := ly; j <= y; j++ {
		jj := j - ly + 1
		if err := fd.Set(0, jj, fd.ReadAt(0, jj-1)+cm.Ins(idx2.LabelID[j])); err != nil {
			return 0, err
		}
	}

	for i := lx; i <= x; i++ {
		ii := i - lx + 1
		for j := ly; j <= y; j++ {
			jj := j - ly + 1

			delCost := fd.ReadAt(ii-1, jj) + cm.Del(idx1.LabelID[i])
			insCost := fd.ReadAt(ii, jj-1) + cm.Ins(idx2.LabelID[j])

			var v float64
			if idx1.LLD[i] == lx && idx2.LLD[j] == ly {
				renCost := fd.ReadAt(ii-1, jj-1) + cm.Ren(idx1.LabelID[i], idx2.LabelID[j])
				v = min3(delCost, insCost, renCost)
				if err := td.Set(i, j, v); err != nil {
					return 0, err
				}
			} else {
				li, lj := idx1.LLD[i]-1, idx2.LLD[j]-1
				base := fd.ReadAt(li-lx+1, lj-ly+1)
				v = min3(delCost, insCost, base+td.ReadAt(i, j))
			}
			if err := fd.Set(ii, jj, v); err != nil {
				return 0, err
			}
			if counter != nil {
				*counter++
			}
		}
	}

	return td.ReadAt(x, y), nil
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
