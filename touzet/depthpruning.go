package touzet

import (
	"math"

	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/matrix"
	"github.com/katalvlaran/tedkit/treeindex"
)

// TEDkDepthPruning is TEDk with an additional row-skipping rule inside
// tree_dist: for a subtree pair (x, y), any node i in T1_x whose depth
// exceeds min(depth(x)+e+1, the deepest depth in T1_x) can never feed
// the root candidate within the remaining budget e, so its row is
// skipped entirely. Grounded on
// touzet_depth_pruning_tree_index_impl.h's tree_dist, minus its
// inverted-list pointer-jump (a performance micro-optimization over
// the same skip rule, not a semantic difference) — this port instead
// walks i linearly and skips with a depth check, since
// treeindex.Index already carries Depth and SubtreeMaxDepth per node.
func (e *Engine) TEDkDepthPruning(idx1, idx2 *treeindex.Index, cm costmodel.Model, k int) (Result, error) {
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
	for x := 0; x < n1; x++ {
		lo := max(0, x-k)
		hi := min(x+k, n2-1)
		for y := lo; y <= hi; y++ {
			if !kRelevant(idx1, idx2, x, y, k) {
				continue
			}
			budget := errorBudget(idx1, idx2, x, y, k)
			dist, err := treeDistDepthPruning(idx1, idx2, cm, td, x, y, budget, &subprobs)
			if err != nil {
				return Result{}, err
			}
			if err := td.Set(x, y, dist); err != nil {
				return Result{}, err
			}
		}
	}

	return Result{Distance: td.ReadAt(n1-1, n2-1), Subprobs: subprobs}, nil
}

// treeDistDepthPruning is treeDist with T1 rows outside x's depth-e
// window skipped. A skipped row is simply never written, so reads
// against it return the +Inf that matrix.NewBand stores in every
// in-band cell at construction — the
// same "uncomputed means unreachable" convention treeDist already
// relies on for cells the e-strip never visits.
func treeDistDepthPruning(idx1, idx2 *treeindex.Index, cm costmodel.Model, td *matrix.Dense, x, y, e int, subprobs *int64) (float64, error) {
	if e < 0 {
		return math.Inf(1), nil
	}

	xSize, ySize := idx1.Size[x], idx2.Size[y]
	xOff, yOff := x-xSize, y-ySize

	fd, err := matrix.NewBand(xSize+1, ySize+1, e)
	if err != nil {
		return 0, err
	}

	if err := fd.Set(0, 0, 0); err != nil {
		return 0, err
	}
	for j := 1; j <= min(ySize, e); j++ {
		if err := fd.Set(0, j, fd.At(0, j-1)+cm.Ins(idx2.LabelID[j+yOff])); err != nil {
			return 0, err
		}
	}
	for i := 1; i <= min(xSize, e); i++ {
		if err := fd.Set(i, 0, fd.At(i-1, 0)+cm.Del(idx1.LabelID[i+xOff])); err != nil {
			return 0, err
		}
	}

	maxDepth := min(idx1.Depth[x]+e+1, idx1.SubtreeMaxDepth[x])

	for i := 1; i <= xSize; i++ {
		if idx1.Depth[i+xOff] > maxDepth {
			continue
		}

		loJ := max(1, i-e)
		hiJ := min(i+e, ySize)
		for j := loJ; j <= hiJ; j++ {
			gx, gy := i+xOff, j+yOff
			if i == xSize && j == hiJ {
				break
			}

			delCost := fd.At(i-1, j) + cm.Del(idx1.LabelID[gx])
			insCost := fd.At(i, j-1) + cm.Ins(idx2.LabelID[gy])
			renCost := fd.At(i-idx1.Size[gx], j-idx2.Size[gy]) + td.ReadAt(gx, gy)
			if err := fd.Set(i, j, min3(delCost, insCost, renCost)); err != nil {
				return 0, err
			}
			if subprobs != nil {
				*subprobs++
			}
		}
	}

	candidate := min3(
		fd.At(xSize-1, ySize)+cm.Del(idx1.LabelID[x]),
		fd.At(xSize, ySize-1)+cm.Ins(idx2.LabelID[y]),
		fd.At(xSize-1, ySize-1)+cm.Ren(idx1.LabelID[x], idx2.LabelID[y]),
	)
	if candidate > float64(e) {
		return math.Inf(1), nil
	}

	return candidate, nil
}
