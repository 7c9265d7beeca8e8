package touzet

import (
	"math"

	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/matrix"
	"github.com/katalvlaran/tedkit/treeindex"
)

// Engine computes bounded tree edit distance. The zero value is ready
// to use.
type Engine struct{}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine { return &Engine{} }

// Result carries the bounded TED value (or +Inf if it exceeds k) and
// the subproblem count the computation took.
type Result struct {
	Distance float64
	Subprobs int64
}

// TEDk returns the tree edit distance between the trees indexed by
// idx1 and idx2 if it does not exceed k, or +Inf otherwise.
//
// Complexity: O((|T1|+|T2|)*k^2) in the best case over the k-strip,
// grounded on touzet_impl.h's touzet_ted/tree_dist.
func (e *Engine) TEDk(idx1, idx2 *treeindex.Index, cm costmodel.Model, k int) (Result, error) {
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
			dist, err := treeDist(idx1, idx2, cm, td, x, y, budget, &subprobs)
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

// treeDist computes the tree edit distance between the subtrees
// rooted at x and y, bounded by remaining error budget e, filling a
// local e-strip forest-distance band and reading already-computed
// subtree distances from td for pairs strictly inside (x, y)'s
// subtrees.
func treeDist(idx1, idx2 *treeindex.Index, cm costmodel.Model, td *matrix.Dense, x, y, e int, subprobs *int64) (float64, error) {
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

	for i := 1; i <= xSize; i++ {
		loJ := max(1, i-e)
		hiJ := min(i+e, ySize)
		for j := loJ; j <= hiJ; j++ {
			gx, gy := i+xOff, j+yOff

			// The final cell of the strip is folded into the
			// subtree-root candidate computed below instead.
			if i == xSize && j == hiJ {
				break
			}

			// td.ReadAt(gx,gy) is +Inf for any pair the outer TEDk
			// loop never marked k-relevant (or never visited because
			// it fell outside gx's own k-strip), which is exactly
			// what forbids the rename/merge transition through a
			// disallowed pair without a separate relevancy check here.
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

