package zhangshasha

import (
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/internal/keyrootdp"
	"github.com/katalvlaran/tedkit/matrix"
	"github.com/katalvlaran/tedkit/treeindex"
)

// Engine computes tree edit distance via the Zhang-Shasha keyroot-pair
// algorithm. The zero value is ready to use.
type Engine struct{}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine { return &Engine{} }

// Result carries a TED value alongside the subproblem count the
// computation took, for callers comparing engines experimentally.
type Result struct {
	Distance float64
	Subprobs int64
}

// TED computes the tree edit distance between the trees indexed by
// idx1 and idx2 under cm.
//
// Complexity: O(|T1|*|T2|*min(depth,leaves)^2) time, O(|T1|*|T2|) space
// for the shared tree-distance table.
func (e *Engine) TED(idx1, idx2 *treeindex.Index, cm costmodel.Model) (Result, error) {
	if idx1 == nil || idx2 == nil {
		return Result{}, ErrNilIndex
	}
	if cm == nil {
		return Result{}, ErrNilCostModel
	}
	if idx1.NumNodes() == 0 || idx2.NumNodes() == 0 {
		return Result{}, ErrEmptyTree
	}

	td, err := matrix.NewDense(idx1.NumNodes(), idx2.NumNodes())
	if err != nil {
		return Result{}, err
	}

	var subprobs int64
	for _, x := range idx1.KeyRoots {
		for _, y := range idx2.KeyRoots {
			if _, err := keyrootdp.ForestDistance(idx1, idx2, cm, td, &subprobs, x, y); err != nil {
				return Result{}, err
			}
		}
	}

	dist := td.ReadAt(idx1.Root(), idx2.Root())

	return Result{Distance: dist, Subprobs: subprobs}, nil
}
