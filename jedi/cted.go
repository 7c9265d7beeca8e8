package jedi

import (
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/treeindex"
	"github.com/katalvlaran/tedkit/zhangshasha"
)

// CTED computes the constrained tree edit distance: an upper bound on
// the true JSON edit distance obtained by treating every node's
// children as ordered (no unordered object matching step), which is
// exactly zhangshasha's assumption. Grounded on spec.md section 4.6's
// CTED description ("DP tables dt, df, e as above without the
// unordered-matching step") — since an ordered mapping is a special
// case of an unordered one, this can never cost less than the true
// JEDI distance, so wrapping zhangshasha.Engine directly is both
// correct and exact for what CTED is defined to compute. The zero
// value is ready to use.
type CTED struct {
	engine *zhangshasha.Engine
}

// NewCTED returns a ready-to-use CTED engine.
func NewCTED() *CTED { return &CTED{engine: zhangshasha.NewEngine()} }

// TED returns the constrained (ordered-children) tree edit distance
// between idx1 and idx2, an upper bound on the true JSON edit distance.
func (c *CTED) TED(idx1, idx2 *treeindex.Index, cm costmodel.Model) (float64, error) {
	if err := validateArgs(idx1, idx2, cm); err != nil {
		return 0, err
	}

	res, err := c.engine.TED(idx1, idx2, cm)
	if err != nil {
		return 0, err
	}

	return res.Distance, nil
}
