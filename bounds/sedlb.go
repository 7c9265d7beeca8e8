package bounds

import (
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/sed"
	"github.com/katalvlaran/tedkit/treeindex"
)

// SEDLowerBound computes the string-edit-distance lower bound on the
// tree edit distance between idx1 and idx2: the classic two-row DP
// over the trees' preorder label sequences, grounded on
// ted_lb/sed_lb_impl.h (the same rolling-row recurrence the sed
// package already implements — every tree edit script induces a
// string edit script of no greater cost over preorder sequences, so
// this value never exceeds the true TED).
func SEDLowerBound(idx1, idx2 *treeindex.Index, cm costmodel.Model) (float64, error) {
	if idx1 == nil || idx2 == nil {
		return 0, ErrNilIndex
	}
	if cm == nil {
		return 0, ErrNilCostModel
	}

	return sed.Distance(sed.PreorderLabels(idx1), sed.PreorderLabels(idx2), cm)
}
