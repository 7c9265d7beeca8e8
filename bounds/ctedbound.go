package bounds

import (
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/jedi"
	"github.com/katalvlaran/tedkit/treeindex"
)

// CTEDUpperBound executes the Wang constrained-TED DP (ordered
// children, no unordered object matching) and returns its result as a
// valid TED upper bound, cheaper than computing the optimal JSON edit
// distance (spec.md section 4.7). Delegates to jedi.CTED, which is
// itself grounded on the same constrained-DP definition.
func CTEDUpperBound(idx1, idx2 *treeindex.Index, cm costmodel.Model) (float64, error) {
	return jedi.NewCTED().TED(idx1, idx2, cm)
}
