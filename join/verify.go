package join

import (
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/treeindex"
)

// Pair is a pre-candidate pair of tree ids awaiting verification.
type Pair struct {
	LeftID, RightID int
}

// Result is a verified join match: the pair's ids and their exact (or
// engine-bounded) tree edit distance.
type Result struct {
	LeftID, RightID int
	TED             float64
}

// Engine adapts any of this module's TED engines to the single shape
// Verify needs: compute a distance and report how many DP subproblems
// it solved along the way (0 if the engine does not track that),
// grounded on spec.md section 4.8's "accumulate the engine's
// subproblem counts for experiment reporting." A zhangshasha.Engine is
// wrapped as:
//
//	func(idx1, idx2 *treeindex.Index, cm costmodel.Model) (float64, int64, error) {
//	    res, err := eng.TED(idx1, idx2, cm)
//	    return res.Distance, res.Subprobs, err
//	}
type Engine func(idx1, idx2 *treeindex.Index, cm costmodel.Model) (distance float64, subproblems int64, err error)

// Verify invokes engine on every pre-candidate pair and keeps the
// ones whose distance does not exceed threshold, grounded on spec.md
// section 4.8's verification loop. Returns the accepted results (in
// pair order) and the total subproblem count across every pair
// checked, accepted or not.
func Verify(pairs []Pair, trees []*treeindex.Index, cm costmodel.Model, threshold float64, engine Engine) ([]Result, int64, error) {
	if engine == nil {
		return nil, 0, ErrNilEngine
	}

	var results []Result
	var totalSubprobs int64
	for _, p := range pairs {
		if p.LeftID < 0 || p.LeftID >= len(trees) || p.RightID < 0 || p.RightID >= len(trees) {
			return nil, totalSubprobs, ErrTreeIDOutOfRange
		}

		dist, subprobs, err := engine(trees[p.LeftID], trees[p.RightID], cm)
		if err != nil {
			return nil, totalSubprobs, err
		}
		totalSubprobs += subprobs

		if dist <= threshold {
			results = append(results, Result{LeftID: p.LeftID, RightID: p.RightID, TED: dist})
		}
	}

	return results, totalSubprobs, nil
}
