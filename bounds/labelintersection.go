package bounds

import "github.com/katalvlaran/tedkit/treeindex"

// LabelIntersectionLowerBound computes |T1| + |T2| - 2*|multiset
// intersection of label ids|, a valid TED lower bound under unit
// costs (spec.md section 4.7): every node shared by the intersection
// can be kept by a rename-free mapping, so at least that many nodes
// need not be deleted from T1 or inserted into T2.
func LabelIntersectionLowerBound(idx1, idx2 *treeindex.Index) (float64, error) {
	if idx1 == nil || idx2 == nil {
		return 0, ErrNilIndex
	}

	shared := 0
	for labelID, ids1 := range idx1.LabelIndex {
		ids2 := idx2.LabelIndex[labelID]
		if len(ids1) == 0 || len(ids2) == 0 {
			continue
		}
		shared += min(len(ids1), len(ids2))
	}

	return float64(idx1.NumNodes()+idx2.NumNodes()-2*shared), nil
}
