package jedi

import (
	"math"

	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/matrix"
	"github.com/katalvlaran/tedkit/treeindex"
)

// Counters tallies the pruning decisions QuickJEDI's three tiers take;
// Wang and CTED leave every field at zero since they carry no pruning.
type Counters struct {
	Matchings int64 // object/default pairs solved via munkres.Solve
	Edits     int64 // array pairs solved via arrayChildEditDistance
	Skips     int64 // pairs where the lower bound dominated the upper bound
}

// forestTree computes the full dt/df tables (node-pair tree/forest
// distance) over every postorder pair (i, j) of idx1, idx2, returning
// the root-pair tree distance dt[n1][n2]. When pruned is true, a pair
// whose unmapped-children lower bound already meets or exceeds the
// cheap delete/insert upper bound skips the expensive matching step
// (QuickJEDI's tier 2), and array-child sequence matching is
// restricted to a diagonal half-width of int(delUB), the pair's cheap
// delete/insert upper bound (QuickJEDI's tier 3). Wang calls this with
// pruned=false, which leaves array matching unbanded.
//
// Grounded on quickjedi_index_impl.h's full jedi() loop (lines
// ~60-282), adapted from its favourable-child/height-indexed memory
// layout to a plain (n1+1)x(n2+1) dt/df table.
func forestTree(idx1, idx2 *treeindex.Index, cm costmodel.Model, pruned bool) (float64, Counters, error) {
	n1, n2 := idx1.NumNodes(), idx2.NumNodes()

	dt, err := matrix.NewDense(n1+1, n2+1)
	if err != nil {
		return 0, Counters{}, err
	}
	df, err := matrix.NewDense(n1+1, n2+1)
	if err != nil {
		return 0, Counters{}, err
	}

	for i := 0; i < n1; i++ {
		_ = dt.Set(i+1, 0, idx1.SubtreeDelCost[i])
		_ = df.Set(i+1, 0, idx1.SubtreeDelCost[i]-cm.Del(idx1.LabelID[i]))
	}
	for j := 0; j < n2; j++ {
		_ = dt.Set(0, j+1, idx2.SubtreeInsCost[j])
		_ = df.Set(0, j+1, idx2.SubtreeInsCost[j]-cm.Ins(idx2.LabelID[j]))
	}

	var counters Counters

	for gi := 0; gi < n1; gi++ {
		i := gi + 1
		for gj := 0; gj < n2; gj++ {
			j := gj + 1

			minForDel, minTreeDel := math.Inf(1), math.Inf(1)
			for _, t := range idx2.Children[gj] {
				minForDel = min(minForDel, df.ReadAt(i, t+1)-df.ReadAt(0, t+1))
				minTreeDel = min(minTreeDel, dt.ReadAt(i, t+1)-dt.ReadAt(0, t+1))
			}
			minForDel += df.ReadAt(0, j)
			minTreeDel += dt.ReadAt(0, j)

			minForIns, minTreeIns := math.Inf(1), math.Inf(1)
			for _, s := range idx1.Children[gi] {
				minForIns = min(minForIns, df.ReadAt(s+1, j)-df.ReadAt(s+1, 0))
				minTreeIns = min(minTreeIns, dt.ReadAt(s+1, j)-dt.ReadAt(s+1, 0))
			}
			minForIns += df.ReadAt(i, 0)
			minTreeIns += dt.ReadAt(i, 0)

			delUB := min(minForDel, minForIns)
			minForRen := delUB

			t1, t2 := idx1.NodeType[gi], idx2.NodeType[gj]
			switch {
			case t1 == treeindex.TypeKey && t2 == treeindex.TypeKey &&
				len(idx1.Children[gi]) > 0 && len(idx2.Children[gj]) > 0:
				c1, c2 := idx1.Children[gi][0], idx2.Children[gj][0]
				minForRen = dt.ReadAt(c1+1, c2+1)
			case t1 == treeindex.TypeValue && t2 == treeindex.TypeValue:
				minForRen = 0
			default:
				lb := unmappedChildrenLowerBound(idx1, idx2, gi, gj)
				if pruned && delUB <= lb {
					counters.Skips++
				} else if t1 == treeindex.TypeArray && t2 == treeindex.TypeArray {
					band := -1
					if pruned {
						band = int(delUB)
					}
					counters.Edits++
					minForRen = arrayChildEditDistance(idx1, idx2, cm, dt, gi, gj, band)
				} else {
					match, err := hungarianChildrenMatch(idx1, idx2, dt, gi, gj)
					if err != nil {
						return 0, Counters{}, err
					}
					counters.Matchings++
					minForRen = match
				}
			}

			_ = df.Set(i, j, min3(minForDel, minForIns, minForRen))

			var minTreeRen float64
			if t1 != t2 {
				minTreeRen = df.ReadAt(i, j) + cm.Del(idx1.LabelID[gi]) + cm.Ins(idx2.LabelID[gj])
			} else {
				minTreeRen = df.ReadAt(i, j) + cm.Ren(idx1.LabelID[gi], idx2.LabelID[gj])
			}
			_ = dt.Set(i, j, min3(minTreeDel, minTreeIns, minTreeRen))
		}
	}

	return dt.ReadAt(n1, n2), counters, nil
}

func validateArgs(idx1, idx2 *treeindex.Index, cm costmodel.Model) error {
	if idx1 == nil || idx2 == nil {
		return ErrNilIndex
	}
	if cm == nil {
		return ErrNilCostModel
	}
	if idx1.NumNodes() == 0 || idx2.NumNodes() == 0 {
		return ErrEmptyTree
	}

	return nil
}
