package sed

import "github.com/katalvlaran/tedkit/costmodel"

// Distance computes the string edit distance between label sequences
// a and b under cm, using a two-row rolling DP
// (O(min(len(a),len(b))) memory, O(len(a)*len(b)) time) — grounded on
// dtw.DTW's TwoRows rolling-row rotation technique, with the
// Sakoe-Chiba window removed since a lower bound needs the
// unconstrained distance.
//
// Distance is symmetric up to cm's Ren cost being symmetric, and is a
// valid tree edit distance lower bound when a and b are the preorder
// label sequences of two trees (spec.md section 4.7): every tree edit
// script induces a string edit script over the preorder sequences of
// no greater cost.
func Distance(a, b []int32, cm costmodel.Model) (float64, error) {
	if cm == nil {
		return 0, ErrNilCostModel
	}

	// Iterate with b as the shorter axis so the rolling rows are as
	// small as possible.
	if len(a) < len(b) {
		a, b = b, a
	}
	n, m := len(a), len(b)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)

	prev[0] = 0
	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1] + cm.Ins(b[j-1])
	}

	for i := 1; i <= n; i++ {
		curr[0] = prev[0] + cm.Del(a[i-1])
		for j := 1; j <= m; j++ {
			renCost := prev[j-1] + cm.Ren(a[i-1], b[j-1])
			delCost := prev[j] + cm.Del(a[i-1])
			insCost := curr[j-1] + cm.Ins(b[j-1])
			curr[j] = min3(renCost, delCost, insCost)
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
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
