package touzet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/label"
	"github.com/katalvlaran/tedkit/touzet"
	"github.com/katalvlaran/tedkit/treeindex"
	"github.com/katalvlaran/tedkit/zhangshasha"
)

func tedk(t *testing.T, tr1, tr2 *treeindex.Tree, k int) touzet.Result {
	t.Helper()
	dict := label.NewDictionary()
	cm := costmodel.NewUnit()
	idx1 := &treeindex.Index{}
	idx2 := &treeindex.Index{}
	require.NoError(t, treeindex.IndexTree(idx1, tr1, dict, cm))
	require.NoError(t, treeindex.IndexTree(idx2, tr2, dict, cm))

	res, err := touzet.NewEngine().TEDk(idx1, idx2, cm, k)
	require.NoError(t, err)

	return res
}

func exactTED(t *testing.T, tr1, tr2 *treeindex.Tree) float64 {
	t.Helper()
	dict := label.NewDictionary()
	cm := costmodel.NewUnit()
	idx1 := &treeindex.Index{}
	idx2 := &treeindex.Index{}
	require.NoError(t, treeindex.IndexTree(idx1, tr1, dict, cm))
	require.NoError(t, treeindex.IndexTree(idx2, tr2, dict, cm))

	res, err := zhangshasha.NewEngine().TED(idx1, idx2, cm)
	require.NoError(t, err)

	return res.Distance
}

// {a{b{c{d}}}} vs {a{b}}: deleting c and d costs 2.
func TestTEDk_DeepChainExample(t *testing.T) {
	t1 := treeindex.NewNode("a", treeindex.NewNode("b", treeindex.NewNode("c", treeindex.NewLeaf("d"))))
	t2 := treeindex.NewNode("a", treeindex.NewLeaf("b"))

	res := tedk(t, t1, t2, 2)
	assert.True(t, math.IsInf(res.Distance, 1))

	res = tedk(t, t1, t2, 3)
	assert.Equal(t, 2.0, res.Distance)
}

func TestTEDk_ZeroBudgetIdentity(t *testing.T) {
	tr := treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c"))
	res := tedk(t, tr, tr, 0)
	assert.Equal(t, 0.0, res.Distance)
}

func TestTEDk_ZeroBudgetDiffersIsInfinite(t *testing.T) {
	t1 := treeindex.NewNode("a", treeindex.NewLeaf("b"))
	t2 := treeindex.NewNode("a", treeindex.NewLeaf("c"))
	res := tedk(t, t1, t2, 0)
	assert.True(t, math.IsInf(res.Distance, 1))
}

func TestTEDk_AgreesWithZhangShashaWhenWithinBudget(t *testing.T) {
	cases := []struct {
		name string
		t1   *treeindex.Tree
		t2   *treeindex.Tree
	}{
		{
			name: "delete-leaf",
			t1:   treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c")),
			t2:   treeindex.NewNode("a", treeindex.NewLeaf("b")),
		},
		{
			name: "swap-leaves",
			t1:   treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c")),
			t2:   treeindex.NewNode("a", treeindex.NewLeaf("c"), treeindex.NewLeaf("b")),
		},
		{
			name: "four-renames",
			t1:   treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c"), treeindex.NewLeaf("d")),
			t2:   treeindex.NewNode("e", treeindex.NewLeaf("f"), treeindex.NewLeaf("g"), treeindex.NewLeaf("h")),
		},
		{
			name: "nested-vs-flat",
			t1:   treeindex.NewNode("a", treeindex.NewNode("b", treeindex.NewLeaf("c"))),
			t2:   treeindex.NewNode("a", treeindex.NewLeaf("c")),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exact := exactTED(t, tc.t1, tc.t2)
			res := tedk(t, tc.t1, tc.t2, int(exact))
			assert.Equal(t, exact, res.Distance)
		})
	}
}

func TestTEDk_ThresholdBelowExactIsInfinite(t *testing.T) {
	t1 := treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c"), treeindex.NewLeaf("d"))
	t2 := treeindex.NewNode("e", treeindex.NewLeaf("f"), treeindex.NewLeaf("g"), treeindex.NewLeaf("h"))

	exact := exactTED(t, t1, t2)
	require.Greater(t, exact, 0.0)

	res := tedk(t, t1, t2, int(exact)-1)
	assert.True(t, math.IsInf(res.Distance, 1))
}

func TestTEDk_RejectsNilArgs(t *testing.T) {
	e := touzet.NewEngine()
	_, err := e.TEDk(nil, nil, costmodel.NewUnit(), 1)
	assert.ErrorIs(t, err, touzet.ErrNilIndex)

	idx := &treeindex.Index{}
	require.NoError(t, treeindex.IndexTree(idx, treeindex.NewLeaf("a"), label.NewDictionary(), costmodel.NewUnit()))
	_, err = e.TEDk(idx, idx, nil, 1)
	assert.ErrorIs(t, err, touzet.ErrNilCostModel)

	_, err = e.TEDk(idx, idx, costmodel.NewUnit(), -1)
	assert.ErrorIs(t, err, touzet.ErrNegativeK)
}
