package jedi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/jedi"
	"github.com/katalvlaran/tedkit/label"
	"github.com/katalvlaran/tedkit/treeindex"
)

func indexBoth(t *testing.T, tr1, tr2 *treeindex.Tree) (*treeindex.Index, *treeindex.Index) {
	t.Helper()
	dict := label.NewDictionary()
	cm := costmodel.NewUnit()
	idx1 := &treeindex.Index{}
	idx2 := &treeindex.Index{}
	require.NoError(t, treeindex.IndexTree(idx1, tr1, dict, cm))
	require.NoError(t, treeindex.IndexTree(idx2, tr2, dict, cm))

	return idx1, idx2
}

func TestWang_IdenticalObjects(t *testing.T) {
	tr := jedi.NewObject("o", jedi.NewKey("a", jedi.NewValue("1")), jedi.NewKey("b", jedi.NewValue("2")))
	idx1, idx2 := indexBoth(t, tr, tr)

	res, err := jedi.NewWang().TED(idx1, idx2, costmodel.NewUnit())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Distance)
}

func TestWang_ObjectKeyOrderIsFree(t *testing.T) {
	// Same keys, reordered: object children are an unordered multiset.
	t1 := jedi.NewObject("o", jedi.NewKey("a", jedi.NewValue("1")), jedi.NewKey("b", jedi.NewValue("2")))
	t2 := jedi.NewObject("o", jedi.NewKey("b", jedi.NewValue("2")), jedi.NewKey("a", jedi.NewValue("1")))
	idx1, idx2 := indexBoth(t, t1, t2)

	res, err := jedi.NewWang().TED(idx1, idx2, costmodel.NewUnit())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Distance)
}

func TestWang_ArrayOrderCosts(t *testing.T) {
	// Same elements, reordered: array children stay ordered, so
	// reordering two distinct leaves costs something (a rename pair).
	t1 := jedi.NewArray("a", jedi.NewValue("1"), jedi.NewValue("2"))
	t2 := jedi.NewArray("a", jedi.NewValue("2"), jedi.NewValue("1"))
	idx1, idx2 := indexBoth(t, t1, t2)

	res, err := jedi.NewWang().TED(idx1, idx2, costmodel.NewUnit())
	require.NoError(t, err)
	assert.Greater(t, res.Distance, 0.0)
}

func TestWang_KeyMapsSingleChild(t *testing.T) {
	// Same key label, differing value label: the only cost is renaming
	// the single mapped child, not deleting/inserting the whole subtree.
	t1 := jedi.NewKey("k", jedi.NewValue("1"))
	t2 := jedi.NewKey("k", jedi.NewValue("2"))
	idx1, idx2 := indexBoth(t, t1, t2)

	res, err := jedi.NewWang().TED(idx1, idx2, costmodel.NewUnit())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Distance)
}

func TestQuickJEDI_AgreesWithWang(t *testing.T) {
	cases := []struct {
		name string
		t1   *treeindex.Tree
		t2   *treeindex.Tree
	}{
		{
			name: "reordered-object",
			t1:   jedi.NewObject("o", jedi.NewKey("a", jedi.NewValue("1")), jedi.NewKey("b", jedi.NewValue("2")), jedi.NewKey("c", jedi.NewValue("3"))),
			t2:   jedi.NewObject("o", jedi.NewKey("c", jedi.NewValue("3")), jedi.NewKey("a", jedi.NewValue("1")), jedi.NewKey("b", jedi.NewValue("2"))),
		},
		{
			name: "extra-key",
			t1:   jedi.NewObject("o", jedi.NewKey("a", jedi.NewValue("1"))),
			t2:   jedi.NewObject("o", jedi.NewKey("a", jedi.NewValue("1")), jedi.NewKey("b", jedi.NewValue("2"))),
		},
		{
			name: "nested-array-in-object",
			t1: jedi.NewObject("o",
				jedi.NewKey("list", jedi.NewArray("a", jedi.NewValue("1"), jedi.NewValue("2"))),
			),
			t2: jedi.NewObject("o",
				jedi.NewKey("list", jedi.NewArray("a", jedi.NewValue("2"), jedi.NewValue("1"), jedi.NewValue("3"))),
			),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx1, idx2 := indexBoth(t, tc.t1, tc.t2)
			wang, err := jedi.NewWang().TED(idx1, idx2, costmodel.NewUnit())
			require.NoError(t, err)
			quick, err := jedi.NewQuickJEDI().TED(idx1, idx2, costmodel.NewUnit())
			require.NoError(t, err)
			assert.Equal(t, wang.Distance, quick.Distance)
		})
	}
}

func TestCTED_UpperBoundsWang(t *testing.T) {
	t1 := jedi.NewObject("o", jedi.NewKey("a", jedi.NewValue("1")), jedi.NewKey("b", jedi.NewValue("2")))
	t2 := jedi.NewObject("o", jedi.NewKey("b", jedi.NewValue("2")), jedi.NewKey("a", jedi.NewValue("1")))
	idx1, idx2 := indexBoth(t, t1, t2)

	wang, err := jedi.NewWang().TED(idx1, idx2, costmodel.NewUnit())
	require.NoError(t, err)
	cted, err := jedi.NewCTED().TED(idx1, idx2, costmodel.NewUnit())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, cted, wang.Distance)
}

func TestDPJED_AgreesWithCTEDWhenWithinBudget(t *testing.T) {
	t1 := jedi.NewObject("o", jedi.NewKey("a", jedi.NewValue("1")), jedi.NewKey("b", jedi.NewValue("2")))
	t2 := jedi.NewObject("o", jedi.NewKey("a", jedi.NewValue("1")))
	idx1, idx2 := indexBoth(t, t1, t2)

	cm := costmodel.NewUnit()
	cted, err := jedi.NewCTED().TED(idx1, idx2, cm)
	require.NoError(t, err)

	res, err := jedi.NewDPJED().TEDk(idx1, idx2, cm, int(cted))
	require.NoError(t, err)
	assert.Equal(t, cted, res.Distance)
}

func TestDPJED_ThresholdBelowExactIsInfinite(t *testing.T) {
	t1 := jedi.NewObject("o", jedi.NewKey("a", jedi.NewValue("1")), jedi.NewKey("b", jedi.NewValue("2")), jedi.NewKey("c", jedi.NewValue("3")))
	t2 := jedi.NewObject("o")
	idx1, idx2 := indexBoth(t, t1, t2)

	res, err := jedi.NewDPJED().TEDk(idx1, idx2, costmodel.NewUnit(), 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Distance, 1))
}

func TestWang_RejectsNilArgs(t *testing.T) {
	w := jedi.NewWang()
	_, err := w.TED(nil, nil, costmodel.NewUnit())
	assert.ErrorIs(t, err, jedi.ErrNilIndex)

	idx1, idx2 := indexBoth(t, jedi.NewValue("a"), jedi.NewValue("a"))
	_, err = w.TED(idx1, idx2, nil)
	assert.ErrorIs(t, err, jedi.ErrNilCostModel)
}

func TestDPJED_RejectsNegativeK(t *testing.T) {
	idx1, idx2 := indexBoth(t, jedi.NewValue("a"), jedi.NewValue("a"))
	_, err := jedi.NewDPJED().TEDk(idx1, idx2, costmodel.NewUnit(), -1)
	assert.ErrorIs(t, err, jedi.ErrNegativeK)
}
