package apted_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedkit/apted"
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/label"
	"github.com/katalvlaran/tedkit/treeindex"
	"github.com/katalvlaran/tedkit/zhangshasha"
)

func indexBoth(t *testing.T, tr1, tr2 *treeindex.Tree) (*treeindex.Index, *treeindex.Index, *label.Dictionary, costmodel.Model) {
	t.Helper()
	dict := label.NewDictionary()
	cm := costmodel.NewUnit()
	idx1, idx2 := &treeindex.Index{}, &treeindex.Index{}
	require.NoError(t, treeindex.IndexTree(idx1, tr1, dict, cm))
	require.NoError(t, treeindex.IndexTree(idx2, tr2, dict, cm))

	return idx1, idx2, dict, cm
}

func TestAPTED_AgreesWithZhangShasha(t *testing.T) {
	cases := []struct {
		name string
		t1   *treeindex.Tree
		t2   *treeindex.Tree
	}{
		{"identical leaf", treeindex.NewLeaf("a"), treeindex.NewLeaf("a")},
		{
			"delete leaf",
			treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c")),
			treeindex.NewNode("a", treeindex.NewLeaf("b")),
		},
		{
			"swap leaves",
			treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c")),
			treeindex.NewNode("a", treeindex.NewLeaf("c"), treeindex.NewLeaf("b")),
		},
		{
			"delete inner",
			treeindex.NewNode("a", treeindex.NewNode("b", treeindex.NewLeaf("c"))),
			treeindex.NewNode("a", treeindex.NewLeaf("c")),
		},
		{
			"four renames",
			treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c"), treeindex.NewLeaf("d")),
			treeindex.NewNode("e", treeindex.NewLeaf("f"), treeindex.NewLeaf("g"), treeindex.NewLeaf("h")),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx1, idx2, dict, cm := indexBoth(t, tc.t1, tc.t2)

			zsRes, err := zhangshasha.NewEngine().TED(idx1, idx2, cm)
			require.NoError(t, err)

			apRes, err := apted.NewEngine().TED(idx1, idx2, dict, cm)
			require.NoError(t, err)

			assert.Equal(t, zsRes.Distance, apRes.Distance)
			assert.Greater(t, apRes.Subprobs, int64(0))
		})
	}
}

func TestAPTED_Identity(t *testing.T) {
	tr := treeindex.NewNode("a",
		treeindex.NewNode("b", treeindex.NewLeaf("d"), treeindex.NewLeaf("e")),
		treeindex.NewLeaf("c"),
	)
	idx1, idx2, dict, cm := indexBoth(t, tr, tr)
	res, err := apted.NewEngine().TED(idx1, idx2, dict, cm)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Distance)
}

func TestAPTED_RejectsNilArgs(t *testing.T) {
	e := apted.NewEngine()
	_, err := e.TED(nil, nil, nil, nil)
	assert.ErrorIs(t, err, apted.ErrNilIndex)

	idx1, idx2, dict, cm := indexBoth(t, treeindex.NewLeaf("a"), treeindex.NewLeaf("b"))
	_, err = e.TED(idx1, idx2, nil, cm)
	assert.ErrorIs(t, err, apted.ErrNilDictionary)

	_, err = e.TED(idx1, idx2, dict, nil)
	assert.ErrorIs(t, err, apted.ErrNilCostModel)
}

func TestAPTED_RejectsIndexWithoutOriginalTree(t *testing.T) {
	idx1, idx2, dict, cm := indexBoth(t, treeindex.NewLeaf("a"), treeindex.NewLeaf("b"))
	idx1.OriginalTree = nil

	_, err := apted.NewEngine().TED(idx1, idx2, dict, cm)
	assert.ErrorIs(t, err, apted.ErrMissingOriginalTree)
}
