package zhangshasha_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/label"
	"github.com/katalvlaran/tedkit/treeindex"
	"github.com/katalvlaran/tedkit/zhangshasha"
)

func ted(t *testing.T, tr1, tr2 *treeindex.Tree) float64 {
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

func TestTED_IdenticalSingleNode(t *testing.T) {
	assert.Equal(t, 0.0, ted(t, treeindex.NewLeaf("a"), treeindex.NewLeaf("a")))
}

func TestTED_DeleteLeaf(t *testing.T) {
	// {a{b}{c}} vs {a{b}} -> delete c -> 1
	t1 := treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c"))
	t2 := treeindex.NewNode("a", treeindex.NewLeaf("b"))
	assert.Equal(t, 1.0, ted(t, t1, t2))
}

func TestTED_SwapLeaves(t *testing.T) {
	// {a{b}{c}} vs {a{c}{b}} -> 2
	t1 := treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c"))
	t2 := treeindex.NewNode("a", treeindex.NewLeaf("c"), treeindex.NewLeaf("b"))
	assert.Equal(t, 2.0, ted(t, t1, t2))
}

func TestTED_DeleteInnerNode(t *testing.T) {
	// {a{b{c}}} vs {a{c}} -> delete b -> 1
	t1 := treeindex.NewNode("a", treeindex.NewNode("b", treeindex.NewLeaf("c")))
	t2 := treeindex.NewNode("a", treeindex.NewLeaf("c"))
	assert.Equal(t, 1.0, ted(t, t1, t2))
}

func TestTED_FourRenames(t *testing.T) {
	t1 := treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c"), treeindex.NewLeaf("d"))
	t2 := treeindex.NewNode("e", treeindex.NewLeaf("f"), treeindex.NewLeaf("g"), treeindex.NewLeaf("h"))
	assert.Equal(t, 4.0, ted(t, t1, t2))
}

func TestTED_Identity(t *testing.T) {
	tr := treeindex.NewNode("a",
		treeindex.NewNode("b", treeindex.NewLeaf("d"), treeindex.NewLeaf("e")),
		treeindex.NewLeaf("c"),
	)
	assert.Equal(t, 0.0, ted(t, tr, tr))
}

func TestTED_Symmetry(t *testing.T) {
	t1 := treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c"))
	t2 := treeindex.NewNode("x", treeindex.NewLeaf("c"), treeindex.NewNode("y", treeindex.NewLeaf("b")))
	assert.Equal(t, ted(t, t1, t2), ted(t, t2, t1))
}

func TestTED_TriangleInequality(t *testing.T) {
	a := treeindex.NewNode("a", treeindex.NewLeaf("b"))
	b := treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c"))
	c := treeindex.NewNode("x", treeindex.NewLeaf("y"), treeindex.NewLeaf("z"), treeindex.NewLeaf("w"))

	ab := ted(t, a, b)
	bc := ted(t, b, c)
	ac := ted(t, a, c)
	assert.LessOrEqual(t, ac, ab+bc)
}

func TestTED_RejectsNilArgs(t *testing.T) {
	e := zhangshasha.NewEngine()
	_, err := e.TED(nil, nil, costmodel.NewUnit())
	assert.ErrorIs(t, err, zhangshasha.ErrNilIndex)

	idx := &treeindex.Index{}
	require.NoError(t, treeindex.IndexTree(idx, treeindex.NewLeaf("a"), label.NewDictionary(), costmodel.NewUnit()))
	_, err = e.TED(idx, idx, nil)
	assert.ErrorIs(t, err, zhangshasha.ErrNilCostModel)
}
