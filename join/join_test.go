package join_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/join"
	"github.com/katalvlaran/tedkit/label"
	"github.com/katalvlaran/tedkit/treeindex"
	"github.com/katalvlaran/tedkit/zhangshasha"
)

func indexCollection(t *testing.T, trees []*treeindex.Tree) []*treeindex.Index {
	t.Helper()
	dict := label.NewDictionary()
	cm := costmodel.NewUnit()
	out := make([]*treeindex.Index, len(trees))
	for i, tr := range trees {
		idx := &treeindex.Index{}
		require.NoError(t, treeindex.IndexTree(idx, tr, dict, cm))
		out[i] = idx
	}

	return out
}

func TestLabelHistogram_CountsEachLabel(t *testing.T) {
	tr := treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("b"), treeindex.NewLeaf("c"))
	idxs := indexCollection(t, []*treeindex.Tree{tr})

	h := join.LabelHistogram(idxs[0])
	total := 0
	for _, c := range h {
		total += c
	}
	assert.Equal(t, 4, total)
}

func TestDegreeHistogram_RootHasThreeChildren(t *testing.T) {
	tr := treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c"), treeindex.NewLeaf("d"))
	idxs := indexCollection(t, []*treeindex.Tree{tr})

	h := join.DegreeHistogram(idxs[0])
	assert.Equal(t, 3, h[0]) // three leaves, degree 0
	assert.Equal(t, 1, h[3]) // the root, degree 3
}

func TestLeafDistanceHistogram_LeavesAtOne(t *testing.T) {
	// {a{b{c}}} : c is a leaf (dist 1), b has dist 2, a has dist 3.
	tr := treeindex.NewNode("a", treeindex.NewNode("b", treeindex.NewLeaf("c")))
	idxs := indexCollection(t, []*treeindex.Tree{tr})

	h := join.LeafDistanceHistogram(idxs[0])
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, h)
}

func TestCombined_MatchesIndividualHistograms(t *testing.T) {
	tr := treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewNode("c", treeindex.NewLeaf("d")))
	idxs := indexCollection(t, []*treeindex.Tree{tr})

	combined := join.Combined(idxs[0])
	assert.Equal(t, join.LabelHistogram(idxs[0]), combined.Label)
	assert.Equal(t, join.DegreeHistogram(idxs[0]), combined.Degree)
	assert.Equal(t, join.LeafDistanceHistogram(idxs[0]), combined.LeafDistance)
	assert.Equal(t, idxs[0].NumNodes(), combined.Size)
}

func TestInvertedIndex_CandidatesSatisfyPrefixFilterBound(t *testing.T) {
	trees := []*treeindex.Tree{
		treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c")), // query: identical
		treeindex.NewNode("a", treeindex.NewLeaf("b"), treeindex.NewLeaf("c")), // identical twin
		treeindex.NewNode("x", treeindex.NewLeaf("y"), treeindex.NewLeaf("z")), // disjoint labels
	}
	idxs := indexCollection(t, trees)

	histograms := make([]map[int32]int, len(idxs))
	sizes := make([]int, len(idxs))
	for i, idx := range idxs {
		histograms[i] = join.LabelHistogram(idx)
		sizes[i] = idx.NumNodes()
	}

	ix := join.NewInvertedIndex()
	ix.Build(histograms, sizes)

	cands := ix.Candidates(join.Query{Size: sizes[0], Histogram: histograms[0]}, 0)
	assert.Contains(t, cands, 0)
	assert.Contains(t, cands, 1)
	assert.NotContains(t, cands, 2)
}

func TestInvertedIndex_SmallDisjointTreesStillPassTheBound(t *testing.T) {
	// Two single-node trees with totally different labels: zero
	// intersection, but (1+1-0)/2 = 1 <= threshold 1.
	trees := []*treeindex.Tree{
		treeindex.NewLeaf("p"),
		treeindex.NewLeaf("q"),
	}
	idxs := indexCollection(t, trees)
	histograms := []map[int32]int{join.LabelHistogram(idxs[0]), join.LabelHistogram(idxs[1])}
	sizes := []int{idxs[0].NumNodes(), idxs[1].NumNodes()}

	ix := join.NewInvertedIndex()
	ix.Build(histograms, sizes)

	cands := ix.Candidates(join.Query{Size: sizes[0], Histogram: histograms[0]}, 1)
	assert.ElementsMatch(t, []int{0, 1}, cands)
}

func TestTJoinLabelSet_AncestorsAndDescendantsMatchTreeShape(t *testing.T) {
	// {a{b{c}}} : c has 2 ancestors, 0 descendants; a has 0 ancestors, 2 descendants.
	tr := treeindex.NewNode("a", treeindex.NewNode("b", treeindex.NewLeaf("c")))
	idxs := indexCollection(t, []*treeindex.Tree{tr})
	weights := join.ComputeLabelWeights(idxs)

	set := join.TJoinLabelSet(idxs[0], weights)
	require.Len(t, set, 3)

	byPostorder := make(map[int]join.LabelSetElement, 3)
	for _, e := range set {
		byPostorder[e.PostorderID] = e
	}
	root := idxs[0].Root()
	assert.Equal(t, 0, byPostorder[root].Ancestors)
	assert.Equal(t, 2, byPostorder[root].Descendants)
}

func TestComputeLabelWeights_RarestLabelRanksFirst(t *testing.T) {
	trees := []*treeindex.Tree{
		treeindex.NewNode("common", treeindex.NewLeaf("common"), treeindex.NewLeaf("common"), treeindex.NewLeaf("rare")),
	}
	idxs := indexCollection(t, trees)
	weights := join.ComputeLabelWeights(idxs)

	commonID := idxs[0].LabelID[idxs[0].Root()]
	var rareID int32
	for i := 0; i < idxs[0].NumNodes(); i++ {
		if idxs[0].LabelID[i] != commonID {
			rareID = idxs[0].LabelID[i]
		}
	}

	assert.Less(t, weights[rareID], weights[commonID])
}

func TestTJoinIndex_LookupFindsExactMatchWithinThreshold(t *testing.T) {
	trees := []*treeindex.Tree{
		treeindex.NewNode("a", treeindex.NewNode("b", treeindex.NewLeaf("c"))),
		treeindex.NewNode("a", treeindex.NewNode("b", treeindex.NewLeaf("c"))),
	}
	idxs := indexCollection(t, trees)
	weights := join.ComputeLabelWeights(idxs)

	sets := make([][]join.LabelSetElement, len(idxs))
	sizes := make([]int, len(idxs))
	for i, idx := range idxs {
		sets[i] = join.TJoinLabelSet(idx, weights)
		sizes[i] = idx.NumNodes()
	}

	ix := join.NewTJoinIndex()
	ix.Build(sets, sizes)

	// Query with tree 0's root element: should find tree 1 (identical shape).
	var rootElem join.LabelSetElement
	for _, e := range sets[0] {
		if e.PostorderID == idxs[0].Root() {
			rootElem = e
		}
	}

	hits := ix.Lookup(rootElem.LabelID, rootElem.Descendants, rootElem.Ancestors, sizes[0], 0)
	assert.Contains(t, hits, 1)
}

func TestVerify_KeepsOnlyPairsWithinThreshold(t *testing.T) {
	trees := []*treeindex.Tree{
		treeindex.NewNode("a", treeindex.NewLeaf("b")),
		treeindex.NewNode("a", treeindex.NewLeaf("b")),
		treeindex.NewNode("x", treeindex.NewLeaf("y"), treeindex.NewLeaf("z")),
	}
	idxs := indexCollection(t, trees)
	cm := costmodel.NewUnit()
	eng := zhangshasha.NewEngine()
	adapter := join.Engine(func(idx1, idx2 *treeindex.Index, model costmodel.Model) (float64, int64, error) {
		res, err := eng.TED(idx1, idx2, model)

		return res.Distance, res.Subprobs, err
	})

	pairs := []join.Pair{{LeftID: 0, RightID: 1}, {LeftID: 0, RightID: 2}}
	results, subprobs, err := join.Verify(pairs, idxs, cm, 0, adapter)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].TED)
	assert.Greater(t, subprobs, int64(0))
}

func TestVerify_RejectsNilEngine(t *testing.T) {
	idxs := indexCollection(t, []*treeindex.Tree{treeindex.NewLeaf("a"), treeindex.NewLeaf("a")})
	_, _, err := join.Verify([]join.Pair{{LeftID: 0, RightID: 1}}, idxs, costmodel.NewUnit(), 0, nil)
	assert.ErrorIs(t, err, join.ErrNilEngine)
}

func TestVerify_RejectsOutOfRangeTreeID(t *testing.T) {
	idxs := indexCollection(t, []*treeindex.Tree{treeindex.NewLeaf("a")})
	adapter := join.Engine(func(idx1, idx2 *treeindex.Index, cm costmodel.Model) (float64, int64, error) {
		return 0, 0, nil
	})
	_, _, err := join.Verify([]join.Pair{{LeftID: 0, RightID: 5}}, idxs, costmodel.NewUnit(), 0, adapter)
	assert.ErrorIs(t, err, join.ErrTreeIDOutOfRange)
}
