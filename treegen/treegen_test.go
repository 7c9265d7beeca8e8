package treegen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedkit/treegen"
	"github.com/katalvlaran/tedkit/treeindex"
)

func countFanoutViolations(t *treeindex.Tree, maxFanout int) int {
	if t == nil {
		return 0
	}
	violations := 0
	if maxFanout > 0 && len(t.Children) > maxFanout {
		violations++
	}
	for _, c := range t.Children {
		violations += countFanoutViolations(c, maxFanout)
	}

	return violations
}

func TestRandomTree_ProducesExactSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := treegen.RandomTree(rng, 25, 3, []string{"a", "b", "c"})
	require.NotNil(t, tr)
	assert.Equal(t, 25, tr.Size())
}

func TestRandomTree_RespectsFanoutBound(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tr := treegen.RandomTree(rng, 50, 2, []string{"a", "b"})
	require.NotNil(t, tr)
	assert.Equal(t, 0, countFanoutViolations(tr, 2))
}

func TestRandomTree_SingleNode(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tr := treegen.RandomTree(rng, 1, 3, []string{"a"})
	require.NotNil(t, tr)
	assert.Equal(t, 1, tr.Size())
	assert.Empty(t, tr.Children)
}

func TestRandomTree_DeterministicForSameSeed(t *testing.T) {
	tr1 := treegen.RandomTree(rand.New(rand.NewSource(42)), 30, 4, []string{"a", "b", "c", "d"})
	tr2 := treegen.RandomTree(rand.New(rand.NewSource(42)), 30, 4, []string{"a", "b", "c", "d"})

	var serialize func(*treeindex.Tree) string
	serialize = func(node *treeindex.Tree) string {
		s := "{" + node.Label
		for _, c := range node.Children {
			s += serialize(c)
		}
		return s + "}"
	}
	assert.Equal(t, serialize(tr1), serialize(tr2))
}

func TestRandomTree_DifferentSeedsLikelyDiffer(t *testing.T) {
	tr1 := treegen.RandomTree(rand.New(rand.NewSource(1)), 30, 4, []string{"a", "b", "c", "d", "e", "f"})
	tr2 := treegen.RandomTree(rand.New(rand.NewSource(2)), 30, 4, []string{"a", "b", "c", "d", "e", "f"})

	var serialize func(*treeindex.Tree) string
	serialize = func(node *treeindex.Tree) string {
		s := "{" + node.Label
		for _, c := range node.Children {
			s += serialize(c)
		}
		return s + "}"
	}
	assert.NotEqual(t, serialize(tr1), serialize(tr2))
}

func TestRandomTree_UnboundedFanoutAllowsWideRoot(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := treegen.RandomTree(rng, 40, 0, []string{"a"})
	require.NotNil(t, tr)
	assert.Equal(t, 40, tr.Size())
}

func TestRandomTree_RejectsInvalidArgs(t *testing.T) {
	assert.Nil(t, treegen.RandomTree(nil, 10, 2, []string{"a"}))
	assert.Nil(t, treegen.RandomTree(rand.New(rand.NewSource(1)), 0, 2, []string{"a"}))
	assert.Nil(t, treegen.RandomTree(rand.New(rand.NewSource(1)), 10, 2, nil))
}
