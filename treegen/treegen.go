package treegen

import (
	"math/rand"

	"github.com/katalvlaran/tedkit/treeindex"
)

// RandomTree returns a random, plain (non-JSON) tree with exactly
// size nodes, every label drawn uniformly from alphabet, and no node
// ever given more than maxFanout children (maxFanout <= 0 means
// unbounded). Node 0 is always the root.
//
// Every other node i (1 <= i < size) picks its parent uniformly among
// the nodes still under their fanout cap, so the result is
// size-driven (never falls short because depth ran out) the same way
// simple_tree_generator_impl.h's generate_tree is. rng must be
// non-nil and caller-owned: reseed it explicitly for reproducible
// output, since this package never seeds one itself.
func RandomTree(rng *rand.Rand, size int, maxFanout int, alphabet []string) *treeindex.Tree {
	if rng == nil || size <= 0 || len(alphabet) == 0 {
		return nil
	}

	nodes := make([]*treeindex.Tree, size)
	for i := 0; i < size; i++ {
		nodes[i] = &treeindex.Tree{Label: alphabet[rng.Intn(len(alphabet))]}
	}
	if size == 1 {
		return nodes[0]
	}

	remaining := make([]int, size)
	for i := range remaining {
		remaining[i] = maxFanout
	}
	hasCapacity := func(i int) bool { return maxFanout <= 0 || remaining[i] > 0 }

	openSlots := []int{0}
	for i := 1; i < size; i++ {
		slot := rng.Intn(len(openSlots))
		parent := openSlots[slot]

		nodes[parent].Children = append(nodes[parent].Children, nodes[i])
		if maxFanout > 0 {
			remaining[parent]--
			if remaining[parent] == 0 {
				openSlots = append(openSlots[:slot], openSlots[slot+1:]...)
			}
		}
		if hasCapacity(i) {
			openSlots = append(openSlots, i)
		}
	}

	return nodes[0]
}
