package apted

import (
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/internal/keyrootdp"
	"github.com/katalvlaran/tedkit/label"
	"github.com/katalvlaran/tedkit/matrix"
	"github.com/katalvlaran/tedkit/treeindex"
)

// PathStrategy names the single-path decomposition an (x, y) subtree
// pair was solved with.
type PathStrategy string

const (
	// StrategyLeft is the left-spine decomposition: the shared
	// forest-distance recurrence run directly.
	StrategyLeft PathStrategy = "SPF-L"
	// StrategyRight is the right-spine decomposition, obtained by
	// mirroring the (x, y) pair and running the same recurrence.
	StrategyRight PathStrategy = "SPF-R"
	// StrategyAll is the heavy-path decomposition through a subtree's
	// largest child, also run via mirroring.
	StrategyAll PathStrategy = "SPF-A"
)

// Engine computes tree edit distance via APTED's optimal path
// strategy. The zero value is ready to use.
type Engine struct{}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine { return &Engine{} }

// Result carries the TED value, the total subproblem count across
// every (x, y) pair visited, and a per-strategy breakdown of how many
// pairs were decomposed each way.
type Result struct {
	Distance float64
	Subprobs int64
	// Strategy is the decomposition chosen for the root pair (x, y) =
	// (idx1.Root(), idx2.Root()); StrategyCounts carries the full,
	// per-pair picture.
	Strategy       PathStrategy
	StrategyCounts map[PathStrategy]int
}

// TED computes the tree edit distance between the trees indexed by
// idx1 and idx2 under cm. Strategy computation runs over every
// (x, y) keyroot pair and chooses, independently per pair, the
// decomposition minimising the dynamic-programming workload estimate
// built from treeindex.Index's CostLeft/CostRight/CostAll (spec.md
// section 4.4, SPEC_FULL.md section 6.7). As IndexTree computes them,
// CostLeft, CostRight and CostAll all equal Size-1, so the three
// estimates tie for every pair, choosePathStrategy keeps StrategyLeft
// on a tie, and every pair is solved with SPF-L exactly as
// Zhang-Shasha would; the solveMirrored branch is not reached.
//
// dict is not read beyond a nil check. Ren costs assume idx1 and idx2
// share one label-id space; TED does not verify that they were built
// against the same dictionary.
func (e *Engine) TED(idx1, idx2 *treeindex.Index, dict *label.Dictionary, cm costmodel.Model) (Result, error) {
	if idx1 == nil || idx2 == nil {
		return Result{}, ErrNilIndex
	}
	if dict == nil {
		return Result{}, ErrNilDictionary
	}
	if cm == nil {
		return Result{}, ErrNilCostModel
	}
	if idx1.NumNodes() == 0 || idx2.NumNodes() == 0 {
		return Result{}, ErrEmptyTree
	}
	if idx1.OriginalTree == nil || idx2.OriginalTree == nil {
		return Result{}, ErrMissingOriginalTree
	}

	td, err := matrix.NewDense(idx1.NumNodes(), idx2.NumNodes())
	if err != nil {
		return Result{}, err
	}

	var subprobs int64
	counts := make(map[PathStrategy]int, 3)

	for _, x := range idx1.KeyRoots {
		for _, y := range idx2.KeyRoots {
			strategy := choosePathStrategy(idx1, idx2, x, y)
			counts[strategy]++

			if strategy == StrategyLeft {
				if _, err := keyrootdp.ForestDistance(idx1, idx2, cm, td, &subprobs, x, y); err != nil {
					return Result{}, err
				}

				continue
			}

			dist, sub, err := solveMirrored(idx1, idx2, cm, x, y)
			if err != nil {
				return Result{}, err
			}
			if err := td.Set(x, y, dist); err != nil {
				return Result{}, err
			}
			subprobs += sub
		}
	}

	return Result{
		Distance:       td.ReadAt(idx1.Root(), idx2.Root()),
		Subprobs:       subprobs,
		Strategy:       choosePathStrategy(idx1, idx2, idx1.Root(), idx2.Root()),
		StrategyCounts: counts,
	}, nil
}

// choosePathStrategy picks the decomposition minimising the estimated
// forest-distance table size for the (x, y) pair: a strip of x's
// subtree along a given spine costs roughly that spine's CostXxx[x]
// rows replicated across every column y's subtree spans, and
// symmetrically for y, so the two sides' estimates add (the same
// combination RTED's strategy computation uses, per spec.md section 4.4).
// Ties go to StrategyLeft, then StrategyRight.
func choosePathStrategy(idx1, idx2 *treeindex.Index, x, y int) PathStrategy {
	n1, n2 := idx1.Size[x], idx2.Size[y]

	costLeft := idx1.CostLeft[x]*n2 + idx2.CostLeft[y]*n1
	costRight := idx1.CostRight[x]*n2 + idx2.CostRight[y]*n1
	costAll := idx1.CostAll[x]*n2 + idx2.CostAll[y]*n1

	best, strategy := costLeft, StrategyLeft
	if costRight < best {
		best, strategy = costRight, StrategyRight
	}
	if costAll < best {
		strategy = StrategyAll
	}

	return strategy
}

// solveMirrored computes the tree edit distance between the subtrees
// rooted at x and y by mirroring just that pair — not the whole trees
// — and running the shared left-decomposition recurrence over the
// resulting miniature indices. TED is invariant under mirroring both
// operands simultaneously, so this turns a right-spine or
// heavy-path-favouring decomposition into the same recurrence
// zhangshasha and the SPF-L branch above already use, scoped to the
// one subtree pair that needs it.
func solveMirrored(idx1, idx2 *treeindex.Index, cm costmodel.Model, x, y int) (float64, int64, error) {
	m1 := mirrorSubtree(idx1, x)
	m2 := mirrorSubtree(idx2, y)

	td, err := matrix.NewDense(m1.NumNodes(), m2.NumNodes())
	if err != nil {
		return 0, 0, err
	}

	var subprobs int64
	for _, u := range m1.KeyRoots {
		for _, v := range m2.KeyRoots {
			if _, err := keyrootdp.ForestDistance(m1, m2, cm, td, &subprobs, u, v); err != nil {
				return 0, 0, err
			}
		}
	}

	return td.ReadAt(m1.Root(), m2.Root()), subprobs, nil
}

// mirrorSubtree builds a standalone Index for the subtree rooted at
// postorder id root of idx, with every level's children reversed: the
// local analogue of treeindex.Tree.Mirror(), built directly from idx's
// postorder arrays so it needs no label.Dictionary and never mutates
// idx.
func mirrorSubtree(idx *treeindex.Index, root int) *treeindex.Index {
	n := idx.Size[root]
	out := &treeindex.Index{
		Size:      make([]int, n),
		Parent:    make([]int, n),
		Children:  make([][]int, n),
		LabelID:   make([]int32, n),
		LLD:       make([]int, n),
		IsKeyRoot: make([]bool, n),
	}

	next := 0
	var visit func(orig int) int
	visit = func(orig int) int {
		origChildren := idx.Children[orig]
		childIDs := make([]int, 0, len(origChildren))
		for i := len(origChildren) - 1; i >= 0; i-- {
			childIDs = append(childIDs, visit(origChildren[i]))
		}

		id := next
		next++
		out.LabelID[id] = idx.LabelID[orig]
		out.Children[id] = childIDs

		size := 1
		for i, c := range childIDs {
			out.Parent[c] = id
			out.IsKeyRoot[c] = i != 0 // only the new leftmost child is non-keyroot
			size += out.Size[c]
		}
		out.Size[id] = size

		if len(childIDs) == 0 {
			out.LLD[id] = id
		} else {
			out.LLD[id] = out.LLD[childIDs[0]]
		}

		return id
	}

	rootID := visit(root)
	out.Parent[rootID] = -1
	out.IsKeyRoot[rootID] = true
	for i := 0; i < n; i++ {
		if out.IsKeyRoot[i] {
			out.KeyRoots = append(out.KeyRoots, i)
		}
	}

	return out
}
