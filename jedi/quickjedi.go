package jedi

import (
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/treeindex"
)

// QuickJEDI computes the exact JSON edit distance with three pruning
// tiers layered on Wang's core recurrence: an unmapped-children lower
// bound, a skip of the matching step whenever that bound already meets
// the cheap delete/insert upper bound, and a diagonally-banded
// sequence edit distance for array-vs-array pairs. Grounded on
// _examples/original_source/src/json/quickjedi_index_impl.h. The zero
// value is ready to use.
type QuickJEDI struct{}

// NewQuickJEDI returns a ready-to-use QuickJEDI engine.
func NewQuickJEDI() *QuickJEDI { return &QuickJEDI{} }

// TED returns the exact JSON edit distance between idx1 and idx2,
// identical to Wang's result but computed with fewer subproblems on
// inputs where the pruning tiers apply.
func (q *QuickJEDI) TED(idx1, idx2 *treeindex.Index, cm costmodel.Model) (Result, error) {
	if err := validateArgs(idx1, idx2, cm); err != nil {
		return Result{}, err
	}

	dist, counters, err := forestTree(idx1, idx2, cm, true)
	if err != nil {
		return Result{}, err
	}

	return Result{Distance: dist, Counters: counters}, nil
}
