package jedi

import (
	"github.com/katalvlaran/tedkit/costmodel"
	"github.com/katalvlaran/tedkit/treeindex"
)

// Wang computes the exact JSON edit distance (unordered object
// matching via munkres, ordered array matching via a full sequence
// edit distance, no pruning), grounded on
// _examples/original_source/src/json/wang_index_impl.h. The zero
// value is ready to use.
type Wang struct{}

// NewWang returns a ready-to-use Wang engine.
func NewWang() *Wang { return &Wang{} }

// Result carries the JEDI distance and the matching/edit-distance
// subproblem counters the computation used.
type Result struct {
	Distance float64
	Counters Counters
}

// TED returns the exact JSON edit distance between idx1 and idx2.
func (w *Wang) TED(idx1, idx2 *treeindex.Index, cm costmodel.Model) (Result, error) {
	if err := validateArgs(idx1, idx2, cm); err != nil {
		return Result{}, err
	}

	dist, counters, err := forestTree(idx1, idx2, cm, false)
	if err != nil {
		return Result{}, err
	}

	return Result{Distance: dist, Counters: counters}, nil
}
