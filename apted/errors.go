package apted

import "errors"

// ErrNilIndex indicates a nil *treeindex.Index was supplied.
var ErrNilIndex = errors.New("apted: nil tree index")

// ErrNilDictionary indicates a nil *label.Dictionary was supplied.
var ErrNilDictionary = errors.New("apted: nil label dictionary")

// ErrNilCostModel indicates a nil costmodel.Model was supplied.
var ErrNilCostModel = errors.New("apted: nil cost model")

// ErrEmptyTree indicates a zero-node index was supplied.
var ErrEmptyTree = errors.New("apted: empty tree index")

// ErrMissingOriginalTree indicates an *Index built without going
// through treeindex.IndexTree (and hence with a nil OriginalTree).
// TED rejects such an index; its mirrored decompositions are built
// from the index arrays (mirrorSubtree), not from OriginalTree.
var ErrMissingOriginalTree = errors.New("apted: index has no original tree to mirror")
