package jedi

import "errors"

// ErrNilIndex indicates a nil *treeindex.Index was supplied.
var ErrNilIndex = errors.New("jedi: nil tree index")

// ErrNilCostModel indicates a nil costmodel.Model was supplied.
var ErrNilCostModel = errors.New("jedi: nil cost model")

// ErrEmptyTree indicates a zero-node index was supplied.
var ErrEmptyTree = errors.New("jedi: empty tree index")

// ErrNegativeK indicates a negative DP-JED threshold was supplied.
var ErrNegativeK = errors.New("jedi: k must be non-negative")
