package touzet

import "errors"

// ErrNilIndex indicates a nil *treeindex.Index was supplied.
var ErrNilIndex = errors.New("touzet: nil tree index")

// ErrNilCostModel indicates a nil costmodel.Model was supplied.
var ErrNilCostModel = errors.New("touzet: nil cost model")

// ErrEmptyTree indicates a zero-node index was supplied.
var ErrEmptyTree = errors.New("touzet: empty tree index")

// ErrNegativeK indicates a negative threshold was supplied.
var ErrNegativeK = errors.New("touzet: k must be non-negative")
