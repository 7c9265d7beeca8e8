package zhangshasha

import "errors"

// ErrNilIndex indicates a nil *treeindex.Index was supplied.
var ErrNilIndex = errors.New("zhangshasha: nil tree index")

// ErrNilCostModel indicates a nil costmodel.Model was supplied.
var ErrNilCostModel = errors.New("zhangshasha: nil cost model")

// ErrEmptyTree indicates a zero-node index was supplied.
var ErrEmptyTree = errors.New("zhangshasha: empty tree index")
