package bounds

import "errors"

// ErrNilIndex indicates a nil *treeindex.Index was supplied.
var ErrNilIndex = errors.New("bounds: nil index")

// ErrNilCostModel indicates a nil costmodel.Model was supplied.
var ErrNilCostModel = errors.New("bounds: nil cost model")
