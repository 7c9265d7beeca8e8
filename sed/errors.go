package sed

import "errors"

// ErrNilCostModel indicates a nil costmodel.Model was supplied.
var ErrNilCostModel = errors.New("sed: nil cost model")
