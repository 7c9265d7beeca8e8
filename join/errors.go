package join

import "errors"

// ErrNilIndex indicates a nil *treeindex.Index was supplied.
var ErrNilIndex = errors.New("join: nil index")

// ErrNilEngine indicates a nil Engine was supplied to Verify.
var ErrNilEngine = errors.New("join: nil engine")

// ErrTreeIDOutOfRange indicates a Pair referenced a tree id outside
// the collection passed to Verify.
var ErrTreeIDOutOfRange = errors.New("join: tree id out of range")
