package costmodel

// Unit is the classic unit cost model: delete and insert always cost
// 1, and relabel costs 0 for identical label ids and 1 otherwise. It
// has no configuration and is safe for concurrent use (stateless).
type Unit struct{}

// NewUnit returns a Unit cost model.
func NewUnit() Unit { return Unit{} }

// Del always returns 1.
func (Unit) Del(int32) float64 { return 1 }

// Ins always returns 1.
func (Unit) Ins(int32) float64 { return 1 }

// Ren returns 0 when a == b, else 1.
func (Unit) Ren(a, b int32) float64 {
	if a == b {
		return 0
	}

	return 1
}
