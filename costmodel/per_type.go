package costmodel

// PerType is a cost model for JSON-tagged trees (see
// treeindex.NodeType) that charges a different unit cost depending on
// which structural role the relabelled/deleted/inserted node plays:
// object/array/key/value nodes can each carry their own cost, matching
// the intuition that relabelling a scalar "value" is usually cheaper
// than relabelling a structural "key".
//
// PerType needs per-node NodeType, which Del/Ins/Ren alone cannot
// express (they only see label ids) — callers drive PerType through
// DelTyped/InsTyped/RenTyped from a jedi engine that has the type
// arrays in hand; PerType's own Del/Ins/Ren methods satisfy
// costmodel.Model by falling back to TypePlain costs, so PerType can still be dropped into
// any engine written against the plain Model interface.
type PerType struct {
	costByType map[NodeType]typedCost
	fallback   typedCost
}

type typedCost struct {
	del, ins, ren float64
}

// TypeOption configures a PerType cost model under construction.
type TypeOption func(*PerType)

// WithTypeCost sets the del/ins/ren unit costs charged for nodes of
// the given NodeType (ren cost applies only between distinct labels of
// that type; identical-label renames are always free).
func WithTypeCost(t NodeType, del, ins, ren float64) TypeOption {
	return func(p *PerType) {
		p.costByType[t] = typedCost{del: del, ins: ins, ren: ren}
	}
}

// NewPerType builds a PerType cost model. Every NodeType not given an
// explicit WithTypeCost falls back to unit costs (Del=Ins=Ren=1).
func NewPerType(opts ...TypeOption) *PerType {
	p := &PerType{
		costByType: make(map[NodeType]typedCost),
		fallback:   typedCost{del: 1, ins: 1, ren: 1},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *PerType) costFor(t NodeType) typedCost {
	if c, ok := p.costByType[t]; ok {
		return c
	}

	return p.fallback
}

// Del satisfies costmodel.Model by charging the TypePlain cost; use
// DelTyped when the node's JSON role is known.
func (p *PerType) Del(int32) float64 { return p.costFor(TypePlain).del }

// Ins satisfies costmodel.Model by charging the TypePlain cost; use
// InsTyped when the node's JSON role is known.
func (p *PerType) Ins(int32) float64 { return p.costFor(TypePlain).ins }

// Ren satisfies costmodel.Model by charging the TypePlain cost; use
// RenTyped when the node's JSON role is known.
func (p *PerType) Ren(a, b int32) float64 {
	if a == b {
		return 0
	}

	return p.costFor(TypePlain).ren
}

// DelTyped returns the delete cost for a node of the given JSON type.
func (p *PerType) DelTyped(t NodeType) float64 { return p.costFor(t).del }

// InsTyped returns the insert cost for a node of the given JSON type.
func (p *PerType) InsTyped(t NodeType) float64 { return p.costFor(t).ins }

// RenTyped returns the rename cost between two nodes of the same JSON
// type t and distinct label ids a != b; 0 when a == b.
func (p *PerType) RenTyped(t NodeType, a, b int32) float64 {
	if a == b {
		return 0
	}

	return p.costFor(t).ren
}
