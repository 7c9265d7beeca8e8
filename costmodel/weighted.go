package costmodel

// Weighted is a cost model with a uniform fallback cost plus optional
// per-label-id overrides for Del and Ins, and a rename matrix override
// keyed by the ordered pair (a, b). Identical-label rename always costs
// 0 regardless of overrides, preserving the Ren(l, l) == 0 contract.
//
// Construct with NewWeighted; mutate only through the With* options
// passed at construction time — like builder.WeightFn, a Weighted
// value is immutable once built and safe to share across engines.
type Weighted struct {
	defaultDel float64
	defaultIns float64
	defaultRen float64
	delByLabel map[int32]float64
	insByLabel map[int32]float64
	renByPair  map[[2]int32]float64
}

// Option configures a Weighted cost model under construction.
type Option func(*Weighted)

// WithDefaultDel overrides the fallback delete cost (default 1).
func WithDefaultDel(cost float64) Option {
	return func(w *Weighted) { w.defaultDel = cost }
}

// WithDefaultIns overrides the fallback insert cost (default 1).
func WithDefaultIns(cost float64) Option {
	return func(w *Weighted) { w.defaultIns = cost }
}

// WithDefaultRen overrides the fallback rename cost for distinct
// labels (default 1). Ren(l, l) remains 0 regardless of this setting.
func WithDefaultRen(cost float64) Option {
	return func(w *Weighted) { w.defaultRen = cost }
}

// WithDelCost sets an explicit delete cost for a specific label id.
func WithDelCost(labelID int32, cost float64) Option {
	return func(w *Weighted) { w.delByLabel[labelID] = cost }
}

// WithInsCost sets an explicit insert cost for a specific label id.
func WithInsCost(labelID int32, cost float64) Option {
	return func(w *Weighted) { w.insByLabel[labelID] = cost }
}

// WithRenCost sets an explicit rename cost for the ordered pair
// (a, b). Does not implicitly set (b, a); callers wanting a symmetric
// model must set both directions.
func WithRenCost(a, b int32, cost float64) Option {
	return func(w *Weighted) { w.renByPair[[2]int32{a, b}] = cost }
}

// NewWeighted builds a Weighted cost model with defaults Del=Ins=1,
// Ren=1 (for distinct labels), overridden by the given options applied
// left to right.
//
// Complexity: O(1) plus O(len(opts)) option application.
func NewWeighted(opts ...Option) *Weighted {
	w := &Weighted{
		defaultDel: 1,
		defaultIns: 1,
		defaultRen: 1,
		delByLabel: make(map[int32]float64),
		insByLabel: make(map[int32]float64),
		renByPair:  make(map[[2]int32]float64),
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Del returns the per-label override if present, else the fallback.
func (w *Weighted) Del(labelID int32) float64 {
	if c, ok := w.delByLabel[labelID]; ok {
		return c
	}

	return w.defaultDel
}

// Ins returns the per-label override if present, else the fallback.
func (w *Weighted) Ins(labelID int32) float64 {
	if c, ok := w.insByLabel[labelID]; ok {
		return c
	}

	return w.defaultIns
}

// Ren returns 0 for identical labels, else the per-pair override if
// present, else the fallback rename cost.
func (w *Weighted) Ren(a, b int32) float64 {
	if a == b {
		return 0
	}
	if c, ok := w.renByPair[[2]int32{a, b}]; ok {
		return c
	}

	return w.defaultRen
}
