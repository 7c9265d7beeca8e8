// Package costmodel defines the cost-model capability that every TED
// engine in tedkit depends on: three total functions over label ids,
// Del, Ins, and Ren, all returning non-negative float64 costs with
// Ren(l, l) == 0 for every label l.
//
// No virtual dispatch is needed per DP cell; engines hold a Model
// value and call its three methods directly. Unit implements the unit
// cost model (0 for identical rename, 1 otherwise). Weighted attaches
// a per-label-id override map on top of a fallback. PerType varies
// cost by treeindex.NodeType, for JSON trees where renaming a value
// should usually cost less than renaming a key.
package costmodel
