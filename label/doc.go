// Package label provides a process-local label dictionary: an interner
// that assigns dense, non-negative, first-come-first-served integer ids
// to arbitrary string labels.
//
// Every tree-edit-distance engine in tedkit addresses labels by their
// dictionary id rather than by raw string, so that cost-model lookups,
// rename-equality checks, and inverted-list bucketing are all O(1)
// integer operations instead of string comparisons.
//
// A Dictionary is empty when constructed, grows only through Insert,
// and is explicitly reset with Clear. Two labels compare equal iff
// their ids match within the same Dictionary instance.
package label
