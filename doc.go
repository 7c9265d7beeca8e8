// Package tedkit computes tree edit distance (TED) between rooted,
// ordered, labelled trees, and provides the supporting machinery a
// TED workload needs: bounded and unordered variants, similarity-join
// candidate generation, and the bracket-notation format engines and
// the reference CLI consume.
//
// Subpackages:
//
//	treeindex/   — Tree input type and the postorder Index every engine shares
//	label/       — string-to-int32 label interning
//	costmodel/   — pluggable delete/insert/rename cost functions
//	matrix/      — Dense and banded (Band) 2-D cost tables
//	sed/         — string edit distance, used as a TED lower bound
//	zhangshasha/ — classic O(n^2 * min(depth,leaves)^2) exact TED
//	apted/       — exact TED with APTED-style per-pair path strategies
//	touzet/      — bounded TED: exact distance if it is at most k, else +Inf
//	jedi/        — JSON-aware TED (Wang, CTED, DPJED, QuickJEDI engines)
//	munkres/     — Hungarian algorithm, for JEDI's unordered child matching
//	bounds/      — cheap lower/upper TED bounds used to prune exact search
//	join/        — histogram- and T-Join-based candidate generation for
//	               all-pairs similarity joins over a tree collection
//	bracket/     — bracket-notation parser/serializer, the module's
//	               external input format
//	treegen/     — deterministic random tree generator, for tests and
//	               the reference CLI's join demo
//	cmd/ted/     — reference CLI wiring the above
//
// Every engine is stateless and safe for concurrent use on distinct
// Index values; a label.Dictionary and the matrices an engine
// allocates are the only mutable state, and both are scoped to a
// single query or join collection.
package tedkit
