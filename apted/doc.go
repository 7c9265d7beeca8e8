// Package apted implements an optimal-path-strategy tree edit distance
// engine in the style of Pawlik and Augsten's APTED algorithm (spec.md
// section 4.4), built on top of the same forest-distance recurrence
// zhangshasha uses (internal/keyrootdp).
//
// Strategy computation runs per (x, y) keyroot pair, not once for the
// whole tree: treeindex.Index carries CostLeft/CostRight/CostAll, a
// per-node dynamic-programming workload estimate for the left-spine,
// right-spine and heavy-path decompositions, and the engine combines
// both sides' estimates to pick whichever is cheapest for that
// specific pair. As indexed, the three estimates each equal Size-1, so
// they tie for every pair and SPF-L, which wins ties, is chosen
// throughout. SPF-L runs the shared recurrence directly; SPF-R and
// SPF-A mirror just the (x, y) subtree pair — not the whole trees —
// and run the same recurrence over the resulting miniature indices,
// exploiting TED's invariance under simultaneous mirroring of both
// operands rather than deriving separate right-handed and heavy-path
// recurrences. See DESIGN.md for what this omits relative to full
// APTED (amortized path reuse across the recursive gted decomposition).
package apted
