// Package touzet implements Touzet's bounded tree edit distance
// algorithm (spec.md section 4.5): given a threshold k, it returns the
// true TED if it is at most k, or +Inf otherwise, doing work bounded
// by O((|T1|+|T2|)*k^2) rather than the full O(|T1|*|T2|) product.
//
// Grounded directly on
// _examples/original_source/src/touzet/touzet.h/touzet_impl.h's
// k-strip restriction, k-relevancy predicate, and e-strip forest
// distance (tree_dist); the e-strip itself is stored in matrix.Band
// rather than a reused full Dense matrix fenced by manually written
// infinities, since Band already returns +Inf for any out-of-band
// read — an equivalent but simpler storage strategy than the
// original's single reused dense buffer.
//
// TEDkDepthPruning and TEDkKRSet are the two supplemental variants the
// original ships alongside the baseline: the former skips tree_dist
// rows that fall outside a node's depth-e window
// (touzet_depth_pruning_tree_index_impl.h), the latter restricts the
// whole computation to keyroot pairs found by descending
// leftmost-child chains (touzet_kr_loop_tree_index_impl.h). Both
// return the same TED as TEDk for any input within budget k; they
// differ only in how much of the (x, y) grid they touch to get there.
package touzet
