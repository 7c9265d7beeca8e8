// Package jedi implements JSON edit distance (spec.md section 4.6): a
// family of engines over treeindex.Index values whose nodes carry a
// treeindex.NodeType (array/key/value; object nodes use the zero value,
// treeindex.TypePlain, since they receive exactly the same unordered
// bipartite-matching treatment as a generic node). Object children are
// an unordered multiset (matched via munkres), array children stay
// ordered (matched via a sequence edit distance, banded in QuickJEDI),
// and a key
// node's single child maps directly to the other key's single child.
//
// Grounded on _examples/original_source/src/json/wang_index_impl.h and
// quickjedi_index_impl.h, adapted from their favourable-child,
// memory-optimized O(log|T1| * |T2|) recurrence to a full O(|T1|*|T2|)
// dt/df table (Wang, QuickJEDI) — a deliberate simplification: the
// result is identical, memory use is merely O(|T1|*|T2|) instead of
// O(depth(T1)*|T2|), and the full table is far easier to verify
// against the original's recurrence without its amortised bookkeeping.
package jedi
