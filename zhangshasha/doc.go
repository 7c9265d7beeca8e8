// Package zhangshasha implements the Zhang-Shasha tree edit distance
// algorithm (spec.md section 4.3): a nested loop over keyroot pairs of
// two indexed trees, each solved by the shared forest-distance
// recurrence in internal/keyrootdp, with tree-distance results
// memoised across pairs in a shared matrix.Dense table.
package zhangshasha
