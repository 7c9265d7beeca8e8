// Package bounds collects cheap filters that sandwich the true tree
// edit distance between a lower and an upper bound, grounded on
// _examples/original_source/src/ted_lb/sed_lb.h and ted_ub/greedy_ub.h
// (spec.md section 4.7). These are meant to gate an expensive exact
// computation the way the teacher's tsp/bound_onetree.go gates a
// branch-and-bound search: compute the cheap bound first, only pay for
// the exact engine when the bound cannot already answer the query
// (e.g. a similarity-join threshold test).
package bounds
