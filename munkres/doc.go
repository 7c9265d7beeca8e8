// Package munkres implements the Hungarian algorithm (Kuhn-Munkres) for
// the minimum-cost perfect assignment problem on a square cost matrix,
// grounded on spec.md section 4.6's seven-step state machine.
//
// jedi's QuickJEDI engine uses this to solve the unordered-child
// matching step of the edit distance between two `object`-typed JSON
// nodes; it is the exact upgrade of the combinatorial-assignment
// pattern the teacher solves greedily in tsp/matching.go's odd-vertex
// minimum-weight matching.
package munkres
