// Package treeindex defines the Tree input type and the Index bundle
// that every TED engine in tedkit consumes: a set of parallel arrays
// (postorder, preorder, parent, children, subtree size, left/right
// leaf descendants, depth, keyroots, label ids, inverted lists) built
// once per tree and shared read-only by all algorithms.
//
// IndexTree populates an Index in linear passes over explicit stacks
// — never recursion, so a pathologically deep tree never blows
// the goroutine stack (the original C++ source's recursive
// generate_postorder/postorder helpers are replaced here with the
// explicit-stack traversal style the teacher already uses in its BFS
// and DFS graph algorithms).
//
// Node addressing. Inside an engine, nodes are addressed by postorder
// rank (0 at the first leaf reached in a left-to-right postorder
// walk); preorder and right-to-left preorder ranks are available via
// the PreL/PreR translation arrays (no engine in this module reads the
// right-to-left ones).
package treeindex
