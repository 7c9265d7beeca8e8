// Package sed computes the classic string edit distance (Levenshtein
// distance under a pluggable cost model) between two integer label
// sequences. Applied to the left-to-right preorder label sequence of
// two trees it yields a valid, cheap-to-compute lower bound on their
// tree edit distance (spec.md section 4.7), since every tree edit
// script induces a string edit script of no greater cost on the
// preorder sequences.
package sed
