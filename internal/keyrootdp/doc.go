// Package keyrootdp implements the Zhang-Shasha forest-distance
// recurrence (spec.md section 4.3) as a single shared routine, reused
// by both the zhangshasha engine (directly, over every keyroot pair)
// and the apted engine's SPF-L/SPF-R single-path functions.
//
// SPF-R needs no separate recurrence: tree edit distance is invariant
// under mirroring both operand trees simultaneously, so apted obtains
// SPF-R (and SPF-A) by calling ForestDistance on standalone indices of
// the mirrored subtree pair (apted's mirrorSubtree, built from the
// index arrays), turning every right spine into a left spine that the
// same left-decomposition recurrence already handles.
package keyrootdp
