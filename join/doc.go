// Package join provides the candidate-generation and verification
// machinery for tree similarity joins (spec.md section 4.8): per-tree
// histograms (label, leaf-distance, degree, combined) and T-Join label
// sets feed an inverted-posting index, a prefix-filter bound narrows a
// collection down to pre-candidates, and a verification pass invokes
// an exact or bounded TED engine to confirm or reject each pair.
// Grounded on
// _examples/original_source/src/join/histogram/histogram_converter_impl.h,
// join/label_histogram/lh_candidate_index_impl.h, and
// lookup/index/two_stage_inverted_list_impl.h (the three-stage T-Join
// variant), with the teacher's core.Graph map-of-slices adjacency
// pattern as the idiomatic-Go shape for "bucket maps to a small slice
// of postings."
package join
