// Package matrix provides the dense 2-D numeric containers shared by
// every DP-based TED engine in tedkit.
//
// Dense is a row-major float64 container with bounds-checked At/Set,
// used for the Zhang-Shasha/APTED forest-distance tables and the
// Munkres cost matrix. Band stores only a 2k+1-wide diagonal strip
// around the main diagonal, used for Touzet's e-strip; reads outside the strip return +Inf without
// allocating, exactly like an out-of-band DP cell.
package matrix
