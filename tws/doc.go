// Package tws implements the time-window segment (TWS) algebra that lets the
// HGS engine price any neighborhood move in O(1) or O(log n) given cached
// route statistics.
//
// A Segment represents any contiguous sub-path of a route (down to a single
// client). Segments compose associatively via Merge, so the caller may
// concatenate sub-paths in any grouping and obtain identical results — this
// is what lets Route cache prefix/suffix segments once and have every
// operator reuse them for O(1) delta evaluation.
package tws
