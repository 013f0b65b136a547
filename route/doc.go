// Package route implements the doubly-linked working-area representation
// used by local search: Node and Route, with cached prefix cumulants (load,
// distance, reversal distance, time-window segments) that let operators
// evaluate and apply moves without re-scanning whole routes (spec §3, §4.2).
//
// The working area is exclusively owned by one local-search pass at a time
// and is reused across calls to avoid allocation; callers arrange that
// ownership discipline, this package only provides the data structure.
package route
