package tws

// Segment is the concatenable time-window object described by spec §3. It
// represents any contiguous sub-path — a single client, a route tail, or an
// entire route — and carries enough information to merge with an adjacent
// segment in O(1).
//
// Invariants (held for every reachable Segment):
//   - TimeWarp >= 0.
//   - TWEarly <= TWLate.
//   - Release is the maximum release time among the segment's clients.
type Segment struct {
	IdxFirst int // client index at the start of the segment
	IdxLast  int // client index at the end of the segment

	Duration int // total duration (travel + service + waiting) within the segment
	TimeWarp int // accumulated lateness within the segment, ignoring release

	TWEarly int // earliest feasible start time for the segment
	TWLate  int // latest feasible start time for the segment

	Release int // maximum release time among the segment's clients
}

// SegmentTimeWarp returns the time warp accumulated strictly within the
// segment, not accounting for release-time lower bounds.
func (s Segment) SegmentTimeWarp() int {
	return s.TimeWarp
}

// TotalTimeWarp returns the segment's time warp including the extra lateness
// implied by its release time: a vehicle cannot leave the depot before the
// segment's release time, so if that release is later than the segment's
// latest feasible start, the difference is additional unavoidable lateness.
func (s Segment) TotalTimeWarp() int {
	return s.TimeWarp + max(s.Release-s.TWLate, 0)
}

// Single builds the one-client Segment for client idx, given its demand-
// independent time-window fields. dist(idx, idx) is never consulted; a
// singleton has no internal travel arc.
func Single(idx, serviceDuration, twEarly, twLate, release int) Segment {
	return Segment{
		IdxFirst: idx,
		IdxLast:  idx,
		Duration: serviceDuration,
		TimeWarp: 0,
		TWEarly:  twEarly,
		TWLate:   twLate,
		Release:  release,
	}
}

// Merge concatenates two adjacent segments A and B over a connecting arc of
// length delta = dist(A.IdxLast, B.IdxFirst). The result represents the
// sub-path A followed by B. Merge is associative: Merge(Merge(a, b), c) ==
// Merge(a, Merge(b, c)) in every field, for any valid triple of segments and
// consistent arc lengths — this is what makes route-level caching correct
// regardless of how the driver chooses to batch concatenations.
//
// shift is the elapsed time from A's earliest feasible start to the moment
// the vehicle would arrive at B's first client, net of any time warp A
// already absorbed (time warp "forgives" lateness on the clock while still
// being tracked as a penalty) plus the connecting arc:
//
//	shift = A.Duration - A.TimeWarp + delta
//
// From there, B's window is checked against that arrival, relative to A's
// own earliest start:
//
//	waitTime' = max(B.TWEarly - shift - A.TWLate, 0)
//	timeWarp' = max(A.TWEarly + shift - B.TWLate, 0)
func Merge(a, b Segment, delta int) Segment {
	shift := a.Duration - a.TimeWarp + delta

	wait := max(b.TWEarly-shift-a.TWLate, 0)
	warp := max(a.TWEarly+shift-b.TWLate, 0)

	return Segment{
		IdxFirst: a.IdxFirst,
		IdxLast:  b.IdxLast,
		Duration: a.Duration + b.Duration + delta + wait,
		TimeWarp: a.TimeWarp + b.TimeWarp + warp,
		TWEarly:  max(b.TWEarly-shift, a.TWEarly) - wait,
		TWLate:   min(b.TWLate-shift, a.TWLate) + warp,
		Release:  max(a.Release, b.Release),
	}
}

// DistFunc returns the travel distance between two client indices; callers
// supply it (typically instance.Matrix.At) so this package stays free of any
// dependency on the problem-data representation.
type DistFunc func(i, j int) int

// MergeAll concatenates segs in order, using dist to look up the connecting
// arc between each consecutive pair. It panics if fewer than one segment is
// given; callers should special-case the empty case themselves (there is no
// meaningful "empty" Segment).
func MergeAll(dist DistFunc, segs ...Segment) Segment {
	if len(segs) == 0 {
		panic("tws: MergeAll requires at least one segment")
	}

	acc := segs[0]
	for i := 1; i < len(segs); i++ {
		delta := dist(acc.IdxLast, segs[i].IdxFirst)
		acc = Merge(acc, segs[i], delta)
	}
	return acc
}
