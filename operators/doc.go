// Package operators implements the local-search move neighborhoods: the
// Exchange family (relocate/swap of short consecutive segments), TwoOpt,
// MoveTwoClientsReversed, SwapStar and RelocateStar (spec §4.3, §4.4).
//
// Every operator follows the same evaluate/apply shape: evaluate returns a
// delta cost (negative means improving) without mutating anything, and apply
// performs the move only after a caller has decided to take it. None of the
// operators call Route.Update themselves — callers refresh the affected
// routes once, after applying a move, since a single driver iteration may
// batch several structural changes before the next cost read.
package operators
