// Package individual implements the solution representation (spec §3): a
// partition of clients into routes, the neighbour table derived from it, and
// the cost evaluator that combines travel distance with penalized capacity
// and time-warp violations.
package individual
