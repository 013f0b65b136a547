// Package rng centralizes deterministic random generation for the HGS engine.
//
// Goals:
//   - Determinism: same seed, same problem data, same configuration ⇒ byte-
//     identical Individual sequence (spec §5 ordering requirement).
//   - Encapsulation: a single generator type; no time-based sources anywhere.
//   - Safety: no panics on valid input; only deterministic arithmetic.
//
// Concurrency:
//   - XorShift128 is NOT goroutine-safe. The outer loop is single-threaded
//     (spec §5); do not share an instance across goroutines.
package rng
