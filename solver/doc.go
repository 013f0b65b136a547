// Package solver drives the outer genetic-algorithm loop: select parents,
// cross them via SREX, educate the offspring with local search, optionally
// repair and intensify, periodically retune the penalty weights, and
// re-seed on stagnation (spec §4.8). It ties together rng, penalty,
// instance, individual, population, crossover and localsearch into one
// cooperative, single-threaded driver (spec §5) polled by an injected
// stopping.Criterion.
package solver
