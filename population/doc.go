// Package population maintains the genetic algorithm's feasible and
// infeasible sub-populations: insertion with proximity bookkeeping, biased
// fitness ranking, survivor selection, and binary-tournament parent
// selection (spec §4.7).
package population
