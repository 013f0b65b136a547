// Package penalty implements the adaptive capacity/time-warp penalty model
// (spec §4.1). Controlled infeasibility is central to HGS: routes may
// temporarily violate capacity or time windows, and the PenaltyManager's
// weights are tuned over the run so that roughly a target fraction of the
// population stays feasible.
package penalty
