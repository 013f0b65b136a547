package penalty

// clampMin and clampMax bound the penalty weights to avoid overflow in
// downstream integer cost arithmetic (spec §4.1).
const (
	clampMin = 1
	clampMax = 1000
)

// Manager tracks the adaptive capacity and time-warp penalty weights, and
// exposes a scoped booster for repair attempts. A Manager is owned by a
// single solver run; it is not safe for concurrent use from multiple
// goroutines (the outer loop is single-threaded, spec §5).
type Manager struct {
	params Params

	capacityPenalty uint
	timeWarpPenalty uint
}

// NewManager validates params and returns a Manager seeded with the initial
// penalty weights.
func NewManager(params Params) (*Manager, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Manager{
		params:          params,
		capacityPenalty: params.InitCapacityPenalty,
		timeWarpPenalty: params.InitTimeWarpPenalty,
	}, nil
}

// CapacityPenalty returns the current per-unit load-violation weight.
func (m *Manager) CapacityPenalty() uint { return m.capacityPenalty }

// TimeWarpPenalty returns the current per-unit time-warp weight.
func (m *Manager) TimeWarpPenalty() uint { return m.timeWarpPenalty }

// LoadPenalty returns the cost contribution of a route carrying load units
// above the configured vehicle capacity.
func (m *Manager) LoadPenalty(load uint) uint {
	excess := uint(0)
	if load > m.params.Capacity {
		excess = load - m.params.Capacity
	}
	return excess * m.capacityPenalty
}

// TwPenalty returns the cost contribution of accumulated time warp.
func (m *Manager) TwPenalty(timeWarp int) int {
	return timeWarp * int(m.timeWarpPenalty)
}

// compute applies the adaptive update rule common to both penalty kinds: no
// change within 5 percentage points of target; otherwise a multiplicative
// step with a +-1 nudge to avoid getting stuck, clamped to [1, 1000].
func compute(penalty uint, feasPct float64, p Params) uint {
	diff := p.TargetFeasible - feasPct
	if diff > -0.05 && diff < 0.05 {
		return penalty
	}

	d := float64(penalty)
	if diff > 0 {
		d = p.PenaltyIncrease*d + 1
		if d > clampMax {
			d = clampMax
		}
	} else {
		d = p.PenaltyDecrease*d - 1
		if d < clampMin {
			d = clampMin
		}
	}
	return uint(d)
}

// UpdateCapacityPenalty adjusts the capacity weight toward the configured
// target feasibility, given the observed fraction feasPct of capacity-
// feasible individuals in the recent window.
func (m *Manager) UpdateCapacityPenalty(feasPct float64) {
	m.capacityPenalty = compute(m.capacityPenalty, feasPct, m.params)
}

// UpdateTimeWarpPenalty adjusts the time-warp weight toward the configured
// target feasibility, given the observed fraction feasPct of time-warp-
// feasible individuals in the recent window.
func (m *Manager) UpdateTimeWarpPenalty(feasPct float64) {
	m.timeWarpPenalty = compute(m.timeWarpPenalty, feasPct, m.params)
}

// Booster represents an active scoped penalty boost. Callers must invoke
// Release exactly once, typically via defer, on every exit path (including
// error returns) to restore the manager's prior weights.
type Booster struct {
	mgr           *Manager
	priorCapacity uint
	priorTimeWarp uint
	released      bool
}

// Boost multiplies both penalty weights by RepairBooster and returns a
// Booster whose Release restores the exact prior values. Use:
//
//	b := mgr.Boost()
//	defer b.Release()
func (m *Manager) Boost() *Booster {
	b := &Booster{mgr: m, priorCapacity: m.capacityPenalty, priorTimeWarp: m.timeWarpPenalty}

	m.capacityPenalty *= m.params.RepairBooster
	m.timeWarpPenalty *= m.params.RepairBooster

	return b
}

// Release restores the penalty weights captured at Boost time. Calling
// Release more than once is a no-op.
func (b *Booster) Release() {
	if b.released {
		return
	}
	b.mgr.capacityPenalty = b.priorCapacity
	b.mgr.timeWarpPenalty = b.priorTimeWarp
	b.released = true
}
