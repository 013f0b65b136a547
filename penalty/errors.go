package penalty

import "errors"

// Sentinel configuration errors. Constructors validate eagerly (spec §7:
// InvalidConfiguration is surfaced at construction and is fatal).
var (
	// ErrPenaltyIncrease is returned when PenaltyIncrease < 1.
	ErrPenaltyIncrease = errors.New("penalty: PenaltyIncrease must be >= 1")

	// ErrPenaltyDecrease is returned when PenaltyDecrease is outside [0, 1].
	ErrPenaltyDecrease = errors.New("penalty: PenaltyDecrease must be in [0, 1]")

	// ErrTargetFeasible is returned when TargetFeasible is outside [0, 1].
	ErrTargetFeasible = errors.New("penalty: TargetFeasible must be in [0, 1]")

	// ErrRepairBooster is returned when RepairBooster < 1.
	ErrRepairBooster = errors.New("penalty: RepairBooster must be >= 1")

	// ErrCapacity is returned when Capacity <= 0.
	ErrCapacity = errors.New("penalty: Capacity must be > 0")
)
