package solver

import (
	"errors"

	"github.com/arcrouting/hgs-cvrptw/localsearch"
	"github.com/arcrouting/hgs-cvrptw/penalty"
	"github.com/arcrouting/hgs-cvrptw/population"
)

// Config is the single configuration record for a solver run: the source
// material's nearly-identical SolverParams and GeneticAlgorithmParams
// records are treated as one, per the open question in spec §9. Every field
// below corresponds one-to-one to a row of §9's Config table (21 fields) and
// to a CLI flag in cmd/hgscvrp.
type Config struct {
	// Seed initializes the single rng stream shared by every randomized
	// component (population seeding, SREX, local-search client order).
	Seed uint32

	// TimeLimit is the wall-clock budget in seconds for the default stopping
	// criterion built by New; callers driving Run with their own
	// stopping.Criterion may ignore it.
	TimeLimit float64

	// InitCapacityPenalty and InitTimeWarpPenalty are the penalty manager's
	// starting weights.
	InitCapacityPenalty uint
	InitTimeWarpPenalty uint

	// PenaltyIncrease, PenaltyDecrease and TargetFeasible drive the
	// adaptive penalty schedule (spec §4.1).
	PenaltyIncrease float64
	PenaltyDecrease float64
	TargetFeasible  float64

	// RepairBooster scales both penalties during a scoped repair attempt.
	RepairBooster uint

	// NbPenaltyManagement is the number of iterations between penalty
	// weight updates; also the width of the feasibility-fraction window.
	NbPenaltyManagement int

	// MinPopSize, GenerationSize, NbElite and NbClose size and rank each
	// sub-population (spec §4.7).
	MinPopSize     int
	GenerationSize int
	NbElite        int
	NbClose        int

	// LbDiversity and UbDiversity bound the accepted parent-pair diversity
	// band during tournament selection.
	LbDiversity float64
	UbDiversity float64

	// RepairProbability is the percent (0-100) chance of attempting a
	// boosted repair re-education after an infeasible offspring.
	RepairProbability int

	// NbGranular, WeightWaitTime and WeightTimeWarp configure the granular
	// candidate-neighbour lists used by local search.
	NbGranular     int
	WeightWaitTime int
	WeightTimeWarp int

	// ShouldIntensify re-educates a new global best with postprocessing
	// enabled.
	ShouldIntensify bool

	// PostProcessPathLength is the subpath length exhaustively enumerated
	// during the intensification pass; 0 disables it.
	PostProcessPathLength int
}

// DefaultConfig mirrors the original HGS-CVRP defaults across every
// sub-component (spec §9).
func DefaultConfig() Config {
	return Config{
		Seed:                  1,
		TimeLimit:             60,
		InitCapacityPenalty:   20,
		InitTimeWarpPenalty:   6,
		PenaltyIncrease:       1.34,
		PenaltyDecrease:       0.32,
		TargetFeasible:        0.43,
		RepairBooster:         12,
		NbPenaltyManagement:   100,
		MinPopSize:            25,
		GenerationSize:        40,
		NbElite:               4,
		NbClose:               5,
		LbDiversity:           0.1,
		UbDiversity:           0.5,
		RepairProbability:     50,
		NbGranular:            34,
		WeightWaitTime:        18,
		WeightTimeWarp:        20,
		ShouldIntensify:       true,
		PostProcessPathLength: 7,
	}
}

// Validate checks every field not already covered by a sub-component's own
// Validate (invoked from New via the conversion helpers below).
func (c Config) Validate() error {
	if c.TimeLimit <= 0 {
		return errors.New("solver: TimeLimit must be positive")
	}
	if c.NbPenaltyManagement <= 0 {
		return errors.New("solver: NbPenaltyManagement must be positive")
	}
	if c.RepairProbability < 0 || c.RepairProbability > 100 {
		return errors.New("solver: RepairProbability must be in [0, 100]")
	}
	return nil
}

// penaltyParams builds the penalty.Params this Config implies, given the
// instance's vehicle capacity (a problem-data property, not a solver flag).
func (c Config) penaltyParams(capacity uint) penalty.Params {
	return penalty.Params{
		InitCapacityPenalty: c.InitCapacityPenalty,
		InitTimeWarpPenalty: c.InitTimeWarpPenalty,
		PenaltyIncrease:     c.PenaltyIncrease,
		PenaltyDecrease:     c.PenaltyDecrease,
		TargetFeasible:      c.TargetFeasible,
		RepairBooster:       c.RepairBooster,
		Capacity:            capacity,
	}
}

// localSearchConfig builds the localsearch.Config this Config implies.
// postProcess overrides PostProcessPathLength: New builds two LocalSearch
// instances from this Config, one for every generation (postprocessing
// disabled) and one reserved for the intensification pass (spec §4.8 step
// 5, postprocessing enabled).
func (c Config) localSearchConfig(postProcess bool) localsearch.Config {
	cfg := localsearch.Config{
		NbGranular:     c.NbGranular,
		WeightWaitTime: c.WeightWaitTime,
		WeightTimeWarp: c.WeightTimeWarp,
	}
	if postProcess {
		cfg.PostProcessPathLength = c.PostProcessPathLength
	}
	return cfg
}

// populationConfig builds the population.Config this Config implies.
func (c Config) populationConfig() population.Config {
	return population.Config{
		MinPopSize:     c.MinPopSize,
		GenerationSize: c.GenerationSize,
		NbElite:        c.NbElite,
		NbClose:        c.NbClose,
		LbDiversity:    c.LbDiversity,
		UbDiversity:    c.UbDiversity,
	}
}
