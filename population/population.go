package population

import (
	"github.com/arcrouting/hgs-cvrptw/individual"
	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/penalty"
	"github.com/arcrouting/hgs-cvrptw/rng"
)

// member pairs an Individual with its current biased fitness, the unit a
// sub-population is sorted and purged by.
type member struct {
	indiv   *individual.Individual
	fitness float64
}

// proxEntry is one neighbour of an Individual in the global proximity map,
// sorted ascending by distance so the nbClose closest are always a prefix.
type proxEntry struct {
	dist  float64
	other *individual.Individual
}

// Population owns the feasible and infeasible sub-populations, the global
// broken-pairs proximity map between all tracked Individuals, and the best
// feasible Individual found so far. Not safe for concurrent use (spec §5:
// the outer loop is single-threaded).
type Population struct {
	data *instance.Data
	pm   *penalty.Manager
	cfg  Config
	rng  *rng.XorShift128

	feasible   []member
	infeasible []member
	proximity  map[*individual.Individual][]proxEntry

	best *individual.Individual
}

// New validates cfg, seeds the best-found slot with one random Individual,
// then fills the population with MinPopSize further random Individuals via
// Add. This mirrors the reference order exactly: the best-found seed is
// drawn from rng before any population member, so the two are not
// interchangeable for determinism purposes.
func New(data *instance.Data, pm *penalty.Manager, cfg Config, r *rng.XorShift128) (*Population, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Population{
		data:      data,
		pm:        pm,
		cfg:       cfg,
		rng:       r,
		proximity: make(map[*individual.Individual][]proxEntry),
		best:      individual.NewRandom(data, r),
	}

	for i := 0; i < cfg.MinPopSize; i++ {
		p.Add(individual.NewRandom(data, r))
	}

	return p, nil
}

// Add inserts indiv into its feasibility-appropriate sub-population,
// updates the proximity map and biased fitness, purges down to MinPopSize
// if the sub-population has grown past its cap, and replaces the
// best-found Individual if indiv is feasible and cheaper (spec §4.7
// insertion steps 1-5).
func (p *Population) Add(indiv *individual.Individual) {
	subPop := &p.infeasible
	if indiv.IsFeasible() {
		subPop = &p.feasible
	}

	for _, other := range *subPop {
		p.registerNearbyIndividual(indiv, other.indiv)
	}

	*subPop = append(*subPop, member{indiv: indiv})
	p.updateBiasedFitness(*subPop)

	if len(*subPop) > p.cfg.MinPopSize+p.cfg.GenerationSize {
		p.purge(subPop)
	}

	if indiv.IsFeasible() && indiv.Cost(p.pm) < p.best.Cost(p.pm) {
		p.best = indiv
	}
}

// Size returns the combined feasible and infeasible population size.
func (p *Population) Size() int { return p.NumFeasible() + p.NumInfeasible() }

// NumFeasible returns the feasible sub-population's size.
func (p *Population) NumFeasible() int { return len(p.feasible) }

// NumInfeasible returns the infeasible sub-population's size.
func (p *Population) NumInfeasible() int { return len(p.infeasible) }

// BestFound returns the best feasible Individual seen by Add so far, or the
// initial random seed (which may be infeasible) until Add receives a
// feasible Individual that costs less than it.
func (p *Population) BestFound() *individual.Individual { return p.best }
