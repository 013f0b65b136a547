package population

import (
	"github.com/arcrouting/hgs-cvrptw/diversity"
	"github.com/arcrouting/hgs-cvrptw/individual"
)

// getBinaryTournament picks two uniformly random individuals from the
// combined population and returns the one with lower (better) biased
// fitness, ties favoring the second draw. Requires the population to be
// non-empty.
func (p *Population) getBinaryTournament() *individual.Individual {
	fSize := p.NumFeasible()
	total := fSize + p.NumInfeasible()

	pick := func(idx int) member {
		if idx < fSize {
			return p.feasible[idx]
		}
		return p.infeasible[idx-fSize]
	}

	m1 := pick(p.rng.RandInt(total))
	m2 := pick(p.rng.RandInt(total))

	if m1.fitness < m2.fitness {
		return m1.indiv
	}
	return m2.indiv
}

// Select runs two binary tournaments to produce a parent pair (spec §4.7
// `select`). If the pair's broken-pairs distance falls outside
// [LbDiversity, UbDiversity], the second parent is redrawn, up to 9 times.
func (p *Population) Select() (*individual.Individual, *individual.Individual) {
	par1 := p.getBinaryTournament()
	par2 := p.getBinaryTournament()

	nbClients := p.data.NumClients()
	dist := diversity.BrokenPairsDistance(nbClients, par1, par2)

	tries := 1
	for (dist < p.cfg.LbDiversity || dist > p.cfg.UbDiversity) && tries < 10 {
		tries++
		par2 = p.getBinaryTournament()
		dist = diversity.BrokenPairsDistance(nbClients, par1, par2)
	}

	return par1, par2
}
