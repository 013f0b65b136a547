package population

import (
	"sort"

	"github.com/arcrouting/hgs-cvrptw/individual"
)

// diversityEntry pairs an individual's average-distance-to-closest score
// with the cost rank it held just before this sort (its position in subPop
// once subPop is cost-sorted ascending).
type diversityEntry struct {
	dist     float64
	costRank int
}

// updateBiasedFitness sorts subPop ascending by cost, ranks it descending
// by diversity contribution, and assigns each member a biased fitness
// combining both ranks (spec §4.7: `fitness[i] = (costRank[i] + divWeight *
// divRank[i]) / size`, lower is better). Ties in diversity are broken by
// descending cost rank, matching the reference pair-comparison order.
func (p *Population) updateBiasedFitness(subPop []member) {
	sort.Slice(subPop, func(i, j int) bool {
		return subPop[i].indiv.Cost(p.pm) < subPop[j].indiv.Cost(p.pm)
	})

	size := len(subPop)
	if size == 0 {
		return
	}

	diversityRanked := make([]diversityEntry, size)
	for rank, m := range subPop {
		diversityRanked[rank] = diversityEntry{dist: p.avgDistanceClosest(m.indiv), costRank: rank}
	}

	sort.SliceStable(diversityRanked, func(i, j int) bool {
		a, b := diversityRanked[i], diversityRanked[j]
		if a.dist != b.dist {
			return a.dist > b.dist
		}
		return a.costRank > b.costRank
	})

	popSize := float64(size)
	nbElite := p.cfg.NbElite
	if nbElite > size {
		nbElite = size
	}
	divWeight := 1 - float64(nbElite)/popSize

	for divRank, entry := range diversityRanked {
		subPop[entry.costRank].fitness = (float64(entry.costRank) + divWeight*float64(divRank)) / popSize
	}
}

// avgDistanceClosest returns the mean broken-pairs distance from indiv to
// its NbClose nearest tracked neighbours, or 0 if indiv has none yet.
func (p *Population) avgDistanceClosest(indiv *individual.Individual) float64 {
	prox := p.proximity[indiv]
	if len(prox) == 0 {
		return 0
	}

	maxSize := p.cfg.NbClose
	if maxSize > len(prox) {
		maxSize = len(prox)
	}

	sum := 0.0
	for _, entry := range prox[:maxSize] {
		sum += entry.dist
	}
	return sum / float64(maxSize)
}
