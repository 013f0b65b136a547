package population

import (
	"sort"

	"github.com/arcrouting/hgs-cvrptw/diversity"
	"github.com/arcrouting/hgs-cvrptw/individual"
)

// registerNearbyIndividual computes the broken-pairs distance between first
// and second and inserts each into the other's proximity list, keeping both
// lists sorted ascending by distance.
func (p *Population) registerNearbyIndividual(first, second *individual.Individual) {
	dist := diversity.BrokenPairsDistance(p.data.NumClients(), first, second)

	p.proximity[first] = insertSorted(p.proximity[first], proxEntry{dist: dist, other: second})
	p.proximity[second] = insertSorted(p.proximity[second], proxEntry{dist: dist, other: first})
}

func insertSorted(list []proxEntry, e proxEntry) []proxEntry {
	i := sort.Search(len(list), func(i int) bool { return list[i].dist >= e.dist })
	list = append(list, proxEntry{})
	copy(list[i+1:], list[i:])
	list[i] = e
	return list
}

// forgetIndividual removes indiv's own proximity list and every reference
// to it from other Individuals' lists, undoing registerNearbyIndividual.
func (p *Population) forgetIndividual(indiv *individual.Individual) {
	for other, list := range p.proximity {
		for i, e := range list {
			if e.other == indiv {
				p.proximity[other] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
	delete(p.proximity, indiv)
}
