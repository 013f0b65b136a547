package crossover

import (
	"math"

	"github.com/arcrouting/hgs-cvrptw/instance"
)

// insertionCost scores inserting client between prev and next: the detour
// distance D[prev,c]+D[c,next]-D[prev,next], or math.MaxInt if either leg
// cannot be reached before its time window closes. Release times are
// honored the same way the full cost evaluation does: a client cannot be
// serviced, directly or via a neighbor, before the later of the two
// clients' release times.
func insertionCost(data *instance.Data, client, prev, next int) int {
	prevC := data.Client(prev)
	c := data.Client(client)
	nextC := data.Client(next)

	prevRelease := max(prevC.Release, c.Release)
	prevArrival := max(prevRelease+data.Dist(0, prev), prevC.TWEarly)
	prevFinish := prevArrival + prevC.ServiceDuration
	distPrevClient := data.Dist(prev, client)
	if prevFinish+distPrevClient >= c.TWLate {
		return math.MaxInt
	}

	clientRelease := max(c.Release, nextC.Release)
	clientArrival := max(clientRelease+data.Dist(0, client), c.TWEarly)
	clientFinish := clientArrival + c.ServiceDuration
	distClientNext := data.Dist(client, next)
	if clientFinish+distClientNext >= nextC.TWLate {
		return math.MaxInt
	}

	return distPrevClient + distClientNext - data.Dist(prev, next)
}

// GreedyRepair inserts every client in unplanned into routes, each at the
// position minimizing insertionCost, subject to the time-window reachability
// precheck inside insertionCost (spec §4.6 step 5). Candidate positions are
// only scored inside already non-empty routes; if every route happens to be
// empty the client falls back to routes[0] at offset 0. routes is modified
// in place; unplanned is processed in order, so earlier insertions affect
// the detour cost seen by later ones.
func GreedyRepair(routes [][]int, unplanned []int, data *instance.Data) {
	numRoutes := 0
	for i, route := range routes {
		if len(route) != 0 {
			numRoutes = i + 1
		}
	}

	for _, client := range unplanned {
		// Defaults to routes[0] at offset 0, exactly as the reference
		// insertion search does: if every route is empty (numRoutes==0),
		// no candidate is ever scored and the client still lands in
		// routes[0], which is the one case this search does touch an
		// empty route.
		bestCost := math.MaxInt
		bestRoute := 0
		bestOffset := 0

		for rIdx := 0; rIdx < numRoutes; rIdx++ {
			route := routes[rIdx]
			if len(route) == 0 {
				continue
			}

			for idx := 0; idx <= len(route); idx++ {
				var prev, next int
				switch {
				case idx == 0:
					prev, next = 0, route[0]
				case idx == len(route):
					prev, next = route[len(route)-1], 0
				default:
					prev, next = route[idx-1], route[idx]
				}

				cost := insertionCost(data, client, prev, next)
				if cost < bestCost {
					bestCost = cost
					bestRoute = rIdx
					bestOffset = idx
				}
			}
		}

		route := routes[bestRoute]
		route = append(route, 0)
		copy(route[bestOffset+1:], route[bestOffset:])
		route[bestOffset] = client
		routes[bestRoute] = route
	}
}
