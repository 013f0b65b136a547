package localsearch

import "sort"

// Neighbours returns client's granular candidate list, ascending by
// surrogate proximity.
func (ls *LocalSearch) Neighbours(client int) []int { return ls.neighbours[client] }

// buildNeighbours computes, for every client, the NbGranular other clients
// minimizing a surrogate proximity that blends travel distance with the
// wait time and time warp incurred by visiting one right after the other
// (spec §4.5). Proximity is made symmetric by taking the cheaper of the two
// visiting orders, since a granular candidate list is undirected.
func (ls *LocalSearch) buildNeighbours() {
	nc := ls.data.NumClients()
	ls.neighbours = make([][]int, nc+1)

	type candidate struct {
		id    int
		score int
	}

	for c := 1; c <= nc; c++ {
		candidates := make([]candidate, 0, nc-1)
		for o := 1; o <= nc; o++ {
			if o == c {
				continue
			}
			candidates = append(candidates, candidate{id: o, score: ls.proximity(c, o)})
		}
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].score != candidates[j].score {
				return candidates[i].score < candidates[j].score
			}
			return candidates[i].id < candidates[j].id
		})

		k := ls.cfg.NbGranular
		if k > len(candidates) {
			k = len(candidates)
		}

		ids := make([]int, k)
		for i := 0; i < k; i++ {
			ids[i] = candidates[i].id
		}
		ls.neighbours[c] = ids
	}
}

// proximity returns the granular-neighbourhood surrogate distance between
// clients a and b.
func (ls *LocalSearch) proximity(a, b int) int {
	return min(ls.directedProximity(a, b), ls.directedProximity(b, a))
}

// directedProximity prices visiting b immediately after a: the travel leg
// plus any wait or time warp that arrival pattern would incur at b.
func (ls *LocalSearch) directedProximity(a, b int) int {
	ca := ls.data.Client(a)
	cb := ls.data.Client(b)

	travel := ls.data.Dist(a, b)
	arrival := ca.TWEarly + ca.ServiceDuration + travel

	wait := max(cb.TWEarly-arrival, 0)
	tw := max(arrival-cb.TWLate, 0)

	return travel + ls.cfg.WeightWaitTime*wait + ls.cfg.WeightTimeWarp*tw
}
