package operators

import (
	"math"

	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/penalty"
	"github.com/arcrouting/hgs-cvrptw/route"
	"github.com/arcrouting/hgs-cvrptw/tws"
)

// threeBest caches the three cheapest insertion points for one client in one
// route, keyed externally by (route index, client).
type threeBest struct {
	shouldUpdate bool
	costs        [3]int
	locs         [3]*route.Node
}

func newThreeBest() threeBest {
	return threeBest{
		shouldUpdate: true,
		costs:        [3]int{math.MaxInt, math.MaxInt, math.MaxInt},
	}
}

func (tb *threeBest) maybeAdd(cost int, loc *route.Node) {
	if cost >= tb.costs[2] {
		return
	}

	if cost >= tb.costs[1] {
		tb.costs[2], tb.locs[2] = cost, loc
	} else if cost >= tb.costs[0] {
		tb.costs[2], tb.locs[2] = tb.costs[1], tb.locs[1]
		tb.costs[1], tb.locs[1] = cost, loc
	} else {
		tb.costs[2], tb.locs[2] = tb.costs[1], tb.locs[1]
		tb.costs[1], tb.locs[1] = tb.costs[0], tb.locs[0]
		tb.costs[0], tb.locs[0] = cost, loc
	}
}

type swapStarMove struct {
	cost      int
	u, uAfter *route.Node
	v, vAfter *route.Node
}

// SwapStar explores free-form exchanges of a client U from route U's route
// with a client V from route V's route: both are reinserted at whichever of
// their three cheapest cached positions remains valid, so the two clients
// need not swap into each other's old slot (spec §4.3, §4.4). Grounded on
// Thibaut Vidal, "Hybrid genetic search for the CVRP: Open-source
// implementation and SWAP* neighborhood", Comput. Oper. Res. 140 (2022).
type SwapStar struct {
	data *instance.Data
	pm   *penalty.Manager

	cache        [][]threeBest // [routeIdx][client]
	removalCosts [][]int       // [routeIdx][client]
	updated      []bool        // [routeIdx]

	best swapStarMove
}

// NewSwapStar builds a SwapStar operator bound to data and pm.
func NewSwapStar(data *instance.Data, pm *penalty.Manager) *SwapStar {
	nv := data.NumVehicles()
	nc := data.NumClients()

	cache := make([][]threeBest, nv)
	removalCosts := make([][]int, nv)
	for i := range cache {
		cache[i] = make([]threeBest, nc+1)
		for c := range cache[i] {
			cache[i][c] = newThreeBest()
		}
		removalCosts[i] = make([]int, nc+1)
	}

	updated := make([]bool, nv)
	for i := range updated {
		updated[i] = true
	}

	return &SwapStar{data: data, pm: pm, cache: cache, removalCosts: removalCosts, updated: updated}
}

// NotifyRouteChanged marks r's removal costs and insertion-point cache stale;
// callers must invoke this for every route touched by an applied move since
// the operator's previous use.
func (s *SwapStar) NotifyRouteChanged(r *route.Route) {
	s.updated[r.Idx()] = true
}

func (s *SwapStar) updateRemovalCosts(r *route.Route) {
	currTW := s.pm.TwPenalty(r.TimeWarp())

	for u := r.Depot().Next(); !u.IsDepot(); u = u.Next() {
		twData := tws.Merge(u.Prev().TwBefore(), u.Next().TwAfter(), s.data.Dist(u.Prev().Client, u.Next().Client))

		s.removalCosts[r.Idx()][u.Client] = s.data.Dist(u.Prev().Client, u.Next().Client) -
			dist3(s.data, u.Prev().Client, u.Client, u.Next().Client) +
			s.pm.TwPenalty(twData.TotalTimeWarp()) - currTW
	}
}

func (s *SwapStar) updateInsertionCost(r *route.Route, u *route.Node) {
	tb := &s.cache[r.Idx()][u.Client]
	*tb = newThreeBest()
	tb.shouldUpdate = false

	depot := r.Depot()
	twData := tws.MergeAll(s.data.Dist, depot.TwBefore(), u.Tw(), depot.Next().TwAfter())
	cost := dist3(s.data, 0, u.Client, depot.Next().Client) -
		s.data.Dist(0, depot.Next().Client) +
		s.pm.TwPenalty(twData.TotalTimeWarp()) -
		s.pm.TwPenalty(r.TimeWarp())
	tb.maybeAdd(cost, depot)

	for v := depot.Next(); !v.IsDepot(); v = v.Next() {
		twData = tws.MergeAll(s.data.Dist, v.TwBefore(), u.Tw(), v.Next().TwAfter())
		deltaCost := dist3(s.data, v.Client, u.Client, v.Next().Client) -
			s.data.Dist(v.Client, v.Next().Client) +
			s.pm.TwPenalty(twData.TotalTimeWarp()) -
			s.pm.TwPenalty(r.TimeWarp())
		tb.maybeAdd(deltaCost, v)
	}
}

// getBestInsertPoint returns the delta cost and reinsertion point for u in
// v's route, assuming v itself is removed from it.
func (s *SwapStar) getBestInsertPoint(u, v *route.Node) (int, *route.Node) {
	vr := v.Route()
	tb := &s.cache[vr.Idx()][u.Client]

	if tb.shouldUpdate {
		s.updateInsertionCost(vr, u)
		tb = &s.cache[vr.Idx()][u.Client]
	}

	for i := 0; i != 3; i++ {
		if tb.locs[i] != nil && tb.locs[i] != v && tb.locs[i].Next() != v {
			return tb.costs[i], tb.locs[i]
		}
	}

	twData := tws.MergeAll(s.data.Dist, v.Prev().TwBefore(), u.Tw(), v.Next().TwAfter())
	deltaCost := dist3(s.data, v.Prev().Client, u.Client, v.Next().Client) -
		s.data.Dist(v.Prev().Client, v.Next().Client) +
		s.pm.TwPenalty(twData.TotalTimeWarp()) -
		s.pm.TwPenalty(vr.TimeWarp())

	return deltaCost, v.Prev()
}

// Evaluate returns the delta cost of the best SWAP* move found between
// routeU and routeV's clients, and caches it for a following Apply.
func (s *SwapStar) Evaluate(routeU, routeV *route.Route) int {
	s.best = swapStarMove{}

	if s.updated[routeV.Idx()] {
		s.updateRemovalCosts(routeV)
		s.updated[routeV.Idx()] = false
		for c := 1; c <= s.data.NumClients(); c++ {
			s.cache[routeV.Idx()][c].shouldUpdate = true
		}
	}

	if s.updated[routeU.Idx()] {
		s.updateRemovalCosts(routeU)
		s.updated[routeU.Idx()] = false
		for c := 1; c <= s.data.NumClients(); c++ {
			s.cache[routeU.Idx()][c].shouldUpdate = true
		}
	}

	for u := routeU.Depot().Next(); !u.IsDepot(); u = u.Next() {
		for v := routeV.Depot().Next(); !v.IsDepot(); v = v.Next() {
			uDemand := s.data.Client(u.Client).Demand
			vDemand := s.data.Client(v.Client).Demand
			loadDiff := uDemand - vDemand

			deltaCost := int(s.pm.LoadPenalty(uint(max(routeU.Load()-loadDiff, 0))))
			deltaCost -= int(s.pm.LoadPenalty(uint(routeU.Load())))
			deltaCost += int(s.pm.LoadPenalty(uint(max(routeV.Load()+loadDiff, 0))))
			deltaCost -= int(s.pm.LoadPenalty(uint(routeV.Load())))

			deltaCost += s.removalCosts[routeU.Idx()][u.Client]
			deltaCost += s.removalCosts[routeV.Idx()][v.Client]

			if deltaCost >= 0 {
				continue
			}

			extraV, uAfter := s.getBestInsertPoint(u, v)
			deltaCost += extraV
			if deltaCost >= 0 {
				continue
			}

			extraU, vAfter := s.getBestInsertPoint(v, u)
			deltaCost += extraU

			if deltaCost < s.best.cost {
				s.best = swapStarMove{cost: deltaCost, u: u, uAfter: uAfter, v: v, vAfter: vAfter}
			}
		}
	}

	if s.best.cost >= 0 {
		return s.best.cost
	}

	return s.fullEvaluate(routeU, routeV)
}

// fullEvaluate re-prices the cached best move including time-warp penalties,
// which the coarse scan above skips for speed.
func (s *SwapStar) fullEvaluate(routeU, routeV *route.Route) int {
	best := s.best

	current := dist3(s.data, best.u.Prev().Client, best.u.Client, best.u.Next().Client) +
		dist3(s.data, best.v.Prev().Client, best.v.Client, best.v.Next().Client)
	proposed := s.data.Dist(best.vAfter.Client, best.v.Client) + s.data.Dist(best.uAfter.Client, best.u.Client)

	deltaCost := proposed - current

	if best.vAfter == best.u.Prev() {
		deltaCost += s.data.Dist(best.v.Client, best.u.Next().Client)
	} else {
		deltaCost += s.data.Dist(best.v.Client, best.vAfter.Next().Client) +
			s.data.Dist(best.u.Prev().Client, best.u.Next().Client) -
			s.data.Dist(best.vAfter.Client, best.vAfter.Next().Client)
	}

	if best.uAfter == best.v.Prev() {
		deltaCost += s.data.Dist(best.u.Client, best.v.Next().Client)
	} else {
		deltaCost += s.data.Dist(best.u.Client, best.uAfter.Next().Client) +
			s.data.Dist(best.v.Prev().Client, best.v.Next().Client) -
			s.data.Dist(best.uAfter.Client, best.uAfter.Next().Client)
	}

	// uAfter == v and vAfter == u cannot both hold, so these positions
	// are always strictly different.
	if best.vAfter.Position()+1 == best.u.Position() {
		uTWS := tws.MergeAll(s.data.Dist, best.vAfter.TwBefore(), best.v.Tw(), best.u.Next().TwAfter())
		deltaCost += s.pm.TwPenalty(uTWS.TotalTimeWarp())
	} else if best.vAfter.Position() < best.u.Position() {
		uTWS := tws.MergeAll(s.data.Dist,
			best.vAfter.TwBefore(), best.v.Tw(),
			routeU.TwBetween(best.vAfter.Position()+1, best.u.Position()-1),
			best.u.Next().TwAfter())
		deltaCost += s.pm.TwPenalty(uTWS.TotalTimeWarp())
	} else {
		uTWS := tws.MergeAll(s.data.Dist,
			best.u.Prev().TwBefore(),
			routeU.TwBetween(best.u.Position()+1, best.vAfter.Position()),
			best.v.Tw(), best.vAfter.Next().TwAfter())
		deltaCost += s.pm.TwPenalty(uTWS.TotalTimeWarp())
	}

	if best.uAfter.Position()+1 == best.v.Position() {
		vTWS := tws.MergeAll(s.data.Dist, best.uAfter.TwBefore(), best.u.Tw(), best.v.Next().TwAfter())
		deltaCost += s.pm.TwPenalty(vTWS.TotalTimeWarp())
	} else if best.uAfter.Position() < best.v.Position() {
		vTWS := tws.MergeAll(s.data.Dist,
			best.uAfter.TwBefore(), best.u.Tw(),
			routeV.TwBetween(best.uAfter.Position()+1, best.v.Position()-1),
			best.v.Next().TwAfter())
		deltaCost += s.pm.TwPenalty(vTWS.TotalTimeWarp())
	} else {
		vTWS := tws.MergeAll(s.data.Dist,
			best.v.Prev().TwBefore(),
			routeV.TwBetween(best.v.Position()+1, best.uAfter.Position()),
			best.u.Tw(), best.uAfter.Next().TwAfter())
		deltaCost += s.pm.TwPenalty(vTWS.TotalTimeWarp())
	}

	deltaCost -= s.pm.TwPenalty(routeU.TimeWarp())
	deltaCost -= s.pm.TwPenalty(routeV.TimeWarp())

	uDemand := s.data.Client(best.u.Client).Demand
	vDemand := s.data.Client(best.v.Client).Demand

	deltaCost += int(s.pm.LoadPenalty(uint(max(routeU.Load()-uDemand+vDemand, 0))))
	deltaCost -= int(s.pm.LoadPenalty(uint(routeU.Load())))
	deltaCost += int(s.pm.LoadPenalty(uint(max(routeV.Load()+uDemand-vDemand, 0))))
	deltaCost -= int(s.pm.LoadPenalty(uint(routeV.Load())))

	return deltaCost
}

// Apply performs the SWAP* move priced by the most recent Evaluate call.
// Callers must call Route.Update on both affected routes, and then
// NotifyRouteChanged on every route touched since, afterward.
func (s *SwapStar) Apply(routeU, routeV *route.Route) {
	if s.best.u != nil && s.best.uAfter != nil && s.best.v != nil && s.best.vAfter != nil {
		s.best.u.InsertAfter(s.best.uAfter)
		s.best.v.InsertAfter(s.best.vAfter)
	}
}
