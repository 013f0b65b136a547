package localsearch

import (
	"github.com/arcrouting/hgs-cvrptw/individual"
	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/operators"
	"github.com/arcrouting/hgs-cvrptw/penalty"
	"github.com/arcrouting/hgs-cvrptw/rng"
	"github.com/arcrouting/hgs-cvrptw/route"
)

// nodeOperator is the shared shape of every node-to-node move evaluator in
// package operators (Exchange, TwoOpt, MoveTwoClientsReversed).
type nodeOperator interface {
	Evaluate(u, v *route.Node) int
	Apply(u, v *route.Node)
}

// routeOperator is the shared shape of every route-level move evaluator
// (SwapStar, RelocateStar).
type routeOperator interface {
	Evaluate(routeU, routeV *route.Route) int
	Apply(routeU, routeV *route.Route)
}

// routeChangeNotifier is implemented by route operators that cache
// per-route state and need to be told when a route they don't own mutated
// it (SwapStar's removal-cost and insertion-point caches).
type routeChangeNotifier interface {
	NotifyRouteChanged(r *route.Route)
}

// LocalSearch owns the linked-node working area and the full operator set,
// and repeatedly applies first-improving moves to one Individual until no
// operator finds anything left to improve (spec §4.5).
type LocalSearch struct {
	data *instance.Data
	pm   *penalty.Manager
	cfg  Config
	rng  *rng.XorShift128

	arena *route.Arena

	nodeOps  []nodeOperator
	routeOps []routeOperator

	neighbours [][]int // [client] -> NbGranular nearest clients, ascending
}

// New builds a LocalSearch bound to data and pm, with its working area,
// operator set and granular neighbourhood constructed once up front.
func New(data *instance.Data, pm *penalty.Manager, cfg Config, r *rng.XorShift128) (*LocalSearch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ls := &LocalSearch{
		data:  data,
		pm:    pm,
		cfg:   cfg,
		rng:   r,
		arena: route.NewArena(data),
		nodeOps: []nodeOperator{
			operators.NewExchange(1, 0, data, pm),
			operators.NewExchange(2, 0, data, pm),
			operators.NewExchange(3, 0, data, pm),
			operators.NewExchange(1, 1, data, pm),
			operators.NewExchange(2, 2, data, pm),
			operators.NewExchange(3, 3, data, pm),
			operators.NewTwoOpt(data, pm),
			operators.NewMoveTwoClientsReversed(data, pm),
		},
		routeOps: []routeOperator{
			operators.NewSwapStar(data, pm),
			operators.NewRelocateStar(data, pm),
		},
	}
	ls.buildNeighbours()

	return ls, nil
}

// touch refreshes r's cached cumulants after a structural mutation and
// tells every cache-carrying route operator that r changed.
func (ls *LocalSearch) touch(r *route.Route) {
	r.Update()
	for _, op := range ls.routeOps {
		if n, ok := op.(routeChangeNotifier); ok {
			n.NotifyRouteChanged(r)
		}
	}
}

// tryAgainstTarget runs every node operator on the ordered pair (u, v),
// applying and reporting true on the first improving move found.
func (ls *LocalSearch) tryAgainstTarget(u, v *route.Node) bool {
	if u == v {
		return false
	}

	for _, op := range ls.nodeOps {
		if delta := op.Evaluate(u, v); delta < 0 {
			ru, rv := u.Route(), v.Route()
			op.Apply(u, v)
			ls.touch(ru)
			if rv != ru {
				ls.touch(rv)
			}
			return true
		}
	}
	return false
}

// tryNodeMoves evaluates every operator against u's own route depot and
// against every candidate in its granular neighbour list (both orderings,
// since most operators are not symmetric in their arguments), plus each
// distinct neighbour route's depot once.
func (ls *LocalSearch) tryNodeMoves(u *route.Node) bool {
	seenRoutes := map[*route.Route]bool{u.Route(): true}

	if ls.tryAgainstTarget(u, u.Route().Depot()) {
		return true
	}

	for _, cid := range ls.neighbours[u.Client] {
		v := ls.arena.NodeByClient(cid)

		if ls.tryAgainstTarget(u, v) {
			return true
		}
		if ls.tryAgainstTarget(v, u) {
			return true
		}

		if vr := v.Route(); !seenRoutes[vr] {
			seenRoutes[vr] = true
			if ls.tryAgainstTarget(u, vr.Depot()) {
				return true
			}
		}
	}

	return false
}

// tryRouteMoves sweeps every distinct pair of routes through the
// route-level operators, applying every improving move it finds.
func (ls *LocalSearch) tryRouteMoves() bool {
	routes := ls.arena.Routes()
	improved := false

	for i := 0; i < len(routes); i++ {
		for j := i + 1; j < len(routes); j++ {
			ru, rv := routes[i], routes[j]
			if ru.Empty() && rv.Empty() {
				continue
			}

			for _, op := range ls.routeOps {
				if delta := op.Evaluate(ru, rv); delta < 0 {
					op.Apply(ru, rv)
					ls.touch(ru)
					ls.touch(rv)
					improved = true
				}
			}
		}
	}

	return improved
}

// Educate loads ind's routes into the working area, repeatedly applies
// first-improving node moves in randomized client order, falls back to a
// route-level sweep once a full node pass yields nothing, postprocesses
// with exact short-subpath enumeration, and returns the resulting
// Individual.
func (ls *LocalSearch) Educate(ind *individual.Individual) (*individual.Individual, error) {
	ls.arena.Reset(ind.Routes())

	for {
		nodeImproved := false
		for _, i := range ls.rng.PermRange(ls.data.NumClients()) {
			u := ls.arena.NodeByClient(i + 1)
			if ls.tryNodeMoves(u) {
				nodeImproved = true
			}
		}
		if nodeImproved {
			continue
		}

		if ls.tryRouteMoves() {
			continue
		}

		break
	}

	ls.postprocess()

	return ls.extract()
}

// extract reads the working area's current route partition back out into a
// fresh Individual.
func (ls *LocalSearch) extract() (*individual.Individual, error) {
	routes := make([][]int, ls.arena.NumRoutes())
	for i, r := range ls.arena.Routes() {
		clients := make([]int, r.Size())
		for p := 1; p <= r.Size(); p++ {
			clients[p-1] = r.At(p).Client
		}
		routes[i] = clients
	}
	return individual.NewFromRoutes(ls.data, routes)
}
