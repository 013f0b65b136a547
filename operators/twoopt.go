package operators

import (
	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/penalty"
	"github.com/arcrouting/hgs-cvrptw/route"
	"github.com/arcrouting/hgs-cvrptw/tws"
)

// TwoOpt reverses a route segment (within one route) or reconnects the
// tails of two routes (between routes), spec §4.3.
type TwoOpt struct {
	data *instance.Data
	pm   *penalty.Manager
}

// NewTwoOpt builds a TwoOpt operator bound to data and pm.
func NewTwoOpt(data *instance.Data, pm *penalty.Manager) *TwoOpt {
	return &TwoOpt{data: data, pm: pm}
}

func (t *TwoOpt) evalWithinRoute(u, v *route.Node) int {
	if u.Position()+1 >= v.Position() {
		return 0
	}

	deltaCost := t.data.Dist(u.Client, v.Client) +
		t.data.Dist(u.Next().Client, v.Next().Client) +
		v.CumulatedReversalDistance() -
		t.data.Dist(u.Client, u.Next().Client) -
		t.data.Dist(v.Client, v.Next().Client) -
		u.Next().CumulatedReversalDistance()

	r := u.Route()
	if !r.HasTimeWarp() && deltaCost >= 0 {
		return deltaCost
	}

	segTWS := u.TwBefore()
	for node := v; node != u; node = node.Prev() {
		segTWS = tws.Merge(segTWS, node.Tw(), t.data.Dist(segTWS.IdxLast, node.Client))
	}
	segTWS = tws.Merge(segTWS, v.Next().TwAfter(), t.data.Dist(segTWS.IdxLast, v.Next().Client))

	deltaCost += t.pm.TwPenalty(segTWS.TotalTimeWarp())
	deltaCost -= t.pm.TwPenalty(r.TimeWarp())

	return deltaCost
}

func (t *TwoOpt) evalBetweenRoutes(u, v *route.Node) int {
	current := t.data.Dist(u.Client, u.Next().Client) + t.data.Dist(v.Client, v.Next().Client)
	proposed := t.data.Dist(u.Client, v.Next().Client) + t.data.Dist(v.Client, u.Next().Client)

	deltaCost := proposed - current

	ur, vr := u.Route(), v.Route()
	if ur.IsFeasible() && vr.IsFeasible() && deltaCost >= 0 {
		return deltaCost
	}

	uTWS := tws.Merge(u.TwBefore(), v.Next().TwAfter(), t.data.Dist(u.Client, v.Next().Client))
	deltaCost += t.pm.TwPenalty(uTWS.TotalTimeWarp())
	deltaCost -= t.pm.TwPenalty(ur.TimeWarp())

	vTWS := tws.Merge(v.TwBefore(), u.Next().TwAfter(), t.data.Dist(v.Client, u.Next().Client))
	deltaCost += t.pm.TwPenalty(vTWS.TotalTimeWarp())
	deltaCost -= t.pm.TwPenalty(vr.TimeWarp())

	deltaLoad := u.CumulatedLoad() - v.CumulatedLoad()

	deltaCost += int(t.pm.LoadPenalty(uint(max(ur.Load()-deltaLoad, 0))))
	deltaCost -= int(t.pm.LoadPenalty(uint(ur.Load())))

	deltaCost += int(t.pm.LoadPenalty(uint(vr.Load() + deltaLoad)))
	deltaCost -= int(t.pm.LoadPenalty(uint(vr.Load())))

	return deltaCost
}

func (t *TwoOpt) applyWithinRoute(u, v *route.Node) {
	itRoute := v
	insertionPoint := u
	currNext := u.Next()

	for itRoute != currNext {
		current := itRoute
		itRoute = itRoute.Prev()
		current.InsertAfter(insertionPoint)
		insertionPoint = current
	}
}

func (t *TwoOpt) applyBetweenRoutes(u, v *route.Node) {
	itRouteU := u.Next()
	itRouteV := v.Next()

	insertLocation := u
	for !itRouteV.IsDepot() {
		node := itRouteV
		itRouteV = itRouteV.Next()
		node.InsertAfter(insertLocation)
		insertLocation = node
	}

	insertLocation = v
	for !itRouteU.IsDepot() {
		node := itRouteU
		itRouteU = itRouteU.Next()
		node.InsertAfter(insertLocation)
		insertLocation = node
	}
}

// Evaluate returns the delta cost of the 2-opt move between U and V; 0 if
// the pair falls to the later iteration that will process it the other way
// around (U and V's roles are fixed by route index order).
func (t *TwoOpt) Evaluate(u, v *route.Node) int {
	if u.Route().Idx() > v.Route().Idx() {
		return 0
	}
	if u.Route() == v.Route() {
		return t.evalWithinRoute(u, v)
	}
	return t.evalBetweenRoutes(u, v)
}

// Apply performs the 2-opt move priced by the most recent Evaluate(U, V).
// Callers must call Route.Update on both affected routes afterward.
func (t *TwoOpt) Apply(u, v *route.Node) {
	if u.Route() == v.Route() {
		t.applyWithinRoute(u, v)
	} else {
		t.applyBetweenRoutes(u, v)
	}
}
