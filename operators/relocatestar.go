package operators

import (
	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/penalty"
	"github.com/arcrouting/hgs-cvrptw/route"
)

type relocateStarMove struct {
	cost int
	u, v *route.Node
}

// RelocateStar finds the cheapest single-client relocation between two
// routes, trying every client of each route as both the moved client and
// the insertion anchor of the other (spec §4.3, §4.4). Built on a plain
// Exchange{1,0}.
type RelocateStar struct {
	relocate *Exchange
	move     relocateStarMove
}

// NewRelocateStar builds a RelocateStar operator bound to data and pm.
func NewRelocateStar(data *instance.Data, pm *penalty.Manager) *RelocateStar {
	return &RelocateStar{relocate: NewExchange(1, 0, data, pm)}
}

// Evaluate returns the delta cost of the best single-client relocation
// between routeU and routeV, in either direction, and caches it for a
// following Apply.
func (r *RelocateStar) Evaluate(routeU, routeV *route.Route) int {
	r.move = relocateStarMove{}

	for nodeU := routeU.Depot().Next(); !nodeU.IsDepot(); nodeU = nodeU.Next() {
		deltaCost := r.relocate.Evaluate(nodeU, routeV.Depot()) // test nodeU after depot
		if deltaCost < r.move.cost {
			r.move = relocateStarMove{cost: deltaCost, u: nodeU, v: routeV.Depot()}
		}

		for nodeV := routeV.Depot().Next(); !nodeV.IsDepot(); nodeV = nodeV.Next() {
			deltaCost = r.relocate.Evaluate(nodeU, nodeV) // test nodeU after nodeV
			if deltaCost < r.move.cost {
				r.move = relocateStarMove{cost: deltaCost, u: nodeU, v: nodeV}
			}

			deltaCost = r.relocate.Evaluate(nodeV, nodeU) // test nodeV after nodeU
			if deltaCost < r.move.cost {
				r.move = relocateStarMove{cost: deltaCost, u: nodeV, v: nodeU}
			}
		}
	}

	return r.move.cost
}

// Apply performs the relocation priced by the most recent Evaluate call.
// Callers must call Route.Update on both affected routes afterward.
func (r *RelocateStar) Apply(routeU, routeV *route.Route) {
	if r.move.u != nil && r.move.v != nil {
		r.relocate.Apply(r.move.u, r.move.v)
	}
}
