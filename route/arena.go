package route

import "github.com/arcrouting/hgs-cvrptw/instance"

// Arena owns every Node and Route used during one local-search pass: one
// Node per customer (indexed by client id) plus one Route (and its depot
// sentinel) per vehicle, all pre-allocated and reused across Reset calls to
// avoid per-call allocation (spec §5: exclusive ownership, reused working
// area).
type Arena struct {
	data *instance.Data

	nodes  []*Node // indexed by client id, 1..NumClients (index 0 unused)
	routes []*Route
}

// NewArena allocates the working area for data, sized for one node per
// customer and one route per vehicle.
func NewArena(data *instance.Data) *Arena {
	a := &Arena{data: data}

	a.nodes = make([]*Node, data.NumLocations())
	for id := 1; id <= data.NumClients(); id++ {
		a.nodes[id] = &Node{Client: id}
	}

	a.routes = make([]*Route, data.NumVehicles())
	for idx := range a.routes {
		depot := &Node{Client: 0, depot: true}
		depot.next = depot
		depot.prev = depot

		r := &Route{idx: idx, data: data, depot: depot}
		depot.route = r
		a.routes[idx] = r
	}

	return a
}

// NodeByClient returns the arena's Node for the given customer id.
func (a *Arena) NodeByClient(id int) *Node { return a.nodes[id] }

// Routes returns every route in the arena, including currently empty ones.
func (a *Arena) Routes() []*Route { return a.routes }

// NumRoutes returns the number of routes (vehicles) the arena manages.
func (a *Arena) NumRoutes() int { return len(a.routes) }

// Reset rewires every route's circular list to match assignment (one slice
// of client ids per route, outer length must not exceed NumRoutes) and
// refreshes all cached cumulants. Assignment slots beyond len(assignment)
// are cleared to empty routes.
func (a *Arena) Reset(assignment [][]int) {
	if len(assignment) > len(a.routes) {
		panic("route: assignment has more routes than the arena provides")
	}

	for idx, r := range a.routes {
		depot := r.depot
		depot.next = depot
		depot.prev = depot

		var clients []int
		if idx < len(assignment) {
			clients = assignment[idx]
		}

		prev := depot
		for _, id := range clients {
			nd := a.nodes[id]
			nd.route = r
			nd.prev, nd.next = nil, nil // drop links left from the previous assignment
			nd.insertAfterRaw(prev)
			prev = nd
		}

		r.Update()
	}
}
