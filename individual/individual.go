package individual

import (
	"sort"

	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/penalty"
	"github.com/arcrouting/hgs-cvrptw/rng"
)

// Individual is one candidate solution: a partition of clients into at most
// NumVehicles routes, plus the derived cost statistics (spec §3).
type Individual struct {
	data *instance.Data

	routes     [][]int
	neighbours [][2]int // [client] -> {pred, succ}; index 0 unused

	nbRoutes       int
	distance       int
	capacityExcess int
	timeWarp       int
}

// NumRoutes returns the number of non-empty routes.
func (ind *Individual) NumRoutes() int { return ind.nbRoutes }

// Routes returns the full route partition (length NumVehicles; trailing
// routes may be empty).
func (ind *Individual) Routes() [][]int { return ind.routes }

// Neighbours returns, for each client id, its predecessor and successor in
// its route (both 0 for the depot entry and for unused slots).
func (ind *Individual) Neighbours() [][2]int { return ind.neighbours }

// Distance returns total travel distance across all routes.
func (ind *Individual) Distance() int { return ind.distance }

// CapacityExcess returns the summed capacity violation across all routes.
func (ind *Individual) CapacityExcess() int { return ind.capacityExcess }

// TimeWarp returns the summed time-warp violation across all routes.
func (ind *Individual) TimeWarp() int { return ind.timeWarp }

// IsFeasible reports whether the individual violates neither capacity nor
// time windows.
func (ind *Individual) IsFeasible() bool {
	return !ind.HasExcessCapacity() && !ind.HasTimeWarp()
}

// HasExcessCapacity reports whether any route exceeds vehicle capacity.
func (ind *Individual) HasExcessCapacity() bool { return ind.capacityExcess > 0 }

// HasTimeWarp reports whether any route violates a time window.
func (ind *Individual) HasTimeWarp() bool { return ind.timeWarp > 0 }

// Cost returns distance plus the penalty-weighted capacity and time-warp
// violations, using mgr's current weights.
func (ind *Individual) Cost(mgr *penalty.Manager) int {
	load := ind.data.VehicleCapacity() + ind.capacityExcess
	return ind.distance + int(mgr.LoadPenalty(uint(load))) + mgr.TwPenalty(ind.timeWarp)
}

// evaluateCompleteCost recomputes nbRoutes, distance, capacityExcess and
// timeWarp from routes_ by direct simulation — grounded on the same
// arrival-time walk the route package's TWS algebra is designed to
// reproduce incrementally.
func (ind *Individual) evaluateCompleteCost() {
	ind.nbRoutes = 0
	ind.distance = 0
	ind.capacityExcess = 0
	ind.timeWarp = 0

	data := ind.data

	for _, r := range ind.routes {
		if len(r) == 0 {
			break // first empty route implies all subsequent routes are empty too
		}
		ind.nbRoutes++

		lastRelease := 0
		for _, id := range r {
			if rel := data.Client(id).Release; rel > lastRelease {
				lastRelease = rel
			}
		}

		first := data.Client(r[0])
		rDist := data.Dist(0, r[0])
		rTimeWarp := 0
		load := first.Demand
		time := lastRelease + rDist

		if time < first.TWEarly {
			time = first.TWEarly
		}
		if time > first.TWLate {
			rTimeWarp += time - first.TWLate
			time = first.TWLate
		}

		for i := 1; i < len(r); i++ {
			prev := data.Client(r[i-1])
			cur := data.Client(r[i])
			leg := data.Dist(r[i-1], r[i])

			rDist += leg
			load += cur.Demand
			time += prev.ServiceDuration + leg

			if time < cur.TWEarly {
				time = cur.TWEarly
			}
			if time > cur.TWLate {
				rTimeWarp += time - cur.TWLate
				time = cur.TWLate
			}
		}

		last := data.Client(r[len(r)-1])
		rDist += data.Dist(r[len(r)-1], 0)
		time += last.ServiceDuration + data.Dist(r[len(r)-1], 0)

		depotLate := data.Depot().TWLate
		if excess := time - depotLate; excess > 0 {
			rTimeWarp += excess
		}

		ind.distance += rDist
		ind.timeWarp += rTimeWarp
		if excess := load - data.VehicleCapacity(); excess > 0 {
			ind.capacityExcess += excess
		}
	}
}

func (ind *Individual) makeNeighbours() {
	ind.neighbours = make([][2]int, ind.data.NumClients()+1)

	for _, r := range ind.routes {
		for i, id := range r {
			pred, succ := 0, 0
			if i > 0 {
				pred = r[i-1]
			}
			if i < len(r)-1 {
				succ = r[i+1]
			}
			ind.neighbours[id] = [2]int{pred, succ}
		}
	}
}

// NewRandom builds an Individual by shuffling all clients and distributing
// them evenly (in shuffled order) over the available vehicles.
func NewRandom(data *instance.Data, r *rng.XorShift128) *Individual {
	nbClients := data.NumClients()
	nbVehicles := data.NumVehicles()

	clients := make([]int, nbClients)
	for i := range clients {
		clients[i] = i + 1
	}
	r.Shuffle(clients)

	perVehicle := nbClients / nbVehicles
	if perVehicle < 1 {
		perVehicle = 1
	}
	perRoute := perVehicle
	if nbClients%nbVehicles != 0 {
		perRoute++
	}

	routes := make([][]int, nbVehicles)
	for i, id := range clients {
		slot := i / perRoute
		routes[slot] = append(routes[slot], id)
	}

	ind := &Individual{data: data, routes: routes}
	ind.makeNeighbours()
	ind.evaluateCompleteCost()
	return ind
}

// NewFromRoutes builds an Individual from a caller-supplied partition. Empty
// routes are stable-sorted to the end so downstream code can rely on the
// "first empty route means the rest are empty" convention.
func NewFromRoutes(data *instance.Data, routes [][]int) (*Individual, error) {
	if len(routes) != data.NumVehicles() {
		return nil, ErrRouteCountMismatch
	}

	cp := make([][]int, len(routes))
	copy(cp, routes)
	sort.SliceStable(cp, func(i, j int) bool {
		return len(cp[i]) != 0 && len(cp[j]) == 0
	})

	ind := &Individual{data: data, routes: cp}
	ind.makeNeighbours()
	ind.evaluateCompleteCost()
	return ind, nil
}
