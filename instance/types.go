package instance

import "math"

// MaxCapacity stands in for the original's INT_MAX default: a vehicle
// capacity so large it is never binding unless the instance says otherwise.
const MaxCapacity = math.MaxInt32

// Client holds the static attributes of one location: the depot (id 0) and
// every customer. Coordinates are retained even when distances are given
// explicitly, since downstream angle-sector computations (route package)
// need a 2D position regardless of distance source.
type Client struct {
	X, Y            int
	ServiceDuration int
	Demand          int
	TWEarly         int
	TWLate          int
	Release         int
}

// Data is a fully parsed, immutable CVRP-TW instance: distance matrix plus
// per-location attributes, indexed by location id with the depot at 0.
type Data struct {
	dist     *Matrix
	clients  []Client
	capacity int
	vehicles int
}

// New builds a Data from already-validated components. Intended for tests
// and programmatic construction; Load/Parse is the file-based entry point.
func New(dist *Matrix, clients []Client, capacity, vehicles int) (*Data, error) {
	d := &Data{dist: dist, clients: clients, capacity: capacity, vehicles: vehicles}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Data) validate() error {
	n := len(d.clients)
	if d.dist.N() != n {
		return ErrDimensionMismatch
	}
	depot := d.clients[0]
	if depot.Demand != 0 {
		return ErrNonzeroDepotDemand
	}
	if depot.ServiceDuration != 0 {
		return ErrNonzeroDepotService
	}
	if depot.Release != 0 {
		return ErrNonzeroDepotRelease
	}
	if depot.TWEarly != 0 {
		return ErrNonzeroDepotTWEarly
	}
	for _, c := range d.clients {
		if c.TWEarly >= c.TWLate {
			return ErrInvalidTimeWindow
		}
	}
	return nil
}

// NumClients returns the number of customers, excluding the depot.
func (d *Data) NumClients() int { return len(d.clients) - 1 }

// NumLocations returns the number of locations, depot included.
func (d *Data) NumLocations() int { return len(d.clients) }

// NumVehicles returns the configured (or defaulted) fleet size.
func (d *Data) NumVehicles() int { return d.vehicles }

// VehicleCapacity returns the per-vehicle load capacity.
func (d *Data) VehicleCapacity() int { return d.capacity }

// Client returns the attributes of location id (0 is the depot).
func (d *Data) Client(id int) Client { return d.clients[id] }

// Depot returns the depot's attributes, equivalent to Client(0).
func (d *Data) Depot() Client { return d.clients[0] }

// Dist returns the travel distance from location i to location j.
func (d *Data) Dist(i, j int) int { return d.dist.At(i, j) }

// DistanceMatrix exposes the underlying matrix for components (route, tws)
// that need direct access rather than per-call lookups.
func (d *Data) DistanceMatrix() *Matrix { return d.dist }
