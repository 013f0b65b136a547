package route

import "github.com/arcrouting/hgs-cvrptw/tws"

// Size returns the number of customers on the route (the depot is not
// counted).
func (r *Route) Size() int { return len(r.order) - 1 }

// At returns the node at 1-indexed position pos, where pos in [1, Size()]
// are customers and pos == Size()+1 is the depot. Panics outside that range.
func (r *Route) At(pos int) *Node { return r.order[pos-1] }

// DistBetween returns the travel distance of the route segment from
// position i to position j (0 <= i <= j <= Size()+1, 0 and Size()+1 both
// denoting the depot boundary).
func (r *Route) DistBetween(i, j int) int {
	return r.cumDistArr[j] - r.cumDistArr[i]
}

// LoadBetween returns the total demand of the route segment from position i
// to position j, inclusive of both (1 <= i <= j <= Size()+1).
func (r *Route) LoadBetween(i, j int) int {
	return r.cumLoadArr[j] - r.cumLoadArr[i-1]
}

// TwBetween merges the time-window segments of customers at positions i
// through j, inclusive (1 <= i <= j <= Size()).
func (r *Route) TwBetween(i, j int) tws.Segment {
	seg := r.order[i-1].tw
	prevClient := r.order[i-1].Client
	for k := i; k < j; k++ {
		node := r.order[k]
		seg = tws.Merge(seg, node.tw, r.data.Dist(prevClient, node.Client))
		prevClient = node.Client
	}
	return seg
}

// Load returns the route's total demand.
func (r *Route) Load() int { return r.depot.cumLoad }

// TimeWarp returns the route's total accumulated time warp.
func (r *Route) TimeWarp() int { return r.depot.twBefore.TotalTimeWarp() }

// HasTimeWarp reports whether the route currently violates any time window.
func (r *Route) HasTimeWarp() bool { return r.TimeWarp() > 0 }

// HasExcessCapacity reports whether the route currently exceeds vehicle
// capacity.
func (r *Route) HasExcessCapacity() bool { return r.Load() > r.data.VehicleCapacity() }

// IsFeasible reports whether the route violates neither capacity nor time
// windows.
func (r *Route) IsFeasible() bool { return !r.HasTimeWarp() && !r.HasExcessCapacity() }
