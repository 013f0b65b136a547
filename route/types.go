package route

import (
	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/tws"
)

// Node is one location in a Route's doubly-linked circular list: either a
// customer, or the single per-route depot sentinel that closes the loop
// (depot.next is the first customer, the last customer's next is depot).
type Node struct {
	Client int

	route *Route
	prev  *Node
	next  *Node
	depot bool

	position int

	tw       tws.Segment // this node's own time-window segment
	twBefore tws.Segment // merge of route-start..this node
	twAfter  tws.Segment // merge of this node..route-end

	cumLoad    int
	cumDist    int
	cumRevDist int
}

// Route returns the route this node currently belongs to.
func (nd *Node) Route() *Route { return nd.route }

// Prev returns the previous node in the circular list (the depot if nd is
// the first customer).
func (nd *Node) Prev() *Node { return nd.prev }

// Next returns the next node in the circular list (the depot if nd is the
// last customer).
func (nd *Node) Next() *Node { return nd.next }

// IsDepot reports whether nd is a route's depot sentinel.
func (nd *Node) IsDepot() bool { return nd.depot }

// Position returns nd's 1-indexed position among its route's customers; the
// depot sentinel's position is Size()+1.
func (nd *Node) Position() int { return nd.position }

// Tw returns nd's own time-window segment.
func (nd *Node) Tw() tws.Segment { return nd.tw }

// TwBefore returns the merged time-window segment of the route prefix
// ending at (and including) nd.
func (nd *Node) TwBefore() tws.Segment { return nd.twBefore }

// TwAfter returns the merged time-window segment of the route suffix
// starting at (and including) nd.
func (nd *Node) TwAfter() tws.Segment { return nd.twAfter }

// CumulatedLoad returns the total demand from the route start through nd.
func (nd *Node) CumulatedLoad() int { return nd.cumLoad }

// CumulatedDistance returns the total travel distance from the route start
// through nd.
func (nd *Node) CumulatedDistance() int { return nd.cumDist }

// CumulatedReversalDistance returns the travel distance of the route prefix
// ending at nd, as if that prefix were traversed in reverse order. TwoOpt
// uses this to price a within-route segment reversal in O(1).
func (nd *Node) CumulatedReversalDistance() int { return nd.cumRevDist }

// Route is a doubly-linked, circular sequence of customers bracketed by a
// single depot sentinel, with cached prefix cumulants refreshed by Update.
type Route struct {
	idx  int
	data *instance.Data

	depot *Node
	order []*Node // customers in visiting order, depot appended last

	angleCenter float64

	// Prefix cumulants, indexed 0..Size()+1 (0 = depot start, Size()+1 =
	// depot close). Mirrors each Node's own cached fields; kept here too so
	// range queries (DistBetween, LoadBetween, TwBetween) don't need to walk
	// the list.
	cumLoadArr    []int
	cumDistArr    []int
	cumRevDistArr []int
	twBeforeArr   []tws.Segment
}

// Idx returns the route's index within its owning Arena.
func (r *Route) Idx() int { return r.idx }

// Depot returns the route's depot sentinel node.
func (r *Route) Depot() *Node { return r.depot }

// AngleCenter returns the pseudo-polar angle of the route's customer
// centroid. SREX does not read it: crossover keeps each parent's stored
// route order.
func (r *Route) AngleCenter() float64 { return r.angleCenter }

// Empty reports whether the route currently serves no customers.
func (r *Route) Empty() bool { return len(r.order) <= 1 }
