package route

import (
	"math"

	"github.com/arcrouting/hgs-cvrptw/tws"
)

func (r *Route) refreshOrder() {
	r.order = r.order[:0]
	for nd := r.depot.next; nd != r.depot; nd = nd.next {
		r.order = append(r.order, nd)
	}
	r.order = append(r.order, r.depot)
}

// Update recomputes this route's customer order and every cached cumulant
// (load, distance, reversal distance, time-window segments, pseudo-angle)
// from scratch. Callers invoke this after any InsertAfter/SwapWith sequence
// touching the route, before reading position, cumulants or feasibility.
func (r *Route) Update() {
	r.refreshOrder()
	size := r.Size()

	r.cumLoadArr = resize(r.cumLoadArr, size+2)
	r.cumDistArr = resize(r.cumDistArr, size+2)
	r.cumRevDistArr = resize(r.cumRevDistArr, size+2)
	r.twBeforeArr = resizeSeg(r.twBeforeArr, size+2)

	depotClient := r.data.Depot()
	depotTw := tws.Single(0, depotClient.ServiceDuration, depotClient.TWEarly, depotClient.TWLate, depotClient.Release)

	r.twBeforeArr[0] = depotTw
	prevClient := 0

	for i := 1; i <= size; i++ {
		node := r.order[i-1]
		c := r.data.Client(node.Client)
		leg := r.data.Dist(prevClient, node.Client)

		r.cumLoadArr[i] = r.cumLoadArr[i-1] + c.Demand
		r.cumDistArr[i] = r.cumDistArr[i-1] + leg
		r.cumRevDistArr[i] = r.cumRevDistArr[i-1] + r.data.Dist(node.Client, prevClient) - leg

		node.tw = tws.Single(node.Client, c.ServiceDuration, c.TWEarly, c.TWLate, c.Release)
		r.twBeforeArr[i] = tws.Merge(r.twBeforeArr[i-1], node.tw, leg)

		node.position = i
		node.cumLoad = r.cumLoadArr[i]
		node.cumDist = r.cumDistArr[i]
		node.cumRevDist = r.cumRevDistArr[i]
		node.twBefore = r.twBeforeArr[i]

		prevClient = node.Client
	}

	closingLeg := r.data.Dist(prevClient, 0)
	r.cumLoadArr[size+1] = r.cumLoadArr[size]
	r.cumDistArr[size+1] = r.cumDistArr[size] + closingLeg
	r.cumRevDistArr[size+1] = r.cumRevDistArr[size] + r.data.Dist(0, prevClient) - closingLeg
	r.twBeforeArr[size+1] = tws.Merge(r.twBeforeArr[size], depotTw, closingLeg)

	r.depot.tw = depotTw
	r.depot.position = size + 1
	r.depot.cumLoad = r.cumLoadArr[size+1]
	r.depot.cumDist = r.cumDistArr[size+1]
	r.depot.cumRevDist = r.cumRevDistArr[size+1]
	r.depot.twBefore = r.twBeforeArr[size+1]

	r.setupRouteTimeWindowsAfter()
	r.setupAngle()
}

func (r *Route) setupRouteTimeWindowsAfter() {
	size := r.Size()
	r.depot.twAfter = r.depot.tw

	next := r.depot
	for i := size; i >= 1; i-- {
		node := r.order[i-1]
		node.twAfter = tws.Merge(node.tw, next.twAfter, r.data.Dist(node.Client, next.Client))
		next = node
	}
}

// setupAngle computes a pseudo-polar angle of the route's customer centroid
// around the depot, exposed through AngleCenter; crossover does not use it.
// The formula trades exactness for speed relative to atan2 while
// preserving the same sort order.
func (r *Route) setupAngle() {
	if r.Empty() {
		r.angleCenter = math.MaxFloat64
		return
	}

	var cumX, cumY int
	size := r.Size()
	for i := 0; i < size; i++ {
		c := r.data.Client(r.order[i].Client)
		cumX += c.X
		cumY += c.Y
	}

	depot := r.data.Depot()
	n := float64(size)
	dy := float64(cumY)/n - float64(depot.Y)
	dx := float64(cumX)/n - float64(depot.X)

	r.angleCenter = math.Copysign(1-dx/(math.Abs(dx)+math.Abs(dy)), dy)
}

func resize(s []int, n int) []int {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int, n)
}

func resizeSeg(s []tws.Segment, n int) []tws.Segment {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]tws.Segment, n)
}
