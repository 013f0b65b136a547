package localsearch

import (
	"math"

	"github.com/arcrouting/hgs-cvrptw/route"
)

// postprocess exhaustively re-orders every PostProcessPathLength-long
// subpath of every route that is at least that long, replacing it with the
// permutation minimizing the distance from the subpath's fixed predecessor
// to its fixed successor (spec §4.5 step 7). Disabled when
// PostProcessPathLength is 0.
func (ls *LocalSearch) postprocess() {
	length := ls.cfg.PostProcessPathLength
	if length < 1 {
		return
	}

	for _, r := range ls.arena.Routes() {
		size := r.Size()
		if size < length {
			continue
		}
		for start := 1; start+length-1 <= size; start++ {
			ls.improveSubpath(r, start, length)
		}
	}
}

// improveSubpath re-orders the length-node window starting at position
// start within r, if some permutation strictly beats the current order.
func (ls *LocalSearch) improveSubpath(r *route.Route, start, length int) {
	nodes := make([]*route.Node, length)
	clients := make([]int, length)
	for i := 0; i < length; i++ {
		nodes[i] = r.At(start + i)
		clients[i] = nodes[i].Client
	}

	prevClient := 0
	if start > 1 {
		prevClient = r.At(start - 1).Client
	}
	nextClient := 0
	if start+length-1 < r.Size() {
		nextClient = r.At(start + length).Client
	}

	bestCost := math.MaxInt
	var bestOrder []int

	permute(length, func(perm []int) {
		cost := ls.data.Dist(prevClient, clients[perm[0]])
		for i := 0; i+1 < length; i++ {
			cost += ls.data.Dist(clients[perm[i]], clients[perm[i+1]])
		}
		cost += ls.data.Dist(clients[perm[length-1]], nextClient)

		if cost < bestCost {
			bestCost = cost
			bestOrder = append(bestOrder[:0:0], perm...)
		}
	})

	identity := true
	for i, p := range bestOrder {
		if p != i {
			identity = false
			break
		}
	}
	if identity {
		return
	}

	anchor := nodes[0].Prev()
	for _, p := range bestOrder {
		nodes[p].InsertAfter(anchor)
		anchor = nodes[p]
	}

	ls.touch(r)
}

// permute calls visit once for every permutation of 0..n-1, via recursive
// swap-based backtracking. The backing slice is mutated in
// place between calls; visit must copy it if it needs to keep the result.
func permute(n int, visit func(perm []int)) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var rec func(k int)
	rec = func(k int) {
		if k == n {
			visit(idx)
			return
		}
		for i := k; i < n; i++ {
			idx[k], idx[i] = idx[i], idx[k]
			rec(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	rec(0)
}
