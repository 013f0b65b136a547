package operators

import (
	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/penalty"
	"github.com/arcrouting/hgs-cvrptw/route"
	"github.com/arcrouting/hgs-cvrptw/tws"
)

// Exchange moves a segment of N consecutive clients starting at U to just
// after V, optionally swapping it with a segment of M consecutive clients
// starting at V (spec §4.3). M == 0 is a pure relocate; M >= 1 is a swap.
// Generalizes the source material's Exchange<N, M> template family into one
// parameterized type, per the design note to avoid a combinatorial type
// hierarchy.
type Exchange struct {
	N, M int

	data *instance.Data
	pm   *penalty.Manager
}

// NewExchange builds an Exchange<N, M>-equivalent operator. N must be >= 1;
// M == 0 denotes relocate, M >= 1 denotes swap.
func NewExchange(nSeg, mSeg int, data *instance.Data, pm *penalty.Manager) *Exchange {
	return &Exchange{N: nSeg, M: mSeg, data: data, pm: pm}
}

func dist3(data *instance.Data, a, b, c int) int {
	return data.Dist(a, b) + data.Dist(b, c)
}

// containsDepot reports whether the segLength-node segment starting at node
// would include the depot boundary.
func (e *Exchange) containsDepot(node *route.Node, segLength int) bool {
	if node.IsDepot() {
		return true
	}
	return node.Position()+segLength-1 > node.Route().Size()
}

// overlap reports whether U and V's segments share at least one node.
func (e *Exchange) overlap(u, v *route.Node) bool {
	return u.Route() == v.Route() &&
		u.Position() <= v.Position()+e.M-1 &&
		v.Position() <= u.Position()+e.N-1
}

// adjacent reports whether U and V's segments sit back to back, in either
// order, within the same route.
func (e *Exchange) adjacent(u, v *route.Node) bool {
	if u.Route() != v.Route() {
		return false
	}
	return u.Position()+e.N == v.Position() || v.Position()+e.M == u.Position()
}

func (e *Exchange) endOf(u *route.Node, segLen int) *route.Node {
	if segLen == 1 {
		return u
	}
	return u.Route().At(u.Position() + segLen - 1)
}

// evalRelocateMove prices moving U's N-node segment to just after V (M==0).
func (e *Exchange) evalRelocateMove(u, v *route.Node) int {
	endU := e.endOf(u, e.N)
	posU := u.Position()
	ur := u.Route()

	current := ur.DistBetween(posU-1, posU+e.N) + e.data.Dist(v.Client, v.Next().Client)
	proposed := e.data.Dist(v.Client, u.Client) +
		ur.DistBetween(posU, posU+e.N-1) +
		e.data.Dist(endU.Client, v.Next().Client) +
		e.data.Dist(u.Prev().Client, endU.Next().Client)

	deltaCost := proposed - current

	if ur != v.Route() {
		vr := v.Route()
		if ur.IsFeasible() && deltaCost >= 0 {
			return deltaCost
		}

		loadDiff := ur.LoadBetween(posU, posU+e.N-1)

		deltaCost += int(e.pm.LoadPenalty(uint(max(ur.Load()-loadDiff, 0))))
		deltaCost -= int(e.pm.LoadPenalty(uint(ur.Load())))

		deltaCost += int(e.pm.LoadPenalty(uint(vr.Load() + loadDiff)))
		deltaCost -= int(e.pm.LoadPenalty(uint(vr.Load())))

		deltaCost -= e.pm.TwPenalty(ur.TimeWarp())
		if deltaCost >= 0 {
			return deltaCost
		}

		uTWS := tws.Merge(u.Prev().TwBefore(), endU.Next().TwAfter(), e.data.Dist(u.Prev().Client, endU.Next().Client))
		deltaCost += e.pm.TwPenalty(uTWS.TotalTimeWarp())
		if deltaCost >= 0 {
			return deltaCost
		}

		vTWS := tws.MergeAll(e.data.Dist, v.TwBefore(), ur.TwBetween(posU, posU+e.N-1), v.Next().TwAfter())
		deltaCost += e.pm.TwPenalty(vTWS.TotalTimeWarp())
		deltaCost -= e.pm.TwPenalty(vr.TimeWarp())
	} else {
		posV := v.Position()

		if !ur.HasTimeWarp() && deltaCost >= 0 {
			return deltaCost
		}
		deltaCost -= e.pm.TwPenalty(ur.TimeWarp())
		if deltaCost >= 0 {
			return deltaCost
		}

		var segTWS tws.Segment
		if posU < posV {
			segTWS = tws.MergeAll(e.data.Dist,
				u.Prev().TwBefore(),
				ur.TwBetween(posU+e.N, posV),
				ur.TwBetween(posU, posU+e.N-1),
				v.Next().TwAfter())
		} else {
			segTWS = tws.MergeAll(e.data.Dist,
				v.TwBefore(),
				ur.TwBetween(posU, posU+e.N-1),
				ur.TwBetween(posV+1, posU-1),
				endU.Next().TwAfter())
		}
		deltaCost += e.pm.TwPenalty(segTWS.TotalTimeWarp())
	}

	return deltaCost
}

// evalSwapMove prices exchanging U's N-node segment with V's M-node segment
// (M >= 1).
func (e *Exchange) evalSwapMove(u, v *route.Node) int {
	endU := e.endOf(u, e.N)
	endV := e.endOf(v, e.M)

	posU, posV := u.Position(), v.Position()
	ur, vr := u.Route(), v.Route()

	current := ur.DistBetween(posU-1, posU+e.N) + vr.DistBetween(posV-1, posV+e.M)
	proposed := e.data.Dist(u.Prev().Client, v.Client) +
		vr.DistBetween(posV, posV+e.M-1) +
		e.data.Dist(endV.Client, endU.Next().Client) +
		e.data.Dist(v.Prev().Client, u.Client) +
		ur.DistBetween(posU, posU+e.N-1) +
		e.data.Dist(endU.Client, endV.Next().Client)

	deltaCost := proposed - current

	if ur != vr {
		if ur.IsFeasible() && vr.IsFeasible() && deltaCost >= 0 {
			return deltaCost
		}

		loadU := ur.LoadBetween(posU, posU+e.N-1)
		loadV := vr.LoadBetween(posV, posV+e.M-1)
		loadDiff := loadU - loadV

		deltaCost += int(e.pm.LoadPenalty(uint(max(ur.Load()-loadDiff, 0))))
		deltaCost -= int(e.pm.LoadPenalty(uint(ur.Load())))
		deltaCost += int(e.pm.LoadPenalty(uint(vr.Load() + loadDiff)))
		deltaCost -= int(e.pm.LoadPenalty(uint(vr.Load())))

		deltaCost -= e.pm.TwPenalty(ur.TimeWarp())
		deltaCost -= e.pm.TwPenalty(vr.TimeWarp())
		if deltaCost >= 0 {
			return deltaCost
		}

		vTWS := tws.MergeAll(e.data.Dist, v.Prev().TwBefore(), ur.TwBetween(posU, posU+e.N-1), endV.Next().TwAfter())
		deltaCost += e.pm.TwPenalty(vTWS.TotalTimeWarp())
		if deltaCost >= 0 {
			return deltaCost
		}

		uTWS := tws.MergeAll(e.data.Dist, u.Prev().TwBefore(), vr.TwBetween(posV, posV+e.M-1), endU.Next().TwAfter())
		deltaCost += e.pm.TwPenalty(uTWS.TotalTimeWarp())
	} else {
		route := ur
		if !route.HasTimeWarp() && deltaCost >= 0 {
			return deltaCost
		}
		deltaCost -= e.pm.TwPenalty(route.TimeWarp())
		if deltaCost >= 0 {
			return deltaCost
		}

		var segTWS tws.Segment
		if posU < posV {
			segTWS = tws.MergeAll(e.data.Dist,
				u.Prev().TwBefore(),
				route.TwBetween(posV, posV+e.M-1),
				route.TwBetween(posU+e.N, posV-1),
				route.TwBetween(posU, posU+e.N-1),
				endV.Next().TwAfter())
		} else {
			segTWS = tws.MergeAll(e.data.Dist,
				v.Prev().TwBefore(),
				route.TwBetween(posU, posU+e.N-1),
				route.TwBetween(posV+e.M, posU-1),
				route.TwBetween(posV, posV+e.M-1),
				endU.Next().TwAfter())
		}
		deltaCost += e.pm.TwPenalty(segTWS.TotalTimeWarp())
	}

	return deltaCost
}

// Evaluate returns the delta cost of exchanging U's segment with V's (or
// relocating it, if M == 0); 0 means the move is structurally inapplicable.
func (e *Exchange) Evaluate(u, v *route.Node) int {
	if e.containsDepot(u, e.N) || e.overlap(u, v) {
		return 0
	}
	if e.M > 0 && e.containsDepot(v, e.M) {
		return 0
	}

	if e.M == 0 {
		if u == v.Next() {
			return 0
		}
		return e.evalRelocateMove(u, v)
	}

	if e.N == e.M && u.Client >= v.Client {
		return 0
	}
	if e.adjacent(u, v) {
		return 0
	}
	return e.evalSwapMove(u, v)
}

// Apply performs the exchange priced by the most recent Evaluate(U, V)
// call. Callers must call Route.Update on both affected routes afterward.
func (e *Exchange) Apply(u, v *route.Node) {
	uToInsert := e.endOf(u, e.N)

	var insertUAfter *route.Node
	if e.M == 0 {
		insertUAfter = v
	} else {
		insertUAfter = e.endOf(v, e.M)
	}

	for count := 0; count != e.N-e.M; count++ {
		prev := uToInsert.Prev()
		uToInsert.InsertAfter(insertUAfter)
		uToInsert = prev
	}

	cur, other := u, v
	for count := 0; count != e.M; count++ {
		cur.SwapWith(other)
		cur = cur.Next()
		other = other.Next()
	}
}
