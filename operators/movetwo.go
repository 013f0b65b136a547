package operators

import (
	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/penalty"
	"github.com/arcrouting/hgs-cvrptw/route"
	"github.com/arcrouting/hgs-cvrptw/tws"
)

// MoveTwoClientsReversed inserts U and its successor X after V, reversed, so
// the route reads ... V, X, U ... afterward. A mirror of Exchange{2,0} that
// additionally flips the pair, catching improving moves plain relocate
// cannot reach.
type MoveTwoClientsReversed struct {
	data *instance.Data
	pm   *penalty.Manager
}

// NewMoveTwoClientsReversed builds the operator bound to data and pm.
func NewMoveTwoClientsReversed(data *instance.Data, pm *penalty.Manager) *MoveTwoClientsReversed {
	return &MoveTwoClientsReversed{data: data, pm: pm}
}

// Evaluate returns the delta cost of moving U and its successor, reversed,
// to just after V; 0 if the move is structurally inapplicable (U directly
// after V, V directly after U, or U's successor is the depot).
func (m *MoveTwoClientsReversed) Evaluate(u, v *route.Node) int {
	if u == v.Next() || u.Next() == v || u.Next().IsDepot() {
		return 0
	}

	uNext := u.Next()
	uNextNext := uNext.Next()
	ur := u.Route()

	current := ur.DistBetween(u.Position()-1, u.Position()+2) + m.data.Dist(v.Client, v.Next().Client)
	proposed := m.data.Dist(u.Prev().Client, uNextNext.Client) +
		m.data.Dist(v.Client, uNext.Client) +
		m.data.Dist(uNext.Client, u.Client) +
		m.data.Dist(u.Client, v.Next().Client)

	deltaCost := proposed - current

	if ur != v.Route() {
		vr := v.Route()

		if ur.IsFeasible() && deltaCost >= 0 {
			return deltaCost
		}

		uTWS := tws.Merge(u.Prev().TwBefore(), uNextNext.TwAfter(), m.data.Dist(u.Prev().Client, uNextNext.Client))

		deltaCost += m.pm.TwPenalty(uTWS.TotalTimeWarp())
		deltaCost -= m.pm.TwPenalty(ur.TimeWarp())

		loadDiff := ur.LoadBetween(u.Position(), u.Position()+1)

		deltaCost += int(m.pm.LoadPenalty(uint(max(ur.Load()-loadDiff, 0))))
		deltaCost -= int(m.pm.LoadPenalty(uint(ur.Load())))

		if deltaCost >= 0 {
			return deltaCost
		}

		deltaCost += int(m.pm.LoadPenalty(uint(vr.Load() + loadDiff)))
		deltaCost -= int(m.pm.LoadPenalty(uint(vr.Load())))

		vTWS := tws.MergeAll(m.data.Dist, v.TwBefore(), uNext.Tw(), u.Tw(), v.Next().TwAfter())

		deltaCost += m.pm.TwPenalty(vTWS.TotalTimeWarp())
		deltaCost -= m.pm.TwPenalty(vr.TimeWarp())
	} else {
		r := ur
		if !r.HasTimeWarp() && deltaCost >= 0 {
			return deltaCost
		}

		posU, posV := u.Position(), v.Position()

		var segTWS tws.Segment
		if posU < posV {
			segTWS = tws.MergeAll(m.data.Dist,
				u.Prev().TwBefore(),
				r.TwBetween(posU+2, posV),
				uNext.Tw(), u.Tw(),
				v.Next().TwAfter())
		} else {
			segTWS = tws.MergeAll(m.data.Dist,
				v.TwBefore(),
				uNext.Tw(), u.Tw(),
				r.TwBetween(posV+1, posU-1),
				uNextNext.TwAfter())
		}

		deltaCost += m.pm.TwPenalty(segTWS.TotalTimeWarp())
		deltaCost -= m.pm.TwPenalty(r.TimeWarp())
	}

	return deltaCost
}

// Apply performs the move priced by the most recent Evaluate(U, V) call.
// Callers must call Route.Update on both affected routes afterward.
func (m *MoveTwoClientsReversed) Apply(u, v *route.Node) {
	x := u.Next() // copy since the insert below changes u.Next()

	u.InsertAfter(v)
	x.InsertAfter(v)
}
