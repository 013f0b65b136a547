package operators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/hgs-cvrptw/operators"
)

// TestMoveTwoClientsReversedEvaluateAndApply moves the consecutive pair
// (1, 2) to just after client 4, reversed. New order 0-3-4-2-1-0 costs
// 3+1+2+1+1 = 8, exactly matching the original 0-1-2-3-4-0's 1+1+1+1+4 = 8:
// a delta of 0, which is itself a useful check that the formula and its
// boundary-edge bookkeeping agree with a full route recomputation.
func TestMoveTwoClientsReversedEvaluateAndApply(t *testing.T) {
	data := lineData(t)
	pm := newDefaultPenalty(t)
	a := buildArena(t, data, [][]int{{1, 2, 3, 4}})

	op := operators.NewMoveTwoClientsReversed(data, pm)

	u := a.NodeByClient(1)
	v := a.NodeByClient(4)

	require.Equal(t, 0, op.Evaluate(u, v))

	op.Apply(u, v)
	r := a.Routes()[0]
	r.Update()

	require.Equal(t, []int{3, 4, 2, 1}, routeClients(r))
	require.Equal(t, 8, r.DistBetween(0, r.Size()+1))
}

func TestMoveTwoClientsReversedRejectsPairContainingV(t *testing.T) {
	data := lineData(t)
	pm := newDefaultPenalty(t)
	a := buildArena(t, data, [][]int{{1, 2, 3, 4}})

	op := operators.NewMoveTwoClientsReversed(data, pm)
	// u's successor is v itself: nothing to move.
	require.Equal(t, 0, op.Evaluate(a.NodeByClient(1), a.NodeByClient(2)))
}
