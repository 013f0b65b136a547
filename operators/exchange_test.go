package operators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/hgs-cvrptw/operators"
)

// TestExchangeRelocateSingleClient moves client 1 from the front of the
// route to just after client 3. New order 0-2-3-1-4-0 costs
// 2+1+2+3+4 = 12 against the original 0-1-2-3-4-0's 1+1+1+1+4 = 8, a delta
// of 4.
func TestExchangeRelocateSingleClient(t *testing.T) {
	data := lineData(t)
	pm := newDefaultPenalty(t)
	a := buildArena(t, data, [][]int{{1, 2, 3, 4}})

	op := operators.NewExchange(1, 0, data, pm)

	u := a.NodeByClient(1)
	v := a.NodeByClient(3)

	require.Equal(t, 4, op.Evaluate(u, v))

	op.Apply(u, v)
	r := a.Routes()[0]
	r.Update()

	require.Equal(t, []int{2, 3, 1, 4}, routeClients(r))
	require.Equal(t, 12, r.DistBetween(0, r.Size()+1))
}

// TestExchangeSwapSingleClients exchanges client 1 and client 4. New order
// 0-4-2-3-1-0 costs 4+2+1+2+1 = 10 against the original 8, a delta of 2.
func TestExchangeSwapSingleClients(t *testing.T) {
	data := lineData(t)
	pm := newDefaultPenalty(t)
	a := buildArena(t, data, [][]int{{1, 2, 3, 4}})

	op := operators.NewExchange(1, 1, data, pm)

	u := a.NodeByClient(1)
	v := a.NodeByClient(4)

	require.Equal(t, 2, op.Evaluate(u, v))

	op.Apply(u, v)
	r := a.Routes()[0]
	r.Update()

	require.Equal(t, []int{4, 2, 3, 1}, routeClients(r))
	require.Equal(t, 10, r.DistBetween(0, r.Size()+1))
}

func TestExchangeRelocateSkipsNoopTarget(t *testing.T) {
	data := lineData(t)
	pm := newDefaultPenalty(t)
	a := buildArena(t, data, [][]int{{1, 2, 3, 4}})

	op := operators.NewExchange(1, 0, data, pm)
	// u already sits right after v: inserting it after v again is a no-op.
	require.Equal(t, 0, op.Evaluate(a.NodeByClient(2), a.NodeByClient(1)))
}

func TestExchangeSwapSkipsOverlappingSegments(t *testing.T) {
	data := lineData(t)
	pm := newDefaultPenalty(t)
	a := buildArena(t, data, [][]int{{1, 2, 3, 4}})

	op := operators.NewExchange(2, 2, data, pm)
	// Segments [1,2] and [2,3] share client 2.
	require.Equal(t, 0, op.Evaluate(a.NodeByClient(1), a.NodeByClient(2)))
}
