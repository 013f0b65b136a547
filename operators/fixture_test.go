package operators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/hgs-cvrptw/instance"
	"github.com/arcrouting/hgs-cvrptw/penalty"
	"github.com/arcrouting/hgs-cvrptw/route"
)

// lineData builds a depot-plus-4-clients instance on a straight line (client
// i sits at x=i), with a symmetric distance matrix and wide time windows.
// Reversal distance is always zero on a symmetric matrix, which keeps
// within-route 2-opt deltas reducible to the two boundary edges by hand.
func lineData(t *testing.T) *instance.Data {
	t.Helper()

	rows := [][]int{
		{0, 1, 2, 3, 4},
		{1, 0, 1, 2, 3},
		{2, 1, 0, 1, 2},
		{3, 2, 1, 0, 1},
		{4, 3, 2, 1, 0},
	}
	clients := []instance.Client{
		{X: 0, Y: 0, TWEarly: 0, TWLate: 1000},
		{X: 1, Y: 0, Demand: 3, TWEarly: 0, TWLate: 1000},
		{X: 2, Y: 0, Demand: 3, TWEarly: 0, TWLate: 1000},
		{X: 3, Y: 0, Demand: 3, TWEarly: 0, TWLate: 1000},
		{X: 4, Y: 0, Demand: 3, TWEarly: 0, TWLate: 1000},
	}
	data, err := instance.New(instance.MatrixFromRows(rows), clients, 100, 2)
	require.NoError(t, err)
	return data
}

// crossedData builds a depot-plus-4-clients instance whose explicit distance
// matrix makes swapping the tails of two 2-client routes strictly cheaper,
// with wide time windows and ample capacity so no penalty terms apply.
func crossedData(t *testing.T) *instance.Data {
	t.Helper()

	rows := [][]int{
		{0, 10, 10, 10, 10},
		{10, 0, 5, 7, 1},
		{10, 5, 0, 1, 9},
		{10, 7, 1, 0, 5},
		{10, 1, 9, 5, 0},
	}
	clients := []instance.Client{
		{X: 0, Y: 0, TWEarly: 0, TWLate: 1000},
		{X: 1, Y: 0, Demand: 1, TWEarly: 0, TWLate: 1000},
		{X: 2, Y: 0, Demand: 1, TWEarly: 0, TWLate: 1000},
		{X: 3, Y: 0, Demand: 1, TWEarly: 0, TWLate: 1000},
		{X: 4, Y: 0, Demand: 1, TWEarly: 0, TWLate: 1000},
	}
	data, err := instance.New(instance.MatrixFromRows(rows), clients, 100, 2)
	require.NoError(t, err)
	return data
}

// newDefaultPenalty builds a Manager whose Capacity matches the 100-unit
// vehicle capacity used by lineData and crossedData, so load penalties stay
// at zero for the feasible assignments those fixtures exercise.
func newDefaultPenalty(t *testing.T) *penalty.Manager {
	t.Helper()
	params := penalty.DefaultParams()
	params.Capacity = 100
	mgr, err := penalty.NewManager(params)
	require.NoError(t, err)
	return mgr
}

// swapStarData builds a depot-plus-3-clients instance whose explicit
// distance matrix rewards exchanging clients across routes in a way a plain
// single-client relocation or swap cannot reach as cheaply. All demands are
// zero so load penalties never enter the picture, and time windows are wide
// enough that no move in these tests produces time warp.
func swapStarData(t *testing.T) *instance.Data {
	t.Helper()

	rows := [][]int{
		{0, 10, 1, 1},
		{10, 0, 1, 9},
		{1, 1, 0, 1},
		{1, 9, 1, 0},
	}
	clients := []instance.Client{
		{X: 0, Y: 0, TWEarly: 0, TWLate: 1000},
		{X: 1, Y: 0, TWEarly: 0, TWLate: 1000},
		{X: 2, Y: 0, TWEarly: 0, TWLate: 1000},
		{X: 3, Y: 0, TWEarly: 0, TWLate: 1000},
	}
	data, err := instance.New(instance.MatrixFromRows(rows), clients, 10, 2)
	require.NoError(t, err)
	return data
}

func buildArena(t *testing.T, data *instance.Data, assignment [][]int) *route.Arena {
	t.Helper()
	a := route.NewArena(data)
	a.Reset(assignment)
	return a
}
