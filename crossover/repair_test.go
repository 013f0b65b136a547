package crossover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/hgs-cvrptw/crossover"
	"github.com/arcrouting/hgs-cvrptw/instance"
)

// TestGreedyRepairPicksCheapestFeasiblePosition builds a route [1,2] and
// repairs in a single unplanned client 3. All three candidate positions are
// time-window feasible here; hand-computed detour costs are: before 1 ->
// 42, between 1 and 2 -> 22, after 2 (before the depot) -> 20, making the
// end-of-route slot the unique cheapest insertion.
func TestGreedyRepairPicksCheapestFeasiblePosition(t *testing.T) {
	rows := [][]int{
		{0, 10, 20, 30},
		{10, 0, 10, 22},
		{20, 10, 0, 10},
		{30, 22, 10, 0},
	}
	clients := []instance.Client{
		{TWEarly: 0, TWLate: 1000},
		{TWEarly: 0, TWLate: 1000},
		{TWEarly: 0, TWLate: 1000},
		{TWEarly: 0, TWLate: 35},
	}
	data, err := instance.New(instance.MatrixFromRows(rows), clients, 100, 1)
	require.NoError(t, err)

	routes := [][]int{{1, 2}}
	crossover.GreedyRepair(routes, []int{3}, data)

	require.Equal(t, [][]int{{1, 2, 3}}, routes)
}

// TestGreedyRepairInsertsMultipleClientsInOrder checks that unplanned
// clients are repaired in the given order, each seeing the route state left
// by the previous insertion: client 3 first slots between 1 and 2 (detour
// cost 1+1-100=-98), then client 4 slots at the very end (detour cost
// 1+1-100=-98), since the other three candidate positions for client 4 cost
// 100 or more.
func TestGreedyRepairInsertsMultipleClientsInOrder(t *testing.T) {
	rows := [][]int{
		{0, 100, 100, 100, 100},
		{100, 0, 100, 1, 100},
		{100, 100, 0, 1, 1},
		{100, 1, 1, 0, 100},
		{1, 100, 1, 100, 0},
	}
	clients := make([]instance.Client, 5)
	for i := range clients {
		clients[i] = instance.Client{TWEarly: 0, TWLate: 1000}
	}
	data, err := instance.New(instance.MatrixFromRows(rows), clients, 100, 1)
	require.NoError(t, err)

	routes := [][]int{{1, 2}}
	crossover.GreedyRepair(routes, []int{3, 4}, data)

	require.Equal(t, [][]int{{1, 3, 2, 4}}, routes)
}

// TestGreedyRepairSkipsEmptyRoutesExceptAsFallback confirms that a repair
// candidate search never opens a brand-new route while any non-empty route
// exists: with routes[0] non-empty and routes[1] empty, the unplanned
// client must land in routes[0] regardless of routes[1]'s existence. The
// directed distances make ending the route at client 2 (cost 1) far
// cheaper than leading with it (cost 19), so the insertion position is
// unambiguous.
func TestGreedyRepairSkipsEmptyRoutesExceptAsFallback(t *testing.T) {
	rows := [][]int{
		{0, 1, 10},
		{1, 0, 1},
		{1, 10, 0},
	}
	clients := []instance.Client{
		{TWEarly: 0, TWLate: 1000},
		{TWEarly: 0, TWLate: 1000},
		{TWEarly: 0, TWLate: 1000},
	}
	data, err := instance.New(instance.MatrixFromRows(rows), clients, 100, 2)
	require.NoError(t, err)

	routes := [][]int{{1}, {}}
	crossover.GreedyRepair(routes, []int{2}, data)

	require.Equal(t, [][]int{{1, 2}, {}}, routes)
}

// TestGreedyRepairSkipsTimeInfeasiblePosition gives the position right
// after the depot (before client 1) the same raw detour cost as the
// position right before the depot (after client 1), but the first one
// arrives at client 2 too late for its window (detour via the depot alone
// already takes 10 time units against a twLate of 8). Only the
// after-client-1 position is reachable in time, so it must be chosen even
// though it ties on cost.
func TestGreedyRepairSkipsTimeInfeasiblePosition(t *testing.T) {
	rows := [][]int{
		{0, 1, 10},
		{1, 0, 1},
		{10, 1, 0},
	}
	clients := []instance.Client{
		{TWEarly: 0, TWLate: 1000},
		{TWEarly: 0, TWLate: 1000},
		{TWEarly: 0, TWLate: 8},
	}
	data, err := instance.New(instance.MatrixFromRows(rows), clients, 100, 1)
	require.NoError(t, err)

	routes := [][]int{{1}}
	crossover.GreedyRepair(routes, []int{2}, data)

	require.Equal(t, [][]int{{1, 2}}, routes)
}
