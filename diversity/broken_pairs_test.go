package diversity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/hgs-cvrptw/diversity"
	"github.com/arcrouting/hgs-cvrptw/individual"
	"github.com/arcrouting/hgs-cvrptw/instance"
)

// fourClientData is an arbitrary 4-client instance; broken-pairs distance
// only depends on route structure (neighbour adjacency), not on costs, so
// the actual distances/time windows are irrelevant to this test beyond
// satisfying instance validation.
func fourClientData(t *testing.T) *instance.Data {
	t.Helper()
	rows := make([][]int, 5)
	for i := range rows {
		rows[i] = make([]int, 5)
	}
	clients := make([]instance.Client, 5)
	for i := range clients {
		clients[i].TWEarly, clients[i].TWLate = 0, 1000
	}
	data, err := instance.New(instance.MatrixFromRows(rows), clients, 100, 4)
	require.NoError(t, err)
	return data
}

// TestBrokenPairsDistanceScenario matches spec §8 scenario 4: comparing
// [[1,2,3,4]] against [[1,2],[3],[4]], [[3],[4,1,2]], [4,3,2,1] gives
// 0, 0.5, 0.75, 1, and the measure is symmetric.
func TestBrokenPairsDistanceScenario(t *testing.T) {
	data := fourClientData(t)

	base, err := individual.NewFromRoutes(data, [][]int{{1, 2, 3, 4}, {}, {}, {}})
	require.NoError(t, err)

	cases := []struct {
		routes [][]int
		want   float64
	}{
		{[][]int{{1, 2, 3, 4}, {}, {}, {}}, 0},
		{[][]int{{1, 2}, {3}, {4}, {}}, 0.5},
		{[][]int{{3}, {4, 1, 2}, {}, {}}, 0.75},
		{[][]int{{4, 3, 2, 1}, {}, {}, {}}, 1},
	}

	for _, tc := range cases {
		other, err := individual.NewFromRoutes(data, tc.routes)
		require.NoError(t, err)

		got := diversity.BrokenPairsDistance(4, base, other)
		require.InDelta(t, tc.want, got, 1e-9)

		symmetric := diversity.BrokenPairsDistance(4, other, base)
		require.InDelta(t, got, symmetric, 1e-9)
	}
}
