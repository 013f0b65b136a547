package stopping_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/hgs-cvrptw/stopping"
)

// TestTimedNoImprovementStopsOnIterationCap gives the runtime side a
// generous budget, so the iteration cap is the side that fires.
func TestTimedNoImprovementStopsOnIterationCap(t *testing.T) {
	crit, err := stopping.NewTimedNoImprovement(1, 60)
	require.NoError(t, err)

	require.False(t, crit.Check(1))
	require.False(t, crit.Check(0))
	require.True(t, crit.Check(0))
}

// TestTimedNoImprovementStopsOnRuntime gives the iteration cap a generous
// budget, so the runtime side is the one that fires.
func TestTimedNoImprovementStopsOnRuntime(t *testing.T) {
	crit, err := stopping.NewTimedNoImprovement(1000, 0.02)
	require.NoError(t, err)

	require.False(t, crit.Check(5))

	time.Sleep(40 * time.Millisecond)
	require.True(t, crit.Check(5))
}

func TestNewTimedNoImprovementPropagatesMaxRuntimeError(t *testing.T) {
	_, err := stopping.NewTimedNoImprovement(1, 0)
	require.Error(t, err)
}
