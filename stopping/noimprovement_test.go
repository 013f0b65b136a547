package stopping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/hgs-cvrptw/stopping"
)

// TestNoImprovementSeedScenario runs the exact worked example: costs 1, 0, 0
// against a criterion with maxIters=1 yield false, false, true. The first
// two calls each improve on the running target (infinity, then 1), resetting
// the counter; the third repeats the target exactly, which is not an
// improvement, so the one allowed non-improving call is exhausted.
func TestNoImprovementSeedScenario(t *testing.T) {
	crit, err := stopping.NewNoImprovement(1)
	require.NoError(t, err)

	require.False(t, crit.Check(1))
	require.False(t, crit.Check(0))
	require.True(t, crit.Check(0))
}

func TestNoImprovementToleratesMultipleNonImprovingCalls(t *testing.T) {
	crit, err := stopping.NewNoImprovement(3)
	require.NoError(t, err)

	require.False(t, crit.Check(10))
	require.False(t, crit.Check(10))
	require.False(t, crit.Check(10))
	require.True(t, crit.Check(10))
}

func TestNoImprovementResetsOnImprovement(t *testing.T) {
	crit, err := stopping.NewNoImprovement(2)
	require.NoError(t, err)

	require.False(t, crit.Check(10))
	require.False(t, crit.Check(10))
	require.False(t, crit.Check(5)) // improves, resets counter
	require.False(t, crit.Check(5))
	require.True(t, crit.Check(5))
}

func TestNewNoImprovementRejectsNonPositiveMaxIters(t *testing.T) {
	_, err := stopping.NewNoImprovement(0)
	require.Error(t, err)
}
