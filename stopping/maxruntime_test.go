package stopping_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/hgs-cvrptw/stopping"
)

func TestMaxRuntimeStopsAfterBudgetElapses(t *testing.T) {
	crit, err := stopping.NewMaxRuntime(0.02)
	require.NoError(t, err)

	require.False(t, crit.Check(0))

	time.Sleep(40 * time.Millisecond)
	require.True(t, crit.Check(0))
}

func TestMaxRuntimeIgnoresCost(t *testing.T) {
	crit, err := stopping.NewMaxRuntime(10)
	require.NoError(t, err)

	require.False(t, crit.Check(1000))
	require.False(t, crit.Check(0))
}

func TestNewMaxRuntimeRejectsNonPositiveBudget(t *testing.T) {
	_, err := stopping.NewMaxRuntime(0)
	require.Error(t, err)
}
