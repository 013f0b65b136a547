package stopping

import (
	"errors"
	"time"
)

// MaxRuntime stops once a fixed wall-clock budget has elapsed since
// construction. The clock starts on NewMaxRuntime, not on the first Check
// call, so an idle gap between construction and the first generation still
// counts against the budget.
type MaxRuntime struct {
	deadline time.Time
}

// NewMaxRuntime builds a MaxRuntime criterion with the given budget in
// seconds. maxSeconds must be positive.
func NewMaxRuntime(maxSeconds float64) (*MaxRuntime, error) {
	if maxSeconds <= 0 {
		return nil, errors.New("stopping: maxSeconds must be positive")
	}

	return &MaxRuntime{
		deadline: time.Now().Add(time.Duration(maxSeconds * float64(time.Second))),
	}, nil
}

// Check ignores bestCost and reports whether the runtime budget has elapsed.
func (m *MaxRuntime) Check(bestCost int) bool {
	return !time.Now().Before(m.deadline)
}
