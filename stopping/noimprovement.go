package stopping

import (
	"errors"
	"math"
)

// NoImprovement stops once maxIters consecutive calls have passed without a
// strictly better cost being reported.
type NoImprovement struct {
	maxIters int

	target    int
	currIters int
}

// NewNoImprovement builds a NoImprovement criterion. maxIters must be
// positive: zero iterations of tolerance is not a meaningful criterion.
func NewNoImprovement(maxIters int) (*NoImprovement, error) {
	if maxIters <= 0 {
		return nil, errors.New("stopping: maxIters must be positive")
	}

	return &NoImprovement{
		maxIters: maxIters,
		target:   math.MaxInt,
	}, nil
}

// Check reports whether bestCost fails to improve on every previously seen
// cost for maxIters consecutive calls.
func (n *NoImprovement) Check(bestCost int) bool {
	if bestCost < n.target {
		n.target = bestCost
		n.currIters = 0
		return false
	}

	n.currIters++
	return n.currIters >= n.maxIters
}
