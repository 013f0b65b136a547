package individual

import "errors"

var (
	// ErrRouteCountMismatch is returned when a caller-supplied route
	// partition does not have exactly NumVehicles slots.
	ErrRouteCountMismatch = errors.New("individual: number of routes does not match number of vehicles")

	// ErrMalformedSolution is returned by Parse when a solution file does
	// not match the expected "Route #k: ..." / "Cost" / "Time" grammar.
	ErrMalformedSolution = errors.New("individual: malformed solution file")
)
