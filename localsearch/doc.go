// Package localsearch drives the node and route operators in package
// operators over a reused linked-node working area, improving one
// Individual at a time to a local optimum (spec §4.2, §4.5).
//
// The working area (route.Arena) and every operator are constructed once
// per LocalSearch and reused across Educate calls, matching the exclusive-
// ownership, allocation-free contract the route package's cumulant cache
// depends on.
package localsearch
