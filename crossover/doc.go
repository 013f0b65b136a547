// Package crossover implements selective route exchange (SREX): the
// genetic operator that combines two parent Individuals into one offspring
// by transplanting a contiguous block of routes from one parent into the
// corresponding position of the other, then repairing whatever clients fall
// out of the stitched solution.
package crossover
