// Package instance loads and represents CVRP-TW problem instances: the
// depot plus client set, demands, time windows, service durations, release
// times and the integer distance matrix between all locations (spec §6).
package instance
