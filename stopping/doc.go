// Package stopping implements the outer loop's stopping criteria: pure,
// O(1) predicates polled once per generation that decide whether the search
// should continue (spec §5, §9). A Criterion never blocks and never reaches
// into shared state beyond the best cost it is handed.
package stopping
