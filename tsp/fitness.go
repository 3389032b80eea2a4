// Package tsp - fitness construction for the genetic engine.
package tsp

import "github.com/katalvlaran/gatsp/genetic"

// Fitness maps an individual (a closed tour over the cities of dist) to a
// score in (0,1]: f = 1/(1+cost). Shorter tours score strictly higher, the
// scale is positive and bounded, and a zero-cost cycle maps to exactly 1.
//
// An individual whose representation fails TourCost (wrong indices, wrong
// shape) scores 0 - the floor of the scale - rather than aborting the run;
// the engine's operators never produce such individuals, so the floor is
// only reachable from hand-built populations.
//
// Complexity: O(n) per evaluation.
func Fitness(dist [][]float64) genetic.FitnessFunc[int] {
	return func(ind *genetic.Individual[int]) float64 {
		cost, err := TourCost(dist, ind.Representation())
		if err != nil {
			return 0
		}

		return 1 / (1 + cost)
	}
}
