// Package tsp solves the Travelling Salesman Problem with a generational
// genetic algorithm.
//
// It operates on a complete distance matrix ([][]float64):
//
//   - Solve — evolves a population of closed tours via fitness-proportionate
//     selection, order-preserving crossover, swap mutation and elitism.
//
//   - Complexity: O(G·N²·n) for G generations, population N, n cities.
//
//   - Deterministic: identical seed + inputs ⇒ identical tour and cost.
//
//   - Supports asymmetric instances (directed cycle costs).
//
// All entries must be finite and non-negative with a zero diagonal; a
// distance of math.Inf(1) is rejected with ErrIncompleteMatrix, since the
// evolutionary search needs a total fitness over whole tours.
//
// Use this package when instances are too large for exact solvers and a
// good - not provably optimal - cycle is acceptable. Progress can be
// observed live per generation via Options.Progress, and the TargetCost
// option stops the search as soon as a good-enough tour appears.
package tsp
