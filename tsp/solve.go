// Package tsp - the GA-backed solver entry point.
//
// Solve wires the generic engine to a TSP instance: the alphabet is the city
// index set, individuals are closed tours of length n+1, fitness is the
// inverse tour cost, and the initial population is a set of uniformly random
// tours anchored at the start vertex. Two decorrelated random streams are
// derived from the caller's seed - one for population construction, one for
// the engine - so the initial layout and the evolution do not share draws.
package tsp

import (
	"time"

	"github.com/katalvlaran/gatsp/genetic"
)

// Stream identifiers for seed derivation. Stable values: changing them would
// change every seeded run.
const (
	streamPopulation uint64 = 1
	streamEngine     uint64 = 2
)

// Options configures the GA-backed solver.
//
// PopulationSize      – number of tours per generation (≥ 2).
// MutationProbability – chance in [0,1] that a bred child is mutated.
// MaxIterations       – generation cap; the search always stops here.
// TimeLimit           – wall-clock budget; zero or negative means unbounded.
// Seed                – determinism seed; 0 selects the package default.
// StartVertex         – anchor city; every tour starts and ends there.
// TargetCost          – if > 0, the search stops early once the best tour's
//                       cost drops to this value or below.
// Progress            – optional per-generation observer
//                       (generation, bestFitness, elapsed).
type Options struct {
	PopulationSize      int
	MutationProbability float64
	MaxIterations       int
	TimeLimit           time.Duration
	Seed                int64
	StartVertex         int
	TargetCost          float64
	Progress            genetic.ProgressFunc
}

// DefaultOptions returns a baseline configuration.
//
// Defaults:
//   - PopulationSize:      60
//   - MutationProbability: 0.2
//   - MaxIterations:       300
//   - TimeLimit:           0 (unbounded)
//   - Seed:                0 (deterministic default stream)
//   - StartVertex:         0
//   - TargetCost:          0 (disabled)
func DefaultOptions() Options {
	return Options{
		PopulationSize:      60,
		MutationProbability: 0.2,
		MaxIterations:       300,
		TimeLimit:           0,
		Seed:                0,
		StartVertex:         0,
		TargetCost:          0,
	}
}

// Solve runs the generational genetic search over the distance matrix and
// returns the best tour found together with its cost.
//
// Stages:
//  1. Validate the matrix, the start vertex and the solver options.
//  2. Build the engine: alphabet {0..n-1}, individual length n+1, seeded
//     with a stream derived from opts.Seed.
//  3. Build PopulationSize uniformly random closed tours from the second
//     derived stream.
//  4. Run with the iteration cap as the goal test, tightened by TargetCost
//     when one is configured.
//  5. Re-anchor the winner at the start vertex and report it with its
//     rounded cost.
//
// Errors: sentinels from types.go, plus the genetic package's configuration
// sentinels (e.g. genetic.ErrBadMutationProbability) verbatim.
//
// Complexity: O(G·N²·n) time for G generations and population size N.
func Solve(dist [][]float64, opts Options) (Result, error) {
	// Stage 1: validation.
	n, err := validateDistMatrix(dist)
	if err != nil {
		return Result{}, err
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return Result{}, err
	}
	if opts.PopulationSize < 2 {
		return Result{}, ErrBadPopulationSize
	}

	// Stage 2: engine over the city alphabet.
	cities := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		cities[i] = i
	}

	setters := []genetic.Option[int]{
		genetic.WithMutationProbability[int](opts.MutationProbability),
		genetic.WithMaxIterations[int](opts.MaxIterations),
		genetic.WithTimeLimit[int](opts.TimeLimit),
		genetic.WithSeed[int](genetic.DeriveSeed(opts.Seed, streamEngine)),
	}
	if opts.Progress != nil {
		setters = append(setters, genetic.WithProgress[int](opts.Progress))
	}

	eng, err := genetic.New(n+1, cities, setters...)
	if err != nil {
		return Result{}, err
	}

	// Stage 3: random initial population from its own stream.
	var (
		popRNG = genetic.NewRand(genetic.DeriveSeed(opts.Seed, streamPopulation))
		init   = make(genetic.Population[int], opts.PopulationSize)
		tour   []int
	)
	for i = 0; i < opts.PopulationSize; i++ {
		tour, err = randomClosedTour(n, opts.StartVertex, popRNG)
		if err != nil {
			return Result{}, err
		}
		init[i] = genetic.NewIndividual(tour)
	}

	// Stage 4: termination policy. The iteration cap always applies; a
	// positive TargetCost adds an early-stop condition on top of it.
	fitness := Fitness(dist)

	var goal genetic.GoalTest[int]
	if opts.TargetCost > 0 {
		goal = func(best *genetic.Individual[int]) bool {
			if eng.Iterations() >= opts.MaxIterations {
				return true
			}
			cost, cerr := TourCost(dist, best.Representation())

			return cerr == nil && cost <= opts.TargetCost
		}
	}

	best, err := eng.Run(init, fitness, goal)
	if err != nil {
		return Result{}, err
	}

	// Stage 5: crossover may rotate the winner away from the anchor; rotate
	// it back. Rotation does not change the directed-cycle cost.
	tour, err = MakeTourFromPermutation(best.Representation()[:n], n, opts.StartVertex)
	if err != nil {
		return Result{}, err
	}
	cost, err := TourCost(dist, tour)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tour:        tour,
		Cost:        cost,
		Iterations:  eng.Iterations(),
		Descendants: best.Descendants(),
	}, nil
}
