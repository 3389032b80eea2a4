// Package genetic - core types and sentinel errors for the engine.
//
// This file declares the contracts every other file in the package builds on:
// the injected capability functions (fitness, goal test, progress), the three
// swappable operator strategies (selection, crossover, mutation), and the
// strict sentinels returned on invalid configuration or population shape.
//
// Design principles:
//   - No logging, no panics on user input - only sentinel errors.
//   - Where a sentinel alone cannot satisfy the reporting contract (which
//     individual, what the expected length was), the sentinel is wrapped via
//     fmt.Errorf("%w: ...") so errors.Is still matches.
package genetic

import (
	"errors"
	"time"
)

// Sentinel errors returned by engine construction and Run validation.
var (
	// ErrEmptyPopulation indicates that Run was invoked with an empty
	// initial population. The search cannot start without at least one
	// individual to evaluate.
	ErrEmptyPopulation = errors.New("genetic: initial population is empty")

	// ErrWrongLength indicates that an individual in the initial population
	// does not match the engine's configured individual length. The error is
	// always wrapped with the offending index and both lengths.
	ErrWrongLength = errors.New("genetic: individual length mismatch")

	// ErrNonPositiveLength indicates that the configured individual length
	// is zero or negative.
	ErrNonPositiveLength = errors.New("genetic: individual length must be positive")

	// ErrIndividualTooShort indicates a configured length of 1 while the
	// default closed-tour operators are in play: they draw offsets from
	// [0, L-1) and a length-1 individual leaves them no working position.
	ErrIndividualTooShort = errors.New("genetic: individual length must be at least 2 for the default tour operators")

	// ErrBadMutationProbability indicates a mutation probability outside the
	// inclusive range [0,1].
	ErrBadMutationProbability = errors.New("genetic: mutation probability must be within [0,1]")

	// ErrEmptyAlphabet indicates that the engine was constructed with no
	// symbols to draw individuals from (after internal deduplication).
	ErrEmptyAlphabet = errors.New("genetic: alphabet is empty")

	// ErrNilFitness indicates that Run was invoked without a fitness function.
	ErrNilFitness = errors.New("genetic: fitness function is nil")
)

// FitnessFunc scores an individual; higher is better. It must be pure and
// deterministic per individual state, and is expected to return values ≥ 0
// (selection shifts by the population minimum, so the worst individual always
// lands at zero selection mass under exact ties).
type FitnessFunc[A comparable] func(*Individual[A]) float64

// GoalTest decides whether the search may stop early, given the best
// individual of the generation that just completed. It is evaluated only
// between full generations, never mid-generation.
type GoalTest[A comparable] func(*Individual[A]) bool

// ProgressFunc observes one completed generation: its index (0 is the initial
// population), the best fitness found in it, and the wall-clock time elapsed
// since Run started. Observers are invoked synchronously, after the metric
// append and before the time-budget check.
type ProgressFunc func(generation int, bestFitness float64, elapsed time.Duration)

// SelectionFunc picks one breeding parent out of the population, with
// replacement. Implementations must return a member of pop and account the
// pick on the winner's descendants counter.
type SelectionFunc[A comparable] func(pop Population[A], fitness FitnessFunc[A], rng RNG) *Individual[A]

// CrossoverFunc produces exactly one child from two parents of equal length.
type CrossoverFunc[A comparable] func(x, y *Individual[A], rng RNG) *Individual[A]

// MutationFunc returns a mutated copy of the individual; the input is never
// modified.
type MutationFunc[A comparable] func(ind *Individual[A], rng RNG) *Individual[A]

// RNG is the random stream consumed by the engine and its operators. It is
// the subset of *math/rand.Rand the package needs, kept as an interface so
// tests can pin operator offsets and callers can inject alternative streams.
type RNG interface {
	// Float64 returns a uniform draw in [0,1).
	Float64() float64
	// Intn returns a uniform draw in [0,n). It follows math/rand semantics:
	// n must be positive.
	Intn(n int) int
}
