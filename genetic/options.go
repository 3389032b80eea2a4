// Package genetic - engine configuration.
//
// Options follow the functional-option pattern: DefaultOptions yields a
// usable baseline, With* setters override individual knobs, and New validates
// the combined result before an engine is handed out. Invalid combinations
// surface as sentinel errors from types.go - construction never panics on
// user input.
package genetic

import (
	"math/rand"
	"time"
)

// Options configures an Engine.
//
// IndividualLength    – required representation length L; every individual in
//                       a run must have exactly this length.
// MutationProbability – chance in [0,1] that a freshly crossed-over child is
//                       mutated before entering the next generation.
// MaxIterations       – generation cap used by RunIterations; ignored by Run.
// TimeLimit           – wall-clock budget checked after every completed
//                       generation. Zero or negative means unbounded.
// Seed                – seed for the engine's random stream; 0 selects the
//                       package default seed. Ignored when Source is set.
// Source              – optional rand.Source overriding Seed, for callers who
//                       want a specific generator (e.g. Mersenne Twister).
//
// Progress observers and operator strategies are settable only through the
// With* options; their zero values mean "defaults".
type Options[A comparable] struct {
	IndividualLength    int
	MutationProbability float64
	MaxIterations       int
	TimeLimit           time.Duration
	Seed                int64
	Source              rand.Source

	observers []ProgressFunc
	selection SelectionFunc[A]
	crossover CrossoverFunc[A]
	mutation  MutationFunc[A]
}

// Option mutates Options during construction.
type Option[A comparable] func(*Options[A])

// DefaultOptions returns a baseline configuration for individuals of the
// given length.
//
// Defaults:
//   - MutationProbability: 0.15 (light pressure; override per problem).
//   - MaxIterations:       100.
//   - TimeLimit:           0 (unbounded).
//   - Seed:                0 (package default seed; deterministic).
//   - Operators:           Roulette / OrderCrossover / SwapMutation.
func DefaultOptions[A comparable](individualLength int) Options[A] {
	return Options[A]{
		IndividualLength:    individualLength,
		MutationProbability: 0.15,
		MaxIterations:       100,
		TimeLimit:           0,
		Seed:                0,
	}
}

// WithMutationProbability overrides the mutation probability.
func WithMutationProbability[A comparable](p float64) Option[A] {
	return func(o *Options[A]) {
		o.MutationProbability = p
	}
}

// WithMaxIterations overrides the RunIterations generation cap.
func WithMaxIterations[A comparable](n int) Option[A] {
	return func(o *Options[A]) {
		o.MaxIterations = n
	}
}

// WithTimeLimit sets the wall-clock budget. Zero or negative disables it.
func WithTimeLimit[A comparable](d time.Duration) Option[A] {
	return func(o *Options[A]) {
		o.TimeLimit = d
	}
}

// WithSeed sets the engine's random seed (0 ⇒ package default seed).
func WithSeed[A comparable](seed int64) Option[A] {
	return func(o *Options[A]) {
		o.Seed = seed
	}
}

// WithRandSource injects an explicit random source, overriding Seed.
// Useful for alternative generators or scripted streams in tests.
func WithRandSource[A comparable](src rand.Source) Option[A] {
	return func(o *Options[A]) {
		o.Source = src
	}
}

// WithProgress registers a progress observer. May be repeated; observers are
// notified in registration order, synchronously, once per generation
// (including generation 0).
func WithProgress[A comparable](fn ProgressFunc) Option[A] {
	return func(o *Options[A]) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// WithSelection swaps the parent-selection strategy.
func WithSelection[A comparable](fn SelectionFunc[A]) Option[A] {
	return func(o *Options[A]) {
		o.selection = fn
	}
}

// WithCrossover swaps the crossover strategy.
func WithCrossover[A comparable](fn CrossoverFunc[A]) Option[A] {
	return func(o *Options[A]) {
		o.crossover = fn
	}
}

// WithMutation swaps the mutation strategy.
func WithMutation[A comparable](fn MutationFunc[A]) Option[A] {
	return func(o *Options[A]) {
		o.mutation = fn
	}
}

// validateOptions checks internal consistency of the combined configuration.
//
// Stages:
//  1. IndividualLength must be positive; with the default tour operators it
//     must be at least 2, since they draw offsets from [0, L-1).
//  2. MutationProbability must lie in the inclusive range [0,1].
//
// TimeLimit is deliberately not rejected when zero or negative: both mean
// unbounded by contract. MaxIterations is only consulted as a fallback goal,
// so any value is acceptable (non-positive stops after the first generation).
//
// Complexity: O(1).
func validateOptions[A comparable](o Options[A]) error {
	if o.IndividualLength <= 0 {
		return ErrNonPositiveLength
	}
	if o.IndividualLength < 2 && (o.crossover == nil || o.mutation == nil) {
		return ErrIndividualTooShort
	}
	if o.MutationProbability < 0 || o.MutationProbability > 1 {
		return ErrBadMutationProbability
	}

	return nil
}
