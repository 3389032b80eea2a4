// Package tsp - result type and sentinel errors for the GA-backed solver.
//
// Design principles:
//   - Strict sentinels: callers match with errors.Is; no free-form errors
//     where a sentinel suffices.
//   - No logging, no panics on user input.
package tsp

import "errors"

// Sentinel errors returned by validation and the solver.
var (
	// ErrNonSquare indicates a nil, empty or ragged distance matrix.
	ErrNonSquare = errors.New("tsp: distance matrix must be square")

	// ErrDimensionMismatch indicates an input whose shape violates a
	// contract: an instance of order n<2, a NaN entry, a tour of the wrong
	// length, or a permutation that is not a bijection over {0..n-1}.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonZeroDiagonal indicates a self-distance d(i,i) that is not zero.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal entries must be zero")

	// ErrNegativeWeight indicates a negative distance entry.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrIncompleteMatrix indicates a ±Inf distance entry. The genetic
	// search scores whole tours, so every edge must carry a finite cost.
	ErrIncompleteMatrix = errors.New("tsp: distance matrix must be complete (no infinities)")

	// ErrStartOutOfRange indicates a start vertex outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrBadPopulationSize indicates a population size below 2; the
	// generational loop needs at least one bred child next to the elite slot.
	ErrBadPopulationSize = errors.New("tsp: population size must be at least 2")
)

// Result holds the outcome of the GA-backed solver.
type Result struct {
	// Tour is the sequence of vertex indices, starting and ending at the
	// configured start vertex. For n vertices, len(Tour) == n+1 and
	// Tour[0] == Tour[n].
	Tour []int

	// Cost is the total distance of the cycle, rounded to 1e-9.
	Cost float64

	// Iterations is the number of generations the search completed.
	Iterations int

	// Descendants is the number of times the returned individual was picked
	// as a breeding parent. Diagnostic only.
	Descendants int
}
