// Package tsp - closed-tour utilities for the genetic solver.
//
// A closed tour over n vertices is a slice of length n+1 whose first and
// last elements coincide: positions 0..n-1 hold a permutation of {0..n-1}
// and position n repeats position 0. These helpers build, validate and
// randomize tours in that shape; they never touch distance matrices.
package tsp

import "math/rand"

// ValidateTour enforces the closed-tour invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	positions 0..n-1 hold each vertex of {0..n-1} exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if err := validateStartVertex(n, start); err != nil {
		return err
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var i, v int
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation builds a closed tour from a permutation of
// {0..n-1}, rotated so the tour starts (and ends) at start.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n, start int) ([]int, error) {
	if err := validatePermutation(perm, n); err != nil {
		return nil, err
	}
	if err := validateStartVertex(n, start); err != nil {
		return nil, err
	}

	// Locate start inside perm; guaranteed present for a valid permutation.
	var i, pivot int
	for i = 0; i < n; i++ {
		if perm[i] == start {
			pivot = i
			break
		}
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// validatePermutation checks that perm is a bijection over {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var i, v int
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// randomClosedTour returns a uniformly random closed tour over n vertices,
// anchored at start, drawn from rng (Fisher-Yates over {0..n-1}, then
// rotation to the anchor).
//
// Complexity: O(n) time, O(n) space.
func randomClosedTour(n, start int, rng *rand.Rand) ([]int, error) {
	perm := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	var j int
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return MakeTourFromPermutation(perm, n, start)
}
