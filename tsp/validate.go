// Package tsp - input validation shared by the solver entry points.
//
// All checks are deterministic, side-effect free, and fail fast with the
// sentinels from types.go before any generation runs.
package tsp

import "math"

// diagTol is the structural tolerance for the zero-diagonal check.
// Independent of any search parameter; it only absorbs FP noise in inputs
// produced by geometric generators.
const diagTol = 1e-12

// validateDistMatrix verifies the distance matrix and returns its order n.
//
// Checks, in order:
//  1. Shape: non-nil, non-ragged, square, n ≥ 2.
//  2. Diagonal: |d(i,i)| ≤ diagTol, finite.
//  3. Off-diagonal: finite (no NaN, no ±Inf), non-negative.
//
// Symmetry is deliberately not required: the genetic search scores whole
// directed cycles, so asymmetric instances are fine.
//
// Complexity: O(n²) time, O(1) space.
func validateDistMatrix(dist [][]float64) (int, error) {
	// Stage 1: shape.
	n := len(dist)
	if n == 0 {
		return 0, ErrNonSquare
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}
	if n < 2 {
		return 0, ErrDimensionMismatch
	}

	// Stage 2 + 3: entries.
	var v, abs float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = dist[i][j]
			if math.IsNaN(v) {
				return 0, ErrDimensionMismatch
			}
			if math.IsInf(v, 0) {
				return 0, ErrIncompleteMatrix
			}
			if i == j {
				abs = v
				if abs < 0 {
					abs = -abs
				}
				if abs > diagTol {
					return 0, ErrNonZeroDiagonal
				}
				continue
			}
			if v < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	return n, nil
}

// validateStartVertex verifies start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}
