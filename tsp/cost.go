// Package tsp - tour cost evaluation.
//
// Costs are summed edge by edge along the closed cycle and rounded to 1e-9
// so identical tours yield bit-identical costs across platforms. Each edge
// fetch is defensively checked even when validateDistMatrix ran earlier;
// the fitness path must never observe NaN or negative partial sums.
package tsp

import "math"

// roundScale controls the final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums the distances along the cycle edges tour[i] → tour[i+1].
//
// Contracts:
//   - dist must be square of order n (see validateDistMatrix).
//   - tour must hold a closed cycle: len(tour) ≥ 2, indices within [0..n-1].
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrIncompleteMatrix,
// ErrNegativeWeight.
//
// Complexity: O(n) time, O(1) space.
func TourCost(dist [][]float64, tour []int) (float64, error) {
	n := len(dist)
	if n == 0 {
		return 0, ErrNonSquare
	}
	if tour == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		u = tour[i]
		v = tour[i+1]

		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		if len(dist[u]) != n {
			return 0, ErrNonSquare
		}

		w = dist[u][v]
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(w, 0) {
			return 0, ErrIncompleteMatrix
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}

		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision. Keeps costs stable
// across platforms without affecting which tour is shorter.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
