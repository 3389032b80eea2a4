// Package tsp_test provides lightweight helpers shared across the *_test.go
// files in this package: geometric matrix generators and tiny assertions.
// Intentionally minimal and stdlib-only.
package tsp_test

import (
	"errors"
	"math"
	"testing"
)

const (
	// seedDet is the deterministic seed used across the suites.
	seedDet = int64(11)

	// startV is the canonical start vertex used for tour normalization.
	startV = 0
)

// euclid builds a symmetric distance matrix from 2D points (zero diagonal).
func euclid(pts [][2]float64) [][]float64 {
	n := len(pts)
	a := make([][]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}

	var dx, dy, d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			d = math.Hypot(dx, dy)
			a[i][j] = d
			a[j][i] = d
		}
	}

	return a
}

// unitSquare returns four cities on a unit square; the optimal cycle is the
// perimeter with cost 4.
func unitSquare() [][]float64 {
	return euclid([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
}

// ring returns n cities evenly spaced on the unit circle.
func ring(n int) [][]float64 {
	pts := make([][2]float64, n)

	var i int
	var theta float64
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}

	return euclid(pts)
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}
