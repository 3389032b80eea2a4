// Package tsp_test exercises tour-cost evaluation: exact sums, the 1e-9
// stabilization, and the strict per-edge sentinels.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gatsp/tsp"
)

func TestTourCost_UnitSquarePerimeter(t *testing.T) {
	dist := unitSquare()

	cost, err := tsp.TourCost(dist, []int{0, 1, 2, 3, 0})
	if err != nil {
		t.Fatalf("TourCost failed: %v", err)
	}
	if cost != 4 {
		t.Fatalf("perimeter cost = %v, want 4", cost)
	}

	// The crossing diagonal tour is strictly worse: 2 + 2·√2.
	crossing, err := tsp.TourCost(dist, []int{0, 2, 1, 3, 0})
	if err != nil {
		t.Fatalf("TourCost failed: %v", err)
	}
	if crossing <= cost {
		t.Fatalf("crossing tour cost %v not worse than perimeter %v", crossing, cost)
	}
}

func TestTourCost_StabilizedToNanoPrecision(t *testing.T) {
	dist := [][]float64{
		{0, 0.1},
		{0.1, 0},
	}

	cost, err := tsp.TourCost(dist, []int{0, 1, 0})
	if err != nil {
		t.Fatalf("TourCost failed: %v", err)
	}
	// 0.1+0.1 accumulates FP noise; the rounded result must be exactly 0.2.
	if cost != 0.2 {
		t.Fatalf("stabilized cost = %.17g, want exactly 0.2", cost)
	}
}

func TestTourCost_Sentinels(t *testing.T) {
	dist := unitSquare()

	_, err := tsp.TourCost(nil, []int{0, 1, 0})
	mustErrIs(t, err, tsp.ErrNonSquare)

	_, err = tsp.TourCost(dist, nil)
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourCost(dist, []int{0, 9, 0})
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	inf := unitSquare()
	inf[0][1] = math.Inf(1)
	_, err = tsp.TourCost(inf, []int{0, 1, 2, 3, 0})
	mustErrIs(t, err, tsp.ErrIncompleteMatrix)

	neg := unitSquare()
	neg[1][2] = -1
	_, err = tsp.TourCost(neg, []int{0, 1, 2, 3, 0})
	mustErrIs(t, err, tsp.ErrNegativeWeight)
}
