// Package genetic - fitness-proportionate (roulette-wheel) selection.
//
// Selection picks one parent per call, with replacement: the same individual
// may father both sides of a crossover. Probability of a pick is proportional
// to the individual's fitness after shifting the whole population by its
// minimum, which keeps the wheel well-defined for fitness functions whose
// useful range floats far from zero. Under exact ties the worst individual
// receives zero selection mass.
package genetic

import "gonum.org/v1/gonum/floats"

// Roulette returns the default fitness-proportionate SelectionFunc.
//
// Algorithm:
//  1. Evaluate raw fitness for every individual, tracking the minimum.
//  2. Shift every value by the minimum so the shifted mass is ≥ 0.
//  3. Normalize the shifted values to sum to 1. If the whole shifted mass is
//     zero (every individual has identical fitness), fall back to a uniform
//     random pick - the wheel has no gradient to follow.
//  4. Draw u ∈ [0,1) and walk the cumulative distribution in population
//     order; the first individual whose cumulative share reaches u wins.
//     Floating-point rounding can leave the cumulative sum just short of u,
//     so the last individual is the pre-selected default.
//
// The winner's descendants counter is incremented (observability only).
//
// Contracts:
//   - pop must be non-empty; Run validates this before any selection.
//
// Complexity: O(N) time, O(N) space per pick.
func Roulette[A comparable]() SelectionFunc[A] {
	return func(pop Population[A], fitness FitnessFunc[A], rng RNG) *Individual[A] {
		var (
			n      = len(pop)
			values = make([]float64, n)
			min    float64
			i      int
		)

		// Stage 1: raw fitness + minimum.
		for i = 0; i < n; i++ {
			values[i] = fitness(pop[i])
			if i == 0 || values[i] < min {
				min = values[i]
			}
		}

		// Stage 2: shift by the minimum; the worst individual lands at 0.
		for i = 0; i < n; i++ {
			values[i] -= min
		}

		// Stage 3: normalize. A zero total means a flat fitness landscape.
		total := floats.Sum(values)
		if total == 0 {
			selected := pop[rng.Intn(n)]
			selected.incDescendants()

			return selected
		}
		for i = 0; i < n; i++ {
			values[i] /= total
		}

		// Stage 4: cumulative walk; default to the last individual so rounding
		// shortfall cannot leave the pick undefined.
		var (
			selected = pop[n-1]
			draw     = rng.Float64()
			cum      float64
		)
		for i = 0; i < n; i++ {
			cum += values[i]
			if draw <= cum {
				selected = pop[i]
				break
			}
		}

		selected.incDescendants()

		return selected
	}
}
