// Package genetic - swap mutation for closed tours.
//
// Mutation exchanges the symbols at two random positions of the working
// permutation (the closing element at L-1 is never drawn) and then re-closes
// the tour. The multiset of symbols is unchanged, so a valid permutation
// stays a valid permutation.
package genetic

// SwapMutation returns the default MutationFunc for closed-tour
// representations. Both offsets are drawn independently from [0, L-1); when
// they coincide the mutation is a no-op by construction. The input
// individual is never modified.
//
// Complexity: O(L) time, O(L) space.
func SwapMutation[A comparable]() MutationFunc[A] {
	return func(ind *Individual[A], rng RNG) *Individual[A] {
		var (
			l  = ind.Len()
			w  = l - 1
			cp = ind.Representation()
		)

		p1 := rng.Intn(w)
		p2 := rng.Intn(w)

		cp[p1], cp[p2] = cp[p2], cp[p1]

		// Re-close: position 0 may have just changed.
		cp[l-1] = cp[0]

		return NewIndividual(cp)
	}
}
