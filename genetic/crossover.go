// Package genetic - order-preserving crossover for closed tours.
//
// The operator treats an individual of length L as a closed tour: positions
// 0..L-2 form the working permutation of W = L-1 symbols, and position L-1
// redundantly repeats position 0 (the closing vertex). One child is produced
// per mating: a cyclic slice of the first parent survives verbatim at its
// original positions, and the remaining symbols arrive in the order the
// second parent visits them. The result is a valid permutation of the same
// symbol set whenever both parents are.
package genetic

// OrderCrossover returns the default CrossoverFunc for closed-tour
// representations. The two cut offsets are drawn uniformly from [0, W).
//
// Complexity: O(L) time, O(L) space per child.
func OrderCrossover[A comparable]() CrossoverFunc[A] {
	return func(x, y *Individual[A], rng RNG) *Individual[A] {
		w := x.Len() - 1 // working permutation length, closing element excluded

		p1 := rng.Intn(w)
		p2 := rng.Intn(w)

		return orderCrossoverAt(x, y, p1, p2)
	}
}

// orderCrossoverAt performs the deterministic core of OrderCrossover for
// fixed cut offsets. Split out so golden tests can pin p1/p2 directly.
//
// Algorithm:
//  1. Start the child as a copy of x.
//  2. Walk the cyclic range [p1, p2) modulo W and mark the symbols x holds
//     there as inherited; they stay at their original positions because the
//     child already equals x.
//  3. Scan y from position 0 to W-1; every symbol not marked inherited is
//     written into the child starting at cyclic position p2, advancing the
//     cursor modulo W after each placement.
//  4. Force the closing element: child[L-1] = child[0].
//
// When p1 == p2 the cyclic walk is empty, the inherited set is empty, and
// the child is rebuilt almost entirely in y's order anchored at p2. That
// degenerate case is part of the operator's contract, not an error.
//
// Complexity: O(L) time, O(W) space.
func orderCrossoverAt[A comparable](x, y *Individual[A], p1, p2 int) *Individual[A] {
	var (
		l     = x.Len()
		w     = l - 1
		child = x.Representation() // stage 1: child starts as a copy of x
	)

	// Stage 2: mark the cyclic segment [p1, p2) of x as inherited.
	inherited := make(map[A]struct{}, w)

	i := p1
	for i != p2 {
		inherited[x.At(i)] = struct{}{}
		i++
		if i == w {
			i = 0
		}
	}

	// Stage 3: fill the remaining slots with y's symbols in y's order,
	// starting at p2 and wrapping modulo W.
	var (
		cursor = p2
		sym    A
		ok     bool
	)
	for i = 0; i < w; i++ {
		sym = y.At(i)
		if _, ok = inherited[sym]; ok {
			continue
		}
		child[cursor] = sym
		cursor++
		if cursor == w {
			cursor = 0
		}
	}

	// Stage 4: re-close the tour.
	child[l-1] = child[0]

	return NewIndividual(child)
}
