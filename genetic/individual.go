// Package genetic - the Individual value type.
//
// An Individual is one candidate solution: a fixed-length ordered sequence of
// symbols plus a counter of how many times selection picked it as a breeding
// parent. The representation is immutable after construction: constructors
// and accessors copy defensively, and operators always produce fresh
// individuals. The sole mutable field is the descendants counter, bumped at
// selection time and used for observability only - never for fitness.
package genetic

import "fmt"

// Individual is one candidate solution in a population.
//
// For tour-shaped problems the representation is a permutation whose first
// and last element coincide (the closing vertex); the engine itself does not
// require that shape - it is enforced by the operators that need it.
type Individual[A comparable] struct {
	repr        []A // fixed-length representation; never mutated after construction
	descendants int // times chosen as a breeding parent; observability only
}

// NewIndividual builds an Individual from the given representation.
// The slice is copied, so the caller retains ownership of its argument.
//
// Complexity: O(L) time, O(L) space.
func NewIndividual[A comparable](representation []A) *Individual[A] {
	cp := make([]A, len(representation))
	copy(cp, representation)

	return &Individual[A]{repr: cp}
}

// Len reports the representation length L.
//
// Complexity: O(1).
func (ind *Individual[A]) Len() int {
	return len(ind.repr)
}

// At returns the symbol at position i. Callers must keep i within [0..L-1];
// out-of-range access panics exactly as slice indexing does.
//
// Complexity: O(1).
func (ind *Individual[A]) At(i int) A {
	return ind.repr[i]
}

// Representation returns an independent copy of the symbol sequence.
//
// Complexity: O(L) time, O(L) space.
func (ind *Individual[A]) Representation() []A {
	cp := make([]A, len(ind.repr))
	copy(cp, ind.repr)

	return cp
}

// Descendants reports how many times this individual was chosen as a breeding
// parent by selection. Diagnostic only; fitness never reads it.
//
// Complexity: O(1).
func (ind *Individual[A]) Descendants() int {
	return ind.descendants
}

// incDescendants accounts one selection pick. Package-private: only
// SelectionFunc implementations are expected to call it.
func (ind *Individual[A]) incDescendants() {
	ind.descendants++
}

// String returns a compact printable form, e.g. "[A B C D A]", suitable for
// error messages and test failures.
func (ind *Individual[A]) String() string {
	return fmt.Sprintf("%v", ind.repr)
}

// Population is an ordered collection of individuals. Its size is fixed for
// the duration of a run; the engine validates it and never resizes it.
type Population[A comparable] []*Individual[A]

// clonePopulation returns a shallow copy of pop: a fresh slice sharing the
// same individuals. Run uses it so the caller's collection is never mutated.
//
// Complexity: O(N) time, O(N) space.
func clonePopulation[A comparable](pop Population[A]) Population[A] {
	cp := make(Population[A], len(pop))
	copy(cp, pop)

	return cp
}
