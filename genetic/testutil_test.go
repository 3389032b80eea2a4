// Package genetic_test - shared helpers for the engine and operator suites.
// Intentionally minimal: a scripted random stream for pinning operator draws,
// a repeat runner for determinism checks, and tiny slice assertions.
package genetic_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/gatsp/genetic"
)

// seedDet is the deterministic seed used across the suites.
const seedDet = int64(7)

// scriptRNG replays pre-recorded draws. Float64 values are consumed from
// floats, Intn values from ints (reduced modulo n for safety). Exhausting a
// script fails the test: operators must consume exactly the draws the
// contract promises, in the promised order.
type scriptRNG struct {
	t      *testing.T
	floats []float64
	ints   []int
	fi, ii int
}

var _ genetic.RNG = (*scriptRNG)(nil)

func (s *scriptRNG) Float64() float64 {
	if s.fi >= len(s.floats) {
		s.t.Fatalf("scriptRNG: Float64 draw %d exceeds script of %d", s.fi, len(s.floats))
	}
	v := s.floats[s.fi]
	s.fi++

	return v
}

func (s *scriptRNG) Intn(n int) int {
	if s.ii >= len(s.ints) {
		s.t.Fatalf("scriptRNG: Intn draw %d exceeds script of %d", s.ii, len(s.ints))
	}
	v := s.ints[s.ii] % n
	s.ii++

	return v
}

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustEqual asserts exact equality of two symbol slices.
func mustEqual[A comparable](t *testing.T, got, want []A) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// sameMultiset reports whether a and b contain the same symbols with the
// same multiplicities.
func sameMultiset[A comparable](a, b []A) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[A]int, len(a))

	var sym A
	for _, sym = range a {
		counts[sym]++
	}
	for _, sym = range b {
		counts[sym]--
		if counts[sym] < 0 {
			return false
		}
	}

	return true
}

// mustBeClosedPermutation asserts the closed-tour shape: first element equals
// last, and the working prefix is a permutation of the expected symbol set.
func mustBeClosedPermutation[A comparable](t *testing.T, repr []A, symbols []A) {
	t.Helper()
	if len(repr) != len(symbols)+1 {
		t.Fatalf("length %d, want %d", len(repr), len(symbols)+1)
	}
	if repr[0] != repr[len(repr)-1] {
		t.Fatalf("tour not closed: first=%v last=%v", repr[0], repr[len(repr)-1])
	}
	if !sameMultiset(repr[:len(repr)-1], symbols) {
		t.Fatalf("working prefix %v is not a permutation of %v", repr[:len(repr)-1], symbols)
	}
}

// newTourIndividual builds an Individual from a literal representation.
func newTourIndividual[A comparable](repr ...A) *genetic.Individual[A] {
	return genetic.NewIndividual(repr)
}
