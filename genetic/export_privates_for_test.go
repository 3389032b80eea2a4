// Package genetic - controlled exposure of internals for the external test
// package. Golden crossover tests must pin the cut offsets p1/p2, which the
// public operator draws from the engine's random stream; re-exporting the
// deterministic core keeps the production surface closed while letting tests
// assert exact byte-for-byte offspring.
package genetic

// OrderCrossoverAt_TestOnly runs the deterministic crossover core for fixed
// cut offsets. Test-only; never call from production code.
func OrderCrossoverAt_TestOnly[A comparable](x, y *Individual[A], p1, p2 int) *Individual[A] {
	return orderCrossoverAt(x, y, p1, p2)
}
