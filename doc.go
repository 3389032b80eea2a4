// Package gatsp is a generational genetic-algorithm optimizer with a
// ready-made Travelling Salesman Problem front end.
//
// 🚀 What is gatsp?
//
//	A small, deterministic, library-only evolutionary search toolkit:
//		• genetic/ — the generic engine: populations of fixed-length
//		  individuals, fitness-proportionate selection, order-preserving
//		  crossover, swap mutation, elitist generational replacement,
//		  per-generation metrics and progress observers
//		• tsp/     — the TSP application layer: distance-matrix validation,
//		  closed-tour utilities, tour cost, fitness construction and a
//		  one-call Solve entry point
//
// ✨ Why choose gatsp?
//
//   - Deterministic – explicit seed policy, injectable random sources,
//     identical results for identical inputs
//   - Rock-solid guarantees – strict sentinel errors, fail-fast
//     validation, no logging, no hidden global state
//   - Pure Go – no cgo; gonum for the numeric plumbing
//   - Extensible – selection, crossover and mutation are swappable
//     strategy functions, no subclassing required
//
// Quick sketch of the search loop:
//
//	evaluate → select parents → crossover → mutate (probabilistically)
//	         → elitist replace → record metric → check termination
//
// The engine returns the best individual found; the best-so-far fitness
// never regresses between generations (elitism).
//
//	go get github.com/katalvlaran/gatsp
package gatsp
