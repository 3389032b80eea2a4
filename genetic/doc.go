// Package genetic implements a generational genetic-algorithm engine with
// elitist replacement.
//
// The engine evolves a fixed-size population of fixed-length individuals
// toward higher fitness. Fitness is an injected pure function; termination is
// a goal test over the best individual of each completed generation, an
// iteration cap, a wall-clock budget, or any combination of the three.
//
//	eng, err := genetic.New(5, []string{"A", "B", "C", "D"},
//	    genetic.WithMutationProbability[string](0.2),
//	    genetic.WithSeed[string](42),
//	)
//	...
//	best, err := eng.RunIterations(initial, fitness)
//
// One pass of the loop:
//
//  1. Select two parents per child by fitness-proportionate (roulette-wheel)
//     selection, with replacement.
//  2. Produce one child per mating via order-preserving crossover.
//  3. Mutate the child with the configured probability (swap mutation).
//  4. Fill the last slot with the previous generation's best individual
//     (elitism) - the best fitness seen so far never regresses.
//  5. Append the new best fitness to the run's metric series and notify the
//     registered progress observers.
//  6. Stop when the goal test accepts the best individual or the time budget
//     is exhausted; otherwise repeat.
//
// All three operators are strategy functions replaceable per engine, so the
// same loop serves representations beyond closed tours.
//
// Complexity: O(G·N²·L) for G generations, population size N, individual
// length L (dominated by N-1 roulette picks of O(N) each plus O(L) operator
// work per child).
package genetic
