// Package genetic - the generational search engine.
//
// The engine drives the classic loop: evaluate, select two parents per child
// by fitness-proportionate selection, crossover, mutate with a configured
// probability, carry the previous generation's best individual into the last
// slot (elitism), record the new best fitness, then test the termination
// policy. Selection, crossover and mutation are strategy functions, so the
// loop can be re-targeted without subclassing.
//
// Design principles:
//   - Single-threaded, synchronous, no I/O: the whole run executes on the
//     caller's goroutine; the wall-clock budget is a comparison, not a sleep.
//   - One engine = one random stream; all draws happen in a fixed order, so a
//     fixed seed reproduces identical generations.
//   - Fail-fast validation before any generation runs; no partial execution.
//   - Each run owns a fresh metric series; aborted runs keep what they
//     recorded so far.
package genetic

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"
)

// MetricBestFitness is the name of the per-run metric series that records the
// best fitness of every generation, starting with generation 0.
const MetricBestFitness = "bestFitness"

// Engine evolves populations of fixed-length individuals.
// Construct via New; the zero value is not usable.
type Engine[A comparable] struct {
	opts     Options[A]
	alphabet []A // deduplicated, original order preserved
	rng      RNG

	selection SelectionFunc[A]
	crossover CrossoverFunc[A]
	mutation  MutationFunc[A]
	observers []ProgressFunc

	iterations  int
	bestFitness *Metric
}

// New constructs an Engine for individuals of the given length over the given
// symbol alphabet. The alphabet is deduplicated internally (first occurrence
// wins); the remaining knobs come from DefaultOptions overridden by setters.
//
// Errors: ErrNonPositiveLength, ErrIndividualTooShort,
// ErrBadMutationProbability, ErrEmptyAlphabet.
//
// Complexity: O(|alphabet|) time and space.
func New[A comparable](individualLength int, alphabet []A, setters ...Option[A]) (*Engine[A], error) {
	opts := DefaultOptions[A](individualLength)

	var set Option[A]
	for _, set = range setters {
		set(&opts)
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	// Deduplicate the alphabet, keeping first-occurrence order.
	var (
		seen   = make(map[A]struct{}, len(alphabet))
		dedup  = make([]A, 0, len(alphabet))
		sym    A
		exists bool
	)
	for _, sym = range alphabet {
		if _, exists = seen[sym]; exists {
			continue
		}
		seen[sym] = struct{}{}
		dedup = append(dedup, sym)
	}
	if len(dedup) == 0 {
		return nil, ErrEmptyAlphabet
	}

	e := &Engine[A]{
		opts:      opts,
		alphabet:  dedup,
		selection: opts.selection,
		crossover: opts.crossover,
		mutation:  opts.mutation,
		observers: opts.observers,
	}

	// Default operator strategies.
	if e.selection == nil {
		e.selection = Roulette[A]()
	}
	if e.crossover == nil {
		e.crossover = OrderCrossover[A]()
	}
	if e.mutation == nil {
		e.mutation = SwapMutation[A]()
	}

	// Random stream: an injected source wins over the seed policy.
	if opts.Source != nil {
		e.rng = rand.New(opts.Source)
	} else {
		e.rng = NewRand(opts.Seed)
	}

	return e, nil
}

// Run evolves the initial population until goal accepts the best individual
// of a completed generation or the configured time budget is exhausted. When
// goal is nil, the termination policy falls back to the MaxIterations cap,
// exactly as RunIterations.
//
// The caller's population slice is not mutated: Run works on a local copy.
// The returned individual is the best one found across all generations;
// elitism guarantees its fitness never regresses.
//
// Side effects per completed generation (including generation 0): one append
// to the bestFitness metric, then one synchronous notification of every
// registered observer, both before the time-budget check.
//
// Errors: ErrNilFitness, ErrEmptyPopulation, ErrWrongLength (wrapped with
// the offending index and both lengths). A panicking fitness function
// propagates unmodified; metric entries recorded before the panic survive.
//
// Complexity: O(G·N²·L) time for G generations (selection is O(N) per pick,
// N-1 children per generation, crossover O(L) each).
func (e *Engine[A]) Run(init Population[A], fitness FitnessFunc[A], goal GoalTest[A]) (*Individual[A], error) {
	if fitness == nil {
		return nil, ErrNilFitness
	}

	// Local copy so the caller's collection stays untouched.
	pop := clonePopulation(init)
	if err := e.validatePopulation(pop); err != nil {
		return nil, err
	}

	// No custom goal ⇒ the iteration cap is the goal.
	if goal == nil {
		goal = func(*Individual[A]) bool { return e.iterations >= e.opts.MaxIterations }
	}

	// Fresh run state: each run owns its own metric series.
	e.iterations = 0
	e.bestFitness = NewMetric(MetricBestFitness)

	start := time.Now()
	best := bestOf(pop, fitness)
	e.record(0, fitness(best), 0)

	var elapsed time.Duration
	for {
		pop = e.nextGeneration(pop, fitness, best)
		best = bestOf(pop, fitness)

		e.iterations++
		elapsed = time.Since(start)
		e.record(e.iterations, fitness(best), elapsed)

		// Budget check after the metric update: a completed generation is
		// always reflected in the series before the loop may exit for time.
		if e.opts.TimeLimit > 0 && elapsed > e.opts.TimeLimit {
			break
		}
		if goal(best) {
			break
		}
	}

	return best, nil
}

// RunIterations evolves the initial population for at most the configured
// MaxIterations generations. Convenience entry point for callers without a
// problem-specific goal test.
func (e *Engine[A]) RunIterations(init Population[A], fitness FitnessFunc[A]) (*Individual[A], error) {
	return e.Run(init, fitness, nil)
}

// nextGeneration builds the successor population: N-1 children from repeated
// select-crossover-mutate rounds, plus the previous best individual in the
// final slot (elitist generational replacement).
//
// Draw order per child is fixed: parent x, parent y, crossover offsets,
// mutation coin, mutation offsets. Changing it would change every seeded run.
//
// Complexity: O(N²+N·L) time per generation.
func (e *Engine[A]) nextGeneration(pop Population[A], fitness FitnessFunc[A], bestBefore *Individual[A]) Population[A] {
	var (
		n     = len(pop)
		next  = make(Population[A], 0, n)
		i     int
		x, y  *Individual[A]
		child *Individual[A]
	)

	for i = 0; i < n-1; i++ { // one slot is reserved for the elite
		x = e.selection(pop, fitness, e.rng)
		y = e.selection(pop, fitness, e.rng)
		child = e.crossover(x, y, e.rng)

		if e.rng.Float64() < e.opts.MutationProbability {
			child = e.mutation(child, e.rng)
		}
		next = append(next, child)
	}
	next = append(next, bestBefore)

	return next
}

// record appends one sample to the bestFitness series and notifies the
// registered observers, in registration order, synchronously.
func (e *Engine[A]) record(generation int, best float64, elapsed time.Duration) {
	e.bestFitness.Append(best)

	var fn ProgressFunc
	for _, fn = range e.observers {
		fn(generation, best, elapsed)
	}
}

// validatePopulation fails fast on the two fatal configuration errors:
// an empty population, or any individual whose length differs from the
// configured individual length.
//
// Complexity: O(N).
func (e *Engine[A]) validatePopulation(pop Population[A]) error {
	if len(pop) == 0 {
		return ErrEmptyPopulation
	}

	var (
		i   int
		ind *Individual[A]
	)
	for i, ind = range pop {
		if ind.Len() != e.opts.IndividualLength {
			return fmt.Errorf("%w: individual %d %v has length %d, want %d",
				ErrWrongLength, i, ind, ind.Len(), e.opts.IndividualLength)
		}
	}

	return nil
}

// bestOf returns the arg-max of fitness over pop. Comparison is strict >, so
// ties resolve to the first-encountered individual; the scan starts from the
// first member, so the result is well-defined even on a flat landscape.
//
// Complexity: O(N).
func bestOf[A comparable](pop Population[A], fitness FitnessFunc[A]) *Individual[A] {
	var (
		best  = pop[0]
		bestV = fitness(pop[0])
		i     int
		v     float64
	)
	for i = 1; i < len(pop); i++ {
		v = fitness(pop[i])
		if v > bestV {
			best = pop[i]
			bestV = v
		}
	}

	return best
}

// AverageFitness reports the arithmetic mean fitness over the population.
// Diagnostic only - termination never consults it.
//
// Complexity: O(N).
func AverageFitness[A comparable](pop Population[A], fitness FitnessFunc[A]) float64 {
	if len(pop) == 0 {
		return 0
	}

	values := make([]float64, len(pop))

	var i int
	for i = range pop {
		values[i] = fitness(pop[i])
	}

	return stat.Mean(values, nil)
}

// Iterations reports how many generations the most recent run completed
// (generation 0 excluded).
func (e *Engine[A]) Iterations() int {
	return e.iterations
}

// BestFitness returns the metric series of the most recent run, or nil when
// the engine has not run yet. Safe to read while a run is in flight.
func (e *Engine[A]) BestFitness() *Metric {
	return e.bestFitness
}

// Alphabet returns a copy of the engine's deduplicated symbol alphabet.
func (e *Engine[A]) Alphabet() []A {
	cp := make([]A, len(e.alphabet))
	copy(cp, e.alphabet)

	return cp
}
