// Package genetic - the Metric time series.
//
// A Metric is a named, append-only sequence of float64 samples: one value per
// completed generation, in generation order. Entries are never rewritten
// retroactively; after an aborted run, everything recorded so far stays
// visible, which is what makes mid-run failures diagnosable.
//
// Concurrency:
//   - The engine appends from the run goroutine; external consumers (live
//     displays, exporters) may read at any time. A RWMutex keeps those reads
//     safe without serializing them against each other.
package genetic

import (
	"sync"

	"gonum.org/v1/gonum/stat"
)

// Metric is a named scalar time series with one recorded value per
// generation. The zero value is not usable; construct via NewMetric.
type Metric struct {
	name string

	mu     sync.RWMutex
	values []float64
}

// NewMetric returns an empty metric with the given name.
//
// Complexity: O(1).
func NewMetric(name string) *Metric {
	return &Metric{name: name}
}

// Name returns the metric name, e.g. "bestFitness".
//
// Complexity: O(1).
func (m *Metric) Name() string {
	return m.name
}

// Append records one sample at the end of the series.
//
// Complexity: amortized O(1).
func (m *Metric) Append(v float64) {
	m.mu.Lock()
	m.values = append(m.values, v)
	m.mu.Unlock()
}

// Len reports how many samples were recorded so far.
//
// Complexity: O(1).
func (m *Metric) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.values)
}

// Values returns an independent copy of all recorded samples in insertion
// (= generation) order.
//
// Complexity: O(k) time, O(k) space for k samples.
func (m *Metric) Values() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cp := make([]float64, len(m.values))
	copy(cp, m.values)

	return cp
}

// Last returns the most recent sample and true, or 0 and false when the
// series is still empty.
//
// Complexity: O(1).
func (m *Metric) Last() (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.values) == 0 {
		return 0, false
	}

	return m.values[len(m.values)-1], true
}

// Mean returns the arithmetic mean of all recorded samples, or 0 for an
// empty series. Diagnostic only.
//
// Complexity: O(k) for k samples.
func (m *Metric) Mean() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.values) == 0 {
		return 0
	}

	return stat.Mean(m.values, nil)
}
