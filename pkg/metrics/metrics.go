// Package metrics provides in-memory counters over suite runs.
// RunMetrics implements event.Reporter and can be handed to a
// run directly or fanned in through event.Multi. Real metrics
// backends (e.g. prometheus/client_golang) are wired by the host
// application on top of these counters.
package metrics

import (
	"sync"
	"time"

	"digital.vasic.spec/pkg/event"
)

// RunMetrics counts run events and collects per-test durations.
// It is safe for concurrent use.
type RunMetrics struct {
	mu        sync.RWMutex
	outcomes  map[string]int // "<test>:<status>" -> count
	durations map[string][]time.Duration
	runs      int
}

// NewRunMetrics creates an empty RunMetrics.
func NewRunMetrics() *RunMetrics {
	return &RunMetrics{
		outcomes:  make(map[string]int),
		durations: make(map[string][]time.Duration),
	}
}

// Apply records one run event.
func (m *RunMetrics) Apply(e event.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch e.Type {
	case event.TestSucceeded:
		m.outcomes[e.TestName+":passed"]++
		m.durations[e.TestName] = append(
			m.durations[e.TestName], e.Duration,
		)
	case event.TestFailed:
		m.outcomes[e.TestName+":failed"]++
		m.durations[e.TestName] = append(
			m.durations[e.TestName], e.Duration,
		)
	case event.TestIgnored:
		m.outcomes[e.TestName+":ignored"]++
	}
}

// IncrementRunTotal counts one completed run.
func (m *RunMetrics) IncrementRunTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs++
}

// OutcomeCount returns the count for a test+status combination,
// where status is "passed", "failed", or "ignored".
func (m *RunMetrics) OutcomeCount(test, status string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.outcomes[test+":"+status]
}

// Durations returns the recorded durations for a test.
func (m *RunMetrics) Durations(test string) []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]time.Duration, len(m.durations[test]))
	copy(out, m.durations[test])
	return out
}

// RunTotal returns the number of completed runs.
func (m *RunMetrics) RunTotal() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.runs
}

// Reset clears all counters.
func (m *RunMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = make(map[string]int)
	m.durations = make(map[string][]time.Duration)
	m.runs = 0
}
