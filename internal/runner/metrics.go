package runner

import (
	"sync"
	"time"
)

// RunMetrics accumulates execution results across dispatch calls.
type RunMetrics struct {
	TotalRuns       int64
	Succeeded       int64
	Failed          int64
	Panicked        int64
	TotalDuration   time.Duration
	AverageDuration time.Duration
	Slowest         Result
	mutex           sync.RWMutex
}

// NewRunMetrics creates an empty metrics tracker
func NewRunMetrics() *RunMetrics {
	return &RunMetrics{}
}

// Record adds one execution result.
func (m *RunMetrics) Record(result Result) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.TotalRuns++
	m.TotalDuration += result.Duration

	switch result.Outcome {
	case OutcomeSucceeded:
		m.Succeeded++
	case OutcomePanicked:
		m.Panicked++
	default:
		m.Failed++
	}

	if m.TotalRuns == 1 || result.Duration > m.Slowest.Duration {
		m.Slowest = result
	}

	m.AverageDuration = m.TotalDuration / time.Duration(m.TotalRuns)
}

// Snapshot returns a copy of the current metrics.
func (m *RunMetrics) Snapshot() RunMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return RunMetrics{
		TotalRuns:       m.TotalRuns,
		Succeeded:       m.Succeeded,
		Failed:          m.Failed,
		Panicked:        m.Panicked,
		TotalDuration:   m.TotalDuration,
		AverageDuration: m.AverageDuration,
		Slowest:         m.Slowest,
	}
}

// Reset clears all metrics
func (m *RunMetrics) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.TotalRuns = 0
	m.Succeeded = 0
	m.Failed = 0
	m.Panicked = 0
	m.TotalDuration = 0
	m.AverageDuration = 0
	m.Slowest = Result{}
}

// FailureRate returns the share of failed or panicked runs as a percentage.
func (m *RunMetrics) FailureRate() float64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.TotalRuns == 0 {
		return 0
	}
	return float64(m.Failed+m.Panicked) / float64(m.TotalRuns) * 100
}
