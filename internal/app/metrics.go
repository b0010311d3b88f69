package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks event loop timing.
type Metrics struct {
	// Render timing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	renderMaxNs   atomic.Int64

	// Key handling
	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64

	// Other events (resize, file change)
	eventCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.renderCount.Add(1)
	m.renderTotalNs.Add(ns)

	for {
		old := m.renderMaxNs.Load()
		if ns <= old || m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInput records key handling timing.
func (m *Metrics) RecordInput(duration time.Duration) {
	m.inputCount.Add(1)
	m.inputTotalNs.Add(duration.Nanoseconds())
}

// RecordEvent counts a non-key event.
func (m *Metrics) RecordEvent() {
	m.eventCount.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	renderCount := m.renderCount.Load()
	inputCount := m.inputCount.Load()

	var avgRender, avgInput time.Duration
	if renderCount > 0 {
		avgRender = time.Duration(m.renderTotalNs.Load() / int64(renderCount))
	}
	if inputCount > 0 {
		avgInput = time.Duration(m.inputTotalNs.Load() / int64(inputCount))
	}

	return MetricsSnapshot{
		Uptime:      time.Since(m.startTime),
		RenderCount: renderCount,
		AvgRender:   avgRender,
		MaxRender:   time.Duration(m.renderMaxNs.Load()),
		InputCount:  inputCount,
		AvgInput:    avgInput,
		EventCount:  m.eventCount.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime      time.Duration
	RenderCount uint64
	AvgRender   time.Duration
	MaxRender   time.Duration
	InputCount  uint64
	AvgInput    time.Duration
	EventCount  uint64
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
