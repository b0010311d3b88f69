package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/input/keymap"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	actionMetrics map[keymap.Action]*ActionMetrics

	totalDispatches uint64
	totalIgnored    uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// ActionMetrics holds metrics for a specific action.
type ActionMetrics struct {
	Action        keymap.Action
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastStatus    handler.ResultStatus
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actionMetrics: make(map[keymap.Action]*ActionMetrics),
	}
}

// RecordDispatch records a handled action.
func (m *Metrics) RecordDispatch(action keymap.Action, duration time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration
	if status == handler.StatusError {
		m.totalErrors++
	}

	am := m.actionMetrics[action]
	if am == nil {
		am = &ActionMetrics{Action: action}
		m.actionMetrics[action] = am
	}
	am.DispatchCount++
	am.TotalDuration += duration
	am.LastStatus = status
	am.MaxDuration = max(am.MaxDuration, duration)
	if status == handler.StatusError {
		am.ErrorCount++
	}
}

// RecordIgnored records a key with no binding in the current mode.
func (m *Metrics) RecordIgnored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalIgnored++
}

// RecordPanic records a panic recovery.
func (m *Metrics) RecordPanic(action keymap.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalPanics++
	if am := m.actionMetrics[action]; am != nil {
		am.ErrorCount++
	}
}

// ActionStats returns a copy of the metrics for one action, or nil.
func (m *Metrics) ActionStats(action keymap.Action) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	am := m.actionMetrics[action]
	if am == nil {
		return nil
	}
	c := *am
	return &c
}

// TopActions returns the n most dispatched actions.
func (m *Metrics) TopActions(n int) []ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	actions := make([]ActionMetrics, 0, len(m.actionMetrics))
	for _, am := range m.actionMetrics {
		actions = append(actions, *am)
	}
	sort.Slice(actions, func(i, j int) bool {
		if actions[i].DispatchCount != actions[j].DispatchCount {
			return actions[i].DispatchCount > actions[j].DispatchCount
		}
		return actions[i].Action < actions[j].Action
	})
	return actions[:min(n, len(actions))]
}

// MetricsSnapshot is a point-in-time copy of the global counters.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalIgnored    uint64
	TotalErrors     uint64
	TotalPanics     uint64
	AverageDuration time.Duration
	ActionCount     int
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := MetricsSnapshot{
		TotalDispatches: m.totalDispatches,
		TotalIgnored:    m.totalIgnored,
		TotalErrors:     m.totalErrors,
		TotalPanics:     m.totalPanics,
		ActionCount:     len(m.actionMetrics),
	}
	if m.totalDispatches > 0 {
		snap.AverageDuration = m.totalDuration / time.Duration(m.totalDispatches)
	}
	return snap
}
