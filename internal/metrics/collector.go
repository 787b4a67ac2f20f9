// Package metrics provides in-memory statistics for a curation session.
package metrics

import (
	"math"
	"sync"
	"time"
)

// OperationMetrics holds aggregated timings for a single operation type.
type OperationMetrics struct {
	Count     int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// OperationSnapshot provides computed stats from raw metrics.
type OperationSnapshot struct {
	Count   int64
	Total   time.Duration
	Average time.Duration
	Min     time.Duration
	Max     time.Duration
}

// Snapshot represents the session statistics at a point in time.
type Snapshot struct {
	Elapsed         time.Duration
	Record          *OperationSnapshot
	RejectedAnswers int64
	Renumbered      int64
}

// Operation and counter names for the collector.
const (
	OpRecord = "record"

	CountRejectedAnswer = "rejected_answer"
	CountRenumbered     = "renumbered"
)

// Collector aggregates in-memory session statistics.
// All methods are thread-safe.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time
	now       func() time.Time
	ops       map[string]*OperationMetrics
	counters  map[string]int64
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return newCollector(time.Now)
}

func newCollector(now func() time.Time) *Collector {
	return &Collector{
		startTime: now(),
		now:       now,
		ops:       make(map[string]*OperationMetrics),
		counters:  make(map[string]int64),
	}
}

// getOrCreate returns existing metrics or creates new ones for an operation.
// Caller must hold write lock.
func (c *Collector) getOrCreate(op string) *OperationMetrics {
	m, ok := c.ops[op]
	if !ok {
		m = &OperationMetrics{MinTime: time.Duration(math.MaxInt64)}
		c.ops[op] = m
	}
	return m
}

// RecordTiming records timing for an operation.
func (c *Collector) RecordTiming(op string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.getOrCreate(op)
	m.Count++
	m.TotalTime += duration

	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
}

// Start returns a function that records the time elapsed since Start was
// called under op.
func (c *Collector) Start(op string) func() {
	begin := c.now()
	return func() { c.RecordTiming(op, c.now().Sub(begin)) }
}

// Increment adds one to the named counter.
func (c *Collector) Increment(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[name]++
}

// snapshotOp creates a snapshot for an operation, returning nil if no data.
func snapshotOp(m *OperationMetrics) *OperationSnapshot {
	if m == nil || m.Count == 0 {
		return nil
	}
	return &OperationSnapshot{
		Count:   m.Count,
		Total:   m.TotalTime,
		Average: m.TotalTime / time.Duration(m.Count),
		Min:     m.MinTime,
		Max:     m.MaxTime,
	}
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		Elapsed:         c.now().Sub(c.startTime),
		Record:          snapshotOp(c.ops[OpRecord]),
		RejectedAnswers: c.counters[CountRejectedAnswer],
		Renumbered:      c.counters[CountRenumbered],
	}
}
