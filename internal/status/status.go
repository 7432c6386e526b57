// Package status provides a thread-safe snapshot of observable node state.
// The control side updates it every cycle; the deadline loop records misses
// into it; the periodic status log line reads it back out.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/pico-controller/internal/msg"
)

// ControlState is the control task's contribution to the snapshot.
type ControlState struct {
	CycleCount uint32
	Enabled    bool
	ErrorFlag  bool
	Presses    uint32
	Releases   uint32
	// LastReport is the most recent maintenance report, nil before the
	// first one arrives.
	LastReport *msg.MaintenanceMessage
}

// Snapshot is a point-in-time view of node state. It is a value type, safe
// to use after the lock is released.
type Snapshot struct {
	ControlState
	DeadlineMisses uint64
	StartTime      time.Time
	Now            time.Time
}

// Uptime returns the duration since the node started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable node state behind an RWMutex.
type Tracker struct {
	mu     sync.RWMutex
	ctrl   ControlState
	misses uint64
	start  time.Time
}

// NewTracker creates a Tracker with the given start time.
func NewTracker(startTime time.Time) *Tracker {
	return &Tracker{start: startTime}
}

// UpdateControl replaces the control-side state. Called once per control cycle.
func (t *Tracker) UpdateControl(cs ControlState) {
	t.mu.Lock()
	t.ctrl = cs
	t.mu.Unlock()
}

// RecordMiss counts one control-loop deadline miss.
func (t *Tracker) RecordMiss() {
	t.mu.Lock()
	t.misses++
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of node state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := Snapshot{
		ControlState:   t.ctrl,
		DeadlineMisses: t.misses,
		StartTime:      t.start,
	}
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
