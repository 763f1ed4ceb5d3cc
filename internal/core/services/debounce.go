package services

import (
	"sync"
	"time"
)

// DebounceGate allows at most one trigger per interval.
//
// The timestamp is taken when a trigger is allowed, not when the event that
// caused it was received, so a burst arriving right after a trigger waits a
// full fresh interval.
type DebounceGate struct {
	mu            sync.Mutex
	interval      time.Duration
	lastTriggerAt time.Time
}

// NewDebounceGate creates a gate. A zero or negative interval allows every call.
func NewDebounceGate(interval time.Duration) *DebounceGate {
	if interval < 0 {
		interval = 0
	}
	return &DebounceGate{interval: interval}
}

// TryTrigger reports whether a trigger is allowed at now.
// On allow the gate records now; on deny its state is unchanged.
func (g *DebounceGate) TryTrigger(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.lastTriggerAt.IsZero() && now.Sub(g.lastTriggerAt) < g.interval {
		return false
	}
	g.lastTriggerAt = now
	return true
}

// Interval returns the configured debounce window.
func (g *DebounceGate) Interval() time.Duration {
	return g.interval
}
