package services

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebounceGate_FirstTriggerAllowed(t *testing.T) {
	gate := NewDebounceGate(10 * time.Second)
	assert.True(t, gate.TryTrigger(time.Unix(1000, 0)))
}

func TestDebounceGate_Burst(t *testing.T) {
	gate := NewDebounceGate(10 * time.Second)
	start := time.Unix(1000, 0)

	allowed := 0
	for i := 0; i < 100; i++ {
		if gate.TryTrigger(start.Add(time.Duration(i) * 50 * time.Millisecond)) {
			allowed++
		}
	}

	assert.Equal(t, 1, allowed)
}

func TestDebounceGate_Boundary(t *testing.T) {
	start := time.Unix(1000, 0)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{name: "just before interval", elapsed: 10*time.Second - time.Nanosecond, want: false},
		{name: "exactly interval", elapsed: 10 * time.Second, want: true},
		{name: "after interval", elapsed: 11 * time.Second, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewDebounceGate(10 * time.Second)
			gate.TryTrigger(start)
			assert.Equal(t, tt.want, gate.TryTrigger(start.Add(tt.elapsed)))
		})
	}
}

func TestDebounceGate_DenialDoesNotExtendWindow(t *testing.T) {
	gate := NewDebounceGate(10 * time.Second)
	start := time.Unix(1000, 0)

	assert.True(t, gate.TryTrigger(start))
	assert.False(t, gate.TryTrigger(start.Add(9*time.Second)))
	assert.True(t, gate.TryTrigger(start.Add(10*time.Second)))
}

func TestDebounceGate_WindowStartsAtTrigger(t *testing.T) {
	gate := NewDebounceGate(10 * time.Second)
	start := time.Unix(1000, 0)

	assert.True(t, gate.TryTrigger(start))
	assert.True(t, gate.TryTrigger(start.Add(12*time.Second)))
	assert.False(t, gate.TryTrigger(start.Add(21*time.Second)))
	assert.True(t, gate.TryTrigger(start.Add(22*time.Second)))
}

func TestDebounceGate_ZeroInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		gate := NewDebounceGate(interval)
		now := time.Unix(1000, 0)

		assert.True(t, gate.TryTrigger(now))
		assert.True(t, gate.TryTrigger(now))
		assert.Equal(t, time.Duration(0), gate.Interval())
	}
}

func TestDebounceGate_Concurrent(t *testing.T) {
	gate := NewDebounceGate(time.Hour)
	now := time.Unix(1000, 0)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if gate.TryTrigger(now) {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
}
