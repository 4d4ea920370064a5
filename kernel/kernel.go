// Package kernel holds the control loop's concurrency primitives: the
// single exclusion primitive guarding shared state, and the timer that
// derives the update cadence from the HAL tick stream.
package kernel

import (
	"sync"
	"sync/atomic"
)

// Critical is the one exclusion primitive in the firmware. The timer
// tick handler is the only writer of the shared state; the mainline
// loop acquires it just long enough to clone a snapshot. On hardware
// the equivalent masks the timer interrupt for the duration.
type Critical struct {
	mu sync.Mutex
}

// With runs f with the critical section held.
func (c *Critical) With(f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f()
}

// Timer divides the HAL's 1 ms tick stream into a fixed-period handler
// cadence and keeps an uptime counter readable from any goroutine.
type Timer struct {
	periodTicks uint64
	ticks       atomic.Uint64
}

// NewTimer returns a timer firing every periodTicks base ticks.
func NewTimer(periodTicks uint64) *Timer {
	if periodTicks == 0 {
		periodTicks = 1
	}
	return &Timer{periodTicks: periodTicks}
}

// Ticks returns the number of base ticks consumed so far.
func (t *Timer) Ticks() uint64 {
	return t.ticks.Load()
}

// Run consumes the tick stream, invoking handler once per period. It
// returns when the stream closes.
func (t *Timer) Run(ch <-chan uint64, handler func()) {
	for range ch {
		n := t.ticks.Add(1)
		if n%t.periodTicks == 0 {
			handler()
		}
	}
}
