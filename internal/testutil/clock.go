// Package testutil provides deterministic helpers for reproducible tests.
package testutil

import (
	"sync"
	"time"
)

// DeterministicClock is a monotonic fake clock for benchmark tests.
//
// Every reading advances the clock by a fixed step, so a timed call
// bracketed by two readings always measures exactly one step. This makes
// benchmark tables byte-identical across runs.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DeterministicClock struct {
	mu   sync.Mutex
	seq  int64
	step time.Duration
}

// NewDeterministicClock creates a clock that advances one microsecond per reading.
//
// The first call to Next() returns 1.
func NewDeterministicClock() *DeterministicClock {
	return NewDeterministicClockStep(time.Microsecond)
}

// NewDeterministicClockStep creates a clock that advances step per reading.
func NewDeterministicClockStep(step time.Duration) *DeterministicClock {
	return &DeterministicClock{step: step}
}

// Next increments and returns the reading count.
//
// Monotonic: always returns seq+1, never decreases.
func (c *DeterministicClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the reading count without incrementing.
func (c *DeterministicClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Now advances the clock and returns the elapsed fake time.
func (c *DeterministicClock) Now() time.Duration {
	return time.Duration(c.Next()) * c.step
}

// Reset resets the clock to 0.
//
// After Reset(), the next call to Next() returns 1.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
