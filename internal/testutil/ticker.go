package testutil

import (
	"sync"
	"time"
)

// tickTimeout bounds how long Tick waits for a consumer.
const tickTimeout = time.Second

// ManualTicker is a ticker driven by the test instead of the wall clock.
//
// Tick delivers exactly one tick and blocks until the consumer receives it,
// so a test knows the consumer has seen every tick it sent. Each tick
// carries a logical timestamp advancing by Step from a fixed epoch.
//
// Thread-safety: All methods are safe for concurrent use.
type ManualTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	now     time.Time
	step    time.Duration
	ticks   int64
	stopped bool
}

// NewManualTicker creates a ticker whose timestamps advance by step.
func NewManualTicker(step time.Duration) *ManualTicker {
	return &ManualTicker{
		ch:   make(chan time.Time),
		now:  time.Unix(0, 0).UTC(),
		step: step,
	}
}

// C returns the tick channel.
func (t *ManualTicker) C() <-chan time.Time {
	return t.ch
}

// Tick sends one tick. Returns false if the ticker is stopped or nobody
// received the tick within a second.
func (t *ManualTicker) Tick() bool {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return false
	}
	t.now = t.now.Add(t.step)
	now := t.now
	t.mu.Unlock()

	select {
	case t.ch <- now:
		t.mu.Lock()
		t.ticks++
		t.mu.Unlock()
		return true
	case <-time.After(tickTimeout):
		return false
	}
}

// TickN sends up to n ticks and returns how many were delivered.
func (t *ManualTicker) TickN(n int) int {
	for i := 0; i < n; i++ {
		if !t.Tick() {
			return i
		}
	}
	return n
}

// Ticks returns the number of delivered ticks.
func (t *ManualTicker) Ticks() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticks
}

// Stop marks the ticker stopped; later Tick calls return false.
func (t *ManualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Stopped reports whether Stop was called.
func (t *ManualTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}
