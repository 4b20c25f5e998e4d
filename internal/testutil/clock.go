// Package testutil provides test helpers shared across packages.
package testutil

import (
	"sync"
	"time"

	"github.com/akyairhashvil/dialtimer/internal/clock"
)

// ManualClock implements clock.Clock with time that only moves when a test
// advances it.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	pending []pendingFunc
}

type pendingFunc struct {
	executeAt time.Time
	fn        func()
	done      bool
}

// ManualTimer is the clock.Timer handed out by ManualClock.
type ManualTimer struct {
	clock *ManualClock
	index int
}

var _ clock.Clock = (*ManualClock)(nil)

func NewManualClock() *ManualClock {
	return NewManualClockAt(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
}

func NewManualClockAt(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	index := len(m.pending)
	m.pending = append(m.pending, pendingFunc{
		executeAt: m.now.Add(d),
		fn:        f,
	})
	return &ManualTimer{clock: m, index: index}
}

// Advance moves time forward by d and runs every callback that has come
// due, outside the lock. It returns the number of callbacks run.
func (m *ManualClock) Advance(d time.Duration) int {
	m.mu.Lock()
	m.now = m.now.Add(d)
	var due []func()
	for i := range m.pending {
		pf := &m.pending[i]
		if !pf.done && !pf.executeAt.After(m.now) {
			due = append(due, pf.fn)
			pf.done = true
		}
	}
	m.mu.Unlock()

	for _, fn := range due {
		fn()
	}
	return len(due)
}

// AdvanceSteps calls Advance(step) n times and returns the total number of
// callbacks run.
func (m *ManualClock) AdvanceSteps(n int, step time.Duration) int {
	fired := 0
	for i := 0; i < n; i++ {
		fired += m.Advance(step)
	}
	return fired
}

// FireAll runs every pending callback regardless of its due time.
func (m *ManualClock) FireAll() int {
	m.mu.Lock()
	var due []func()
	for i := range m.pending {
		pf := &m.pending[i]
		if !pf.done {
			due = append(due, pf.fn)
			pf.done = true
		}
	}
	m.mu.Unlock()

	for _, fn := range due {
		fn()
	}
	return len(due)
}

// PendingCount is the number of callbacks neither run nor stopped.
func (m *ManualClock) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, pf := range m.pending {
		if !pf.done {
			count++
		}
	}
	return count
}

func (t *ManualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.index < len(t.clock.pending) && !t.clock.pending[t.index].done {
		t.clock.pending[t.index].done = true
		return true
	}
	return false
}
