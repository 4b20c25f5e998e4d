// Package timer implements the countdown state machine behind the dial.
package timer

import (
	"sync"
	"time"

	"github.com/akyairhashvil/dialtimer/internal/clock"
	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/util"
)

// Options contains runtime options for a Controller.
type Options struct {
	TickInterval time.Duration
	// PauseOnDurationChange stops a running countdown when the duration is
	// changed. By default the countdown keeps running from the new value.
	PauseOnDurationChange bool
}

// Controller owns the timer state and the single pending tick.
//
// At most one tick callback is armed at a time. Every arm or cancel bumps
// generation, and a callback only applies if its generation is current.
type Controller struct {
	mu         sync.Mutex
	clock      clock.Clock
	options    Options
	minutes    int
	remaining  int
	state      RunState
	pending    clock.Timer
	generation uint64
	events     []chan Event
	closed     bool
}

// New creates an idle controller at the default duration. A nil clock uses
// the real one.
func New(c clock.Clock, options Options) *Controller {
	if c == nil {
		c = clock.NewRealClock()
	}
	if options.TickInterval <= 0 {
		options.TickInterval = config.TickInterval
	}
	initial := DefaultSnapshot()
	return &Controller{
		clock:     c,
		options:   options,
		minutes:   initial.Minutes,
		remaining: initial.Remaining,
		state:     initial.State,
	}
}

// Subscribe registers an observer channel. Sends never block; a full
// channel misses events.
func (c *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		close(ch)
		return ch
	}
	c.events = append(c.events, ch)
	return ch
}

// Close cancels the pending tick and closes all observers.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancelLocked()
	c.state = Idle
	events := c.events
	c.events = nil
	c.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) Minutes() int {
	return c.Snapshot().Minutes
}

func (c *Controller) Remaining() int {
	return c.Snapshot().Remaining
}

func (c *Controller) State() RunState {
	return c.Snapshot().State
}

func (c *Controller) FormattedTime() string {
	return c.Snapshot().FormattedTime()
}

func (c *Controller) Arc() Arc {
	return c.Snapshot().Arc()
}

// SetDuration clamps minutes to [1,60] and restores remaining time to the
// full new duration. A running countdown keeps running from the new value
// unless PauseOnDurationChange is set.
func (c *Controller) SetDuration(minutes int) {
	clamped := ClampMinutes(minutes)

	c.mu.Lock()
	defer c.mu.Unlock()

	wasRunning := c.state == Running
	if wasRunning {
		c.cancelLocked()
	}
	c.minutes = clamped
	c.remaining = clamped * 60
	util.Debugf("timer: duration set to %d min (requested %d)", clamped, minutes)

	if wasRunning {
		if c.options.PauseOnDurationChange {
			c.state = Idle
			c.emitLocked(EventStateChange)
		} else {
			c.armLocked()
		}
	}
	c.emitLocked(EventDurationChange)
}

// SetDurationInput applies free-form user input as the duration.
func (c *Controller) SetDurationInput(text string) {
	c.SetDuration(ParseMinutes(text))
}

// Start begins counting down. It does nothing when already running or when
// no time remains.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.state == Running || c.remaining <= 0 {
		return
	}
	c.state = Running
	c.armLocked()
	util.Debugf("timer: started with %s remaining", FormatTime(c.remaining))
	c.emitLocked(EventStateChange)
}

// Stop pauses the countdown, keeping the remaining time.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	if c.state == Idle {
		return
	}
	c.state = Idle
	util.Debugf("timer: stopped at %s", FormatTime(c.remaining))
	c.emitLocked(EventStateChange)
}

// Reset stops the countdown and restores the full configured duration.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	wasRunning := c.state == Running
	c.state = Idle
	c.remaining = c.minutes * 60
	util.Debugf("timer: reset to %s", FormatTime(c.remaining))
	if wasRunning {
		c.emitLocked(EventStateChange)
	}
	c.emitLocked(EventReset)
}

// Tick applies one decrement. It is a no-op unless running with time left.
// The pending callback is re-armed so the next automatic tick is a full
// interval away.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickLocked()
}

func (c *Controller) fire(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	// This callback is the pending timer; it has already fired.
	c.pending = nil
	c.tickLocked()
}

func (c *Controller) tickLocked() {
	if c.state != Running || c.remaining <= 0 {
		return
	}
	c.cancelLocked()
	c.remaining--
	if c.remaining == 0 {
		c.state = Idle
		util.Infof("timer: %d min countdown complete", c.minutes)
		c.emitLocked(EventStateChange)
		return
	}
	c.armLocked()
	c.emitLocked(EventTick)
}

func (c *Controller) armLocked() {
	c.generation++
	generation := c.generation
	c.pending = c.clock.AfterFunc(c.options.TickInterval, func() {
		c.fire(generation)
	})
}

func (c *Controller) cancelLocked() {
	c.generation++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Minutes:   c.minutes,
		Remaining: c.remaining,
		State:     c.state,
	}
}

func (c *Controller) emitLocked(eventType EventType) {
	if len(c.events) == 0 {
		return
	}
	event := Event{
		Type:     eventType,
		Snapshot: c.snapshotLocked(),
		At:       c.clock.Now(),
	}
	for _, ch := range c.events {
		select {
		case ch <- event:
		default:
		}
	}
}
