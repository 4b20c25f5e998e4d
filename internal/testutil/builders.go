package testutil

import (
	"testing"
	"time"

	"github.com/akyairhashvil/dialtimer/internal/timer"
)

// NewController returns an idle controller on a fresh ManualClock. The
// controller is closed when the test ends.
func NewController(t testing.TB, options timer.Options) (*timer.Controller, *ManualClock) {
	t.Helper()
	clk := NewManualClock()
	c := timer.New(clk, options)
	t.Cleanup(c.Close)
	return c, clk
}

// RunningAt returns a controller set to minutes that has been running for
// elapsed ticks and is still running.
func RunningAt(t testing.TB, minutes, elapsed int) (*timer.Controller, *ManualClock) {
	t.Helper()
	c, clk := NewController(t, timer.Options{})
	c.SetDuration(minutes)
	c.Start()
	clk.AdvanceSteps(elapsed, time.Second)
	if c.State() != timer.Running {
		t.Fatalf("controller finished after %d ticks of %d min", elapsed, minutes)
	}
	return c, clk
}
