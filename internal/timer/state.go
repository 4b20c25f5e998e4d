package timer

import (
	"github.com/akyairhashvil/dialtimer/internal/config"
)

// RunState is whether the countdown is advancing.
type RunState int

const (
	Idle RunState = iota
	Running
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "idle"
	}
}

// Snapshot is a point-in-time copy of the controller state. Derived values
// are computed on every call.
type Snapshot struct {
	Minutes   int
	Remaining int
	State     RunState
}

// DefaultSnapshot is the state a new controller starts in.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Minutes:   config.DefaultMinutes,
		Remaining: config.DefaultMinutes * 60,
		State:     Idle,
	}
}

func (s Snapshot) Running() bool {
	return s.State == Running
}

// Total is the configured duration in seconds.
func (s Snapshot) Total() int {
	return s.Minutes * 60
}

func (s Snapshot) Elapsed() int {
	return s.Total() - s.Remaining
}

func (s Snapshot) FormattedTime() string {
	return FormatTime(s.Remaining)
}

func (s Snapshot) Arc() Arc {
	return ArcGeometry(s.Minutes, s.Remaining)
}

// CanStart reports whether Start would change anything.
func (s Snapshot) CanStart() bool {
	return s.State == Idle && s.Remaining > 0
}

func (s Snapshot) CanStop() bool {
	return s.State == Running
}

// CanEditDuration reports whether the duration input should be enabled.
func (s Snapshot) CanEditDuration() bool {
	return s.State == Idle
}
