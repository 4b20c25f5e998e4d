package timer

import "time"

// EventType identifies controller notifications.
type EventType int

const (
	// EventStateChange is sent when the run state flips, including the
	// automatic stop when the countdown reaches zero.
	EventStateChange EventType = iota
	// EventTick is sent after each one-second decrement that leaves the
	// timer running.
	EventTick
	// EventDurationChange is sent when the configured duration is set.
	EventDurationChange
	// EventReset is sent when remaining time is restored to the full duration.
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventStateChange:
		return "state"
	case EventTick:
		return "tick"
	case EventDurationChange:
		return "duration"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event carries the state after a change.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
