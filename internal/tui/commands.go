package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/timer"
)

// --- Messages ---
type TickMsg time.Time

// EventMsg delivers a controller event to the program loop.
type EventMsg timer.Event

type eventsClosedMsg struct{}

// tickCmd is a redraw heartbeat. Countdown ticks come from the controller.
func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func waitForEvent(events <-chan timer.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return EventMsg(ev)
	}
}
