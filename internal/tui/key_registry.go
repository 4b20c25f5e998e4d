package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/dialtimer/internal/timer"
)

type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	// States limits the binding to these run states. Empty means always.
	States   []timer.RunState
	Priority int
}

func (b KeyBinding) AppliesTo(state timer.RunState) bool {
	if len(b.States) == 0 {
		return true
	}
	for _, s := range b.States {
		if s == state {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, state timer.RunState, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(state) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(state timer.RunState) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(state) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(state timer.RunState) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(state) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+displayKey(b.Key)+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	idle := []timer.RunState{timer.Idle}

	r.Register(KeyBinding{Key: " ", Handler: handleToggle, Description: "start/stop", Priority: 10})
	r.Register(KeyBinding{Key: "s", Handler: handleToggle, Priority: 10})
	r.Register(KeyBinding{Key: "r", Handler: handleReset, Description: "reset", Priority: 9})
	r.Register(KeyBinding{Key: "+", Handler: handleAdjust(1), Description: "+1 min", States: idle, Priority: 8})
	r.Register(KeyBinding{Key: "=", Handler: handleAdjust(1), States: idle, Priority: 8})
	r.Register(KeyBinding{Key: "up", Handler: handleAdjust(1), States: idle, Priority: 8})
	r.Register(KeyBinding{Key: "-", Handler: handleAdjust(-1), Description: "-1 min", States: idle, Priority: 8})
	r.Register(KeyBinding{Key: "down", Handler: handleAdjust(-1), States: idle, Priority: 8})
	r.Register(KeyBinding{Key: "e", Handler: handleEditStart, Description: "set minutes", States: idle, Priority: 7})
	r.Register(KeyBinding{Key: "t", Handler: handleTheme, Description: "theme", Priority: 2})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Priority: 1})
	return r
}
