package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/util"
)

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		m.progress.Width = util.Clamp(m.width-10, config.MinProgressBarWidth, config.ProgressBarWidth)
	}
	return m, nil
}

func (m MainModel) handleEvent(msg EventMsg) (MainModel, tea.Cmd) {
	// The input is only editable while idle.
	if m.editing && msg.Snapshot.Running() {
		m = m.stopEditing()
	}
	return m, waitForEvent(m.events)
}

func (m MainModel) handleKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	state := m.timer.State()
	next, cmd, handled := m.keys.Handle(m, state, msg.String())
	if !handled {
		return m, nil
	}
	return next, cmd
}

func (m MainModel) handleEditing(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.timer.SetDurationInput(m.input.Value())
		util.Debugf("tui: duration input %q applied as %d min", m.input.Value(), m.timer.Minutes())
		return m.stopEditing(), nil
	case tea.KeyEsc:
		return m.stopEditing(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MainModel) stopEditing() MainModel {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
	return m
}

func handleToggle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	snap := m.timer.Snapshot()
	switch {
	case snap.CanStop():
		m.timer.Stop()
	case snap.CanStart():
		m.timer.Start()
	}
	return m, nil, true
}

func handleReset(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.timer.Reset()
	return m, nil, true
}

func handleAdjust(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.timer.SetDuration(m.timer.Minutes() + delta)
		return m, nil, true
	}
}

func handleEditStart(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.editing = true
	m.input.SetValue(strconv.Itoa(m.timer.Minutes()))
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink, true
}

func handleTheme(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.withTheme(nextTheme(m.themeName)), nil, true
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}
