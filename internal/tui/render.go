package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/dial"
	"github.com/akyairhashvil/dialtimer/internal/timer"
)

func (m MainModel) View() string {
	snap := m.timer.Snapshot()
	sections := []string{
		m.renderHeader(),
		dial.Render(snap, dial.Options{Rows: m.dialRows(), Palette: m.theme.Dial}),
		m.renderStatus(snap),
		m.progress.ViewAs(snap.Arc().Fraction()),
		m.renderDurationInput(snap),
		m.renderFooter(snap),
	}
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return m.theme.Base.Render(body)
}

func (m MainModel) dialRows() int {
	if m.height <= 0 {
		return config.DefaultDialRows
	}
	return dial.NormalizeRows(m.height - config.ChromeRows)
}

func (m MainModel) renderHeader() string {
	return m.theme.Header.Render(fmt.Sprintf("%s %s", config.AppName, versionLabel()))
}

func (m MainModel) renderStatus(snap timer.Snapshot) string {
	label := StatusLabel(snap)
	switch {
	case snap.Running():
		return m.theme.Running.Render(label)
	case snap.Remaining == 0:
		return m.theme.Finished.Render(label)
	default:
		return m.theme.Idle.Render(label)
	}
}

// StatusLabel describes the run state for the status line.
func StatusLabel(snap timer.Snapshot) string {
	switch {
	case snap.Running():
		return fmt.Sprintf("Running - %s remaining", snap.FormattedTime())
	case snap.Remaining == 0:
		return "Finished"
	case snap.Remaining < snap.Total():
		return fmt.Sprintf("Paused - %s remaining", snap.FormattedTime())
	default:
		return "Ready"
	}
}

func (m MainModel) renderDurationInput(snap timer.Snapshot) string {
	label := m.theme.Dim.Render("Timer (min)")
	if m.editing {
		return lipgloss.JoinHorizontal(lipgloss.Center, label, " ", m.theme.Input.Render(m.input.View()))
	}
	box := m.theme.Input
	if !snap.CanEditDuration() {
		box = m.theme.Locked
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, label, " ", box.Render(fmt.Sprintf("%d", snap.Minutes)))
}

func (m MainModel) renderFooter(snap timer.Snapshot) string {
	help := m.keys.HelpFor(snap.State)
	if m.editing {
		help = "[enter]apply|[esc]cancel"
	}
	help += "  " + m.theme.Name
	if m.width > 0 && ansi.StringWidth(help) > m.width {
		help = ansi.Truncate(help, m.width, "…")
	}
	return m.theme.Dim.Render(help)
}
