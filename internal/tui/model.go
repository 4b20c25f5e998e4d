package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/timer"
)

// MainModel is the root bubbletea model. It only reads controller state and
// forwards user intents; the controller owns the countdown.
type MainModel struct {
	timer     *timer.Controller
	events    <-chan timer.Event
	input     textinput.Model
	editing   bool
	progress  progress.Model
	keys      *HandlerRegistry
	themeName string
	theme     Theme
	width     int
	height    int
	listening bool
}

func NewMainModel(ctrl *timer.Controller) MainModel {
	ti := textinput.New()
	ti.Placeholder = "1-60"
	ti.CharLimit = config.MaxDurationInputLength
	ti.Width = 6
	ti.Prompt = ""

	m := MainModel{
		timer:     ctrl,
		events:    ctrl.Subscribe(config.EventBuffer),
		input:     ti,
		keys:      defaultRegistry(),
		listening: true,
	}
	m = m.withTheme(config.DefaultTheme)
	return m
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tickCmd())
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m.handleEditing(msg)
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case EventMsg:
		return m.handleEvent(msg)
	case eventsClosedMsg:
		m.listening = false
		return m, nil
	case TickMsg:
		return m, tickCmd()
	}
	return m, nil
}

func (m MainModel) withTheme(name string) MainModel {
	theme, ok := Themes[name]
	if !ok {
		name = config.DefaultTheme
		theme = Themes[name]
	}
	width := config.ProgressBarWidth
	if m.progress.Width > 0 {
		width = m.progress.Width
	}
	m.themeName = name
	m.theme = theme
	m.progress = progress.New(progress.WithGradient(theme.GradientStart, theme.GradientEnd))
	m.progress.Width = width
	return m
}
