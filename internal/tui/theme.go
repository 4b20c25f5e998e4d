package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/dialtimer/internal/dial"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Header    lipgloss.Style
	Dial      dial.Palette
	Running   lipgloss.Style
	Idle      lipgloss.Style
	Finished  lipgloss.Style
	Input     lipgloss.Style
	Locked    lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	// GradientStart and GradientEnd colour the linear progress bar.
	GradientStart string
	GradientEnd   string
}

var Themes = map[string]Theme{
	"default": {
		Name:   "Default",
		Base:   lipgloss.NewStyle().Margin(1, 2),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Dial: dial.Palette{
			Arc:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
			Track:   lipgloss.NewStyle().Foreground(lipgloss.Color("254")),
			Tick:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
			Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Bold(true),
			Time:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
			Caption: lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		},
		Running:       lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Bold(true),
		Idle:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Finished:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(12),
		Locked:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("240")).Padding(0, 1).Width(12),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		GradientStart: "#ef4444",
		GradientEnd:   "#f97316",
	},
	"dracula": {
		Name:   "Dracula",
		Base:   lipgloss.NewStyle().Margin(1, 2),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center), // Cyan
		Dial: dial.Palette{
			Arc:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")), // Pink
			Track:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")),  // Comment
			Tick:    lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
			Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true), // Purple
			Time:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			Caption: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		},
		Running:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Idle:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Finished:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(12),
		Locked:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Foreground(lipgloss.Color("60")).Padding(0, 1).Width(12),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		GradientStart: "#ff79c6",
		GradientEnd:   "#bd93f9",
	},
	"mono": {
		Name:   "Mono",
		Base:   lipgloss.NewStyle().Margin(1, 2),
		Header: lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
		Dial: dial.Palette{
			Arc:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
			Track:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Tick:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Label:   lipgloss.NewStyle().Bold(true),
			Time:    lipgloss.NewStyle().Bold(true),
			Caption: lipgloss.NewStyle().Faint(true),
		},
		Running:       lipgloss.NewStyle().Bold(true),
		Idle:          lipgloss.NewStyle(),
		Finished:      lipgloss.NewStyle().Bold(true).Underline(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(12),
		Locked:        lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Faint(true).Padding(0, 1).Width(12),
		Dim:           lipgloss.NewStyle().Faint(true),
		Highlight:     lipgloss.NewStyle().Underline(true),
		GradientStart: "#ffffff",
		GradientEnd:   "#808080",
	},
}

// ThemeNames lists the available themes in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nextTheme returns the theme after current, wrapping around.
func nextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
