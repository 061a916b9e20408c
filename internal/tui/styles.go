package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the two-pane layout.
type Styles struct {
	Header    lipgloss.Style
	Pane      lipgloss.Style
	PaneTitle lipgloss.Style
	Model     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

func DefaultStyles() Styles {
	border := lipgloss.Color("240")
	accent := lipgloss.Color("205")

	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		PaneTitle: lipgloss.NewStyle().Bold(true),
		Model:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
