// Package styles centralizes lipgloss styles shared by the UI components.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// TitleColor is used for component titles.
	TitleColor = lipgloss.Color("212")
	// BorderColor frames boxes and dividers.
	BorderColor = lipgloss.Color("240")
	// MutedColor is used for secondary text (sizes, URLs).
	MutedColor = lipgloss.Color("245")

	// TitleStyle renders component titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TitleColor)
	// HeaderStyle renders table column headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	// MutedStyle renders secondary text.
	MutedStyle = lipgloss.NewStyle().Foreground(MutedColor)
	// SelectionIndicatorStyle renders the "> " cursor in the browser.
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true)
	// SelectedStyle highlights the selected row.
	SelectedStyle = lipgloss.NewStyle().Bold(true)
	// BoxStyle frames the interactive browser.
	BoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(BorderColor).Padding(0, 1)
)
