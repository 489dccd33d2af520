package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")

	chromeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(mutedColor)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	focusedItemStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(accentColor).
				Bold(true)

	cursorItemStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Underline(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	backStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	modalStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)
