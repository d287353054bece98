package main

import "github.com/charmbracelet/lipgloss"

var (
	accentColor  = lipgloss.Color("#FF9933") // saffron
	successColor = lipgloss.Color("#138808") // green
	errorColor   = lipgloss.Color("#CF222E")
	dimColor     = lipgloss.Color("#6E7681")
	linkColor    = lipgloss.Color("#58A6FF")

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(dimColor)

	titleStyle   = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(dimColor)
	linkStyle    = lipgloss.NewStyle().Foreground(linkColor).Underline(true)
	sourceStyle  = lipgloss.NewStyle().Foreground(accentColor)
	summaryStyle = lipgloss.NewStyle().MarginTop(1).Foreground(dimColor).Italic(true)
)
