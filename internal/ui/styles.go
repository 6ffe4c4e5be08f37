package ui

import "github.com/charmbracelet/lipgloss"

const fingerprintPad = 1

var (
	colorAccent  = lipgloss.Color("#00D4FF")
	colorText    = lipgloss.Color("#EAEAEA")
	colorPanel   = lipgloss.Color("#0F3460")
	colorSubtle  = lipgloss.Color("#888888")
	colorSuccess = lipgloss.Color("#A3BE8C")
	colorFailure = lipgloss.Color("#FF6B6B")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorText)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	fingerprintStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPanel).
				Padding(0, fingerprintPad)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	failureStyle = lipgloss.NewStyle().
			Foreground(colorFailure)

	noteStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)
)
