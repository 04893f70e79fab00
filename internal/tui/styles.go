package tui

import "github.com/charmbracelet/lipgloss"

const (
	// Rows above the dial: caption, value and a blank line
	HeaderHeight = 3
	// Terminal cells are about twice as tall as they are wide
	CellAspect = 2
	// Bottom help line
	FooterHeight = 1
)

var (
	captionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8e8e93"))
)
