package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/orbit/internal/ui"
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorGlassBorder).
			Padding(0, 1).
			MarginRight(1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ui.ColorAccent)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary).
			Padding(0, 1)
)
