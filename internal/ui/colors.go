package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Brand palette. The accent matches the default ambient tint so the chrome
// and the rings agree out of the box.
const (
	ColorAccent      lipgloss.Color = "#5A56E0"
	ColorAccentLight lipgloss.Color = "#8B88F0"
	ColorGlassBorder lipgloss.Color = "#3A3A4A"
	ColorSurface     lipgloss.Color = "#1C1C24"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "#34C759"
	ColorError   lipgloss.Color = "#FF3B30"
	ColorWarning lipgloss.Color = "#FFCC00"
	ColorInfo    lipgloss.Color = "#30B0C7"
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "#E5E5EA"
	ColorSecondary lipgloss.Color = "#8B88F0"
	ColorMuted     lipgloss.Color = "#8E8E93"
)

// SuccessStyle renders text in the success color.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle renders text in the error color.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle renders text in the warning color.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// InfoStyle renders text in the info color.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorInfo)
}

// MutedStyle renders secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// AccentStyle renders bold accent text, used for titles and selection.
func AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
}

// DisableColors switches lipgloss to plain ASCII output (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// PrintWarning writes a styled warning line to stderr.
func PrintWarning(msg string) {
	fmt.Fprintln(os.Stderr, WarningStyle().Render(SymbolWarning)+" "+msg)
}
