package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	progressFilled = '▰'
	progressEmpty  = '▱'
)

// RenderProgressBar renders the linear counterpart of a ring: a bar of the
// given width followed by the percentage. fraction is clamped to [0, 1] and
// NaN counts as 0. color paints the filled part; an empty color uses the
// accent.
//
// Output format: ▰▰▰▰▰▰▱▱▱▱  60%
func RenderProgressBar(fraction float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}

	if math.IsNaN(fraction) || fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	if color == "" {
		color = ColorAccent
	}

	filledCount := int(fraction * float64(width))
	emptyCount := width - filledCount

	filled := strings.Repeat(string(progressFilled), filledCount)
	empty := strings.Repeat(string(progressEmpty), emptyCount)

	return lipgloss.NewStyle().Foreground(color).Render(filled) +
		lipgloss.NewStyle().Foreground(ColorGlassBorder).Render(empty) +
		FormatPercent(fraction)
}

// FormatPercent formats a fraction as a right-aligned whole percentage.
func FormatPercent(fraction float64) string {
	return fmt.Sprintf(" %3.0f%%", fraction*100)
}
