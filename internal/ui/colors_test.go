package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/orbit/internal/appearance"
	"github.com/rileyhilliard/orbit/internal/paint"
)

func TestColorConstants(t *testing.T) {
	colors := []lipgloss.Color{
		ColorAccent,
		ColorAccentLight,
		ColorGlassBorder,
		ColorSurface,
		ColorSuccess,
		ColorError,
		ColorWarning,
		ColorInfo,
		ColorPrimary,
		ColorSecondary,
		ColorMuted,
	}

	for _, color := range colors {
		colorStr := string(color)
		require.NotEmpty(t, colorStr)
		assert.True(t, colorStr[0] == '#', "color should start with #: %s", colorStr)
		assert.Len(t, colorStr, 7, "color should be 7 chars (#RRGGBB): %s", colorStr)
		_, err := paint.Parse(colorStr)
		assert.NoError(t, err)
	}
}

func TestAccentMatchesDefaultTint(t *testing.T) {
	accent := paint.MustParse(string(ColorAccent))
	assert.True(t, accent.AlmostEqual(appearance.DefaultTint))
}

func TestStylesAreFunctional(t *testing.T) {
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"success", SuccessStyle()},
		{"error", ErrorStyle()},
		{"warning", WarningStyle()},
		{"info", InfoStyle()},
		{"muted", MutedStyle()},
		{"accent", AccentStyle()},
	}

	for _, s := range styles {
		t.Run(s.name, func(t *testing.T) {
			assert.Contains(t, s.style.Render(s.name), s.name)
		})
	}
}

func TestPrintWarning(t *testing.T) {
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	PrintWarning("layout file missing")

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "layout file missing")
	assert.Contains(t, buf.String(), SymbolWarning)
}

func TestDisableColors(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	DisableColors()

	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
	assert.Equal(t, "plain", SuccessStyle().Render("plain"))
}
