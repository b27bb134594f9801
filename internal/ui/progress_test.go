package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		width    int
		want     string
	}{
		{"zero width", 0.5, 0, ""},
		{"negative width", 0.5, -3, ""},
		{"empty", 0, 10, "▱▱▱▱▱▱▱▱▱▱   0%"},
		{"half", 0.5, 10, "▰▰▰▰▰▱▱▱▱▱  50%"},
		{"full", 1, 10, "▰▰▰▰▰▰▰▰▰▰ 100%"},
		{"rounds down", 0.29, 10, "▰▰▱▱▱▱▱▱▱▱  29%"},
		{"clamps high", 3, 4, "▰▰▰▰ 100%"},
		{"clamps low", -1, 4, "▱▱▱▱   0%"},
		{"nan", math.NaN(), 4, "▱▱▱▱   0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgressBar(tt.fraction, tt.width, "")))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "  42%", FormatPercent(0.42))
	assert.Equal(t, " 100%", FormatPercent(1))
}
