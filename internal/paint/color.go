// Package paint holds the color value used by rings: an RGB color with an
// alpha channel. Terminals have no alpha, so translucent colors are composited
// over a background before they are handed to Lip Gloss.
package paint

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with straight (non-premultiplied) alpha in [0, 1].
type Color struct {
	RGB colorful.Color
	A   float64
}

// Black is the default terminal background used for compositing.
var Black = Color{RGB: colorful.Color{}, A: 1}

// RGB builds an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{
		RGB: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		A:   1,
	}
}

// namedColors covers the names people actually type into config files.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff3b30",
	"orange":  "#ff9500",
	"yellow":  "#ffcc00",
	"green":   "#34c759",
	"teal":    "#30b0c7",
	"blue":    "#007aff",
	"indigo":  "#5856d6",
	"purple":  "#af52de",
	"pink":    "#ff2d55",
	"gray":    "#8e8e93",
	"grey":    "#8e8e93",
	"default": "#5a56e0",
}

// Parse reads a color from one of:
//   - #rgb, #rrggbb or #rrggbbaa hex
//   - an ANSI 256 palette index ("0" to "255")
//   - a name from the built-in table ("blue", "green", ...)
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if hex, ok := namedColors[s]; ok {
		s = hex
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("ANSI color %d out of range 0-255", n)
		}
		return ansi256(n), nil
	}

	return Color{}, fmt.Errorf("unrecognized color %q", s)
}

// MustParse is Parse for package-level constants; it panics on bad input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	alpha := 1.0

	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in %q", s)
		}
		alpha = float64(a) / 255
		digits = digits[:6]
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	rgb, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{RGB: rgb, A: alpha}, nil
}

// xterm defaults for the 16 base colors.
var ansiBase = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func ansi256(n int) Color {
	switch {
	case n < 16:
		c := ansiBase[n]
		return RGB(c[0], c[1], c[2])
	case n < 232:
		n -= 16
		return RGB(cubeLevels[n/36], cubeLevels[(n/6)%6], cubeLevels[n%6])
	default:
		g := uint8(8 + (n-232)*10)
		return RGB(g, g, g)
	}
}

// WithAlpha returns c with its alpha replaced, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// ScaleAlpha returns c with its alpha multiplied by factor.
func (c Color) ScaleAlpha(factor float64) Color {
	return c.WithAlpha(c.A * factor)
}

// Over composites c onto bg and returns an opaque color.
func (c Color) Over(bg Color) Color {
	if c.A >= 1 {
		return Color{RGB: c.RGB, A: 1}
	}
	return Color{RGB: bg.RGB.BlendRgb(c.RGB, clamp01(c.A)).Clamped(), A: 1}
}

// Hex returns #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return c.RGB.Clamped().Hex()
}

// String returns #rrggbb for opaque colors and #rrggbbaa otherwise.
func (c Color) String() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), uint8(math.Round(clamp01(c.A)*255)))
}

// Lipgloss composites c over bg and returns it as a Lip Gloss color.
func (c Color) Lipgloss(bg Color) lipgloss.Color {
	return lipgloss.Color(c.Over(bg).Hex())
}

// AlmostEqual compares colors channel by channel at 8-bit precision.
func (c Color) AlmostEqual(o Color) bool {
	const eps = 1.0 / 255
	return math.Abs(c.RGB.R-o.RGB.R) <= eps &&
		math.Abs(c.RGB.G-o.RGB.G) <= eps &&
		math.Abs(c.RGB.B-o.RGB.B) <= eps &&
		math.Abs(c.A-o.A) <= eps
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
