package canvas

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/orbit/internal/paint"
)

func init() {
	// Force TrueColor output in tests so we can verify ANSI color codes
	lipgloss.SetColorProfile(termenv.TrueColor)
}

var (
	red  = paint.RGB(255, 0, 0)
	blue = paint.RGB(0, 0, 255)
)

func TestNew(t *testing.T) {
	c := New(10, 5)

	cols, rows := c.Size()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 5, rows)
	assert.Equal(t, Rect{W: 20, H: 20}, c.Bounds())
}

func TestNew_NegativeSize(t *testing.T) {
	c := New(-3, -1)

	assert.Equal(t, Rect{}, c.Bounds())
	assert.Equal(t, "", c.Render())
}

func TestSetAndDot(t *testing.T) {
	c := New(2, 1)

	c.Set(1, 2, red)
	got, ok := c.Dot(1, 2)
	require.True(t, ok)
	assert.Equal(t, red, got)

	_, ok = c.Dot(0, 0)
	assert.False(t, ok)

	// Out of range writes are dropped
	c.Set(-1, 0, red)
	c.Set(4, 0, red)
	c.Set(0, 4, red)
	_, ok = c.Dot(4, 0)
	assert.False(t, ok)
}

func TestCell_BraillePattern(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{name: "top left is dot 1", x: 0, y: 0, want: '⠁'},
		{name: "top right is dot 4", x: 1, y: 0, want: '⠈'},
		{name: "third row left is dot 3", x: 0, y: 2, want: '⠄'},
		{name: "bottom left is dot 7", x: 0, y: 3, want: '⡀'},
		{name: "bottom right is dot 8", x: 1, y: 3, want: '⢀'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1, 1)
			c.Set(tt.x, tt.y, red)

			char, color, ok := c.Cell(0, 0)
			require.True(t, ok)
			assert.Equal(t, tt.want, char)
			assert.Equal(t, red, color)
		})
	}
}

func TestCell_FullCell(t *testing.T) {
	c := New(1, 1)
	for y := 0; y < CellDotsY; y++ {
		for x := 0; x < CellDotsX; x++ {
			c.Set(x, y, red)
		}
	}

	char, _, ok := c.Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, '⣿', char)
}

func TestCell_LatestColorWins(t *testing.T) {
	c := New(1, 1)
	c.Set(0, 0, red)
	c.Set(1, 1, blue)

	_, color, ok := c.Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, blue, color)
}

func TestStrokeArc_FullCircle(t *testing.T) {
	c := New(10, 5)
	c.StrokeArc(Arc{
		Center: Point{X: 10, Y: 10},
		Radius: 8,
		Sweep:  360,
		Width:  2,
		Color:  red,
		Cap:    CapRound,
	})

	// Points on the ring at right, top, left and bottom are painted
	for _, p := range [][2]int{{17, 9}, {9, 1}, {2, 9}, {9, 17}} {
		_, ok := c.Dot(p[0], p[1])
		assert.True(t, ok, "dot %v should be painted", p)
	}

	// The hole and the corners stay empty
	for _, p := range [][2]int{{10, 10}, {0, 0}, {19, 19}} {
		_, ok := c.Dot(p[0], p[1])
		assert.False(t, ok, "dot %v should be empty", p)
	}
}

func TestStrokeArc_RightHalf(t *testing.T) {
	c := New(10, 5)
	c.StrokeArc(Arc{
		Center: Point{X: 10, Y: 10},
		Radius: 8,
		Start:  -90,
		Sweep:  180,
		Width:  2,
		Color:  red,
		Cap:    CapRound,
	})

	_, right := c.Dot(17, 9)
	_, left := c.Dot(2, 9)
	assert.True(t, right, "right side is inside a clockwise sweep from the top")
	assert.False(t, left, "left side is outside the sweep")
}

func TestStrokeArc_ZeroSweepPaintsNothing(t *testing.T) {
	c := New(10, 5)
	c.StrokeArc(Arc{Center: Point{X: 10, Y: 10}, Radius: 8, Start: -90, Width: 2, Color: red, Cap: CapRound})

	assert.Equal(t, strings.Repeat(strings.Repeat(" ", 10)+"\n", 4)+strings.Repeat(" ", 10), c.Render())
}

func TestStrokeArc_Overpaint(t *testing.T) {
	c := New(10, 5)
	arc := Arc{Center: Point{X: 10, Y: 10}, Radius: 8, Sweep: 360, Width: 2, Cap: CapRound}

	track := arc
	track.Color = blue
	c.StrokeArc(track)

	fill := arc
	fill.Color = red
	c.StrokeArc(fill)

	color, ok := c.Dot(17, 9)
	require.True(t, ok)
	assert.Equal(t, red, color)
}

func TestRender_UsesCompositedColor(t *testing.T) {
	c := New(1, 1, WithBackground(paint.RGB(255, 255, 255)))
	c.Set(0, 0, paint.RGB(0, 0, 0).WithAlpha(0.5))

	out := c.Render()
	assert.Contains(t, out, "⠁")
	// 50% black over white is mid gray: 128,128,128
	assert.Contains(t, out, "38;2;128;128;128")
}

func TestClear(t *testing.T) {
	c := New(2, 2)
	c.Set(0, 0, red)
	c.Clear()

	_, ok := c.Dot(0, 0)
	assert.False(t, ok)
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var s Surface = &r

	s.StrokeArc(Arc{Radius: 1, Sweep: 360})
	s.StrokeArc(Arc{Radius: 1, Sweep: 90})
	require.Len(t, r.Arcs, 2)
	assert.Equal(t, 90.0, r.Arcs[1].Sweep)

	r.Reset()
	assert.Empty(t, r.Arcs)
}
