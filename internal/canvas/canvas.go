// Package canvas is the drawing surface rings render onto.
//
// Surface is the contract a ring draws against: it only ever strokes arcs.
// Canvas implements it on a grid of terminal cells using braille patterns,
// which give each cell a 2x4 dot matrix:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// A terminal cell is roughly twice as tall as it is wide, so a dot is close
// to square and circles drawn in dot space stay round on screen.
//
// Recorder implements Surface by remembering the arcs it was given.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/orbit/internal/paint"
)

// Surface receives drawing commands.
type Surface interface {
	StrokeArc(a Arc)
}

const brailleBase = '\u2800'

// Dots per cell.
const (
	CellDotsX = 2
	CellDotsY = 4
)

// brailleDots maps [row][col] inside a cell to the bit offset of that dot.
var brailleDots = [CellDotsY][CellDotsX]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

type dot struct {
	color paint.Color
	seq   int // paint order; 0 means unset
}

// Canvas is a braille dot grid. It is not safe for concurrent use.
type Canvas struct {
	cols, rows int
	background paint.Color
	dots       [][]dot
	seq        int
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithBackground sets the color translucent dots are composited over.
func WithBackground(bg paint.Color) Option {
	return func(c *Canvas) {
		c.background = bg
	}
}

// New creates a canvas of cols x rows terminal cells. Negative sizes are
// treated as zero.
func New(cols, rows int, opts ...Option) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	c := &Canvas{
		cols:       cols,
		rows:       rows,
		background: paint.Black,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.dots = make([][]dot, rows*CellDotsY)
	for y := range c.dots {
		c.dots[y] = make([]dot, cols*CellDotsX)
	}
	return c
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Bounds returns the drawable region in dot units.
func (c *Canvas) Bounds() Rect {
	return Rect{W: float64(c.cols * CellDotsX), H: float64(c.rows * CellDotsY)}
}

// Clear unsets every dot.
func (c *Canvas) Clear() {
	for y := range c.dots {
		for x := range c.dots[y] {
			c.dots[y][x] = dot{}
		}
	}
	c.seq = 0
}

// Set paints a single dot. Out of range coordinates are ignored.
func (c *Canvas) Set(x, y int, color paint.Color) {
	if y < 0 || y >= len(c.dots) || x < 0 || x >= len(c.dots[y]) {
		return
	}
	c.seq++
	c.dots[y][x] = dot{color: color, seq: c.seq}
}

// Dot returns the color of a dot and whether it is painted.
func (c *Canvas) Dot(x, y int) (paint.Color, bool) {
	if y < 0 || y >= len(c.dots) || x < 0 || x >= len(c.dots[y]) {
		return paint.Color{}, false
	}
	d := c.dots[y][x]
	return d.color, d.seq > 0
}

// StrokeArc paints every dot whose center lies inside the stroked arc.
// Later strokes overpaint earlier ones.
func (c *Canvas) StrokeArc(a Arc) {
	for y := range c.dots {
		for x := range c.dots[y] {
			center := Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if a.Covers(center) {
				c.Set(x, y, a.Color)
			}
		}
	}
}

// Cell returns the braille rune for a cell and the color of its most
// recently painted dot. The boolean is false for empty cells.
func (c *Canvas) Cell(col, row int) (rune, paint.Color, bool) {
	char := rune(brailleBase)
	var color paint.Color
	latest := 0

	for subRow := 0; subRow < CellDotsY; subRow++ {
		for subCol := 0; subCol < CellDotsX; subCol++ {
			d, ok := c.dotAt(col*CellDotsX+subCol, row*CellDotsY+subRow)
			if !ok || d.seq == 0 {
				continue
			}
			char |= rune(1 << brailleDots[subRow][subCol])
			if d.seq > latest {
				latest = d.seq
				color = d.color
			}
		}
	}
	return char, color, latest > 0
}

func (c *Canvas) dotAt(x, y int) (dot, bool) {
	if y < 0 || y >= len(c.dots) || x < 0 || x >= len(c.dots[y]) {
		return dot{}, false
	}
	return c.dots[y][x], true
}

// Render returns the canvas as rows of styled braille characters.
// Empty cells render as spaces.
func (c *Canvas) Render() string {
	lines := make([]string, 0, c.rows)
	for row := 0; row < c.rows; row++ {
		var lineBuilder strings.Builder
		for col := 0; col < c.cols; col++ {
			char, color, ok := c.Cell(col, row)
			if !ok {
				lineBuilder.WriteRune(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(color.Lipgloss(c.background))
			lineBuilder.WriteString(style.Render(string(char)))
		}
		lines = append(lines, lineBuilder.String())
	}
	return strings.Join(lines, "\n")
}

// Recorder is a Surface that keeps every arc it is asked to stroke.
type Recorder struct {
	Arcs []Arc
}

// StrokeArc records a.
func (r *Recorder) StrokeArc(a Arc) {
	r.Arcs = append(r.Arcs, a)
}

// Reset forgets recorded arcs.
func (r *Recorder) Reset() {
	r.Arcs = r.Arcs[:0]
}
