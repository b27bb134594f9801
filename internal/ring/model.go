package ring

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/orbit/internal/canvas"
)

// Init starts waiting on a bound source unless a wait command from Bind or
// Update is already out.
func (r *Ring) Init() tea.Cmd {
	if r.binding == nil || r.binding.waiting {
		return nil
	}
	return r.waitForSource()
}

// Update handles animation frames and source notifications addressed to
// this ring. Other messages are ignored.
func (r *Ring) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		return r.handleFrame(msg)
	case SourceMsg:
		return r.handleSource(msg)
	}
	return nil
}

// Draw strokes the ring into bounds: the full track first, then the fill
// arc from the top, clockwise. Nothing is drawn when bounds are too small
// to hold the stroke, and no fill arc is drawn at zero progress.
func (r *Ring) Draw(s canvas.Surface, bounds canvas.Rect) {
	g := Layout(bounds, r.strokeWidth)
	if g.Radius <= 0 {
		return
	}

	track := canvas.Arc{
		Center: g.Center,
		Radius: g.Radius,
		Start:  0,
		Sweep:  360,
		Width:  r.strokeWidth,
		Color:  r.ResolvedTrackTint(),
		Cap:    canvas.CapRound,
	}
	s.StrokeArc(track)

	sweep := SweepAngle(r.DisplayedProgress())
	if sweep <= 0 {
		return
	}

	fill := track
	fill.Start = OriginAngle
	fill.Sweep = sweep
	fill.Color = r.ResolvedProgressTint()
	s.StrokeArc(fill)
}

// View renders the ring onto a braille canvas of the configured size.
func (r *Ring) View() string {
	c := canvas.New(r.width, r.height, canvas.WithBackground(r.background))
	r.Draw(c, c.Bounds())
	return c.Render()
}
