package ring

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// transition is a linear move of the displayed value.
type transition struct {
	from, to float64
	start    time.Time
	duration time.Duration
}

// valueAt returns the interpolated value and whether the transition is over.
func (t *transition) valueAt(now time.Time) (float64, bool) {
	elapsed := now.Sub(t.start)
	if elapsed <= 0 {
		return t.from, false
	}
	if elapsed >= t.duration {
		return t.to, true
	}
	frac := float64(elapsed) / float64(t.duration)
	return t.from + (t.to-t.from)*frac, false
}

// FrameMsg advances a ring's animation. Frames carry the ring id and the
// animation tag so frames from superseded animations are dropped.
type FrameMsg struct {
	id  int
	tag int
}

func (r *Ring) nextFrame() tea.Cmd {
	id, tag := r.id, r.tag
	return tea.Tick(time.Second/time.Duration(r.fps), func(time.Time) tea.Msg {
		return FrameMsg{id: id, tag: tag}
	})
}

func (r *Ring) handleFrame(msg FrameMsg) tea.Cmd {
	if msg.id != r.id || msg.tag != r.tag || r.anim == nil {
		return nil
	}

	r.requestRedraw()
	if _, done := r.anim.valueAt(r.clock()); done {
		r.anim = nil
		return nil
	}
	return r.nextFrame()
}
