package ring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetProgressAnimated_NotAnimatedIsImmediate(t *testing.T) {
	r := New()

	cmd := r.SetProgressAnimated(0.7, false)
	assert.Nil(t, cmd)
	assert.Equal(t, 0.7, r.Progress())
	assert.Equal(t, 0.7, r.DisplayedProgress())
	assert.False(t, r.Animating())
}

func TestSetProgressAnimated_ZeroDurationIsImmediate(t *testing.T) {
	r := New(WithAnimationDuration(0))

	assert.Nil(t, r.SetProgressAnimated(0.7, true))
	assert.Equal(t, 0.7, r.DisplayedProgress())
}

func TestSetProgressAnimated_Interpolates(t *testing.T) {
	clock := newFakeClock()
	r := New(WithClock(clock.Now), WithAnimationDuration(200*time.Millisecond))

	cmd := r.SetProgressAnimated(0.8, true)
	require.NotNil(t, cmd)

	assert.Equal(t, 0.8, r.Progress(), "stored value is the target right away")
	assert.Equal(t, 0.0, r.DisplayedProgress())
	assert.True(t, r.Animating())

	clock.Advance(50 * time.Millisecond)
	assert.InDelta(t, 0.2, r.DisplayedProgress(), 1e-9)

	clock.Advance(100 * time.Millisecond)
	assert.InDelta(t, 0.6, r.DisplayedProgress(), 1e-9)

	clock.Advance(time.Second)
	assert.Equal(t, 0.8, r.DisplayedProgress())
	assert.False(t, r.Animating())
}

func TestSetProgressAnimated_ClampsTarget(t *testing.T) {
	clock := newFakeClock()
	r := New(WithClock(clock.Now))

	r.SetProgressAnimated(-4, true)
	assert.Equal(t, 0.0, r.Progress())

	r.SetProgressAnimated(9, true)
	assert.Equal(t, 1.0, r.Progress())

	clock.Advance(time.Second)
	assert.Equal(t, 1.0, r.DisplayedProgress())
}

func TestSetProgressAnimated_RestartsFromDisplayedValue(t *testing.T) {
	clock := newFakeClock()
	r := New(WithClock(clock.Now), WithAnimationDuration(200*time.Millisecond))

	r.SetProgressAnimated(0.8, true)
	clock.Advance(100 * time.Millisecond)
	require.InDelta(t, 0.4, r.DisplayedProgress(), 1e-9)

	r.SetProgressAnimated(0.2, true)
	assert.Equal(t, 0.2, r.Progress())
	assert.InDelta(t, 0.4, r.DisplayedProgress(), 1e-9, "no snap to the old start or target")

	clock.Advance(100 * time.Millisecond)
	assert.InDelta(t, 0.3, r.DisplayedProgress(), 1e-9)

	clock.Advance(100 * time.Millisecond)
	assert.InDelta(t, 0.2, r.DisplayedProgress(), 1e-9)
}

func TestSetProgressAnimated_DisplayedValueNeverJumps(t *testing.T) {
	clock := newFakeClock()
	r := New(WithClock(clock.Now), WithAnimationDuration(200*time.Millisecond))

	r.SetProgressAnimated(1, true)
	last := r.DisplayedProgress()

	// Retarget every 30ms between two values and check each step is small
	targets := []float64{0.1, 0.9, 0.3, 0.7, 0.5}
	for _, target := range targets {
		clock.Advance(30 * time.Millisecond)
		before := r.DisplayedProgress()
		r.SetProgressAnimated(target, true)
		assert.InDelta(t, before, r.DisplayedProgress(), 1e-9)

		// 30ms of a 200ms transition moves at most 15% of a full ring
		assert.LessOrEqual(t, absDiff(before, last), 0.15+1e-9)
		last = before
	}

	clock.Advance(time.Second)
	assert.Equal(t, 0.5, r.DisplayedProgress())
}

func TestSetProgress_CancelsAnimation(t *testing.T) {
	clock := newFakeClock()
	r := New(WithClock(clock.Now))

	r.SetProgressAnimated(1, true)
	clock.Advance(50 * time.Millisecond)

	r.SetProgress(0.1)
	assert.False(t, r.Animating())
	assert.Equal(t, 0.1, r.DisplayedProgress())
}

func TestSetProgressAnimated_SameValueNoAnimation(t *testing.T) {
	r := New()
	r.SetProgress(0.5)

	assert.Nil(t, r.SetProgressAnimated(0.5, true))
	assert.False(t, r.Animating())
}

func TestFrames(t *testing.T) {
	clock := newFakeClock()
	redraws := 0
	r := New(
		WithClock(clock.Now),
		WithAnimationDuration(100*time.Millisecond),
		WithRedraw(func() { redraws++ }),
	)

	r.SetProgressAnimated(1, true)
	frame := FrameMsg{id: r.ID(), tag: r.tag}

	clock.Advance(40 * time.Millisecond)
	before := redraws
	assert.NotNil(t, r.Update(frame), "running animation schedules another frame")
	assert.Equal(t, before+1, redraws, "each frame redraws")

	clock.Advance(100 * time.Millisecond)
	assert.Nil(t, r.Update(frame), "finished animation stops the frame chain")
	assert.Nil(t, r.anim)
	assert.Equal(t, 1.0, r.DisplayedProgress())
}

func TestFrames_StaleTagDropped(t *testing.T) {
	clock := newFakeClock()
	r := New(WithClock(clock.Now))

	r.SetProgressAnimated(0.8, true)
	stale := FrameMsg{id: r.ID(), tag: r.tag}

	r.SetProgressAnimated(0.2, true)
	assert.Nil(t, r.Update(stale), "frames from the superseded animation end their chain")

	current := FrameMsg{id: r.ID(), tag: r.tag}
	assert.NotNil(t, r.Update(current))
}

func TestFrameCommandProducesFrame(t *testing.T) {
	r := New(WithFPS(1000))

	cmd := r.SetProgressAnimated(1, true)
	require.NotNil(t, cmd)

	msg := cmd()
	frame, ok := msg.(FrameMsg)
	require.True(t, ok)
	assert.Equal(t, r.ID(), frame.id)
	assert.Equal(t, r.tag, frame.tag)
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
