package ring

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/orbit/internal/appearance"
	"github.com/rileyhilliard/orbit/internal/logger"
	"github.com/rileyhilliard/orbit/internal/paint"
)

// Kind is the appearance registry key for rings.
const Kind = "ring"

// Defaults for the tunable constants. All of them can be overridden with
// options, usually from the config file.
const (
	DefaultAnimationDuration = 200 * time.Millisecond
	DefaultTrackAlpha        = 0.3
	DefaultStrokeWidth       = 2.0
	DefaultFPS               = 60
	DefaultWidth             = 12 // cells
	DefaultHeight            = 6  // cells
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Ring is a circular progress indicator. It belongs to a single UI loop and
// is not safe for concurrent use; observe background work through Bind.
type Ring struct {
	id int

	progress     float64
	progressTint *paint.Color
	trackTint    *paint.Color

	strokeWidth float64
	trackAlpha  float64
	duration    time.Duration
	fps         int
	width       int
	height      int
	background  paint.Color

	anim *transition
	tag  int

	binding *binding
	bindGen int

	clock  func() time.Time
	redraw func()
	log    logger.Logger
}

// Option configures a Ring.
type Option func(*Ring)

// WithAnimationDuration sets how long animated changes take. Zero or
// negative durations make every change immediate.
func WithAnimationDuration(d time.Duration) Option {
	return func(r *Ring) {
		r.duration = d
	}
}

// WithTrackAlpha sets the alpha factor used to derive the track tint from
// the progress tint.
func WithTrackAlpha(a float64) Option {
	return func(r *Ring) {
		r.trackAlpha = Clamp(a)
	}
}

// WithStrokeWidth sets the stroke width in surface units.
func WithStrokeWidth(w float64) Option {
	return func(r *Ring) {
		if w > 0 {
			r.strokeWidth = w
		}
	}
}

// WithFPS sets the animation frame rate.
func WithFPS(fps int) Option {
	return func(r *Ring) {
		if fps > 0 {
			r.fps = fps
		}
	}
}

// WithSize sets the size View renders at, in terminal cells.
func WithSize(cols, rows int) Option {
	return func(r *Ring) {
		r.SetSize(cols, rows)
	}
}

// WithBackground sets the color translucent tints are composited over in View.
func WithBackground(bg paint.Color) Option {
	return func(r *Ring) {
		r.background = bg
	}
}

// WithProgressTint sets an explicit progress tint.
func WithProgressTint(c paint.Color) Option {
	return func(r *Ring) {
		r.progressTint = &c
	}
}

// WithTrackTint sets an explicit track tint.
func WithTrackTint(c paint.Color) Option {
	return func(r *Ring) {
		r.trackTint = &c
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Ring) {
		r.clock = now
	}
}

// WithRedraw registers a function called whenever the ring needs to be
// drawn again. Bubble Tea hosts redraw after every Update and can omit it.
func WithRedraw(fn func()) Option {
	return func(r *Ring) {
		r.redraw = fn
	}
}

// WithLogger sets the logger used for binding and decoding diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(r *Ring) {
		r.log = l
	}
}

// New creates a ring at zero progress with no explicit tints.
func New(opts ...Option) *Ring {
	r := &Ring{
		id:          nextID(),
		strokeWidth: DefaultStrokeWidth,
		trackAlpha:  DefaultTrackAlpha,
		duration:    DefaultAnimationDuration,
		fps:         DefaultFPS,
		width:       DefaultWidth,
		height:      DefaultHeight,
		background:  paint.Black,
		clock:       time.Now,
		log:         logger.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID returns the ring's unique identifier.
func (r *Ring) ID() int {
	return r.id
}

// Progress returns the stored progress value. During an animation this is
// already the target.
func (r *Ring) Progress() float64 {
	return r.progress
}

// SetProgress clamps v, stores it and redraws immediately, cancelling any
// animation in flight.
func (r *Ring) SetProgress(v float64) {
	r.progress = Clamp(v)
	r.anim = nil
	r.tag++
	r.requestRedraw()
}

// SetProgressAnimated is SetProgress when animated is false. Otherwise it
// stores the clamped target and starts a linear transition from the value
// currently displayed, returning the first frame command.
func (r *Ring) SetProgressAnimated(v float64, animated bool) tea.Cmd {
	if !animated || r.duration <= 0 {
		r.SetProgress(v)
		return nil
	}

	target := Clamp(v)
	from := r.DisplayedProgress()

	r.progress = target
	r.tag++

	if from == target {
		r.anim = nil
		r.requestRedraw()
		return nil
	}

	r.anim = &transition{
		from:     from,
		to:       target,
		start:    r.clock(),
		duration: r.duration,
	}
	r.requestRedraw()
	return r.nextFrame()
}

// DisplayedProgress returns the value currently on screen, which trails
// Progress while an animation runs.
func (r *Ring) DisplayedProgress() float64 {
	if r.anim == nil {
		return r.progress
	}
	v, _ := r.anim.valueAt(r.clock())
	return v
}

// Animating reports whether a transition is still running.
func (r *Ring) Animating() bool {
	if r.anim == nil {
		return false
	}
	_, done := r.anim.valueAt(r.clock())
	return !done
}

// ProgressTint returns the explicit progress tint, or nil.
func (r *Ring) ProgressTint() *paint.Color {
	return copyColor(r.progressTint)
}

// SetProgressTint sets the explicit progress tint; nil restores the fallback.
func (r *Ring) SetProgressTint(c *paint.Color) {
	r.progressTint = copyColor(c)
	r.requestRedraw()
}

// TrackTint returns the explicit track tint, or nil.
func (r *Ring) TrackTint() *paint.Color {
	return copyColor(r.trackTint)
}

// SetTrackTint sets the explicit track tint; nil restores the fallback.
func (r *Ring) SetTrackTint(c *paint.Color) {
	r.trackTint = copyColor(c)
	r.requestRedraw()
}

// ResolvedProgressTint returns the color the fill arc is drawn with:
// explicit tint, registry default, ambient tint.
func (r *Ring) ResolvedProgressTint() paint.Color {
	if r.progressTint != nil {
		return *r.progressTint
	}
	if d := appearance.Lookup(Kind).ProgressTint; d != nil {
		return *d
	}
	return appearance.AmbientTint()
}

// ResolvedTrackTint returns the color the track is drawn with: explicit
// tint, registry default, resolved progress tint at reduced alpha.
func (r *Ring) ResolvedTrackTint() paint.Color {
	if r.trackTint != nil {
		return *r.trackTint
	}
	if d := appearance.Lookup(Kind).TrackTint; d != nil {
		return *d
	}
	return r.ResolvedProgressTint().ScaleAlpha(r.trackAlpha)
}

// TrackAlpha returns the alpha factor used to derive the track tint.
func (r *Ring) TrackAlpha() float64 {
	return r.trackAlpha
}

// StrokeWidth returns the stroke width in surface units.
func (r *Ring) StrokeWidth() float64 {
	return r.strokeWidth
}

// Size returns the View size in cells.
func (r *Ring) Size() (cols, rows int) {
	return r.width, r.height
}

// SetSize changes the View size in cells. Negative values become zero.
func (r *Ring) SetSize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	r.width, r.height = cols, rows
	r.requestRedraw()
}

// Close releases the source subscription and stops any animation.
func (r *Ring) Close() {
	r.unbind()
	r.anim = nil
	r.tag++
}

func (r *Ring) requestRedraw() {
	if r.redraw != nil {
		r.redraw()
	}
}

func copyColor(c *paint.Color) *paint.Color {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
