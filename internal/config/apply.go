package config

import (
	"github.com/rileyhilliard/orbit/internal/appearance"
	"github.com/rileyhilliard/orbit/internal/paint"
	"github.com/rileyhilliard/orbit/internal/ring"
)

// ApplyAppearance installs the configured ambient tint and ring defaults in
// the process-wide appearance registry. Colors were checked by Validate, so
// unparsable values are skipped rather than reported.
func (c *Config) ApplyAppearance() {
	if tint, ok := parseOptional(c.Appearance.Tint); ok {
		appearance.SetAmbientTint(tint)
	}

	proxy := appearance.For(ring.Kind)
	if tint, ok := parseOptional(c.Appearance.ProgressTint); ok {
		proxy.SetProgressTint(&tint)
	} else {
		proxy.SetProgressTint(nil)
	}
	if tint, ok := parseOptional(c.Appearance.TrackTint); ok {
		proxy.SetTrackTint(&tint)
	} else {
		proxy.SetTrackTint(nil)
	}
}

// Background returns the configured terminal background, black if unset.
func (c *Config) Background() paint.Color {
	if bg, ok := parseOptional(c.Appearance.Background); ok {
		return bg
	}
	return paint.Black
}

// RingOptions returns the ring options the config describes.
func (c *Config) RingOptions() []ring.Option {
	return []ring.Option{
		ring.WithStrokeWidth(c.Ring.StrokeWidth),
		ring.WithTrackAlpha(c.Ring.TrackAlpha),
		ring.WithSize(c.Ring.Width, c.Ring.Height),
		ring.WithAnimationDuration(c.Animation.Duration),
		ring.WithFPS(c.Animation.FPS),
		ring.WithBackground(c.Background()),
	}
}

func parseOptional(s string) (paint.Color, bool) {
	if s == "" {
		return paint.Color{}, false
	}
	col, err := paint.Parse(s)
	if err != nil {
		return paint.Color{}, false
	}
	return col, true
}
