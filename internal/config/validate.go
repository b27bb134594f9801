package config

import (
	"fmt"

	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/paint"
)

// Limits for numeric settings.
const (
	MaxRingCells = 200
	MaxFPS       = 240
	MaxDemoRings = 8
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but orbit only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade orbit or lower the version field.")
	}

	if err := validateAppearance(cfg.Appearance); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'appearance' section in your "+ConfigFileName+".")
	}

	if err := validateRing(cfg.Ring); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'ring' section in your "+ConfigFileName+".")
	}

	if err := validateAnimation(cfg.Animation); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'animation' section in your "+ConfigFileName+".")
	}

	if cfg.Demo.Rings < 1 || cfg.Demo.Rings > MaxDemoRings {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("demo.rings must be between 1 and %d, got %d", MaxDemoRings, cfg.Demo.Rings),
			"Check the 'demo' section in your "+ConfigFileName+".")
	}
	if cfg.Demo.JobDuration <= 0 {
		return errors.New(errors.ErrConfig,
			"demo.job_duration must be positive",
			"Try something like 8s or 1m.")
	}

	return nil
}

func validateAppearance(a AppearanceConfig) error {
	fields := []struct {
		name  string
		value string
	}{
		{"appearance.tint", a.Tint},
		{"appearance.progress_tint", a.ProgressTint},
		{"appearance.track_tint", a.TrackTint},
		{"appearance.background", a.Background},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if _, err := paint.Parse(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

func validateRing(r RingConfig) error {
	if r.StrokeWidth <= 0 {
		return fmt.Errorf("ring.stroke_width must be positive, got %g", r.StrokeWidth)
	}
	if r.TrackAlpha < 0 || r.TrackAlpha > 1 {
		return fmt.Errorf("ring.track_alpha must be between 0 and 1, got %g", r.TrackAlpha)
	}
	if r.Width < 1 || r.Width > MaxRingCells {
		return fmt.Errorf("ring.width must be between 1 and %d, got %d", MaxRingCells, r.Width)
	}
	if r.Height < 1 || r.Height > MaxRingCells {
		return fmt.Errorf("ring.height must be between 1 and %d, got %d", MaxRingCells, r.Height)
	}
	return nil
}

func validateAnimation(a AnimationConfig) error {
	if a.Duration < 0 {
		return fmt.Errorf("animation.duration can't be negative, got %s", a.Duration)
	}
	if a.FPS < 1 || a.FPS > MaxFPS {
		return fmt.Errorf("animation.fps must be between 1 and %d, got %d", MaxFPS, a.FPS)
	}
	return nil
}
