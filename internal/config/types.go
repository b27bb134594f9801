package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .orbit.yaml configuration file.
type Config struct {
	Version    int              `yaml:"version" mapstructure:"version"`
	Appearance AppearanceConfig `yaml:"appearance" mapstructure:"appearance"`
	Ring       RingConfig       `yaml:"ring" mapstructure:"ring"`
	Animation  AnimationConfig  `yaml:"animation" mapstructure:"animation"`
	Layout     LayoutConfig     `yaml:"layout" mapstructure:"layout"`
	Demo       DemoConfig       `yaml:"demo" mapstructure:"demo"`
}

// AppearanceConfig sets the colors used when a ring has none of its own.
// Colors accept #rgb, #rrggbb, #rrggbbaa, ANSI 256 indexes and names.
type AppearanceConfig struct {
	// Tint is the ambient tint, the last fallback for the progress color.
	Tint string `yaml:"tint" mapstructure:"tint"`

	// ProgressTint is the registered default fill color for every ring.
	ProgressTint string `yaml:"progress_tint" mapstructure:"progress_tint"`

	// TrackTint is the registered default track color for every ring.
	// Empty derives it from the progress color at reduced alpha.
	TrackTint string `yaml:"track_tint" mapstructure:"track_tint"`

	// Background is what translucent colors are composited over.
	Background string `yaml:"background" mapstructure:"background"`
}

// RingConfig controls ring geometry.
type RingConfig struct {
	// StrokeWidth is the arc thickness in braille dots.
	StrokeWidth float64 `yaml:"stroke_width" mapstructure:"stroke_width"`

	// TrackAlpha scales the progress color's alpha to derive the track color.
	TrackAlpha float64 `yaml:"track_alpha" mapstructure:"track_alpha"`

	// Width and Height are the rendered size in terminal cells.
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// AnimationConfig controls animated progress changes.
type AnimationConfig struct {
	// Duration of a linear transition; 0 disables animation.
	Duration time.Duration `yaml:"duration" mapstructure:"duration"`

	// FPS is the frame rate while a transition runs.
	FPS int `yaml:"fps" mapstructure:"fps"`
}

// LayoutConfig locates the layout file.
type LayoutConfig struct {
	// Path to the layout file. Supports ~, ${HOME} and ${USER}.
	// Empty uses $XDG_DATA_HOME/orbit/layout.yaml.
	Path string `yaml:"path" mapstructure:"path"`
}

// DemoConfig controls the demo dashboard.
type DemoConfig struct {
	// Rings is how many simulated jobs to show.
	Rings int `yaml:"rings" mapstructure:"rings"`

	// JobDuration is roughly how long a simulated job takes.
	JobDuration time.Duration `yaml:"job_duration" mapstructure:"job_duration"`
}

// DefaultConfig returns a config with every default filled in.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Appearance: AppearanceConfig{
			Tint:       "#5a56e0",
			Background: "#000000",
		},
		Ring: RingConfig{
			StrokeWidth: 2,
			TrackAlpha:  0.3,
			Width:       12,
			Height:      6,
		},
		Animation: AnimationConfig{
			Duration: 200 * time.Millisecond,
			FPS:      60,
		},
		Demo: DemoConfig{
			Rings:       3,
			JobDuration: 8 * time.Second,
		},
	}
}
