package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/rileyhilliard/orbit/internal/errors"
)

const (
	// ConfigFileName is the per-project config file name.
	ConfigFileName = ".orbit.yaml"
	// AppDir is the directory name under the XDG base directories.
	AppDir = "orbit"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// LayoutFileName is the default layout file name.
	LayoutFileName = "layout.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Create "+ConfigFileName+" or point --config at an existing file")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .orbit.yaml in current directory
// 3. .orbit.yaml in parent directories (stops at git root or home)
// 4. $XDG_CONFIG_HOME/orbit/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	if path := findUpward(cwd); path != "" {
		return path, nil
	}

	globalConfig := GlobalConfigPath()
	if _, err := os.Stat(globalConfig); err == nil {
		return globalConfig, nil
	}

	return "", nil
}

// findUpward looks for ConfigFileName in dir and its parents, stopping at
// the git root, the home directory or the filesystem root.
func findUpward(dir string) string {
	home, _ := os.UserHomeDir()
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		if isGitRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		if home != "" && parent == home {
			return ""
		}
		dir = parent
	}
}

// GlobalConfigPath returns $XDG_CONFIG_HOME/orbit/config.yaml.
func GlobalConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDir, GlobalConfigFile)
}

// DefaultLayoutPath returns $XDG_DATA_HOME/orbit/layout.yaml.
func DefaultLayoutPath() string {
	return filepath.Join(xdg.DataHome, AppDir, LayoutFileName)
}

// LoadOrDefault loads config from the found path, or returns defaults if
// no file exists anywhere in the search order.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v, cfg)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	cfg.Layout.Path = ExpandTilde(Expand(cfg.Layout.Path))

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every default with viper so partially filled
// sections keep their remaining defaults.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("appearance.tint", d.Appearance.Tint)
	v.SetDefault("appearance.progress_tint", d.Appearance.ProgressTint)
	v.SetDefault("appearance.track_tint", d.Appearance.TrackTint)
	v.SetDefault("appearance.background", d.Appearance.Background)
	v.SetDefault("ring.stroke_width", d.Ring.StrokeWidth)
	v.SetDefault("ring.track_alpha", d.Ring.TrackAlpha)
	v.SetDefault("ring.width", d.Ring.Width)
	v.SetDefault("ring.height", d.Ring.Height)
	v.SetDefault("animation.duration", d.Animation.Duration.String())
	v.SetDefault("animation.fps", d.Animation.FPS)
	v.SetDefault("layout.path", d.Layout.Path)
	v.SetDefault("demo.rings", d.Demo.Rings)
	v.SetDefault("demo.job_duration", d.Demo.JobDuration.String())
}

// LayoutPath returns the configured layout file, or the XDG default.
func (c *Config) LayoutPath() string {
	if c.Layout.Path != "" {
		return c.Layout.Path
	}
	return DefaultLayoutPath()
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
