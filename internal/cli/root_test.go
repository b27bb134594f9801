package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/orbit/internal/appearance"
	"github.com/rileyhilliard/orbit/internal/config"
	orberrors "github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/paint"
)

// withConfig installs c as the loaded config for the duration of the test.
func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	prevCfg, prevPath := cfg, configPath
	cfg, configPath = c, ""
	t.Cleanup(func() {
		cfg, configPath = prevCfg, prevPath
		appearance.Reset()
	})
}

// testConfig returns defaults with the layout file inside a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := config.DefaultConfig()
	c.Layout.Path = filepath.Join(t.TempDir(), "layout.yaml")
	withConfig(t, c)
	return c
}

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  errors.New(`unknown command "foo" for "orbit"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  errors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "other error",
			err:  errors.New("render failed"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isUnknownCommandError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  errors.New(`unknown command "foo" for "orbit"`),
			want: "foo",
		},
		{
			name: "command with hyphen",
			err:  errors.New(`unknown command "my-ring" for "orbit"`),
			want: "my-ring",
		},
		{
			name: "no quotes returns empty",
			err:  errors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  errors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractUnknownCommand(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "structured error keeps message and suggestion",
			err:      orberrors.New(orberrors.ErrLayout, "No ring named 'x'", "Available rings: build"),
			contains: []string{"No ring named 'x'", "Available rings: build"},
		},
		{
			name:     "unknown command gets a hint",
			err:      errors.New(`unknown command "rnder" for "orbit"`),
			contains: []string{"Unknown command 'rnder'", "orbit --help"},
		},
		{
			name:     "unknown flag gets a hint",
			err:      errors.New("unknown flag: --sise"),
			contains: []string{"unknown flag: --sise", "orbit --help"},
		},
		{
			name:     "plain error is wrapped",
			err:      errors.New("boom"),
			contains: []string{"boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatError(tt.err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestLoadConfig_AppliesAppearance(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orbit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nappearance:\n  tint: teal\n"), 0644))

	prevFile := cfgFile
	cfgFile = path
	withConfig(t, nil)
	t.Cleanup(func() { cfgFile = prevFile })

	require.NoError(t, loadConfig())

	assert.Equal(t, path, configPath)
	assert.Equal(t, "teal", cfg.Appearance.Tint)
	assert.True(t, appearance.AmbientTint().AlmostEqual(paint.MustParse("teal")))
}

func TestLoadConfig_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orbit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nring:\n  track_alpha: 3\n"), 0644))

	prevFile := cfgFile
	cfgFile = path
	withConfig(t, nil)
	t.Cleanup(func() { cfgFile = prevFile })

	err := loadConfig()

	require.Error(t, err)
	assert.True(t, orberrors.IsCode(err, orberrors.ErrConfig))
}
