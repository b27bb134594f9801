package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValue_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, `# orbit settings
version: 1
appearance:
  # accent color
  tint: "#5a56e0"
ring:
  width: 12
`)

	require.NoError(t, SetValue(path, "appearance.tint", "#ff8800"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# orbit settings")
	assert.Contains(t, content, "# accent color")
	assert.Contains(t, content, "#ff8800")
	assert.NotContains(t, content, "5a56e0")
	assert.Contains(t, content, "width: 12")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#ff8800", cfg.Appearance.Tint)
}

func TestSetValue_CreatesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "version: 1\n")

	require.NoError(t, SetValue(path, "ring.track_alpha", "0.5"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Ring.TrackAlpha)
}

func TestSetValue_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.yaml")

	require.NoError(t, SetValue(path, "layout.path", "~/layout.yaml"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "layout:")
	assert.Contains(t, string(data), "path: ~/layout.yaml")
}

func TestSetValue_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
		wantErr string
	}{
		{"empty key part", "version: 1\n", "ring..width", "invalid config key"},
		{"section as value", "ring:\n  width: 12\n", "ring", "is a section"},
		{"value as section", "version: 1\n", "version.major", "is not a section"},
		{"not a mapping", "- a\n- b\n", "ring.width", "expected mapping"},
		{"bad yaml", "ring: [", "ring.width", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			writeFile(t, path, tt.content)

			err := SetValue(path, tt.key, "x")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
