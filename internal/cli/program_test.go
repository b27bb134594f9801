package cli

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/orbit/internal/logger"
)

func TestRedirectLog_DiscardsWithoutDebug(t *testing.T) {
	t.Setenv(logger.DebugEnv, "")
	prev := log.Writer()

	restore := redirectLog()
	assert.Equal(t, io.Discard, log.Writer())

	restore()
	assert.Equal(t, prev, log.Writer())
}

func TestRedirectLog_WritesDebugFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv(logger.DebugEnv, "1")
	xdg.Reload()

	prevOut, prevPrefix, prevFlags := log.Writer(), log.Prefix(), log.Flags()

	restore := redirectLog()
	log.Print("frame dropped")
	restore()

	assert.Equal(t, prevOut, log.Writer())
	assert.Equal(t, prevPrefix, log.Prefix())
	assert.Equal(t, prevFlags, log.Flags())

	data, err := os.ReadFile(filepath.Join(dir, "orbit", debugLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "frame dropped")
}
