package cli

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/orbit/internal/config"
	"github.com/rileyhilliard/orbit/internal/logger"
)

// debugLogFile is where full-screen programs log when ORBIT_DEBUG is set.
const debugLogFile = "debug.log"

// runProgram runs a Bubble Tea program. The standard logger would draw over
// the UI, so it goes to $XDG_STATE_HOME/orbit/debug.log under ORBIT_DEBUG
// and is discarded otherwise.
func runProgram(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	restore := redirectLog()
	defer restore()

	return tea.NewProgram(model, opts...).Run()
}

func redirectLog() func() {
	prevOut, prevPrefix, prevFlags := log.Writer(), log.Prefix(), log.Flags()
	restore := func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
		log.SetFlags(prevFlags)
	}

	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return restore
	}

	path := filepath.Join(xdg.StateHome, config.AppDir, debugLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return restore
	}
	f, err := tea.LogToFile(path, "orbit")
	if err != nil {
		log.SetOutput(io.Discard)
		return restore
	}
	return func() {
		f.Close()
		restore()
	}
}
