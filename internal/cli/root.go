package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/orbit/internal/config"
	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/ui"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// cfg is the configuration loaded before every command runs.
// configPath is where it came from, empty when defaults are in use.
var (
	cfg        *config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Circular progress rings for the terminal",
	Long: `orbit draws circular progress indicators in the terminal.

A ring fills clockwise from the top as its progress goes from 0 to 1.
Rings can be rendered once, fed from a stream of progress reports,
or run in an interactive dashboard bound to background jobs.

Examples:
  orbit render --progress 0.42
  long-task | orbit watch --label build
  orbit demo`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			ui.DisableColors()
		}
		return loadConfig()
	},
}

// loadConfig finds, loads and applies the config. Missing config is fine;
// broken config is an error.
func loadConfig() error {
	loaded, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded
	configPath = path
	cfg.ApplyAppearance()
	return nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders err for the terminal. Structured errors already carry
// their own layout; cobra's usage errors get a hint.
func formatError(err error) string {
	var structured *errors.Error
	if stderrors.As(err, &structured) {
		return ui.ErrorStyle().Render(structured.Error())
	}

	if isUnknownCommandError(err) {
		if name := extractUnknownCommand(err); name != "" {
			return errors.New(errors.ErrInput,
				fmt.Sprintf("Unknown command '%s'", name),
				"Run 'orbit --help' to see available commands.").Error()
		}
		return errors.New(errors.ErrInput, err.Error(), "Run 'orbit --help' for usage.").Error()
	}

	return errors.New(errors.ErrRender, err.Error(), "").Error()
}

// isUnknownCommandError reports whether err is cobra's unknown command or
// unknown flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "orbit"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .orbit.yaml, then $XDG_CONFIG_HOME/orbit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
