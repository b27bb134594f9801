package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/orbit/internal/config"
	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/ui"
)

var configSetGlobal bool

// configCmd groups the config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit configuration",
}

// configSetCmd sets one value in a config file
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Set a single value in the config file, keeping its comments and layout.

The value goes to the config file in use, or to .orbit.yaml in the current
directory when there is none. --global writes the user config instead.

Examples:
  orbit config set appearance.tint teal
  orbit config set ring.track_alpha 0.2
  orbit config set --global animation.duration 300ms`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := configPath
		switch {
		case configSetGlobal:
			target = config.GlobalConfigPath()
			if configPath != "" && configPath != target {
				ui.PrintWarning(configPath + " is in use and overrides the global config")
			}
		case target == "":
			target = config.ConfigFileName
		}
		return configSet(cmd.OutOrStdout(), target, args[0], args[1])
	},
}

// configPathCmd prints the config file in use
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), ui.MutedStyle().Render("(none, using defaults)"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
		return nil
	},
}

// configShowCmd prints the effective config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShow(cmd.OutOrStdout(), cfg)
	},
}

// configSet writes key=value to path and validates the result. An invalid
// result is rolled back.
func configSet(w io.Writer, path, key, value string) error {
	previous, readErr := os.ReadFile(path)
	existed := readErr == nil

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't create config directory "+filepath.Dir(path), "")
	}
	if err := config.SetValue(path, key, value); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't set %s in %s", key, path),
			"Keys look like appearance.tint or ring.width.")
	}

	if _, err := config.Load(path); err != nil {
		if existed {
			_ = os.WriteFile(path, previous, 0644)
		} else {
			_ = os.Remove(path)
		}
		return err
	}

	fmt.Fprintf(w, "%s %s = %s (%s)\n", ui.SuccessStyle().Render(ui.SymbolSuccess), key, value, path)
	return nil
}

func configShow(w io.Writer, c *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Can't encode config", "")
	}
	return enc.Close()
}

func init() {
	configSetCmd.Flags().BoolVar(&configSetGlobal, "global", false, "write to $XDG_CONFIG_HOME/orbit/config.yaml")

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
