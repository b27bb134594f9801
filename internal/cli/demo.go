package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/orbit/internal/config"
	"github.com/rileyhilliard/orbit/internal/demo"
	"github.com/rileyhilliard/orbit/internal/errors"
)

var (
	demoRingsFlag    int
	demoDurationFlag string
)

// demoCmd runs the interactive ring dashboard
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive dashboard of rings bound to simulated jobs",
	Long: `Start a full-screen dashboard with one ring per simulated job.

Each ring is bound to its job's progress tracker and fills as the job
advances. Detach a ring to drive it by hand.

Keyboard shortcuts:
  tab / shift+tab  Select ring
  space            Animate the selected ring to a random value
  b                Bind or detach the selected ring
  r                Restart the selected job
  t                Cycle the ambient tint
  c                Cycle the selected ring's fill color
  s                Save colors to the layout file
  ?                Show help
  q / Ctrl+C       Quit

Examples:
  orbit demo
  orbit demo --rings 6 --duration 20s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rings := cfg.Demo.Rings
		if cmd.Flags().Changed("rings") {
			rings = demoRingsFlag
		}
		if rings < 1 || rings > config.MaxDemoRings {
			return errors.New(errors.ErrInput,
				fmt.Sprintf("--rings must be between 1 and %d", config.MaxDemoRings),
				fmt.Sprintf("The dashboard has room for up to %d jobs.", config.MaxDemoRings))
		}

		duration := cfg.Demo.JobDuration
		if demoDurationFlag != "" {
			parsed, err := time.ParseDuration(demoDurationFlag)
			if err != nil || parsed <= 0 {
				return errors.New(errors.ErrInput,
					"Invalid duration: "+demoDurationFlag,
					"Use a positive duration like 8s or 1m.")
			}
			duration = parsed
		}

		return demoCommand(cmdContext(cmd), rings, duration)
	},
}

func demoCommand(ctx context.Context, rings int, duration time.Duration) error {
	m := demo.NewModel(ctx, demo.Options{
		Rings:       rings,
		JobDuration: duration,
		RingOptions: cfg.RingOptions(),
		LayoutPath:  cfg.LayoutPath(),
		Version:     GetVersion(),
	})
	defer m.Shutdown()

	if _, err := runProgram(m, tea.WithAltScreen()); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard stopped unexpectedly",
			"Set ORBIT_DEBUG=1 and check the debug log.")
	}
	return nil
}

func init() {
	demoCmd.Flags().IntVar(&demoRingsFlag, "rings", 0, "number of simulated jobs (1-8, default from config)")
	demoCmd.Flags().StringVar(&demoDurationFlag, "duration", "", "approximate job duration (e.g., 8s, 1m)")
	rootCmd.AddCommand(demoCmd)
}
