package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/orbit/internal/config"
	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/layout"
	"github.com/rileyhilliard/orbit/internal/ring"
	"github.com/rileyhilliard/orbit/internal/ui"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Progress    string // Fraction or percentage; empty keeps the layout value (or 0)
	Name        string // Ring to load from the layout file
	Label       string // Text shown beside the ring
	ShowPercent bool   // Print the percentage beside the ring
	Ring        RingFlags
}

var renderOpts RenderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw a ring once and exit",
	Long: `Draw a single ring to stdout.

The ring comes from the layout file when --name is given; flags override
what the layout stored.

Examples:
  orbit render --progress 0.42
  orbit render --progress 75% --fill orange --size 16x8
  orbit render --name build --percent`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderCommand(cmd.OutOrStdout(), cfg, renderOpts)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOpts.Progress, "progress", "p", "", "progress as a fraction (0.42) or percentage (42%)")
	renderCmd.Flags().StringVarP(&renderOpts.Name, "name", "n", "", "load the named ring from the layout file")
	renderCmd.Flags().StringVarP(&renderOpts.Label, "label", "l", "", "label shown beside the ring")
	renderCmd.Flags().BoolVar(&renderOpts.ShowPercent, "percent", false, "show the percentage beside the ring")
	AddRingFlags(renderCmd, &renderOpts.Ring)
	rootCmd.AddCommand(renderCmd)
}

// renderCommand draws one ring to w.
func renderCommand(w io.Writer, c *config.Config, opts RenderOptions) error {
	ringOpts, err := opts.Ring.Options(c)
	if err != nil {
		return err
	}

	var r *ring.Ring
	if opts.Name != "" {
		f, err := layout.Load(c.LayoutPath())
		if err != nil {
			return err
		}
		var ok bool
		r, ok = f.Ring(opts.Name, ringOpts...)
		if !ok {
			return errors.New(errors.ErrLayout,
				fmt.Sprintf("No ring named '%s' in %s", opts.Name, c.LayoutPath()),
				availableNames(f))
		}
		if err := opts.Ring.overrideTints(r); err != nil {
			return err
		}
	} else {
		r = ring.New(ringOpts...)
	}

	if opts.Progress != "" {
		v, err := ParseProgress(opts.Progress)
		if err != nil {
			return err
		}
		r.SetProgress(v)
	}

	label := opts.Label
	if label == "" {
		label = opts.Name
	}
	fmt.Fprintln(w, renderWithCaption(r, label, opts.ShowPercent))
	return nil
}

// renderWithCaption places the label and percentage to the right of the ring,
// vertically centered. Without either it is the bare ring.
func renderWithCaption(r *ring.Ring, label string, percent bool) string {
	var caption []string
	if label != "" {
		caption = append(caption, ui.AccentStyle().Render(label))
	}
	if percent {
		caption = append(caption, strings.TrimSpace(ui.FormatPercent(r.Progress())))
	}
	if len(caption) == 0 {
		return r.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, r.View(), "  ", strings.Join(caption, "\n"))
}

func availableNames(f *layout.File) string {
	names := f.Names()
	if len(names) == 0 {
		return "The layout is empty. Create a ring with 'orbit layout init'."
	}
	return "Available rings: " + strings.Join(names, ", ")
}
