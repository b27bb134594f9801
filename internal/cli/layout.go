package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/layout"
	"github.com/rileyhilliard/orbit/internal/paint"
	"github.com/rileyhilliard/orbit/internal/ring"
	"github.com/rileyhilliard/orbit/internal/ui"
)

// fillChoices are offered by the interactive form. An empty value leaves the
// fill unset so the ring follows the configured defaults.
var fillChoices = []string{"", "red", "orange", "yellow", "green", "teal", "blue", "indigo", "purple", "pink", "gray"}

// LayoutInitOptions holds options for the layout init command.
type LayoutInitOptions struct {
	Name           string // Ring name
	Fill           string // Fill color; empty leaves it unset
	Track          string // Track color; empty derives it from the fill
	Progress       string // Initial progress
	Overwrite      bool   // Replace an existing ring without asking
	NonInteractive bool   // Skip prompts, use flags
}

var (
	layoutInitOpts LayoutInitOptions
	showSizeFlag   string
)

// layoutCmd groups the layout subcommands
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Manage saved rings",
	Long: `Manage the layout file, where named rings keep their progress and colors.

The layout file lives at $XDG_DATA_HOME/orbit/layout.yaml unless
layout.path is set in the config.`,
}

// layoutInitCmd adds a ring to the layout
var layoutInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Add a named ring to the layout file",
	Long: `Add a named ring to the layout file.

Prompts for the name, colors and starting progress. Pass --non-interactive
with flags to skip the prompts.

Examples:
  orbit layout init
  orbit layout init --non-interactive --name build --fill teal --progress 0.25`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := layoutInitOpts
		if !opts.NonInteractive && !ui.IsTerminal(os.Stdin) {
			opts.NonInteractive = true
		}
		return layoutInit(cmd.OutOrStdout(), cfg.LayoutPath(), opts)
	},
}

// layoutShowCmd draws every saved ring
var layoutShowCmd = &cobra.Command{
	Use:   "show [name...]",
	Short: "Draw the saved rings",
	Long: `Draw the rings stored in the layout file, or only the named ones.

Examples:
  orbit layout show
  orbit layout show build deploy --size 8x4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return layoutShow(cmd.OutOrStdout(), cfg.LayoutPath(), args, showSizeFlag)
	},
}

// layoutRemoveCmd deletes a ring from the layout
var layoutRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a ring from the layout file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return layoutRemove(cmd.OutOrStdout(), cfg.LayoutPath(), args[0])
	},
}

// layoutPathCmd prints where the layout file lives
var layoutPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the layout file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cfg.LayoutPath())
		return nil
	},
}

// layoutInit collects a ring's settings and stores it under its name.
func layoutInit(w io.Writer, path string, opts LayoutInitOptions) error {
	f, err := layout.Load(path)
	if err != nil {
		return err
	}

	if !opts.NonInteractive {
		fmt.Fprint(w, ui.RenderHeader(ui.HeaderInfo{
			Version: formatVersion(version),
			Tagline: "New ring",
			Detail:  path,
		}))
		if err := promptRing(&opts); err != nil {
			return err
		}
	}

	opts.Name = strings.TrimSpace(opts.Name)
	if err := validateRingName(opts.Name); err != nil {
		return errors.New(errors.ErrInput,
			"Invalid ring name: "+err.Error(),
			"Pass --name with a name like build, or run without --non-interactive to be prompted.")
	}

	if _, exists := f.Rings[opts.Name]; exists && !opts.Overwrite {
		overwrite := false
		if !opts.NonInteractive {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Ring '%s' already exists. Replace it?", opts.Name)).
						Value(&overwrite),
				),
			)
			if err := form.Run(); err != nil {
				return errors.WrapWithCode(err, errors.ErrInput,
					"Failed to get user input",
					"Use --force to replace the ring")
			}
		}
		if !overwrite {
			if opts.NonInteractive {
				return errors.New(errors.ErrLayout,
					fmt.Sprintf("Ring '%s' already exists in %s", opts.Name, path),
					"Use --force to replace it")
			}
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	r, err := ringFromInit(opts)
	if err != nil {
		return err
	}

	f.Put(opts.Name, r)
	if err := layout.Save(path, f); err != nil {
		return err
	}

	fmt.Fprintln(w, renderWithCaption(r, opts.Name, true))
	fmt.Fprintf(w, "%s Saved '%s' to %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), opts.Name, path)
	return nil
}

// promptRing fills opts in from an interactive form. Values already set by
// flags are the form's starting values.
func promptRing(opts *LayoutInitOptions) error {
	options := make([]huh.Option[string], len(fillChoices))
	for i, name := range fillChoices {
		label := name
		if name == "" {
			label = "default (follow config)"
		}
		options[i] = huh.NewOption(label, name)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ring name").
				Description("Used with 'orbit render --name'").
				Placeholder("build").
				Value(&opts.Name).
				Validate(validateRingName),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Fill color").
				Options(options...).
				Value(&opts.Fill),
			huh.NewInput().
				Title("Track color (optional)").
				Description("Hex, ANSI index or name. Empty derives it from the fill.").
				Value(&opts.Track).
				Validate(validateOptionalColor),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Starting progress").
				Description("A fraction like 0.25 or a percentage like 25%").
				Placeholder("0").
				Value(&opts.Progress).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := ParseProgress(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive")
	}
	return nil
}

// ringFromInit builds the ring the options describe. Colors set here are
// stored on the ring; config defaults stay defaults.
func ringFromInit(opts LayoutInitOptions) (*ring.Ring, error) {
	r := ring.New(cfg.RingOptions()...)
	flags := RingFlags{Fill: opts.Fill, Track: opts.Track}
	if err := flags.overrideTints(r); err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.Progress) != "" {
		v, err := ParseProgress(opts.Progress)
		if err != nil {
			return nil, err
		}
		r.SetProgress(v)
	}
	return r, nil
}

func validateRingName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("ring name is required")
	}
	if strings.ContainsAny(s, " \t\n") {
		return fmt.Errorf("ring name cannot contain whitespace")
	}
	return nil
}

func validateOptionalColor(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := paint.Parse(s)
	return err
}

// layoutShow draws the named rings, or all of them, side by side.
func layoutShow(w io.Writer, path string, names []string, size string) error {
	f, err := layout.Load(path)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = f.Names()
	}
	if len(names) == 0 {
		fmt.Fprintln(w, ui.MutedStyle().Render("No saved rings in "+path))
		fmt.Fprintln(w, ui.MutedStyle().Render("Create one with 'orbit layout init'."))
		return nil
	}

	ringOpts, err := RingFlags{Size: size}.Options(cfg)
	if err != nil {
		return err
	}

	views := make([]string, 0, len(names))
	for _, name := range names {
		r, ok := f.Ring(name, ringOpts...)
		if !ok {
			return errors.New(errors.ErrLayout,
				fmt.Sprintf("No ring named '%s' in %s", name, path),
				availableNames(f))
		}
		views = append(views, lipgloss.JoinVertical(lipgloss.Center,
			r.View(),
			ui.AccentStyle().Render(name),
			strings.TrimSpace(ui.FormatPercent(r.Progress())),
		))
	}

	fmt.Fprintln(w, joinWrapped(views, ui.TerminalWidth(os.Stdout, 80)))
	return nil
}

// joinWrapped lays views out left to right, starting a new row when the
// next view would pass width.
func joinWrapped(views []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, v := range views {
		vw := lipgloss.Width(v) + 2
		if len(row) > 0 && rowWidth+vw > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, lipgloss.NewStyle().PaddingRight(2).Render(v))
		rowWidth += vw
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n\n")
}

// layoutRemove deletes a ring from the layout file.
func layoutRemove(w io.Writer, path, name string) error {
	f, err := layout.Load(path)
	if err != nil {
		return err
	}
	if _, ok := f.Rings[name]; !ok {
		return errors.New(errors.ErrLayout,
			fmt.Sprintf("No ring named '%s' in %s", name, path),
			availableNames(f))
	}
	f.Remove(name)
	if err := layout.Save(path, f); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s Removed '%s'\n", ui.SuccessStyle().Render(ui.SymbolSuccess), name)
	return nil
}

func init() {
	layoutInitCmd.Flags().StringVarP(&layoutInitOpts.Name, "name", "n", "", "ring name")
	layoutInitCmd.Flags().StringVar(&layoutInitOpts.Fill, "fill", "", "fill color (hex, ANSI index or name)")
	layoutInitCmd.Flags().StringVar(&layoutInitOpts.Track, "track", "", "track color (hex, ANSI index or name)")
	layoutInitCmd.Flags().StringVarP(&layoutInitOpts.Progress, "progress", "p", "", "starting progress (0.25 or 25%)")
	layoutInitCmd.Flags().BoolVarP(&layoutInitOpts.Overwrite, "force", "f", false, "replace an existing ring")
	layoutInitCmd.Flags().BoolVar(&layoutInitOpts.NonInteractive, "non-interactive", false, "skip prompts and use flags")

	layoutShowCmd.Flags().StringVar(&showSizeFlag, "size", "", "ring size in cells, COLSxROWS (e.g., 12x6)")

	layoutCmd.AddCommand(layoutInitCmd)
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutRemoveCmd)
	layoutCmd.AddCommand(layoutPathCmd)
	rootCmd.AddCommand(layoutCmd)
}
