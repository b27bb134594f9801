package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/logger"
	"github.com/rileyhilliard/orbit/internal/ring"
	"github.com/rileyhilliard/orbit/internal/ui"
	"github.com/rileyhilliard/orbit/internal/watch"
)

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	Label    string // Text shown beside the ring
	Strict   bool   // Fail on the first malformed line
	Complete bool   // Fill the ring when input ends cleanly
	Plain    bool   // Print percentages instead of drawing the ring
	Ring     RingFlags
}

var watchOpts WatchOptions

// watchCmd feeds a ring from progress reports on stdin
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show a ring fed by progress reports on stdin",
	Long: `Read progress reports from stdin, one per line, and show them on a ring.

Accepted reports:
  42%     a percentage
  0.42    a fraction (numbers above 1 are read as percentages)
  3/10    a count of completed units out of a total

Blank lines and lines starting with # are ignored. Other lines are
skipped with a warning unless --strict is set.

When stdout isn't a terminal, or with --plain, the ring isn't drawn and
each change in whole percent is printed on its own line instead.

Examples:
  seq 0 10 100 | sed 's/$/%/' | orbit watch --label build
  ./migrate --progress | orbit watch --complete --fill teal`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ui.IsTerminal(os.Stdin) {
			return errors.New(errors.ErrInput,
				"watch reads progress reports from stdin, but stdin is a terminal",
				"Pipe a command into it: ./long-task | orbit watch")
		}
		ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		plain := watchOpts.Plain || !ui.IsTerminal(os.Stdout)
		return watchCommand(ctx, os.Stdin, cmd.OutOrStdout(), plain, watchOpts)
	},
}

// watchCommand feeds a ring from input until it ends or ctx is done.
func watchCommand(ctx context.Context, input io.Reader, out io.Writer, plain bool, opts WatchOptions) error {
	ringOpts, err := opts.Ring.Options(cfg)
	if err != nil {
		return err
	}
	r := ring.New(ringOpts...)

	feedOpts := watch.FeedOptions{
		Strict:        opts.Strict,
		CompleteOnEOF: opts.Complete,
		Logger:        logger.Default(),
	}

	if plain {
		res := watch.RunPlain(ctx, input, out, opts.Label, r, feedOpts)
		return watchError(ctx, res)
	}

	m := watch.NewModel(ctx, input, opts.Label, r, feedOpts)
	if _, err := runProgram(m); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Watch stopped unexpectedly",
			"Use --plain to print percentages instead of drawing.")
	}
	if res := m.Result(); res != nil {
		return watchError(ctx, *res)
	}
	return nil
}

// watchError turns a feed result into the command's error. Stopping on
// request isn't an error.
func watchError(ctx context.Context, res watch.Result) error {
	if res.Err == nil || ctx.Err() != nil {
		return nil
	}
	return res.Err
}

// cmdContext returns the command's context, or Background when it was
// executed without one.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	watchCmd.Flags().StringVarP(&watchOpts.Label, "label", "l", "", "label shown beside the ring")
	watchCmd.Flags().BoolVar(&watchOpts.Strict, "strict", false, "fail on the first malformed line")
	watchCmd.Flags().BoolVar(&watchOpts.Complete, "complete", false, "fill the ring when input ends")
	watchCmd.Flags().BoolVar(&watchOpts.Plain, "plain", false, "print percentages instead of drawing the ring")
	AddRingFlags(watchCmd, &watchOpts.Ring)
	rootCmd.AddCommand(watchCmd)
}
