package watch

import (
	"context"
	"fmt"
	"io"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/orbit/internal/progress"
	"github.com/rileyhilliard/orbit/internal/ring"
	"github.com/rileyhilliard/orbit/internal/ui"
)

// RunPlain is watch mode without a terminal UI: it drives r's binding
// directly and prints a line to out whenever the whole percentage changes.
// It returns once the input ends or ctx is done.
func RunPlain(ctx context.Context, input io.Reader, out io.Writer, label string, r *ring.Ring, opts FeedOptions) Result {
	tracker := progress.NewTracker(100)

	done := make(chan Result, 1)
	go func() {
		done <- Feed(ctx, input, tracker, opts)
	}()

	msgs := make(chan tea.Msg, 1)
	wait := func(cmd tea.Cmd) {
		go func() { msgs <- cmd() }()
	}

	last := -1
	report := func() {
		pct := int(math.Round(r.Progress() * 100))
		if pct == last {
			return
		}
		last = pct
		fmt.Fprintf(out, "%s%s\n", label, ui.FormatPercent(r.Progress()))
	}

	if cmd := r.Bind(tracker); cmd != nil {
		wait(cmd)
	}
	report()

	for {
		select {
		case msg := <-msgs:
			if cmd := r.Update(msg); cmd != nil {
				wait(cmd)
			}
			report()
		case res := <-done:
			r.SetProgress(tracker.FractionCompleted())
			r.Close()
			report()
			return res
		}
	}
}
