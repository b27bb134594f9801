package watch

import (
	"bufio"
	"context"
	"io"

	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/logger"
	"github.com/rileyhilliard/orbit/internal/progress"
)

// Result summarizes a finished feed.
type Result struct {
	Lines   int   // reports applied
	Skipped int   // malformed lines ignored
	Err     error // read error, context error, or the first malformed line in strict mode
}

// FeedOptions controls Feed.
type FeedOptions struct {
	// Strict stops at the first malformed line instead of skipping it.
	Strict bool

	// CompleteOnEOF marks the tracker complete when input ends cleanly.
	CompleteOnEOF bool

	Logger logger.Logger
}

// Feed reads reports from r and applies them to t until EOF, a read error
// or ctx is done. It is meant to run off the UI loop; t carries the
// results across.
func Feed(ctx context.Context, r io.Reader, t *progress.Tracker, opts FeedOptions) Result {
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	var res Result
	lineNo := 0
	for {
		select {
		case <-ctx.Done():
			res.Err = ctx.Err()
			return res
		case line, ok := <-lines:
			if !ok {
				err := <-readErr
				if err != nil && err == ctx.Err() {
					res.Err = err
					return res
				}
				if err != nil {
					res.Err = errors.WrapWithCode(err, errors.ErrInput, "Failed reading progress input", "")
					return res
				}
				if opts.CompleteOnEOF {
					t.Complete()
				}
				return res
			}
			lineNo++

			reading, ok, err := ParseLine(line)
			if err != nil {
				if opts.Strict {
					res.Err = err
					return res
				}
				res.Skipped++
				log.Warn("line %d: skipping %q", lineNo, line)
				continue
			}
			if !ok {
				continue
			}
			reading.Apply(t)
			res.Lines++
		}
	}
}
