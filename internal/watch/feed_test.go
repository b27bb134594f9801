package watch

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/logger"
	"github.com/rileyhilliard/orbit/internal/progress"
)

func TestFeed_AppliesReports(t *testing.T) {
	tracker := progress.NewTracker(100)
	input := strings.NewReader("10%\n\n# note\n0.5\n3/4\n")

	res := Feed(context.Background(), input, tracker, FeedOptions{Logger: logger.Noop()})

	require.NoError(t, res.Err)
	assert.Equal(t, 3, res.Lines)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, 0.75, tracker.FractionCompleted())
	assert.False(t, tracker.IsFinished())
}

func TestFeed_SkipsMalformedLines(t *testing.T) {
	tracker := progress.NewTracker(100)
	log := logger.NewBufferLogger()
	input := strings.NewReader("20%\nbogus\n40%\n")

	res := Feed(context.Background(), input, tracker, FeedOptions{Logger: log})

	require.NoError(t, res.Err)
	assert.Equal(t, 2, res.Lines)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 0.4, tracker.FractionCompleted())
	assert.True(t, log.Contains("line 2"))
}

func TestFeed_StrictStopsAtMalformedLine(t *testing.T) {
	tracker := progress.NewTracker(100)
	input := strings.NewReader("20%\nbogus\n40%\n")

	res := Feed(context.Background(), input, tracker, FeedOptions{Strict: true, Logger: logger.Noop()})

	require.Error(t, res.Err)
	assert.True(t, errors.IsCode(res.Err, errors.ErrInput))
	assert.Equal(t, 1, res.Lines)
	assert.Equal(t, 0.2, tracker.FractionCompleted())
}

func TestFeed_CompleteOnEOF(t *testing.T) {
	tracker := progress.NewTracker(100)

	res := Feed(context.Background(), strings.NewReader("20%\n"), tracker,
		FeedOptions{CompleteOnEOF: true, Logger: logger.Noop()})

	require.NoError(t, res.Err)
	assert.True(t, tracker.IsFinished())
}

func TestFeed_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	tracker := progress.NewTracker(100)

	done := make(chan Result, 1)
	go func() {
		done <- Feed(ctx, pr, tracker, FeedOptions{CompleteOnEOF: true, Logger: logger.Noop()})
	}()

	_, err := pw.Write([]byte("30%\n"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return tracker.FractionCompleted() == 0.3 }, time.Second, time.Millisecond)

	cancel()
	select {
	case res := <-done:
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.False(t, tracker.IsFinished(), "a cancelled feed doesn't complete the tracker")
	case <-time.After(2 * time.Second):
		t.Fatal("Feed did not return after cancel")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestFeed_ReadError(t *testing.T) {
	res := Feed(context.Background(), failingReader{}, progress.NewTracker(100), FeedOptions{Logger: logger.Noop()})

	require.Error(t, res.Err)
	assert.True(t, errors.IsCode(res.Err, errors.ErrInput))
	assert.ErrorIs(t, res.Err, io.ErrUnexpectedEOF)
}
