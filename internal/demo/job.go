package demo

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rileyhilliard/orbit/internal/progress"
)

// jobUnits is the number of work units a simulated job reports.
const jobUnits = 100

// Job is a simulated unit of background work that reports through a
// tracker. Start, Restart and Stop belong to the UI loop; the worker
// goroutine touches nothing but the tracker.
type Job struct {
	Name     string
	Tracker  *progress.Tracker
	Duration time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJob returns a stopped job that takes roughly d to finish.
func NewJob(name string, d time.Duration) *Job {
	return &Job{
		Name:     name,
		Tracker:  progress.NewTracker(jobUnits),
		Duration: d,
	}
}

// Start launches the worker goroutine. It stops on its own once the tracker
// is finished, or when ctx or Stop cancels it.
func (j *Job) Start(ctx context.Context) {
	j.Stop()

	ctx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	step := j.Duration / jobUnits
	if step <= 0 {
		step = time.Millisecond
	}

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		for !j.Tracker.IsFinished() {
			// Jitter each step between half and one and a half times the mean.
			wait := step/2 + time.Duration(rand.Int64N(int64(step)+1))
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
				j.Tracker.Add(1)
			}
		}
	}()
}

// Restart resets the tracker to zero and starts the job again.
func (j *Job) Restart(ctx context.Context) {
	j.Stop()
	j.Tracker.SetCompleted(0)
	j.Start(ctx)
}

// Stop cancels the worker and waits for it to exit.
func (j *Job) Stop() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}

// Running reports whether the worker goroutine has been started and not
// stopped. A job that finished on its own still counts until Stop.
func (j *Job) Running() bool {
	return j.cancel != nil
}
