// Package progress provides an observable progress source: a unit counter
// that reports fraction completed and notifies subscribers on change.
//
// Trackers are written to from worker goroutines and read from the UI loop,
// so every method is safe for concurrent use. Notifications coalesce: a
// subscriber that has not drained its channel gets one pending signal no
// matter how many updates happened, and reads the latest fraction when it
// gets around to it. Workers never block on a slow UI.
package progress

import (
	"math"
	"sync"
)

// Source is what a ring observes.
type Source interface {
	// FractionCompleted returns completion in [0, 1].
	FractionCompleted() float64

	// Subscribe returns a channel that receives a value after each change
	// and a function that ends the subscription. The cancel function is
	// safe to call more than once.
	Subscribe() (<-chan struct{}, func())
}

// Tracker counts completed units of work out of a total.
type Tracker struct {
	mu        sync.Mutex
	total     int64
	completed int64
	subs      map[int]chan struct{}
	nextSub   int
}

// NewTracker creates a tracker for total units of work.
func NewTracker(total int64) *Tracker {
	if total < 0 {
		total = 0
	}
	return &Tracker{
		total: total,
		subs:  make(map[int]chan struct{}),
	}
}

// Total returns the total unit count.
func (t *Tracker) Total() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Completed returns the completed unit count.
func (t *Tracker) Completed() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed
}

// FractionCompleted returns completed/total clamped to [0, 1].
// A tracker with no total reports 0.
func (t *Tracker) FractionCompleted() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fractionLocked()
}

func (t *Tracker) fractionLocked() float64 {
	if t.total <= 0 {
		return 0
	}
	f := float64(t.completed) / float64(t.total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// IsFinished reports whether all units are complete.
func (t *Tracker) IsFinished() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total > 0 && t.completed >= t.total
}

// SetTotal changes the total unit count and notifies subscribers.
func (t *Tracker) SetTotal(total int64) {
	if total < 0 {
		total = 0
	}
	t.update(func() bool {
		changed := t.total != total
		t.total = total
		return changed
	})
}

// SetCompleted sets the completed unit count and notifies subscribers.
func (t *Tracker) SetCompleted(completed int64) {
	if completed < 0 {
		completed = 0
	}
	t.update(func() bool {
		changed := t.completed != completed
		t.completed = completed
		return changed
	})
}

// Set changes both counts under one lock with a single notification, so
// readers never see the new completed count against the old total.
func (t *Tracker) Set(completed, total int64) {
	if completed < 0 {
		completed = 0
	}
	if total < 0 {
		total = 0
	}
	t.update(func() bool {
		changed := t.completed != completed || t.total != total
		t.completed, t.total = completed, total
		return changed
	})
}

// Add advances the completed count by n (which may be negative).
func (t *Tracker) Add(n int64) {
	t.update(func() bool {
		next := t.completed + n
		if next < 0 {
			next = 0
		}
		changed := t.completed != next
		t.completed = next
		return changed
	})
}

// SetFraction sets completed units so that the fraction is f. Trackers with
// no total get a total of 100 first.
func (t *Tracker) SetFraction(f float64) {
	if math.IsNaN(f) || f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	t.update(func() bool {
		if t.total <= 0 {
			t.total = 100
		}
		next := int64(f*float64(t.total) + 0.5)
		changed := t.completed != next
		t.completed = next
		return changed
	})
}

// Complete marks all units done.
func (t *Tracker) Complete() {
	t.update(func() bool {
		if t.total <= 0 {
			t.total = 1
		}
		changed := t.completed != t.total
		t.completed = t.total
		return changed
	})
}

// Subscribe registers for change notifications.
func (t *Tracker) Subscribe() (<-chan struct{}, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextSub
	t.nextSub++
	ch := make(chan struct{}, 1)
	t.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			delete(t.subs, id)
		})
	}
	return ch, cancel
}

// Subscribers returns the number of live subscriptions.
func (t *Tracker) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

func (t *Tracker) update(mutate func() bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !mutate() {
		return
	}
	for _, ch := range t.subs {
		select {
		case ch <- struct{}{}:
		default:
			// a signal is already pending
		}
	}
}
