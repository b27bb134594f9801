package ring

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/orbit/internal/progress"
)

type binding struct {
	source progress.Source
	notify <-chan struct{}
	cancel func()
	done   chan struct{}

	// waiting is set while a wait command is out and cleared when its
	// message comes back through Update.
	waiting bool
}

func (b *binding) close() {
	b.cancel()
	close(b.done)
}

// SourceMsg carries a bound source's fraction into the UI loop.
type SourceMsg struct {
	id       int
	gen      int
	Fraction float64
}

// Bind observes src, replacing any previous binding. The ring takes the
// source's current fraction right away. The returned command waits for the
// next change notification; pass its message to Update. The caller must run
// it: Init does not start a second waiter. Bind(nil) is Unbind.
func (r *Ring) Bind(src progress.Source) tea.Cmd {
	r.unbind()
	if src == nil {
		return nil
	}

	notify, cancel := src.Subscribe()
	r.bindGen++
	r.binding = &binding{
		source: src,
		notify: notify,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	r.log.Debug("ring %d: bound to progress source (gen %d)", r.id, r.bindGen)

	r.SetProgress(src.FractionCompleted())
	return r.waitForSource()
}

// Unbind stops observing the current source. Progress keeps its last value.
func (r *Ring) Unbind() {
	r.unbind()
}

// Bound reports whether a source is being observed.
func (r *Ring) Bound() bool {
	return r.binding != nil
}

// Source returns the observed source, or nil.
func (r *Ring) Source() progress.Source {
	if r.binding == nil {
		return nil
	}
	return r.binding.source
}

func (r *Ring) unbind() {
	if r.binding == nil {
		return
	}
	r.binding.close()
	r.binding = nil
	r.bindGen++
	r.log.Debug("ring %d: unbound", r.id)
}

// waitForSource blocks (inside the command goroutine) until the source
// changes or the binding is released. A released binding yields a nil
// message, which Bubble Tea drops.
func (r *Ring) waitForSource() tea.Cmd {
	b := r.binding
	if b == nil {
		return nil
	}
	id, gen := r.id, r.bindGen
	b.waiting = true

	return func() tea.Msg {
		select {
		case <-b.notify:
			return SourceMsg{id: id, gen: gen, Fraction: b.source.FractionCompleted()}
		case <-b.done:
			return nil
		}
	}
}

func (r *Ring) handleSource(msg SourceMsg) tea.Cmd {
	if msg.id != r.id || msg.gen != r.bindGen || r.binding == nil {
		return nil
	}
	r.binding.waiting = false
	r.SetProgress(msg.Fraction)
	return r.waitForSource()
}
