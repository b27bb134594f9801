package watch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/orbit/internal/logger"
	"github.com/rileyhilliard/orbit/internal/progress"
	"github.com/rileyhilliard/orbit/internal/ring"
	"github.com/rileyhilliard/orbit/internal/ui"
)

// barWidth is the width of the linear bar shown under the ring.
const barWidth = 20

// feedDoneMsg reports that the input ended.
type feedDoneMsg struct {
	result Result
}

var quitKey = key.NewBinding(
	key.WithKeys("q", "esc", "ctrl+c"),
	key.WithHelp("q", "stop watching"),
)

// Model is the Bubble Tea model for watch mode: one ring bound to a tracker
// that Feed fills from the input.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	input   io.Reader
	opts    FeedOptions
	label   string
	tracker *progress.Tracker
	ring    *ring.Ring

	result   *Result
	quitting bool
	log      logger.Logger
}

// NewModel builds a watch model that reads from input. label is shown
// beside the ring.
func NewModel(ctx context.Context, input io.Reader, label string, r *ring.Ring, opts FeedOptions) *Model {
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Model{
		ctx:     ctx,
		cancel:  cancel,
		input:   input,
		opts:    opts,
		label:   label,
		tracker: progress.NewTracker(100),
		ring:    r,
		log:     opts.Logger,
	}
}

// Init binds the ring and starts reading.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.ring.Bind(m.tracker), m.feedCmd())
}

func (m *Model) feedCmd() tea.Cmd {
	ctx, input, tracker, opts := m.ctx, m.input, m.tracker, m.opts
	return func() tea.Msg {
		return feedDoneMsg{result: Feed(ctx, input, tracker, opts)}
	}
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			m.quitting = true
			m.cancel()
			m.ring.Close()
			return m, tea.Quit
		}

	case ring.SourceMsg, ring.FrameMsg:
		return m, m.ring.Update(msg)

	case feedDoneMsg:
		res := msg.result
		m.result = &res
		// The last report may still be queued behind the notification.
		m.ring.SetProgress(m.tracker.FractionCompleted())
		m.ring.Close()
		m.cancel()
		if res.Err != nil {
			m.log.Debug("watch ended: %v", res.Err)
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the ring with its label, a linear bar and a status line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	fraction := m.ring.DisplayedProgress()
	side := lipgloss.JoinVertical(lipgloss.Left,
		ui.AccentStyle().Render(m.label),
		ui.RenderProgressBar(fraction, barWidth, ""),
		m.statusLine(),
	)

	view := lipgloss.JoinHorizontal(lipgloss.Center, m.ring.View(), "  ", side)
	return view + "\n"
}

func (m *Model) statusLine() string {
	if m.result == nil {
		return ui.MutedStyle().Render("reading input · q to stop")
	}

	var parts []string
	if m.result.Err != nil {
		parts = append(parts, ui.ErrorStyle().Render(ui.SymbolFail+" stopped"))
	} else {
		parts = append(parts, ui.SuccessStyle().Render(ui.SymbolSuccess+" done"))
	}
	parts = append(parts, fmt.Sprintf("%d reports", m.result.Lines))
	if m.result.Skipped > 0 {
		parts = append(parts, ui.WarningStyle().Render(fmt.Sprintf("%d skipped", m.result.Skipped)))
	}
	return strings.Join(parts, " · ")
}

// Result returns the feed result once the input has ended, or nil.
func (m *Model) Result() *Result {
	return m.result
}

// Progress returns the ring's current value.
func (m *Model) Progress() float64 {
	return m.ring.Progress()
}
