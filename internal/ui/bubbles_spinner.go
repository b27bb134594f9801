package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames is a braille scan, drawn from the same dot cells the rings use.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
	FPS:    time.Second / 16,
}

// SpinnerComponentState represents the state of a spinner in a Bubble Tea model.
type SpinnerComponentState int

const (
	SpinnerComponentPending SpinnerComponentState = iota
	SpinnerComponentInProgress
	SpinnerComponentSuccess
	SpinnerComponentFailed
	SpinnerComponentPaused
)

// SpinnerComponent is a Bubble Tea model for a labelled job status line.
// It is designed to be composed into larger models.
type SpinnerComponent struct {
	spinner   spinner.Model
	Label     string
	State     SpinnerComponentState
	StartTime time.Time
	EndTime   time.Time

	now func() time.Time
}

// NewSpinnerComponent creates a new spinner component with the given label.
func NewSpinnerComponent(label string) SpinnerComponent {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)

	return SpinnerComponent{
		spinner: sp,
		Label:   label,
		State:   SpinnerComponentPending,
		now:     time.Now,
	}
}

// Init returns the initial command for the spinner (tick).
func (s SpinnerComponent) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update handles spinner animation messages. Ticks addressed to other
// spinners are ignored by the embedded model.
func (s SpinnerComponent) Update(msg tea.Msg) (SpinnerComponent, tea.Cmd) {
	if s.State != SpinnerComponentInProgress {
		return s, nil
	}

	if tickMsg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tickMsg)
		return s, cmd
	}
	return s, nil
}

// View renders the spinner in its current state.
func (s SpinnerComponent) View() string {
	switch s.State {
	case SpinnerComponentInProgress:
		return s.spinner.View() + " " + s.Label
	case SpinnerComponentSuccess:
		return s.viewFinal(SymbolSuccess, ColorSuccess)
	case SpinnerComponentFailed:
		return s.viewFinal(SymbolFail, ColorError)
	case SpinnerComponentPaused:
		return lipgloss.NewStyle().Foreground(ColorWarning).Render(SymbolPaused) + " " + s.Label
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted).Render(SymbolPending) + " " + s.Label
	}
}

func (s SpinnerComponent) viewFinal(symbol string, color lipgloss.Color) string {
	symbolStyle := lipgloss.NewStyle().Foreground(color)
	return symbolStyle.Render(symbol) + " " + s.Label + " " + MutedStyle().Render(formatDuration(s.Elapsed()))
}

// Start transitions the spinner to in-progress state.
func (s *SpinnerComponent) Start() tea.Cmd {
	s.State = SpinnerComponentInProgress
	s.StartTime = s.clock()
	s.EndTime = time.Time{}
	return s.spinner.Tick
}

// Resume returns a paused spinner to in-progress without resetting its timer.
func (s *SpinnerComponent) Resume() tea.Cmd {
	if s.State != SpinnerComponentPaused {
		return nil
	}
	s.State = SpinnerComponentInProgress
	return s.spinner.Tick
}

// Success transitions the spinner to success state.
func (s *SpinnerComponent) Success() {
	s.State = SpinnerComponentSuccess
	s.EndTime = s.clock()
}

// Fail transitions the spinner to failed state.
func (s *SpinnerComponent) Fail() {
	s.State = SpinnerComponentFailed
	s.EndTime = s.clock()
}

// Pause transitions the spinner to paused state.
func (s *SpinnerComponent) Pause() {
	if s.State == SpinnerComponentInProgress {
		s.State = SpinnerComponentPaused
	}
}

// Elapsed returns the running time, frozen once the job has finished.
func (s SpinnerComponent) Elapsed() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	if !s.EndTime.IsZero() {
		return s.EndTime.Sub(s.StartTime)
	}
	return s.clock().Sub(s.StartTime)
}

func (s SpinnerComponent) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
