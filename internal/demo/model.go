package demo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/orbit/internal/layout"
	"github.com/rileyhilliard/orbit/internal/logger"
	"github.com/rileyhilliard/orbit/internal/ring"
	"github.com/rileyhilliard/orbit/internal/ui"
)

// jobNames labels the simulated jobs, in order.
var jobNames = []string{"build", "test", "lint", "package", "upload", "deploy", "verify", "notify"}

// Options configures a dashboard.
type Options struct {
	// Rings is how many jobs to run, capped at len(jobNames).
	Rings int

	// JobDuration is roughly how long each job takes.
	JobDuration time.Duration

	// RingOptions are applied to every ring.
	RingOptions []ring.Option

	// LayoutPath is where s saves. Rings restore their colors from it.
	LayoutPath string

	// Version is shown in the header.
	Version string

	// Random returns values in [0, 1) for the space key. Defaults to rand.Float64.
	Random func() float64

	Logger logger.Logger
}

// Model is the Bubble Tea model for the ring dashboard.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	names    []string
	rings    []*ring.Ring
	jobs     []*Job
	spinners []ui.SpinnerComponent

	selected  int
	tintIndex int
	fillIndex []int // per ring; -1 means no explicit fill

	layoutPath string
	version    string
	status     string

	help     help.Model
	width    int
	height   int
	quitting bool

	random func() float64
	log    logger.Logger
}

// NewModel builds the dashboard. Jobs don't start until Init. Rings whose
// names appear in the layout file take their saved colors; their progress
// comes from the bound job.
func NewModel(ctx context.Context, opts Options) *Model {
	n := opts.Rings
	if n < 1 {
		n = 1
	}
	if n > len(jobNames) {
		n = len(jobNames)
	}
	if opts.Random == nil {
		opts.Random = rand.Float64
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	m := &Model{
		ctx:        ctx,
		cancel:     cancel,
		layoutPath: opts.LayoutPath,
		version:    opts.Version,
		help:       help.New(),
		random:     opts.Random,
		log:        opts.Logger,
	}

	saved := layout.New()
	if opts.LayoutPath != "" {
		f, err := layout.Load(opts.LayoutPath)
		if err != nil {
			m.log.Warn("ignoring layout file: %v", err)
			m.status = "layout file unreadable, starting fresh"
		} else {
			saved = f
		}
	}

	ringOpts := append([]ring.Option{ring.WithLogger(opts.Logger)}, opts.RingOptions...)

	// Stagger durations so the rings don't move in lockstep.
	for i := 0; i < n; i++ {
		name := jobNames[i]
		r, _ := saved.Ring(name, ringOpts...)
		d := opts.JobDuration + time.Duration(i)*opts.JobDuration/4

		m.names = append(m.names, name)
		m.rings = append(m.rings, r)
		m.jobs = append(m.jobs, NewJob(name, d))
		m.spinners = append(m.spinners, ui.NewSpinnerComponent(name))
		m.fillIndex = append(m.fillIndex, -1)
	}

	return m
}

// Init starts every job, binds every ring to its job and starts the spinners.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.rings {
		m.jobs[i].Start(m.ctx)
		cmds = append(cmds, m.rings[i].Bind(m.jobs[i].Tracker), m.spinners[i].Start())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case ring.FrameMsg:
		return m, m.updateRings(msg)

	case ring.SourceMsg:
		cmd := m.updateRings(msg)
		m.syncSpinners()
		return m, cmd

	case spinner.TickMsg:
		var cmds []tea.Cmd
		for i := range m.spinners {
			var cmd tea.Cmd
			m.spinners[i], cmd = m.spinners[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// View renders the dashboard.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Shutdown stops every job and releases every ring binding.
func (m *Model) Shutdown() {
	m.cancel()
	for i := range m.rings {
		m.jobs[i].Stop()
		m.rings[i].Close()
	}
}

// Selected returns the index of the selected ring.
func (m *Model) Selected() int {
	return m.selected
}

// Rings returns the dashboard's rings in display order.
func (m *Model) Rings() []*ring.Ring {
	return m.rings
}

// Status returns the last status line message.
func (m *Model) Status() string {
	return m.status
}

// updateRings hands msg to every ring. Each ring ignores messages meant
// for another.
func (m *Model) updateRings(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range m.rings {
		if cmd := r.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// syncSpinners marks spinners of bound, finished jobs as done.
func (m *Model) syncSpinners() {
	for i, job := range m.jobs {
		sp := &m.spinners[i]
		if sp.State == ui.SpinnerComponentInProgress && m.rings[i].Bound() && job.Tracker.IsFinished() {
			sp.Success()
			m.log.Debug("job %s finished in %s", job.Name, sp.Elapsed())
		}
	}
}

func (m *Model) animateSelected() tea.Cmd {
	r := m.rings[m.selected]
	if r.Bound() {
		r.Unbind()
		m.spinners[m.selected].Pause()
	}
	target := m.random()
	m.status = fmt.Sprintf("%s → %s", m.names[m.selected], ui.FormatPercent(target))
	return r.SetProgressAnimated(target, true)
}

func (m *Model) toggleBind() tea.Cmd {
	i := m.selected
	r := m.rings[i]
	if r.Bound() {
		r.Unbind()
		m.spinners[i].Pause()
		m.status = m.names[i] + " detached"
		return nil
	}

	m.status = m.names[i] + " attached"
	cmd := r.Bind(m.jobs[i].Tracker)
	if m.jobs[i].Tracker.IsFinished() {
		if m.spinners[i].State == ui.SpinnerComponentPaused {
			m.spinners[i].Success()
		}
		return cmd
	}
	return tea.Batch(cmd, m.spinners[i].Resume())
}

func (m *Model) restartSelected() tea.Cmd {
	i := m.selected
	m.jobs[i].Restart(m.ctx)
	m.status = m.names[i] + " restarted"
	return tea.Batch(m.rings[i].Bind(m.jobs[i].Tracker), m.spinners[i].Start())
}

func (m *Model) cycleFill() {
	i := m.selected
	m.fillIndex[i]++
	if m.fillIndex[i] >= len(fillCycle) {
		m.fillIndex[i] = -1
		m.rings[i].SetProgressTint(nil)
		m.status = m.names[i] + " fill cleared"
		return
	}
	c := fillCycle[m.fillIndex[i]]
	m.rings[i].SetProgressTint(&c)
	m.status = m.names[i] + " fill " + c.Hex()
}

// saveLayout merges the rings into the layout file, keeping entries for
// names this dashboard doesn't show. An unreadable file is left untouched.
func (m *Model) saveLayout() {
	if m.layoutPath == "" {
		m.status = "no layout path configured"
		return
	}

	f, err := layout.Load(m.layoutPath)
	if err != nil {
		m.log.Error("not saving over unreadable layout file: %v", err)
		m.status = ui.SymbolFail + " save failed: layout file unreadable"
		return
	}
	for i, r := range m.rings {
		f.Put(m.names[i], r)
	}
	if err := layout.Save(m.layoutPath, f); err != nil {
		m.log.Error("save layout: %v", err)
		m.status = ui.SymbolFail + " save failed"
		return
	}
	m.status = ui.SymbolSuccess + " saved " + m.layoutPath
}
