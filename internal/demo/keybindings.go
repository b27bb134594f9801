package demo

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/orbit/internal/appearance"
	"github.com/rileyhilliard/orbit/internal/paint"
)

// keyMap defines key bindings for the dashboard. It satisfies help.KeyMap.
type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Animate key.Binding
	Bind    key.Binding
	Restart key.Binding
	Tint    key.Binding
	Color   key.Binding
	Save    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "next ring"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab", "previous ring"),
	),
	Animate: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "animate to random value"),
	),
	Bind: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "bind/unbind job"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart job"),
	),
	Tint: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "cycle ambient tint"),
	),
	Color: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cycle fill color"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save layout"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Animate, k.Bind, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped into columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Animate},
		{k.Bind, k.Restart, k.Save},
		{k.Tint, k.Color},
		{k.Help, k.Quit},
	}
}

// tintCycle is what the t key steps the ambient tint through.
var tintCycle = []paint.Color{
	appearance.DefaultTint,
	paint.MustParse("teal"),
	paint.MustParse("orange"),
	paint.MustParse("pink"),
	paint.MustParse("green"),
}

// fillCycle is what the c key steps a ring's explicit fill through. The
// step after the last clears the explicit color again.
var fillCycle = []paint.Color{
	paint.MustParse("red"),
	paint.MustParse("yellow"),
	paint.MustParse("blue"),
	paint.MustParse("purple"),
}

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.Shutdown()
		return true, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	}

	if len(m.rings) == 0 {
		return false, nil
	}

	switch {
	case key.Matches(msg, keys.Next):
		m.selected = (m.selected + 1) % len(m.rings)
		return true, nil

	case key.Matches(msg, keys.Prev):
		m.selected = (m.selected - 1 + len(m.rings)) % len(m.rings)
		return true, nil

	case key.Matches(msg, keys.Animate):
		return true, m.animateSelected()

	case key.Matches(msg, keys.Bind):
		return true, m.toggleBind()

	case key.Matches(msg, keys.Restart):
		return true, m.restartSelected()

	case key.Matches(msg, keys.Tint):
		m.tintIndex = (m.tintIndex + 1) % len(tintCycle)
		appearance.SetAmbientTint(tintCycle[m.tintIndex])
		m.status = "ambient tint " + tintCycle[m.tintIndex].Hex()
		return true, nil

	case key.Matches(msg, keys.Color):
		m.cycleFill()
		return true, nil

	case key.Matches(msg, keys.Save):
		m.saveLayout()
		return true, nil
	}

	return false, nil
}
