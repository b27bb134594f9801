// Package demo implements the interactive ring dashboard behind
// `orbit demo`.
//
// The dashboard runs a handful of simulated jobs. Each job advances a
// progress.Tracker from its own goroutine, and each tracker is bound to a
// ring, so the rings fill as the jobs run without the jobs knowing anything
// about the UI. Rings can be detached from their jobs and driven by hand,
// recolored, and saved to the layout file.
//
// # Architecture
//
//	Job (goroutine) ──> progress.Tracker ──notify──> ring.SourceMsg ──> Model.Update
//	                                                                      │
//	tea.KeyMsg ──> HandleKeyMsg ──> ring.SetProgressAnimated ──> ring.FrameMsg
//
// The Model follows the Elm architecture used by Bubble Tea: Update
// routes ring messages to every ring (each ignores messages addressed to
// another ring) and View lays the ring cards out in rows that fit the
// terminal width.
//
// # Keyboard Shortcuts
//
//	tab / shift+tab  Select next / previous ring
//	space            Detach the selected ring and animate it to a random value
//	b                Bind or unbind the selected ring and its job
//	r                Restart the selected job
//	t                Cycle the ambient tint
//	c                Cycle the selected ring's fill color
//	s                Save the layout
//	?                Toggle full help
//	q / ctrl+c       Quit
package demo
