// Package ring implements a circular progress indicator for terminal UIs.
//
// A Ring is the circular counterpart of a progress bar: an annulus whose
// filled arc sweeps clockwise from the top in proportion to a progress
// value in [0, 1].
//
// # Progress
//
// Values outside [0, 1] are clamped, never rejected:
//
//	r := ring.New()
//	r.SetProgress(1.7)   // r.Progress() == 1
//
// SetProgressAnimated moves the displayed value linearly toward the target
// over DefaultAnimationDuration. It returns the first frame command; feed
// every message to Update so the animation keeps running. Starting a new
// animation mid-flight continues from the value currently on screen.
//
// # Colors
//
// Both tints are optional. An unset progress tint falls back to the
// appearance registry default for Kind, then to the ambient tint. An unset
// track tint falls back to the registry, then to the resolved progress tint
// with its alpha scaled by the track alpha factor. Resolution happens on
// every draw.
//
// # Observing a progress source
//
// Bind subscribes to a progress.Source. While bound, each change
// notification arrives as a SourceMsg through Update and replaces the
// progress value. Unbind (or Bind(nil)) stops observing and keeps the last
// value.
//
// # Drawing
//
// Draw strokes two arcs onto any canvas.Surface: the full track, then the
// fill arc. View draws onto a braille canvas sized with WithSize.
//
// # Encoding
//
// Encode and Decode convert a ring's persistent state (progress and the two
// optional tints) to and from a Record, a plain map that round-trips
// through YAML or JSON. Decode substitutes defaults for anything missing or
// malformed.
package ring
