// Package ui provides the terminal chrome around orbit's rings: the color
// palette, status symbols, the branded header, a linear progress bar and a
// Bubble Tea spinner component for job status lines.
//
// # Color Scheme
//
// Colors are 24-bit hex values; lipgloss degrades them to whatever the
// terminal supports:
//
//	ColorAccent    (indigo) - Titles and the selected ring
//	ColorSuccess   (green)  - Finished jobs
//	ColorError     (red)    - Failed jobs and errors
//	ColorWarning   (yellow) - Detached rings and warnings
//	ColorMuted     (gray)   - Help text, timing info
//
// Use DisableColors() to switch to monochrome output (for --no-color).
//
// # Spinner Usage
//
// SpinnerComponent wraps the bubbles spinner for use inside larger models:
//
//	sp := ui.NewSpinnerComponent("build")
//	cmd := sp.Start()
//	// in Update:
//	sp, cmd = sp.Update(msg)
//	// when the job ends:
//	sp.Success()
//
// # Progress Bars
//
// RenderProgressBar is the linear counterpart of a ring:
//
//	ui.RenderProgressBar(0.6, 10, "")  // ▰▰▰▰▰▰▱▱▱▱  60%
package ui
