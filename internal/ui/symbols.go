package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Job completed successfully
	SymbolFail     = "✗" // Job failed
	SymbolPending  = "○" // Job not yet started
	SymbolProgress = "◐" // Job in progress
	SymbolComplete = "●" // Job done
	SymbolPaused   = "⊘" // Job detached from its ring
	SymbolWarning  = "⚠"
	SymbolSelected = "▸"
)
