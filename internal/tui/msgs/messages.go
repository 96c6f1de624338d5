// Package msgs defines shared message types for the TUI.
package msgs

// ClearErrorMsg hides the transient error line if it is still the one
// identified by Seq.
type ClearErrorMsg struct {
	Seq int
}

// QuitMsg asks the application to exit after the current update.
type QuitMsg struct{}
