package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures TUI startup behavior.
type Options struct {
	// Inline renders in the normal screen buffer instead of the alternate screen.
	Inline bool

	// Input and Output override the terminal; nil means stdin and stdout.
	Input  io.Reader
	Output io.Writer
}

func (o Options) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !o.Inline {
		opts = append(opts, tea.WithAltScreen())
	}
	if o.Input != nil {
		opts = append(opts, tea.WithInput(o.Input))
	}
	if o.Output != nil {
		opts = append(opts, tea.WithOutput(o.Output))
	}
	return opts
}
