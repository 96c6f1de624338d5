package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pablasso/taskboard/internal/tui/styles"
)

// StatusBar renders a bottom help bar with key hints on the left and an
// optional summary (such as the task count) on the right.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns a single-line status bar of exactly width cells.
// Items are joined with " • "; when space runs out the hints are truncated
// and the summary stays on the right edge.
func (s StatusBar) Render(width int, items []string, right string) string {
	if width <= 0 {
		return ""
	}

	right = ansi.Truncate(right, width, "")
	room := width - lipgloss.Width(right)
	if right != "" {
		room-- // keep a space before the summary
	}

	left := ansi.Truncate(strings.Join(items, " • "), max(room, 0), "…")
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return styles.StatusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}
