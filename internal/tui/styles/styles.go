// Package styles defines shared lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/taskboard/internal/task"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for completed work
	warningColor   = lipgloss.Color("#D7AF5F") // Amber for work in progress
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for the row under the cursor and the active filter
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// NoticeStyle frames blocking notices
	NoticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(0, 2)

	// DoneTitleStyle for titles of completed tasks
	DoneTitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Strikethrough(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	notStartedStyle = lipgloss.NewStyle().Foreground(secondaryColor)
	inProgressStyle = lipgloss.NewStyle().Foreground(warningColor)
	completedStyle  = lipgloss.NewStyle().Foreground(successColor)
)

// StatusStyle returns the style used to render a status label.
func StatusStyle(s task.Status) lipgloss.Style {
	switch s {
	case task.StatusInProgress:
		return inProgressStyle
	case task.StatusCompleted:
		return completedStyle
	default:
		return notStartedStyle
	}
}
