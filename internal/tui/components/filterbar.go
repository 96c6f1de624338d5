package components

import (
	"fmt"
	"strings"

	"github.com/pablasso/taskboard/internal/task"
	"github.com/pablasso/taskboard/internal/tui/styles"
)

// FilterBar renders the four filter selectors with exactly one marked active.
type FilterBar struct{}

// NewFilterBar creates a new FilterBar instance.
func NewFilterBar() FilterBar {
	return FilterBar{}
}

// Render returns a line like: ● 1 All   ○ 2 Completed   ○ 3 In progress   ○ 4 Not started
func (f FilterBar) Render(active task.Filter) string {
	parts := make([]string, 0, len(task.Filters))
	for i, filter := range task.Filters {
		indicator := "○"
		style := styles.SubtleStyle
		if filter == active {
			indicator = "●"
			style = styles.SelectedStyle
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s %d %s", indicator, i+1, filter.Label())))
	}
	return strings.Join(parts, "   ")
}
