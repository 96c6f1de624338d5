package task

import (
	"fmt"
	"strings"
)

// Filter selects which tasks are displayed.
type Filter int

const (
	FilterAll Filter = iota
	FilterCompleted
	FilterInProgress
	FilterNotStarted
)

// Filters lists every filter in selector order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterInProgress, FilterNotStarted}

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterCompleted:
		return "completed"
	case FilterInProgress:
		return "in-progress"
	case FilterNotStarted:
		return "not-started"
	default:
		return "unknown"
	}
}

// Label is the human-readable selector caption.
func (f Filter) Label() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterCompleted:
		return "Completed"
	case FilterInProgress:
		return "In progress"
	case FilterNotStarted:
		return "Not started"
	default:
		return "Unknown"
	}
}

// SelectorID identifies the filter's selector among the mutually exclusive set.
func (f Filter) SelectorID() string {
	switch f {
	case FilterAll:
		return "showAll"
	case FilterCompleted:
		return "showComplete"
	case FilterInProgress:
		return "showInprogress"
	case FilterNotStarted:
		return "showNotStarted"
	default:
		return ""
	}
}

// Next returns the following filter, wrapping around.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// Matches reports whether a task with status s is visible under f.
func (f Filter) Matches(s Status) bool {
	switch f {
	case FilterAll:
		return true
	case FilterCompleted:
		return s == StatusCompleted
	case FilterInProgress:
		return s == StatusInProgress
	case FilterNotStarted:
		return s == StatusNotStarted
	default:
		return false
	}
}

// ParseFilter accepts a filter name ("in-progress") or a selector id ("showInprogress").
func ParseFilter(value string) (Filter, error) {
	v := strings.TrimSpace(value)
	for _, f := range Filters {
		if strings.EqualFold(v, f.String()) || v == f.SelectorID() {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("invalid filter %q (valid: all, completed, in-progress, not-started)", value)
}

// Visible returns the tasks matching f as a new slice. tasks is not modified.
func Visible(tasks []Task, f Filter) []Task {
	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t.Status) {
			visible = append(visible, t)
		}
	}
	return visible
}
