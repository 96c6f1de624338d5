package board

import (
	"fmt"

	"github.com/pablasso/taskboard/internal/task"
)

// Filter returns the active filter.
func (s *Store) Filter() task.Filter {
	return s.filter
}

// SetFilter makes f the single enabled filter and refreshes the view.
func (s *Store) SetFilter(f task.Filter) error {
	if f.SelectorID() == "" {
		return fmt.Errorf("unknown filter %d", int(f))
	}
	s.filter = f
	s.logger.Debug("filter selected", "filter", f.String())
	s.refresh()
	return nil
}

// Visible returns the tasks that pass the active filter.
func (s *Store) Visible() []task.Task {
	return task.Visible(s.tasks, s.filter)
}

// Attach replaces the view and renders the current state to it.
func (s *Store) Attach(v View) {
	if v == nil {
		v = NopView{}
	}
	s.view = v
	s.refresh()
}

// refresh renders the visible tasks; the count is always the visible length.
func (s *Store) refresh() {
	visible := s.Visible()
	s.view.RenderList(visible)
	s.view.RenderCount(len(visible))
	s.view.RenderFilterSelection(s.filter)
}
