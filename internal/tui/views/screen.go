package views

import "github.com/pablasso/taskboard/internal/task"

// Screen keeps the latest render requested by the store. BoardModel draws from it.
type Screen struct {
	tasks   []task.Task
	count   int
	filter  task.Filter
	renders int
}

// NewScreen creates an empty Screen.
func NewScreen() *Screen {
	return &Screen{}
}

func (s *Screen) RenderList(tasks []task.Task) {
	s.tasks = tasks
	s.renders++
}

func (s *Screen) RenderCount(n int) {
	s.count = n
}

func (s *Screen) RenderFilterSelection(active task.Filter) {
	s.filter = active
}

// Tasks returns the rendered (visible) tasks.
func (s *Screen) Tasks() []task.Task {
	return s.tasks
}

// Count returns the rendered count.
func (s *Screen) Count() int {
	return s.count
}

// Filter returns the rendered filter selection.
func (s *Screen) Filter() task.Filter {
	return s.filter
}

// Renders returns how many list renders were received.
func (s *Screen) Renders() int {
	return s.renders
}
