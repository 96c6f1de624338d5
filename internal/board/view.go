package board

import "github.com/pablasso/taskboard/internal/task"

// View is implemented by renderers. The store calls it after every state change.
// Tasks passed to RenderList are copies; renderers refer back to them by ID.
type View interface {
	RenderList(tasks []task.Task)
	RenderCount(n int)
	RenderFilterSelection(active task.Filter)
}

// NopView discards every render request.
type NopView struct{}

func (NopView) RenderList([]task.Task)            {}
func (NopView) RenderCount(int)                   {}
func (NopView) RenderFilterSelection(task.Filter) {}
