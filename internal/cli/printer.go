package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/pablasso/taskboard/internal/board"
	"github.com/pablasso/taskboard/internal/task"
)

// listView records the last render so a command can print it once it finishes.
type listView struct {
	tasks  []task.Task
	count  int
	filter task.Filter
}

func (v *listView) RenderList(tasks []task.Task) {
	v.tasks = tasks
}

func (v *listView) RenderCount(n int) {
	v.count = n
}

func (v *listView) RenderFilterSelection(active task.Filter) {
	v.filter = active
}

// print writes the rendered tasks numbered by their position in the full list,
// which is what advance and rm accept.
func (v *listView) print(w io.Writer, all []task.Task) {
	positions := make(map[uuid.UUID]int, len(all))
	for i, t := range all {
		positions[t.ID] = i + 1
	}

	if v.filter != task.FilterAll {
		fmt.Fprintf(w, "Filter: %s\n", v.filter.Label())
	}
	if len(v.tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
	}
	for _, t := range v.tasks {
		fmt.Fprintf(w, "%3d. %s %-11s  %s\n", positions[t.ID], checkbox(t.Status), t.Status, t.Title)
	}

	if v.count == 1 {
		fmt.Fprintln(w, "1 task")
	} else {
		fmt.Fprintf(w, "%d tasks\n", v.count)
	}
}

func checkbox(s task.Status) string {
	switch s {
	case task.StatusCompleted:
		return "[x]"
	case task.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

// attachList points store at a fresh listView.
func attachList(store *board.Store) *listView {
	v := &listView{}
	store.Attach(v)
	return v
}
