// Package demo provides the demonstration board shown on first launch.
package demo

import "github.com/pablasso/taskboard/internal/task"

// Tasks returns the demonstration task list, one entry per status and then some.
// A new slice is returned on every call.
func Tasks() []task.Task {
	return []task.Task{
		{Title: "Pick up groceries.", Status: task.StatusNotStarted},
		{Title: "Create TO-DO list.", Status: task.StatusCompleted},
		{Title: "Make a video", Status: task.StatusInProgress},
		{Title: "Upload the video", Status: task.StatusInProgress},
	}
}
