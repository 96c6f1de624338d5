package components

import (
	"fmt"
	"strings"

	"github.com/pablasso/taskboard/internal/task"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Progress renders how much of the list is completed, like: ■■■■□□□□ 2/4 done
type Progress struct {
	Done  int
	Total int
	Width int // character width of the bar portion
}

// NewProgress counts completed tasks in tasks.
func NewProgress(tasks []task.Task, width int) Progress {
	done := 0
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			done++
		}
	}
	return Progress{Done: done, Total: len(tasks), Width: width}
}

// View returns the rendered progress bar string.
func (p Progress) View() string {
	if p.Total <= 0 {
		return "nothing to do"
	}

	done := min(max(p.Done, 0), p.Total)
	summary := fmt.Sprintf("%d/%d done", done, p.Total)
	if p.Width <= 0 {
		return summary
	}

	filled := done * p.Width / p.Total
	return strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, p.Width-filled) + " " + summary
}
