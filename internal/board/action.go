package board

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pablasso/taskboard/internal/task"
)

// Action is a user intent sent to the store through Dispatch.
type Action interface {
	isAction()
}

// AddTask creates a task.
type AddTask struct {
	Title string
}

// DeleteTask removes a task.
type DeleteTask struct {
	ID uuid.UUID
}

// AdvanceTask moves a task one status forward.
type AdvanceTask struct {
	ID uuid.UUID
}

// CompleteAll marks every task completed.
type CompleteAll struct{}

// ClearCompleted removes completed tasks.
type ClearCompleted struct{}

// SelectFilter changes the active filter.
type SelectFilter struct {
	Filter task.Filter
}

func (AddTask) isAction()        {}
func (DeleteTask) isAction()     {}
func (AdvanceTask) isAction()    {}
func (CompleteAll) isAction()    {}
func (ClearCompleted) isAction() {}
func (SelectFilter) isAction()   {}

// Dispatch applies a.
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	switch a := a.(type) {
	case AddTask:
		_, err := s.Add(ctx, a.Title)
		return err
	case DeleteTask:
		return s.Delete(ctx, a.ID)
	case AdvanceTask:
		return s.Advance(ctx, a.ID)
	case CompleteAll:
		return s.CompleteAll(ctx)
	case ClearCompleted:
		return s.ClearCompleted(ctx)
	case SelectFilter:
		return s.SetFilter(a.Filter)
	default:
		return fmt.Errorf("unknown action %T", a)
	}
}
