// Package board owns the task list: mutations, persistence, the active filter and
// render notifications.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pablasso/taskboard/internal/demo"
	"github.com/pablasso/taskboard/internal/storage"
	"github.com/pablasso/taskboard/internal/task"
)

// Persister loads and saves the whole task list.
type Persister interface {
	Load(ctx context.Context) ([]task.Task, error)
	Save(ctx context.Context, tasks []task.Task) error
}

// Store is the single owner of the task list.
//
// A Store is not safe for concurrent use. Callers confine it to one goroutine,
// which keeps the in-memory list and the saved copy identical after every call.
type Store struct {
	persister Persister
	view      View
	logger    *slog.Logger
	policy    task.Policy

	tasks  []task.Task
	filter task.Filter
	seeded bool
}

// Option configures a Store.
type Option func(*Store)

// WithView attaches the renderer notified after every change.
func WithView(v View) Option {
	return func(s *Store) {
		if v != nil {
			s.view = v
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPolicy sets what advancing a completed task does.
func WithPolicy(p task.Policy) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// New loads the saved list and renders it once.
// When nothing has been saved yet the demonstration list is saved and used instead.
// Unreadable data is an error; it is never replaced by the demonstration list.
func New(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: p,
		view:      NopView{},
		logger:    slog.New(slog.DiscardHandler),
		policy:    task.PolicyStop,
		filter:    task.FilterAll,
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := p.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrAbsent):
		tasks = demo.Tasks()
		if err := p.Save(ctx, tasks); err != nil {
			return nil, fmt.Errorf("failed to save demonstration tasks: %w", err)
		}
		s.seeded = true
		s.logger.Info("seeded demonstration tasks", "count", len(tasks))
	case err != nil:
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	for i := range tasks {
		tasks[i].ID = uuid.New()
	}
	s.tasks = tasks
	s.logger.Debug("loaded tasks", "count", len(tasks))

	s.refresh()
	return s, nil
}

// Seeded reports whether the demonstration list was installed by New.
func (s *Store) Seeded() bool {
	return s.seeded
}

// Tasks returns a copy of the full list in insertion order.
func (s *Store) Tasks() []task.Task {
	return append([]task.Task(nil), s.tasks...)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Find returns the task with id.
func (s *Store) Find(id uuid.UUID) (task.Task, bool) {
	if i := indexOf(s.tasks, id); i >= 0 {
		return s.tasks[i], true
	}
	return task.Task{}, false
}

// Add appends a not-started task with title as given.
// Blank titles fail with a *task.ValidationError and change nothing.
func (s *Store) Add(ctx context.Context, title string) (task.Task, error) {
	if err := task.ValidateTitle(title); err != nil {
		s.logger.Debug("rejected task", "error", err)
		return task.Task{}, err
	}

	created := task.Task{ID: uuid.New(), Title: title, Status: task.StatusNotStarted}
	err := s.commit(ctx, "add", func(tasks []task.Task) []task.Task {
		return append(tasks, created)
	})
	if err != nil {
		return task.Task{}, err
	}
	return created, nil
}

// Delete removes the task with id. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	return s.commit(ctx, "delete", func(tasks []task.Task) []task.Task {
		if i := indexOf(tasks, id); i >= 0 {
			return append(tasks[:i], tasks[i+1:]...)
		}
		return tasks
	})
}

// Advance moves the task with id one status forward. Unknown ids are a no-op.
func (s *Store) Advance(ctx context.Context, id uuid.UUID) error {
	return s.commit(ctx, "advance", func(tasks []task.Task) []task.Task {
		if i := indexOf(tasks, id); i >= 0 {
			tasks[i].Status = task.AdvanceWith(s.policy, tasks[i].Status)
		}
		return tasks
	})
}

// CompleteAll marks every task completed.
func (s *Store) CompleteAll(ctx context.Context) error {
	return s.commit(ctx, "complete_all", func(tasks []task.Task) []task.Task {
		for i := range tasks {
			tasks[i].Status = task.StatusCompleted
		}
		return tasks
	})
}

// ClearCompleted removes every completed task; the rest keep their order.
func (s *Store) ClearCompleted(ctx context.Context) error {
	return s.commit(ctx, "clear_completed", func(tasks []task.Task) []task.Task {
		kept := tasks[:0]
		for _, t := range tasks {
			if t.Status != task.StatusCompleted {
				kept = append(kept, t)
			}
		}
		return kept
	})
}

// commit applies mutate to a copy of the list, saves it, and only then replaces the
// in-memory list and refreshes the view. A failed save leaves the store unchanged.
func (s *Store) commit(ctx context.Context, op string, mutate func([]task.Task) []task.Task) error {
	next := mutate(s.Tasks())
	if next == nil {
		next = []task.Task{}
	}

	if err := s.persister.Save(ctx, next); err != nil {
		s.logger.Error("failed to save tasks", "op", op, "error", err)
		return err
	}

	s.logger.Debug("saved tasks", "op", op, "count", len(next))
	s.tasks = next
	s.refresh()
	return nil
}

func indexOf(tasks []task.Task, id uuid.UUID) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
