package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pablasso/taskboard/internal/task"
)

// DefaultKey is the slot key the task list is stored under.
const DefaultKey = "tasks"

// Adapter loads and saves the task list in one slot key.
type Adapter struct {
	slot Slot
	key  string
}

// NewAdapter creates an Adapter for key in slot. An empty key uses DefaultKey.
func NewAdapter(slot Slot, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{slot: slot, key: key}
}

// Key returns the slot key.
func (a *Adapter) Key() string {
	return a.key
}

// Load reads the saved task list.
// Returns ErrAbsent when nothing is saved and a *DecodeError when the data is unreadable.
func (a *Adapter) Load(ctx context.Context) ([]task.Task, error) {
	data, err := a.slot.Get(ctx, a.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAbsent
		}
		return nil, &PersistenceError{Op: "load", Key: a.key, Err: err}
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &DecodeError{Key: a.key, Err: err}
	}
	if tasks == nil {
		// A saved "null" is unreadable, not absent.
		return nil, &DecodeError{Key: a.key, Err: fmt.Errorf("expected a JSON array")}
	}

	if err := validateTasks(tasks); err != nil {
		return nil, &DecodeError{Key: a.key, Err: err}
	}

	return tasks, nil
}

// Save writes the task list, replacing whatever was saved before.
func (a *Adapter) Save(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	if err := validateTasks(tasks); err != nil {
		return &PersistenceError{Op: "save", Key: a.key, Err: err}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return &PersistenceError{Op: "save", Key: a.key, Err: fmt.Errorf("failed to marshal tasks: %w", err)}
	}

	if err := a.slot.Set(ctx, a.key, data); err != nil {
		return &PersistenceError{Op: "save", Key: a.key, Err: err}
	}
	return nil
}

// validateTasks checks every title and status. A status missing from the
// saved entry decodes as "" and is rejected here.
func validateTasks(tasks []task.Task) error {
	for i, t := range tasks {
		if err := task.ValidateTitle(t.Title); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
		if !t.Status.Valid() {
			return fmt.Errorf("task %d: unknown status %q", i, t.Status)
		}
	}
	return nil
}

// Close closes the underlying slot.
func (a *Adapter) Close() error {
	return a.slot.Close()
}
