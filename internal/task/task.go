// Package task defines the task model, the status progression and status filters.
package task

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Status is the lifecycle stage of a task.
type Status string

// Status values. The literals are the persisted format and must not change.
const (
	StatusNotStarted Status = "Not-Started"
	StatusInProgress Status = "In-progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every status in progression order.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalJSON rejects unknown status literals.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !Status(raw).Valid() {
		return fmt.Errorf("unknown status %q", raw)
	}
	*s = Status(raw)
	return nil
}

// Task is a single entry on the board.
// ID is an in-memory handle assigned by the store and is never persisted.
type Task struct {
	ID     uuid.UUID `json:"-"`
	Title  string    `json:"title"`
	Status Status    `json:"status"`
}
