// Package testutil provides testing utilities for the taskboard project.
package testutil

import (
	"context"
	"errors"

	"github.com/pablasso/taskboard/internal/storage"
	"github.com/pablasso/taskboard/internal/task"
)

// ErrInjected is returned by FlakySlot when a failure is armed.
var ErrInjected = errors.New("injected storage failure")

// RecordingView records every render request.
type RecordingView struct {
	Lists   [][]task.Task
	Counts  []int
	Filters []task.Filter
}

func (v *RecordingView) RenderList(tasks []task.Task) {
	v.Lists = append(v.Lists, tasks)
}

func (v *RecordingView) RenderCount(n int) {
	v.Counts = append(v.Counts, n)
}

func (v *RecordingView) RenderFilterSelection(active task.Filter) {
	v.Filters = append(v.Filters, active)
}

// Renders returns how many full refreshes were recorded.
func (v *RecordingView) Renders() int {
	return len(v.Lists)
}

// LastList returns the most recently rendered list.
func (v *RecordingView) LastList() []task.Task {
	if len(v.Lists) == 0 {
		return nil
	}
	return v.Lists[len(v.Lists)-1]
}

// LastCount returns the most recently rendered count, or -1.
func (v *RecordingView) LastCount() int {
	if len(v.Counts) == 0 {
		return -1
	}
	return v.Counts[len(v.Counts)-1]
}

// LastFilter returns the most recently rendered filter selection.
func (v *RecordingView) LastFilter() task.Filter {
	if len(v.Filters) == 0 {
		return task.FilterAll
	}
	return v.Filters[len(v.Filters)-1]
}

// FlakySlot wraps a MemorySlot and fails writes (or reads) while armed.
type FlakySlot struct {
	*storage.MemorySlot
	FailSet bool
	FailGet bool
	Sets    int
}

// NewFlakySlot creates a FlakySlot over an empty MemorySlot.
func NewFlakySlot() *FlakySlot {
	return &FlakySlot{MemorySlot: storage.NewMemorySlot()}
}

func (s *FlakySlot) Get(ctx context.Context, key string) ([]byte, error) {
	if s.FailGet {
		return nil, ErrInjected
	}
	return s.MemorySlot.Get(ctx, key)
}

func (s *FlakySlot) Set(ctx context.Context, key string, value []byte) error {
	s.Sets++
	if s.FailSet {
		return ErrInjected
	}
	return s.MemorySlot.Set(ctx, key, value)
}

// Seed stores tasks under the default key without counting a Set.
func (s *FlakySlot) Seed(tasks []task.Task) error {
	return storage.NewAdapter(s.MemorySlot, "").Save(context.Background(), tasks)
}
