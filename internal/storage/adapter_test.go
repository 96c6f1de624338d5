package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablasso/taskboard/internal/task"
)

// failingSlot fails every call with err.
type failingSlot struct {
	err error
}

func (s failingSlot) Get(ctx context.Context, key string) ([]byte, error)    { return nil, s.err }
func (s failingSlot) Set(ctx context.Context, key string, value []byte) error { return s.err }
func (s failingSlot) Close() error                                            { return nil }

func sampleTasks() []task.Task {
	return []task.Task{
		{Title: "Pick up groceries.", Status: task.StatusNotStarted},
		{Title: "Create TO-DO list.", Status: task.StatusCompleted},
		{Title: "  untrimmed title ", Status: task.StatusInProgress},
	}
}

// openSlots returns every backend that can run without external services.
func openSlots(t *testing.T) map[string]Slot {
	t.Helper()
	ctx := context.Background()

	fileSlot, err := OpenFileSlot(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	sqliteSlot, err := OpenSQLiteSlot(ctx, filepath.Join(t.TempDir(), "taskboard.db"))
	require.NoError(t, err)

	slots := map[string]Slot{
		"memory": NewMemorySlot(),
		"file":   fileSlot,
		"sqlite": sqliteSlot,
	}
	t.Cleanup(func() {
		for _, s := range slots {
			s.Close()
		}
	})
	return slots
}

func TestAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, slot := range openSlots(t) {
		t.Run(name, func(t *testing.T) {
			a := NewAdapter(slot, "")

			for _, list := range [][]task.Task{sampleTasks(), {}, sampleTasks()[:1]} {
				require.NoError(t, a.Save(ctx, list))

				got, err := a.Load(ctx)
				require.NoError(t, err)
				assert.Equal(t, list, got)
			}
		})
	}
}

func TestAdapter_LoadAbsent(t *testing.T) {
	ctx := context.Background()

	for name, slot := range openSlots(t) {
		t.Run(name, func(t *testing.T) {
			_, err := NewAdapter(slot, "never-saved").Load(ctx)
			assert.ErrorIs(t, err, ErrAbsent)
		})
	}
}

func TestAdapter_SaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	a := NewAdapter(slot, "")

	require.NoError(t, a.Save(ctx, nil))

	raw, err := slot.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	got, err := a.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAdapter_PersistedFormat(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()

	require.NoError(t, NewAdapter(slot, "").Save(ctx, sampleTasks()[:2]))

	raw, err := slot.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"title":"Pick up groceries.","status":"Not-Started"},{"title":"Create TO-DO list.","status":"Completed"}]`,
		string(raw))
}

func TestAdapter_LoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"object instead of array", `{"title":"x"}`},
		{"null", `null`},
		{"unknown status", `[{"title":"x","status":"Done"}]`},
		{"missing status", `[{"title":"x"}]`},
		{"empty status", `[{"title":"x","status":""}]`},
		{"blank title", `[{"title":"   ","status":"Completed"}]`},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := NewMemorySlot()
			require.NoError(t, slot.Set(ctx, DefaultKey, []byte(tt.data)))

			_, err := NewAdapter(slot, "").Load(ctx)
			require.Error(t, err)

			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr), "expected *DecodeError, got %T", err)
			assert.NotErrorIs(t, err, ErrAbsent)
		})
	}
}

func TestAdapter_SaveRejectsInvalidTasks(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	a := NewAdapter(slot, "")

	for _, tasks := range [][]task.Task{
		{{Title: "x"}},
		{{Title: "x", Status: "Done"}},
		{{Title: " ", Status: task.StatusCompleted}},
	} {
		err := a.Save(ctx, tasks)
		var persistErr *PersistenceError
		require.True(t, errors.As(err, &persistErr), "expected *PersistenceError, got %v", err)
		assert.Equal(t, "save", persistErr.Op)
	}

	_, err := slot.Get(ctx, DefaultKey)
	assert.ErrorIs(t, err, ErrNotFound, "nothing is written when validation fails")
}

func TestAdapter_SlotFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("quota exceeded")
	a := NewAdapter(failingSlot{err: boom}, "")

	err := a.Save(ctx, sampleTasks())
	var persistErr *PersistenceError
	require.True(t, errors.As(err, &persistErr))
	assert.Equal(t, "save", persistErr.Op)
	assert.Equal(t, "tasks", persistErr.Key)
	assert.ErrorIs(t, err, boom)

	_, err = a.Load(ctx)
	require.True(t, errors.As(err, &persistErr))
	assert.Equal(t, "load", persistErr.Op)
	assert.ErrorIs(t, err, boom)
}

func TestFileSlot_WritesKeyFileAtomically(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	slot, err := OpenFileSlot(dir)
	require.NoError(t, err)
	defer slot.Close()

	require.NoError(t, slot.Set(ctx, "tasks", []byte(`[]`)))

	data, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp.", "temp file should be renamed away")
	}
}

func TestFileSlot_SecondOpenIsRejected(t *testing.T) {
	dir := t.TempDir()

	first, err := OpenFileSlot(dir)
	require.NoError(t, err)

	_, err = OpenFileSlot(dir)
	require.Error(t, err)

	require.NoError(t, first.Close())

	again, err := OpenFileSlot(dir)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestSlots_RejectInvalidKeys(t *testing.T) {
	ctx := context.Background()

	for name, slot := range openSlots(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "../escape", `a\b`, ".."} {
				_, err := slot.Get(ctx, key)
				assert.Error(t, err, "key %q", key)
				assert.Error(t, slot.Set(ctx, key, []byte("x")), "key %q", key)
			}
		})
	}
}

func TestSQLiteSlot_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "taskboard.db")

	slot, err := OpenSQLiteSlot(ctx, path)
	require.NoError(t, err)
	require.NoError(t, slot.Set(ctx, "tasks", []byte(`[1]`)))
	require.NoError(t, slot.Set(ctx, "tasks", []byte(`[2]`)))
	require.NoError(t, slot.Close())

	reopened, err := OpenSQLiteSlot(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, "[2]", string(got))
}
