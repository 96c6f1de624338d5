package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"", BackendFile, false},
		{"file", BackendFile, false},
		{" SQLite ", BackendSQLite, false},
		{"redis", BackendRedis, false},
		{"memory", BackendMemory, false},
		{"postgres", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestOpen_File(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	a, err := Open(context.Background(), Options{Backend: BackendFile, Dir: dir})
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, DefaultKey, a.Key())
	_, err = os.Stat(filepath.Join(dir, lockFileName))
	assert.NoError(t, err, "file backend should hold the lock while open")
}

func TestOpen_SQLiteDefaultsPathUnderDir(t *testing.T) {
	dir := t.TempDir()

	a, err := Open(context.Background(), Options{Backend: BackendSQLite, Dir: dir, Key: "board"})
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "board", a.Key())
	_, err = os.Stat(filepath.Join(dir, "taskboard.db"))
	assert.NoError(t, err)
}

func TestOpen_Memory(t *testing.T) {
	a, err := Open(context.Background(), Options{Backend: BackendMemory})
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Load(context.Background())
	assert.ErrorIs(t, err, ErrAbsent)
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, Options{Backend: BackendFile})
	assert.ErrorContains(t, err, "requires a data directory")

	_, err = Open(ctx, Options{Backend: BackendSQLite})
	assert.ErrorContains(t, err, "requires a database path")

	_, err = Open(ctx, Options{Backend: BackendRedis})
	assert.ErrorContains(t, err, "requires a URL")

	_, err = Open(ctx, Options{Backend: BackendMemory, Key: "../x"})
	assert.ErrorContains(t, err, "invalid storage key")

	_, err = Open(ctx, Options{Backend: "etcd"})
	assert.ErrorContains(t, err, "unknown storage backend")
}
