package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Backend names a Slot implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// ParseBackend validates and normalizes a backend value.
func ParseBackend(value string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(value))); b {
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
		return b, nil
	case "":
		return BackendFile, nil
	default:
		return "", fmt.Errorf("invalid storage backend %q (valid: file, sqlite, redis, memory)", value)
	}
}

// Options selects and configures a backend.
type Options struct {
	Backend    Backend
	Dir        string // data directory for the file backend
	Key        string
	SQLitePath string // defaults to <Dir>/taskboard.db
	RedisURL   string
}

// Open opens the configured slot and returns an Adapter over it.
func Open(ctx context.Context, opts Options) (*Adapter, error) {
	if err := validateKey(keyOrDefault(opts.Key)); err != nil {
		return nil, fmt.Errorf("invalid storage key: %w", err)
	}

	slot, err := openSlot(ctx, opts)
	if err != nil {
		return nil, err
	}
	return NewAdapter(slot, opts.Key), nil
}

func openSlot(ctx context.Context, opts Options) (Slot, error) {
	switch opts.Backend {
	case BackendFile, "":
		if opts.Dir == "" {
			return nil, fmt.Errorf("file backend requires a data directory")
		}
		return OpenFileSlot(opts.Dir)
	case BackendSQLite:
		path := opts.SQLitePath
		if path == "" {
			if opts.Dir == "" {
				return nil, fmt.Errorf("sqlite backend requires a database path or data directory")
			}
			path = filepath.Join(opts.Dir, "taskboard.db")
		}
		return OpenSQLiteSlot(ctx, path)
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis backend requires a URL")
		}
		return OpenRedisSlot(ctx, opts.RedisURL)
	case BackendMemory:
		return NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

func keyOrDefault(key string) string {
	if key == "" {
		return DefaultKey
	}
	return key
}
