// Package storage persists the task list in a single durable key-value slot.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Slot.Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

// KeyMaxLength is the maximum length of a slot key.
const KeyMaxLength = 256

// Slot is a durable key-value store.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// validateKey rejects keys every backend cannot represent safely.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if len(key) > KeyMaxLength {
		return fmt.Errorf("key exceeds %d characters", KeyMaxLength)
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
