package storage

import (
	"errors"
	"fmt"
)

// ErrAbsent is returned by Adapter.Load when nothing has been saved yet.
var ErrAbsent = errors.New("no saved tasks")

// PersistenceError reports a failed read or write of the slot.
type PersistenceError struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// DecodeError reports saved data that could not be read back.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse saved tasks in %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
