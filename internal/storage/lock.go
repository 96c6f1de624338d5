package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

const lockFileName = "taskboard.lock"

// SlotLock manages a lock file that keeps two processes from writing the same data directory.
type SlotLock struct {
	path string
}

// NewSlotLock creates a lock manager for the given data directory.
func NewSlotLock(dir string) *SlotLock {
	return &SlotLock{
		path: filepath.Join(dir, lockFileName),
	}
}

// Path returns the lock file path.
func (l *SlotLock) Path() string {
	return l.path
}

// Acquire attempts to acquire the lock.
// Returns an error if the lock is held by another running process.
// Stale locks from dead processes are removed.
func (l *SlotLock) Acquire() error {
	err := l.create()
	if err == nil {
		return nil
	}
	if !os.IsExist(err) {
		return fmt.Errorf("failed to create lock file: %w", err)
	}

	data, readErr := os.ReadFile(l.path)
	if readErr != nil {
		return fmt.Errorf("failed to read existing lock file: %w", readErr)
	}

	pid, parseErr := strconv.Atoi(strings.TrimSpace(string(data)))
	if parseErr == nil && pid > 0 && processExists(pid) {
		if pid == os.Getpid() {
			return fmt.Errorf("task list is already open in this process")
		}
		return fmt.Errorf("task list is in use by another process (PID %d)", pid)
	}

	// Invalid PID or dead process: the lock is stale.
	if removeErr := os.Remove(l.path); removeErr != nil && !os.IsNotExist(removeErr) {
		return fmt.Errorf("failed to remove stale lock file: %w", removeErr)
	}

	// Only one retry, to avoid looping against a competing process.
	if err := l.create(); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("lock acquired by another process during retry")
		}
		return fmt.Errorf("failed to create lock file on retry: %w", err)
	}
	return nil
}

func (l *SlotLock) create() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	_, writeErr := fmt.Fprintf(f, "%d", os.Getpid())
	f.Close()
	if writeErr != nil {
		os.Remove(l.path)
		return fmt.Errorf("failed to write lock file: %w", writeErr)
	}
	return nil
}

// Release removes the lock file. Releasing twice is not an error.
func (l *SlotLock) Release() error {
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// processExists checks if a process with the given PID is running.
// Signal 0 checks for existence without delivering a signal.
func processExists(pid int) bool {
	if pid == os.Getpid() {
		return true
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
