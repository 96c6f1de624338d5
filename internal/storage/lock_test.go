package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func readLockPID(t *testing.T, lockPath string) int {
	t.Helper()

	data, err := os.ReadFile(lockPath)
	if err != nil {
		t.Fatalf("failed to read lock file: %v", err)
	}

	pid, err := strconv.Atoi(string(data))
	if err != nil {
		t.Fatalf("failed to parse PID from lock file: %v", err)
	}
	return pid
}

func TestSlotLock_Acquire_Success(t *testing.T) {
	tmpDir := t.TempDir()

	lock := NewSlotLock(tmpDir)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pid := readLockPID(t, filepath.Join(tmpDir, lockFileName)); pid != os.Getpid() {
		t.Errorf("lock file PID mismatch: got %d, want %d", pid, os.Getpid())
	}
}

func TestSlotLock_Acquire_AlreadyLocked(t *testing.T) {
	tmpDir := t.TempDir()

	lockPath := filepath.Join(tmpDir, lockFileName)
	if err := os.WriteFile(lockPath, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		t.Fatalf("failed to create lock file: %v", err)
	}

	lock := NewSlotLock(tmpDir)
	err := lock.Acquire()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "already open") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSlotLock_Acquire_StaleLock(t *testing.T) {
	tmpDir := t.TempDir()

	// PID 99999999 is unlikely to exist
	lockPath := filepath.Join(tmpDir, lockFileName)
	if err := os.WriteFile(lockPath, []byte("99999999"), 0644); err != nil {
		t.Fatalf("failed to create lock file: %v", err)
	}

	lock := NewSlotLock(tmpDir)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pid := readLockPID(t, lockPath); pid != os.Getpid() {
		t.Errorf("lock file PID mismatch: got %d, want %d", pid, os.Getpid())
	}
}

func TestSlotLock_Acquire_InvalidLockFile(t *testing.T) {
	tmpDir := t.TempDir()

	lockPath := filepath.Join(tmpDir, lockFileName)
	if err := os.WriteFile(lockPath, []byte("not-a-pid"), 0644); err != nil {
		t.Fatalf("failed to create lock file: %v", err)
	}

	lock := NewSlotLock(tmpDir)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pid := readLockPID(t, lockPath); pid != os.Getpid() {
		t.Errorf("lock file PID mismatch: got %d, want %d", pid, os.Getpid())
	}
}

func TestSlotLock_Release(t *testing.T) {
	tmpDir := t.TempDir()

	lock := NewSlotLock(tmpDir)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("failed to acquire lock: %v", err)
	}

	if _, err := os.Stat(lock.Path()); err != nil {
		t.Fatalf("lock file should exist: %v", err)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(lock.Path()); !os.IsNotExist(err) {
		t.Error("lock file should be removed after release")
	}
}

func TestSlotLock_Release_NotHeld(t *testing.T) {
	lock := NewSlotLock(t.TempDir())

	if err := lock.Release(); err != nil {
		t.Errorf("unexpected error when releasing unheld lock: %v", err)
	}
}

func TestSlotLock_AcquireAfterRelease(t *testing.T) {
	tmpDir := t.TempDir()
	lock := NewSlotLock(tmpDir)

	if err := lock.Acquire(); err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if err := lock.Acquire(); err != nil {
		t.Fatalf("second acquire failed: %v", err)
	}
}
