//go:build !windows

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// instanceLock is an exclusive flock on a file in the temp directory.
type instanceLock struct {
	file *os.File
}

// acquireLock tries to take the single-instance lock called name. It returns false
// without an error when another process already holds it.
func acquireLock(name string) (*instanceLock, bool, error) {
	lockFilePath := filepath.Join(os.TempDir(), name+".lock")
	file, err := os.OpenFile(lockFilePath, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return &instanceLock{file: file}, true, nil
}

// release drops the lock and removes the lock file.
func (l *instanceLock) release() {
	if l == nil || l.file == nil {
		return
	}
	// Best effort; closing the file drops the lock anyway.
	unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	l.file.Close()
	os.Remove(l.file.Name())
	l.file = nil
}
