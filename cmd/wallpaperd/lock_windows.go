//go:build windows

package main

import (
	"errors"
	"fmt"

	"github.com/dixieflatline76/wallpaperd/util/log"
	"golang.org/x/sys/windows"
)

// instanceLock is a named mutex.
type instanceLock struct {
	mutex windows.Handle
}

// acquireLock tries to take the single-instance lock called name. It returns false
// without an error when another process already holds it.
func acquireLock(name string) (*instanceLock, bool, error) {
	namePtr, err := windows.UTF16PtrFromString(name + "_SingleInstanceMutex")
	if err != nil {
		return nil, false, err
	}

	mutex, err := windows.CreateMutex(nil, false, namePtr)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		windows.CloseHandle(mutex)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create mutex: %w", err)
	}
	return &instanceLock{mutex: mutex}, true, nil
}

// release closes the mutex handle.
func (l *instanceLock) release() {
	if l == nil || l.mutex == 0 {
		return
	}
	if err := windows.CloseHandle(l.mutex); err != nil {
		log.Printf("Failed to close mutex handle: %v", err)
	}
	l.mutex = 0
}
