package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// lockFilePath keeps two watchers from racing for the same volume.
var lockFilePath = filepath.Join(os.TempDir(), "gesturebackup.lock")

// acquireInstanceLock fails if another live gesturebackup process holds the
// lock, and removes a lock left behind by a dead one.
func acquireInstanceLock() error {
	if lockContent, err := os.ReadFile(lockFilePath); err == nil {
		pid := strings.TrimSpace(string(lockContent))
		if pidInt, err := strconv.Atoi(pid); err == nil && pidInt != os.Getpid() {
			if process, err := os.FindProcess(pidInt); err == nil {
				// signal 0 only checks that the process exists
				if err := process.Signal(syscall.Signal(0)); err == nil {
					return fmt.Errorf("another gesturebackup process is already running (PID: %s); remove %s if it is not", pid, lockFilePath)
				}
			}
		}
		os.Remove(lockFilePath)
	}

	f, err := os.OpenFile(lockFilePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create instance lock: %w", err)
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%d", os.Getpid())
	return err
}

func releaseInstanceLock() {
	os.Remove(lockFilePath)
}
