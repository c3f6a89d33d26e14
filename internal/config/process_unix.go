//go:build !windows

package config

import (
	"os"
	"syscall"
)

// processAlive sends signal 0 to pid.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		// On Unix, FindProcess always succeeds
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
