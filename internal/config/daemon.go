package config

import (
	"os"

	"github.com/onetouch-io/onetouch/internal/models"
)

// LoadDaemonInfo loads the daemon connection info from ~/.onetouch/daemon.yaml.
// Returns nil if the file doesn't exist.
func LoadDaemonInfo() (*models.DaemonInfo, error) {
	path, err := GlobalDaemonFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.DaemonInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveDaemonInfo saves the daemon connection info to ~/.onetouch/daemon.yaml.
func SaveDaemonInfo(info *models.DaemonInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalDaemonFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveDaemonInfo removes the daemon.yaml file.
func RemoveDaemonInfo() error {
	path, err := GlobalDaemonFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsDaemonRunning checks if onetouchd is still running.
// Returns true if daemon.yaml exists, names a port the CLI can dial, and the
// PID is alive. Anything else is a leftover from a crashed daemon and is
// removed so the next start is not refused.
func IsDaemonRunning() (bool, *models.DaemonInfo, error) {
	info, err := LoadDaemonInfo()
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}

	if info.Port <= 0 || info.Port > 65535 || info.Host == "" {
		_ = RemoveDaemonInfo()
		return false, info, nil
	}

	if !processAlive(info.PID) {
		// Process doesn't exist, clean up stale file
		_ = RemoveDaemonInfo()
		return false, info, nil
	}

	return true, info, nil
}
