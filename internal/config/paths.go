// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global OneTouch directory.
	GlobalDirName = ".onetouch"

	// LogsDirName is the name of the logs directory.
	LogsDirName = "logs"

	// HomeEnv overrides the global directory location (used by tests and
	// portable installs).
	HomeEnv = "ONETOUCH_HOME"
)

// File names
const (
	DaemonFileName   = "daemon.yaml"
	SettingsFileName = "settings.yaml"
	DaemonLogName    = "onetouchd.log"
)

// GlobalDir returns the path to the global OneTouch directory (~/.onetouch/).
func GlobalDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalDaemonFile returns the path to the daemon.yaml file.
func GlobalDaemonFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonFileName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalLogsDir returns the path to the logs directory.
func GlobalLogsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsDirName), nil
}

// DaemonLogFile returns the path the tray daemon writes its log to.
func DaemonLogFile() (string, error) {
	dir, err := GlobalLogsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonLogName), nil
}

// EnsureGlobalDir creates the global OneTouch directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureGlobalLogsDir creates the global logs directory if it doesn't exist.
func EnsureGlobalLogsDir() error {
	dir, err := GlobalLogsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
