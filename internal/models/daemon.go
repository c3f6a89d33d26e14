package models

import (
	"net"
	"strconv"
	"time"
)

// DaemonInfo represents the daemon connection information.
// This corresponds to ~/.onetouch/daemon.yaml.
type DaemonInfo struct {
	Version      int       `yaml:"version"`
	Host         string    `yaml:"host"`
	Port         int       `yaml:"port"`
	PID          int       `yaml:"pid"`
	BuildVersion string    `yaml:"build_version"`
	Tray         bool      `yaml:"tray"`
	StartedAt    time.Time `yaml:"started_at"`
}

// NewDaemonInfo creates a new daemon info with current values.
func NewDaemonInfo(host string, port, pid int) *DaemonInfo {
	return &DaemonInfo{
		Version:   1,
		Host:      host,
		Port:      port,
		PID:       pid,
		StartedAt: time.Now().UTC(),
	}
}

// Address returns the host:port the daemon's RPC server listens on.
func (d *DaemonInfo) Address() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}
