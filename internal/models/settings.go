package models

import "time"

// Device backends.
const (
	BackendPowerShell = "powershell"
	BackendXInput     = "xinput"
)

// DefaultSelector matches the built-in Windows touchscreen HID device.
const DefaultSelector = "HID-compliant touch screen"

// DeviceConfig selects the touchscreen and how it is driven.
type DeviceConfig struct {
	Backend        string        `yaml:"backend"`  // "powershell" | "xinput"
	Selector       string        `yaml:"selector"` // friendly-name pattern
	QueryTimeout   time.Duration `yaml:"query_timeout"`
	CommandTimeout time.Duration `yaml:"command_timeout"`
}

// HotkeyConfig holds the global toggle shortcut.
type HotkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Combo   string `yaml:"combo"` // e.g. "ctrl+alt+t"
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Settings represents global application settings.
// This corresponds to ~/.onetouch/settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	Device        DeviceConfig        `yaml:"device"`
	Hotkey        HotkeyConfig        `yaml:"hotkey"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Device: DeviceConfig{
			Backend:        DefaultBackend(),
			Selector:       DefaultSelector,
			QueryTimeout:   10 * time.Second,
			CommandTimeout: 10 * time.Second,
		},
		Hotkey: HotkeyConfig{
			Enabled: true,
			Combo:   "ctrl+alt+t",
		},
		Notifications: NotificationsConfig{
			Enabled: true,
		},
	}
}

// ApplyDefaults fills zero values left by a partial settings file.
func (s *Settings) ApplyDefaults() {
	d := NewSettings()
	if s.Version == 0 {
		s.Version = d.Version
	}
	if s.Device.Backend == "" {
		s.Device.Backend = d.Device.Backend
	}
	if s.Device.Selector == "" {
		s.Device.Selector = d.Device.Selector
	}
	if s.Device.QueryTimeout <= 0 {
		s.Device.QueryTimeout = d.Device.QueryTimeout
	}
	if s.Device.CommandTimeout <= 0 {
		s.Device.CommandTimeout = d.Device.CommandTimeout
	}
	if s.Hotkey.Combo == "" {
		s.Hotkey.Combo = d.Hotkey.Combo
	}
}

// BackendDescription explains what a backend drives, for version and status
// output.
func BackendDescription(name string) string {
	switch name {
	case BackendPowerShell:
		return "Windows PnP device cmdlets, needs administrator"
	case BackendXInput:
		return "X11 xinput device properties"
	default:
		return "unknown backend"
	}
}
