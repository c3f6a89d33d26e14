package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/onetouch-io/onetouch/internal/models"
)

// LoadSettings loads the global settings from ~/.onetouch/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	settings.ApplyDefaults()
	return settings, nil
}

// SaveSettings saves the global settings to ~/.onetouch/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// SettingKeys lists the keys accepted by SetSetting, in display order.
var SettingKeys = []string{
	"device.backend",
	"device.selector",
	"device.query_timeout",
	"device.command_timeout",
	"hotkey.enabled",
	"hotkey.combo",
	"notifications.enabled",
}

// SetSetting assigns a single dotted key from its string form.
func SetSetting(s *models.Settings, key, value string) error {
	switch key {
	case "device.backend":
		switch value {
		case models.BackendPowerShell, models.BackendXInput:
			s.Device.Backend = value
		default:
			return fmt.Errorf("unknown backend %q (want %s or %s)", value, models.BackendPowerShell, models.BackendXInput)
		}
	case "device.selector":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("selector must not be empty")
		}
		s.Device.Selector = value
	case "device.query_timeout", "device.command_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
		if key == "device.query_timeout" {
			s.Device.QueryTimeout = d
		} else {
			s.Device.CommandTimeout = d
		}
	case "hotkey.enabled", "notifications.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		if key == "hotkey.enabled" {
			s.Hotkey.Enabled = b
		} else {
			s.Notifications.Enabled = b
		}
	case "hotkey.combo":
		combo, err := models.ParseHotkey(value)
		if err != nil {
			return err
		}
		s.Hotkey.Combo = combo.Text
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// GetSetting returns the string form of a dotted key.
func GetSetting(s *models.Settings, key string) (string, error) {
	switch key {
	case "device.backend":
		return s.Device.Backend, nil
	case "device.selector":
		return s.Device.Selector, nil
	case "device.query_timeout":
		return s.Device.QueryTimeout.String(), nil
	case "device.command_timeout":
		return s.Device.CommandTimeout.String(), nil
	case "hotkey.enabled":
		return strconv.FormatBool(s.Hotkey.Enabled), nil
	case "hotkey.combo":
		return s.Hotkey.Combo, nil
	case "notifications.enabled":
		return strconv.FormatBool(s.Notifications.Enabled), nil
	}
	return "", fmt.Errorf("unknown setting %q", key)
}
