// Package device queries and changes the touchscreen's state through external
// OS commands.
package device

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/onetouch-io/onetouch/internal/models"
)

// Backend builds the OS-specific commands for one device management tool.
type Backend interface {
	Name() string
	StatusCommand(selector string) []string
	ApplyCommand(selector string, enable bool) []string
	// Healthy reports whether non-empty status output means the device is enabled.
	Healthy(output string) bool
}

// NewBackend returns the backend registered under name.
func NewBackend(name string) (Backend, error) {
	switch name {
	case models.BackendPowerShell:
		return PowerShell{}, nil
	case models.BackendXInput:
		return XInput{}, nil
	}
	return nil, fmt.Errorf("unknown device backend %q", name)
}

// PowerShell drives Windows PnP devices through the PnpDevice cmdlets.
type PowerShell struct{}

// healthyMarker is the PnP status reported for a started device.
const healthyMarker = "OK"

func (PowerShell) Name() string { return models.BackendPowerShell }

func (p PowerShell) StatusCommand(selector string) []string {
	script := fmt.Sprintf("(%s | Select-Object -First 1).Status", p.match(selector))
	return p.argv(script)
}

func (p PowerShell) ApplyCommand(selector string, enable bool) []string {
	verb := "Disable-PnpDevice"
	if enable {
		verb = "Enable-PnpDevice"
	}
	script := fmt.Sprintf("%s | %s -Confirm:$false", p.match(selector), verb)
	return p.argv(script)
}

func (PowerShell) Healthy(output string) bool {
	return strings.Contains(output, healthyMarker)
}

func (PowerShell) match(selector string) string {
	quoted := strings.ReplaceAll(selector, "'", "''")
	return fmt.Sprintf("Get-PnpDevice | Where-Object { $_.FriendlyName -like '%s' }", quoted)
}

func (PowerShell) argv(script string) []string {
	return []string{
		"powershell.exe",
		"-NoProfile",
		"-NonInteractive",
		"-WindowStyle", "Hidden",
		"-Command", script,
	}
}

// XInput drives X11 input devices with the xinput tool.
type XInput struct{}

var deviceEnabledProp = regexp.MustCompile(`(?m)^\s*Device Enabled \(\d+\):\s*1\s*$`)

func (XInput) Name() string { return models.BackendXInput }

func (XInput) StatusCommand(selector string) []string {
	return []string{"xinput", "list-props", selector}
}

func (XInput) ApplyCommand(selector string, enable bool) []string {
	verb := "disable"
	if enable {
		verb = "enable"
	}
	return []string{"xinput", verb, selector}
}

func (XInput) Healthy(output string) bool {
	return deviceEnabledProp.MatchString(output)
}
