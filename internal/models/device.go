package models

// DeviceState is the observed state of the touchscreen.
type DeviceState int

// Device states. The zero value is Unknown.
const (
	DeviceUnknown DeviceState = iota
	DeviceEnabled
	DeviceDisabled
)

// String returns the lowercase name used in logs, settings and RPC payloads.
func (s DeviceState) String() string {
	switch s {
	case DeviceEnabled:
		return "enabled"
	case DeviceDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Label returns the human-readable label shown in the tray and notifications.
func (s DeviceState) Label() string {
	switch s {
	case DeviceEnabled:
		return "Touchscreen Enabled"
	case DeviceDisabled:
		return "Touchscreen Disabled"
	default:
		return "Touchscreen Unknown"
	}
}

// Known reports whether the state is Enabled or Disabled.
func (s DeviceState) Known() bool {
	return s == DeviceEnabled || s == DeviceDisabled
}

// Opposite returns the toggled state. Unknown has no opposite and maps to itself.
func (s DeviceState) Opposite() DeviceState {
	switch s {
	case DeviceEnabled:
		return DeviceDisabled
	case DeviceDisabled:
		return DeviceEnabled
	default:
		return DeviceUnknown
	}
}

// ParseDeviceState parses the output of DeviceState.String.
func ParseDeviceState(s string) DeviceState {
	switch s {
	case "enabled":
		return DeviceEnabled
	case "disabled":
		return DeviceDisabled
	default:
		return DeviceUnknown
	}
}

// CommandOutcome is the raw result of an enable/disable command, before it is
// cross-checked against a fresh status query.
type CommandOutcome int

// Command outcomes.
const (
	OutcomeFailure CommandOutcome = iota
	OutcomeSuccess
	OutcomeAmbiguous
)

func (o CommandOutcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeAmbiguous:
		return "ambiguous"
	default:
		return "failure"
	}
}
