//go:build !linux && !darwin && !windows

package hotkey

import "errors"

// ErrUnsupported is returned by Bind on platforms without global hotkeys.
var ErrUnsupported = errors.New("global hotkeys are not supported on this platform")

// Listener is a no-op on this platform. The tray and CLI still toggle.
type Listener struct{}

func NewListener(onPress func()) *Listener {
	return &Listener{}
}

func (l *Listener) Combo() string {
	return ""
}

func (l *Listener) Bind(combo string) error {
	return ErrUnsupported
}

func (l *Listener) Unbind() {}
