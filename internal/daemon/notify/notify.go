// Package notify shows desktop notifications for touchscreen changes.
package notify

import (
	"sync/atomic"

	"github.com/gen2brain/beeep"
	log "github.com/sirupsen/logrus"
)

// AppName is the title shown on every notification.
const AppName = "OneTouch"

// SendFunc delivers one notification.
type SendFunc func(title, message string) error

// Notifier sends notifications without blocking the caller.
type Notifier struct {
	enabled atomic.Bool
	send    SendFunc
}

// New creates a notifier backed by beeep.
func New(enabled bool) *Notifier {
	beeep.AppName = AppName
	return NewWithSender(enabled, func(title, message string) error {
		return beeep.Notify(title, message, "")
	})
}

// NewWithSender creates a notifier with a custom delivery function.
func NewWithSender(enabled bool, send SendFunc) *Notifier {
	n := &Notifier{send: send}
	n.enabled.Store(enabled)
	return n
}

// SetEnabled turns notifications on or off.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// Enabled reports whether notifications are shown.
func (n *Notifier) Enabled() bool {
	return n.enabled.Load()
}

// Show fires a notification in the background. Delivery errors are logged.
func (n *Notifier) Show(message string) {
	if !n.Enabled() {
		return
	}
	go func() {
		if err := n.send(AppName, message); err != nil {
			log.WithError(err).Debug("Notification not delivered")
		}
	}()
}
