package tray

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/onetouch-io/onetouch/internal/models"
)

// Notifier shows a desktop notification without blocking.
type Notifier interface {
	Show(message string)
}

// Presenter renders committed touchscreen states onto a View and announces
// transitions through a Notifier.
type Presenter struct {
	view     View
	notifier Notifier

	mu       sync.Mutex
	last     models.DeviceState
	rendered bool
}

// NewPresenter creates a presenter. notifier may be nil.
func NewPresenter(view View, notifier Notifier) *Presenter {
	return &Presenter{view: view, notifier: notifier}
}

// Render shows state. Rendering the state already shown does nothing; the
// first render draws without a notification.
func (p *Presenter) Render(state models.DeviceState) {
	p.mu.Lock()
	if p.rendered && p.last == state {
		p.mu.Unlock()
		return
	}
	announce := p.rendered
	p.last = state
	p.rendered = true
	p.mu.Unlock()

	p.view.SetIcon(Icon(state))
	p.view.SetTooltip(formatTooltip(state))
	p.view.SetStatus(state.Label())

	if announce && p.notifier != nil {
		p.notifier.Show(state.Label())
	}
}

// NotifyFailure announces a toggle that did not take effect.
func (p *Presenter) NotifyFailure(reason string) {
	if p.notifier != nil {
		p.notifier.Show("Failed to toggle (" + reason + ")")
	}
}

// Last returns the most recently rendered state.
func (p *Presenter) Last() (models.DeviceState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.rendered
}

// LogView writes tray updates to the log. Used when running without a tray.
type LogView struct{}

func (LogView) SetIcon([]byte) {}

func (LogView) SetTooltip(string) {}

func (LogView) SetStatus(text string) {
	log.WithField("status", text).Info("Touchscreen status")
}
