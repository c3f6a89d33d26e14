//go:build linux || darwin || windows

// Package hotkey turns a global keyboard shortcut into toggle requests.
package hotkey

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.design/x/hotkey"
)

// Listener owns one registered global hotkey and calls onPress for every
// key-down. Each press runs on its own goroutine so a slow toggle never holds
// up the keyboard hook.
type Listener struct {
	onPress func()

	mu     sync.Mutex
	hk     *hotkey.Hotkey
	combo  string
	cancel context.CancelFunc
	done   chan struct{}
}

// NewListener creates a listener that is not bound to any key yet.
func NewListener(onPress func()) *Listener {
	return &Listener{onPress: onPress}
}

// Combo returns the currently bound shortcut, or "" when unbound.
func (l *Listener) Combo() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.combo
}

// Bind registers combo, replacing any previous binding. Binding the combo that
// is already registered is a no-op.
func (l *Listener) Bind(combo string) error {
	parsed, err := ParseCombo(combo)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.hk != nil && l.combo == parsed.Text {
		return nil
	}
	l.unbindLocked()

	hk := hotkey.New(parsed.Mods, parsed.Key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register hotkey %s: %w", parsed.Text, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	l.hk = hk
	l.combo = parsed.Text
	l.cancel = cancel
	l.done = done

	go l.listen(ctx, hk, done)
	log.WithField("hotkey", parsed.Text).Info("Hotkey registered")
	return nil
}

func (l *Listener) listen(ctx context.Context, hk *hotkey.Hotkey, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			log.Debug("Hotkey pressed")
			go l.onPress()
		}
	}
}

// Unbind releases the hotkey if one is registered.
func (l *Listener) Unbind() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.unbindLocked()
}

func (l *Listener) unbindLocked() {
	if l.hk == nil {
		return
	}
	l.cancel()
	<-l.done
	if err := l.hk.Unregister(); err != nil {
		log.WithError(err).WithField("hotkey", l.combo).Warn("Failed to unregister hotkey")
	}
	log.WithField("hotkey", l.combo).Info("Hotkey released")
	l.hk = nil
	l.combo = ""
	l.cancel = nil
	l.done = nil
}
