// Package watcher handles file system watching for the daemon.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/onetouch-io/onetouch/internal/config"
)

// EventType represents the type of file system event.
type EventType int

// Event types for file system changes.
const (
	EventSettingsChanged EventType = iota
	EventSettingsRemoved
)

func (t EventType) String() string {
	switch t {
	case EventSettingsChanged:
		return "settings-changed"
	case EventSettingsRemoved:
		return "settings-removed"
	}
	return "unknown"
}

// DebounceInterval coalesces bursts of writes to the same file.
const DebounceInterval = 100 * time.Millisecond

// Event represents a file system change event.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches the OneTouch directory for settings changes.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	dir        string
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex

	// sendMu guards eventsChan against a send racing Stop's close.
	sendMu sync.RWMutex
	closed bool
}

// New creates a watcher for dir. An empty dir means the global OneTouch
// directory.
func New(dir string) (*Watcher, error) {
	if dir == "" {
		var err error
		dir, err = config.GlobalDir()
		if err != nil {
			return nil, err
		}
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		dir:        dir,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		debounce:   make(map[string]*time.Timer),
	}

	return w, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts the watcher. The settings file itself is not watched directly:
// atomic saves replace it, so the directory is watched instead.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}

	go w.processEvents()

	log.WithField("dir", w.dir).Debug("Watching settings directory")
	return nil
}

// Stop stops the watcher and closes the Events channel.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		for path, timer := range w.debounce {
			timer.Stop()
			delete(w.debounce, path)
		}
		w.debounceMu.Unlock()

		w.sendMu.Lock()
		w.closed = true
		close(w.eventsChan)
		w.sendMu.Unlock()
	})
}

// processEvents processes file system events.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			log.Debugf("[watcher] fsnotify: %s %s", event.Op, event.Name)
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("Watcher error")
		}
	}
}

// handleEvent processes a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != config.SettingsFileName {
		return
	}

	// Rename covers atomic saves (write tmp → rename onto the target).
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	// Debounce events
	w.debounceEvent(event.Name, func() {
		w.processFileChange(event.Name)
	})
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	// Cancel existing timer
	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	// Create new timer
	w.debounce[path] = time.AfterFunc(DebounceInterval, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

// processFileChange handles a debounced file change. The event type is decided
// by whether the file exists once the burst is over.
func (w *Watcher) processFileChange(path string) {
	ev := Event{Type: EventSettingsChanged, Path: path}
	if !config.FileExists(path) {
		ev.Type = EventSettingsRemoved
	}

	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	if w.closed {
		return
	}
	select {
	case w.eventsChan <- ev:
	case <-w.done:
	}
}
