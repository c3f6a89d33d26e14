package controller

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/onetouch-io/onetouch/internal/models"
)

type event struct {
	state  models.DeviceState
	failed bool
	reason string
}

// dispatcher hands events to the sink on its own goroutine. push only appends
// to a queue, so it is safe to call while holding the toggle lock, and the
// queue keeps events in commit order.
type dispatcher struct {
	sink Sink

	mu     sync.Mutex
	queue  []event
	closed bool

	wake    chan struct{}
	stopped chan struct{}
}

func newDispatcher(sink Sink) *dispatcher {
	d := &dispatcher{
		sink:    sink,
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
	go d.loop()
	return d
}

func (d *dispatcher) push(ev event) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		log.WithFields(log.Fields{
			"state":  ev.state,
			"failed": ev.failed,
			"reason": ev.reason,
		}).Debug("Presentation sink closed, dropping notification")
		return
	}
	d.queue = append(d.queue, ev)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *dispatcher) loop() {
	defer close(d.stopped)
	for {
		d.mu.Lock()
		batch := d.queue
		d.queue = nil
		closed := d.closed
		d.mu.Unlock()

		for _, ev := range batch {
			d.deliver(ev)
		}
		if closed {
			if len(batch) == 0 {
				return
			}
			continue
		}
		<-d.wake
	}
}

func (d *dispatcher) deliver(ev event) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Presentation sink panicked")
		}
	}()
	if ev.failed {
		d.sink.NotifyFailure(ev.reason)
		return
	}
	d.sink.Render(ev.state)
}

func (d *dispatcher) close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.stopped
		return
	}
	d.closed = true
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
	<-d.stopped
}
