// Package controller owns the authoritative touchscreen state and reconciles
// it with the operating system on every toggle.
package controller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/onetouch-io/onetouch/internal/models"
)

// Toggle failures. Both leave the current state untouched.
var (
	ErrDeviceNotFound = errors.New("device not found or missing administrator rights")
	ErrToggleFailed   = errors.New("device did not change state")
)

// Querier reads the device state from the OS.
type Querier interface {
	QueryStatus(ctx context.Context) models.DeviceState
}

// Commander asks the OS to enable or disable the device.
type Commander interface {
	ApplyState(ctx context.Context, target models.DeviceState) models.CommandOutcome
}

// Sink presents committed states and failed toggles.
// Calls arrive from a single goroutine in commit order.
type Sink interface {
	Render(state models.DeviceState)
	NotifyFailure(reason string)
}

// Result describes one toggle attempt.
type Result struct {
	ID         string
	Previous   models.DeviceState
	State      models.DeviceState
	Committed  bool
	Reconciled bool // command reported failure but the OS shows the target state
	Outcome    models.CommandOutcome
	Reason     string
	Duration   time.Duration
}

// Controller serializes toggles from every trigger source.
type Controller struct {
	mu        sync.Mutex // held for the whole query→command→verify→commit sequence
	state     atomic.Int32
	querier   Querier
	commander Commander
	events    *dispatcher
}

// New creates a controller. The state is Unknown until Init or the first
// Toggle queries the device.
func New(q Querier, c Commander, sink Sink) *Controller {
	if sink == nil {
		sink = nopSink{}
	}
	return &Controller{
		querier:   q,
		commander: c,
		events:    newDispatcher(sink),
	}
}

// Current returns the last committed state without waiting for an in-flight
// toggle.
func (c *Controller) Current() models.DeviceState {
	return models.DeviceState(c.state.Load())
}

func (c *Controller) store(s models.DeviceState) {
	c.state.Store(int32(s))
}

// Init queries the device once at startup. A device that cannot be found is
// assumed enabled. The resolved state is rendered.
func (c *Controller) Init(ctx context.Context) models.DeviceState {
	ctx = context.WithoutCancel(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.resolve(ctx)
	c.store(state)
	c.events.push(event{state: state})
	log.WithField("state", state).Info("Touchscreen state initialized")
	return state
}

// resolve queries the device, keeping the last known state (or falling back to
// Enabled) when the query has no answer. Callers hold c.mu.
func (c *Controller) resolve(ctx context.Context) models.DeviceState {
	observed := c.querier.QueryStatus(ctx)
	if observed.Known() {
		return observed
	}
	if current := c.Current(); current.Known() {
		log.WithField("state", current).Warn("Touchscreen status unavailable, keeping last known state")
		return current
	}
	log.Warn("Touchscreen not found, assuming enabled")
	return models.DeviceEnabled
}

// Toggle flips the device state. Concurrent callers run one after another,
// each computing its target from the state the previous one committed. A
// toggle in flight is never cancelled; ctx only carries values.
//
// When the command reports anything but success the device is queried once
// more, and the toggle counts as committed if the OS already shows the target.
func (c *Controller) Toggle(ctx context.Context) (Result, error) {
	ctx = context.WithoutCancel(ctx)
	res := Result{ID: uuid.NewString()}
	entry := log.WithField("attempt", res.ID)

	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	current := c.Current()
	if !current.Known() {
		current = c.resolve(ctx)
		c.store(current)
	}
	target := current.Opposite()
	res.Previous = current

	res.Outcome = c.commander.ApplyState(ctx, target)

	var err error
	if res.Outcome != models.OutcomeSuccess {
		observed := c.querier.QueryStatus(ctx)
		switch {
		case observed == target:
			res.Reconciled = true
		case observed.Known():
			err = ErrToggleFailed
		default:
			err = ErrDeviceNotFound
		}
	}
	res.Duration = time.Since(start)

	if err != nil {
		res.State = current
		res.Reason = err.Error()
		c.events.push(event{failed: true, reason: res.Reason})
		entry.WithFields(log.Fields{
			"state":   current,
			"target":  target,
			"outcome": res.Outcome,
			"error":   err,
		}).Warn("Toggle failed")
		return res, err
	}

	c.store(target)
	res.State = target
	res.Committed = true
	c.events.push(event{state: target})
	entry.WithFields(log.Fields{
		"from":       current,
		"to":         target,
		"outcome":    res.Outcome,
		"reconciled": res.Reconciled,
		"duration":   res.Duration,
	}).Info("Toggle committed")
	return res, nil
}

// Refresh re-reads the device state and adopts it when the OS gives a concrete
// answer. It reports whether the state changed.
func (c *Controller) Refresh(ctx context.Context) (models.DeviceState, bool) {
	ctx = context.WithoutCancel(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.Current()
	observed := c.querier.QueryStatus(ctx)
	if !observed.Known() {
		log.WithField("state", current).Warn("Refresh found no device, keeping last known state")
		return current, false
	}
	if observed == current {
		return current, false
	}

	c.store(observed)
	c.events.push(event{state: observed})
	log.WithFields(log.Fields{"from": current, "to": observed}).Info("Touchscreen state changed outside OneTouch")
	return observed, true
}

// Close stops the notification goroutine after everything queued so far has
// been delivered.
func (c *Controller) Close() {
	c.events.close()
}

type nopSink struct{}

func (nopSink) Render(models.DeviceState) {}
func (nopSink) NotifyFailure(string)      {}
