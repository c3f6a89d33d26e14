package device

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/onetouch-io/onetouch/internal/models"
)

// exceptionMarker in a command's error stream means the cmdlet threw, even
// when the process exit code says otherwise.
const exceptionMarker = "Exception"

// DefaultTimeout bounds each external command when settings give none.
const DefaultTimeout = 10 * time.Second

// Adapter runs a backend's status and enable/disable commands against the
// configured device selector. It implements both the query side and the
// command side the controller needs; neither method returns an error.
type Adapter struct {
	backend        Backend
	runner         Runner
	selector       string
	queryTimeout   time.Duration
	commandTimeout time.Duration
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithRunner replaces the os/exec runner.
func WithRunner(r Runner) Option {
	return func(a *Adapter) { a.runner = r }
}

// New creates an adapter for cfg.
func New(cfg models.DeviceConfig, opts ...Option) (*Adapter, error) {
	backend, err := NewBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	a := &Adapter{
		backend:        backend,
		runner:         ExecRunner{},
		selector:       cfg.Selector,
		queryTimeout:   cfg.QueryTimeout,
		commandTimeout: cfg.CommandTimeout,
	}
	if a.selector == "" {
		a.selector = models.DefaultSelector
	}
	if a.queryTimeout <= 0 {
		a.queryTimeout = DefaultTimeout
	}
	if a.commandTimeout <= 0 {
		a.commandTimeout = DefaultTimeout
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Backend returns the backend name.
func (a *Adapter) Backend() string {
	return a.backend.Name()
}

// Selector returns the device selector.
func (a *Adapter) Selector() string {
	return a.selector
}

// QueryStatus asks the OS for the device's current state. Any failure to get
// an answer, including a timeout, yields DeviceUnknown.
func (a *Adapter) QueryStatus(ctx context.Context) models.DeviceState {
	ctx, cancel := context.WithTimeout(ctx, a.queryTimeout)
	defer cancel()

	res, err := a.runner.Run(ctx, a.backend.StatusCommand(a.selector))
	if err != nil {
		log.WithFields(log.Fields{
			"backend": a.backend.Name(),
			"error":   err,
		}).Warn("Status query failed")
		return models.DeviceUnknown
	}

	state := parseStatus(res.Stdout, a.backend.Healthy)
	log.WithFields(log.Fields{
		"backend": a.backend.Name(),
		"state":   state,
		"exit":    res.ExitCode,
	}).Debug("Status query finished")
	return state
}

// ApplyState enables or disables the device. Timeouts, spawn failures,
// non-zero exits and exceptions on the error stream all yield OutcomeFailure.
func (a *Adapter) ApplyState(ctx context.Context, target models.DeviceState) models.CommandOutcome {
	if !target.Known() {
		log.WithField("target", target).Error("Refusing to apply an unknown device state")
		return models.OutcomeFailure
	}

	ctx, cancel := context.WithTimeout(ctx, a.commandTimeout)
	defer cancel()

	argv := a.backend.ApplyCommand(a.selector, target == models.DeviceEnabled)
	res, err := a.runner.Run(ctx, argv)
	if err != nil {
		log.WithFields(log.Fields{
			"backend": a.backend.Name(),
			"target":  target,
			"error":   err,
		}).Warn("Device command failed")
		return models.OutcomeFailure
	}

	outcome := classify(res)
	fields := log.Fields{
		"backend": a.backend.Name(),
		"target":  target,
		"exit":    res.ExitCode,
		"outcome": outcome,
	}
	if outcome != models.OutcomeSuccess && res.Stderr != "" {
		fields["stderr"] = firstLine(res.Stderr)
	}
	log.WithFields(fields).Debug("Device command finished")
	return outcome
}

// parseStatus maps status output onto a device state: empty means the device
// was not found, the healthy marker means enabled, anything else disabled.
func parseStatus(out string, healthy func(string) bool) models.DeviceState {
	out = strings.TrimSpace(out)
	if out == "" {
		return models.DeviceUnknown
	}
	if healthy(out) {
		return models.DeviceEnabled
	}
	return models.DeviceDisabled
}

func classify(res Result) models.CommandOutcome {
	if res.ExitCode == 0 && !strings.Contains(res.Stderr, exceptionMarker) {
		return models.OutcomeSuccess
	}
	return models.OutcomeFailure
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
