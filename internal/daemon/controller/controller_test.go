package controller

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onetouch-io/onetouch/internal/models"
)

// fakeDevice stands in for the OS: it holds the real device state and answers
// both queries and commands.
type fakeDevice struct {
	mu      sync.Mutex
	state   models.DeviceState
	missing bool // status queries return Unknown

	outcome models.CommandOutcome
	applies bool // whether a command really changes the device
	delay   time.Duration

	queries  atomic.Int32
	commands atomic.Int32
	inflight atomic.Int32
	overlap  atomic.Bool
}

func newFakeDevice(state models.DeviceState) *fakeDevice {
	return &fakeDevice{state: state, outcome: models.OutcomeSuccess, applies: true}
}

func (f *fakeDevice) QueryStatus(ctx context.Context) models.DeviceState {
	f.queries.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missing {
		return models.DeviceUnknown
	}
	return f.state
}

func (f *fakeDevice) ApplyState(ctx context.Context, target models.DeviceState) models.CommandOutcome {
	f.commands.Add(1)
	if f.inflight.Add(1) > 1 {
		f.overlap.Store(true)
	}
	defer f.inflight.Add(-1)

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applies {
		f.state = target
	}
	return f.outcome
}

func (f *fakeDevice) set(fn func(*fakeDevice)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

type recordingSink struct {
	mu       sync.Mutex
	renders  []models.DeviceState
	failures []string
}

func (s *recordingSink) Render(state models.DeviceState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renders = append(s.renders, state)
}

func (s *recordingSink) NotifyFailure(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, reason)
}

func (s *recordingSink) snapshot() ([]models.DeviceState, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DeviceState(nil), s.renders...), append([]string(nil), s.failures...)
}

func newTestController(dev *fakeDevice) (*Controller, *recordingSink) {
	sink := &recordingSink{}
	return New(dev, dev, sink), sink
}

func TestInitFailSafeDefault(t *testing.T) {
	dev := newFakeDevice(models.DeviceDisabled)
	dev.missing = true
	c, sink := newTestController(dev)

	assert.Equal(t, models.DeviceEnabled, c.Init(context.Background()))
	assert.Equal(t, models.DeviceEnabled, c.Current())

	c.Close()
	renders, failures := sink.snapshot()
	assert.Equal(t, []models.DeviceState{models.DeviceEnabled}, renders)
	assert.Empty(t, failures)
}

func TestToggleCommits(t *testing.T) {
	dev := newFakeDevice(models.DeviceEnabled)
	c, sink := newTestController(dev)
	require.Equal(t, models.DeviceEnabled, c.Init(context.Background()))

	res, err := c.Toggle(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Committed)
	assert.False(t, res.Reconciled)
	assert.Equal(t, models.DeviceEnabled, res.Previous)
	assert.Equal(t, models.DeviceDisabled, res.State)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, models.DeviceDisabled, c.Current())

	// A successful command needs no re-verification query.
	assert.Equal(t, int32(1), dev.queries.Load())

	c.Close()
	renders, failures := sink.snapshot()
	assert.Equal(t, []models.DeviceState{models.DeviceEnabled, models.DeviceDisabled}, renders)
	assert.Empty(t, failures)
}

func TestToggleNotFoundKeepsState(t *testing.T) {
	dev := newFakeDevice(models.DeviceEnabled)
	dev.missing = true
	dev.outcome = models.OutcomeFailure
	dev.applies = false
	c, sink := newTestController(dev)
	require.Equal(t, models.DeviceEnabled, c.Init(context.Background()))

	res, err := c.Toggle(context.Background())
	assert.ErrorIs(t, err, ErrDeviceNotFound)
	assert.False(t, res.Committed)
	assert.Equal(t, models.DeviceEnabled, res.State)
	assert.Equal(t, models.DeviceEnabled, c.Current())
	assert.Equal(t, int32(2), dev.queries.Load())

	c.Close()
	renders, failures := sink.snapshot()
	assert.Equal(t, []models.DeviceState{models.DeviceEnabled}, renders)
	assert.Equal(t, []string{ErrDeviceNotFound.Error()}, failures)
}

func TestToggleReconcilesMisreportedFailure(t *testing.T) {
	for _, outcome := range []models.CommandOutcome{models.OutcomeFailure, models.OutcomeAmbiguous} {
		t.Run(outcome.String(), func(t *testing.T) {
			dev := newFakeDevice(models.DeviceEnabled)
			dev.outcome = outcome
			c, sink := newTestController(dev)
			c.Init(context.Background())

			res, err := c.Toggle(context.Background())
			require.NoError(t, err)
			assert.True(t, res.Committed)
			assert.True(t, res.Reconciled)
			assert.Equal(t, outcome, res.Outcome)
			assert.Equal(t, models.DeviceDisabled, c.Current())

			c.Close()
			renders, failures := sink.snapshot()
			assert.Equal(t, []models.DeviceState{models.DeviceEnabled, models.DeviceDisabled}, renders)
			assert.Empty(t, failures)
		})
	}
}

func TestToggleFailureUnchanged(t *testing.T) {
	dev := newFakeDevice(models.DeviceDisabled)
	dev.outcome = models.OutcomeFailure
	dev.applies = false
	c, sink := newTestController(dev)
	c.Init(context.Background())

	res, err := c.Toggle(context.Background())
	assert.ErrorIs(t, err, ErrToggleFailed)
	assert.Equal(t, ErrToggleFailed.Error(), res.Reason)
	assert.Equal(t, models.DeviceDisabled, c.Current())

	c.Close()
	renders, failures := sink.snapshot()
	assert.Equal(t, []models.DeviceState{models.DeviceDisabled}, renders)
	assert.Len(t, failures, 1)
}

func TestToggleSuccessReportedButDeviceUnchanged(t *testing.T) {
	// The command's own success is trusted; no verification query is issued.
	dev := newFakeDevice(models.DeviceEnabled)
	dev.applies = false
	c, _ := newTestController(dev)
	c.Init(context.Background())

	res, err := c.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DeviceDisabled, res.State)
	assert.Equal(t, int32(1), dev.queries.Load())
	c.Close()
}

func TestToggleWithoutInitQueriesFirst(t *testing.T) {
	dev := newFakeDevice(models.DeviceDisabled)
	c, _ := newTestController(dev)
	require.Equal(t, models.DeviceUnknown, c.Current())

	res, err := c.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DeviceDisabled, res.Previous)
	assert.Equal(t, models.DeviceEnabled, res.State)
	c.Close()
}

func TestToggleWithoutInitDeviceMissing(t *testing.T) {
	dev := newFakeDevice(models.DeviceEnabled)
	dev.missing = true
	dev.outcome = models.OutcomeFailure
	dev.applies = false
	c, _ := newTestController(dev)

	res, err := c.Toggle(context.Background())
	assert.ErrorIs(t, err, ErrDeviceNotFound)
	assert.Equal(t, models.DeviceEnabled, res.Previous)
	assert.Equal(t, models.DeviceEnabled, c.Current())
	c.Close()
}

func TestNoRegressionToUnknown(t *testing.T) {
	dev := newFakeDevice(models.DeviceDisabled)
	c, sink := newTestController(dev)
	require.Equal(t, models.DeviceDisabled, c.Init(context.Background()))

	dev.set(func(f *fakeDevice) { f.missing = true })

	state, changed := c.Refresh(context.Background())
	assert.Equal(t, models.DeviceDisabled, state)
	assert.False(t, changed)

	assert.Equal(t, models.DeviceDisabled, c.Init(context.Background()))
	assert.Equal(t, models.DeviceDisabled, c.Current())

	c.Close()
	renders, _ := sink.snapshot()
	for _, r := range renders {
		assert.NotEqual(t, models.DeviceUnknown, r)
	}
}

func TestRefreshAdoptsExternalChange(t *testing.T) {
	dev := newFakeDevice(models.DeviceEnabled)
	c, sink := newTestController(dev)
	c.Init(context.Background())

	state, changed := c.Refresh(context.Background())
	assert.Equal(t, models.DeviceEnabled, state)
	assert.False(t, changed)

	dev.set(func(f *fakeDevice) { f.state = models.DeviceDisabled })
	state, changed = c.Refresh(context.Background())
	assert.Equal(t, models.DeviceDisabled, state)
	assert.True(t, changed)

	c.Close()
	renders, _ := sink.snapshot()
	assert.Equal(t, []models.DeviceState{models.DeviceEnabled, models.DeviceDisabled}, renders)
}

func TestToggleIgnoresCancellation(t *testing.T) {
	dev := newFakeDevice(models.DeviceEnabled)
	c, _ := newTestController(dev)
	c.Init(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := c.Toggle(ctx)
	require.NoError(t, err)
	assert.True(t, res.Committed)
	c.Close()
}

func TestConcurrentTogglesAreSerialized(t *testing.T) {
	const n = 20

	dev := newFakeDevice(models.DeviceEnabled)
	dev.delay = time.Millisecond
	c, sink := newTestController(dev)
	c.Init(context.Background())

	var wg sync.WaitGroup
	results := make([]Result, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Toggle(context.Background())
		}(i)
	}
	wg.Wait()
	c.Close()

	assert.False(t, dev.overlap.Load(), "device commands overlapped")
	assert.Equal(t, int32(n), dev.commands.Load())
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
	}

	// n is even, so the device ends where it started.
	assert.Equal(t, models.DeviceEnabled, c.Current())

	renders, failures := sink.snapshot()
	assert.Empty(t, failures)
	require.Len(t, renders, n+1)
	for i := 1; i < len(renders); i++ {
		assert.Equal(t, renders[i-1].Opposite(), renders[i], "render %d does not follow render %d", i, i-1)
	}

	// No two toggles started from the same state in the same position.
	fromEnabled := 0
	for _, r := range results {
		if r.Previous == models.DeviceEnabled {
			fromEnabled++
		}
	}
	assert.Equal(t, n/2, fromEnabled)
}

func TestTwoConcurrentTogglesFromEnabled(t *testing.T) {
	dev := newFakeDevice(models.DeviceEnabled)
	dev.delay = 5 * time.Millisecond
	c, sink := newTestController(dev)
	c.Init(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Toggle(context.Background())
		}()
	}
	wg.Wait()
	c.Close()

	assert.Equal(t, models.DeviceEnabled, c.Current())
	renders, failures := sink.snapshot()
	assert.Empty(t, failures)
	assert.Equal(t, []models.DeviceState{models.DeviceEnabled, models.DeviceDisabled, models.DeviceEnabled}, renders)
}

type blockingSink struct {
	release chan struct{}
	renders atomic.Int32
}

func (s *blockingSink) Render(models.DeviceState) {
	<-s.release
	s.renders.Add(1)
}

func (s *blockingSink) NotifyFailure(string) {}

func TestSlowSinkDoesNotBlockToggle(t *testing.T) {
	dev := newFakeDevice(models.DeviceEnabled)
	sink := &blockingSink{release: make(chan struct{})}
	c := New(dev, dev, sink)
	c.Init(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 3; i++ {
			_, _ = c.Toggle(context.Background())
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("toggles blocked on a slow sink")
	}
	assert.Equal(t, models.DeviceDisabled, c.Current())

	close(sink.release)
	c.Close()
	assert.Equal(t, int32(4), sink.renders.Load())
}

type panickySink struct {
	recordingSink
	once sync.Once
}

func (s *panickySink) Render(state models.DeviceState) {
	first := false
	s.once.Do(func() { first = true })
	if first {
		panic("icon backend gone")
	}
	s.recordingSink.Render(state)
}

func TestSinkPanicDoesNotStopDelivery(t *testing.T) {
	dev := newFakeDevice(models.DeviceEnabled)
	sink := &panickySink{}
	c := New(dev, dev, sink)
	c.Init(context.Background())
	_, err := c.Toggle(context.Background())
	require.NoError(t, err)
	c.Close()

	renders, _ := sink.snapshot()
	assert.Equal(t, []models.DeviceState{models.DeviceDisabled}, renders)
}

func TestCloseIsIdempotent(t *testing.T) {
	c := New(newFakeDevice(models.DeviceEnabled), newFakeDevice(models.DeviceEnabled), nil)
	c.Close()
	c.Close()
}

func TestToggleAfterCloseLogsDroppedNotification(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(level)

	dev := newFakeDevice(models.DeviceEnabled)
	c, sink := newTestController(dev)
	c.Init(context.Background())
	c.Close()

	res, err := c.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DeviceDisabled, res.State)

	renders, _ := sink.snapshot()
	assert.Equal(t, []models.DeviceState{models.DeviceEnabled}, renders)

	var dropped *log.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "Presentation sink closed, dropping notification" {
			dropped = e
		}
	}
	require.NotNil(t, dropped, "dropped notification was not logged")
	assert.Equal(t, log.DebugLevel, dropped.Level)
	assert.Equal(t, models.DeviceDisabled, dropped.Data["state"])
}
