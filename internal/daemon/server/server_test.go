package server

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/onetouch-io/onetouch/internal/daemon/controller"
	"github.com/onetouch-io/onetouch/internal/models"
	pb "github.com/onetouch-io/onetouch/proto"
)

type fakeDevice struct {
	mu      sync.Mutex
	state   models.DeviceState
	fail    error
	toggles int
}

func (f *fakeDevice) Current() models.DeviceState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeDevice) Toggle(ctx context.Context) (controller.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toggles++
	res := controller.Result{ID: "attempt-1", Previous: f.state, Outcome: models.OutcomeSuccess, Duration: 15 * time.Millisecond}
	if f.fail != nil {
		res.State = f.state
		res.Outcome = models.OutcomeFailure
		res.Reason = f.fail.Error()
		return res, f.fail
	}
	f.state = f.state.Opposite()
	res.State = f.state
	res.Committed = true
	return res, nil
}

func (f *fakeDevice) Refresh(ctx context.Context) (models.DeviceState, bool) {
	return f.Current(), false
}

func startServer(t *testing.T, dev Device, shutdown func()) pb.DeviceServiceClient {
	t.Helper()
	srv, err := New(Options{
		Device:   dev,
		Backend:  models.BackendPowerShell,
		Selector: models.DefaultSelector,
		Hotkey:   func() string { return "ctrl+alt+t" },
		Shutdown: shutdown,
	})
	require.NoError(t, err)
	require.NotZero(t, srv.Port())

	go func() { _ = srv.Serve() }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(srv.listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return pb.NewDeviceServiceClient(conn)
}

func TestGetStatus(t *testing.T) {
	client := startServer(t, &fakeDevice{state: models.DeviceEnabled}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := client.GetStatus(ctx, &pb.StatusRequest{})
	require.NoError(t, err)
	assert.Equal(t, "enabled", st.State)
	assert.Equal(t, "Touchscreen Enabled", st.Label)
	assert.Equal(t, models.BackendPowerShell, st.Backend)
	assert.Equal(t, models.DefaultSelector, st.Selector)
	assert.Equal(t, "ctrl+alt+t", st.Hotkey)
	assert.NotZero(t, st.Pid)
}

func TestToggle(t *testing.T) {
	dev := &fakeDevice{state: models.DeviceEnabled}
	client := startServer(t, dev, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := client.Toggle(ctx, &pb.ToggleRequest{Origin: "test"})
	require.NoError(t, err)
	assert.True(t, resp.Committed)
	assert.Equal(t, "enabled", resp.Previous)
	assert.Equal(t, "disabled", resp.State)
	assert.Equal(t, "success", resp.Outcome)
	assert.Equal(t, "attempt-1", resp.AttemptId)
	assert.Equal(t, int64(15), resp.DurationMs)
	assert.Empty(t, resp.Error)
	assert.Equal(t, models.DeviceDisabled, dev.Current())
}

func TestToggleFailureIsAResponse(t *testing.T) {
	dev := &fakeDevice{state: models.DeviceEnabled, fail: controller.ErrDeviceNotFound}
	client := startServer(t, dev, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := client.Toggle(ctx, &pb.ToggleRequest{})
	require.NoError(t, err)
	assert.False(t, resp.Committed)
	assert.Equal(t, "enabled", resp.State)
	assert.Equal(t, controller.ErrDeviceNotFound.Error(), resp.Error)
}

func TestRefresh(t *testing.T) {
	client := startServer(t, &fakeDevice{state: models.DeviceDisabled}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := client.Refresh(ctx, &pb.RefreshRequest{})
	require.NoError(t, err)
	assert.Equal(t, "disabled", resp.State)
	assert.False(t, resp.Changed)
}

func TestShutdownCalledOnce(t *testing.T) {
	calls := make(chan struct{}, 2)
	client := startServer(t, &fakeDevice{state: models.DeviceEnabled}, func() { calls <- struct{}{} })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := client.Shutdown(ctx, &pb.ShutdownRequest{})
	require.NoError(t, err)
	_, err = client.Shutdown(ctx, &pb.ShutdownRequest{})
	require.NoError(t, err)

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown callback not called")
	}
	select {
	case <-calls:
		t.Fatal("shutdown callback called twice")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNewRequiresDevice(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}
