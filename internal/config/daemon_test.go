package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onetouch-io/onetouch/internal/models"
)

func TestDaemonInfoLifecycle(t *testing.T) {
	useTempHome(t)

	info, err := LoadDaemonInfo()
	require.NoError(t, err)
	assert.Nil(t, info)

	running, _, err := IsDaemonRunning()
	require.NoError(t, err)
	assert.False(t, running)

	saved := models.NewDaemonInfo("127.0.0.1", 50123, os.Getpid())
	saved.Tray = true
	require.NoError(t, SaveDaemonInfo(saved))

	running, got, err := IsDaemonRunning()
	require.NoError(t, err)
	assert.True(t, running)
	require.NotNil(t, got)
	assert.Equal(t, "127.0.0.1:50123", got.Address())
	assert.True(t, got.Tray)

	require.NoError(t, RemoveDaemonInfo())
	require.NoError(t, RemoveDaemonInfo(), "removing twice is fine")
}

func TestIsDaemonRunningCleansStaleInfo(t *testing.T) {
	useTempHome(t)

	// PIDs are far below this on every supported platform.
	require.NoError(t, SaveDaemonInfo(models.NewDaemonInfo("127.0.0.1", 1, 1<<30)))

	running, info, err := IsDaemonRunning()
	require.NoError(t, err)
	assert.False(t, running)
	require.NotNil(t, info)

	path, err := GlobalDaemonFile()
	require.NoError(t, err)
	assert.False(t, FileExists(path))
}

func TestIsDaemonRunningRejectsUndialableInfo(t *testing.T) {
	tests := []struct {
		name string
		host string
		port int
	}{
		{"zero port", "127.0.0.1", 0},
		{"port out of range", "127.0.0.1", 70000},
		{"missing host", "", 50123},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTempHome(t)
			require.NoError(t, SaveDaemonInfo(models.NewDaemonInfo(tt.host, tt.port, os.Getpid())))

			running, _, err := IsDaemonRunning()
			require.NoError(t, err)
			assert.False(t, running)

			info, err := LoadDaemonInfo()
			require.NoError(t, err)
			assert.Nil(t, info, "stale daemon info not removed")
		})
	}
}
