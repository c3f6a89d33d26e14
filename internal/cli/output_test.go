package cli

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/onetouch-io/onetouch/proto"
)

func TestToggleViewKeepsFalseFields(t *testing.T) {
	data, err := marshalView(newToggleView(&pb.ToggleResponse{
		AttemptId: "a1",
		Previous:  "enabled",
		State:     "enabled",
		Outcome:   "failure",
		Error:     "device did not change state",
	}))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, false, got["committed"])
	assert.Equal(t, false, got["reconciled"])
	assert.Equal(t, "device did not change state", got["error"])
	assert.Equal(t, "a1", got["attempt_id"])
}

func TestStatusView(t *testing.T) {
	v := newStatusView(&pb.Status{State: "disabled", Pid: 42, StartedAtUnix: 1700000000})
	assert.Equal(t, "disabled", v.State)
	assert.Equal(t, int32(42), v.PID)
	assert.Equal(t, int64(1700000000), v.StartedAt.Unix())

	data, err := marshalView(v)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hotkey": ""`)
}
