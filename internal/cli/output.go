package cli

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	pb "github.com/onetouch-io/onetouch/proto"
)

// JSON shapes printed with --json. Every field is always present so scripts
// can rely on "committed": false instead of a missing key.

type statusView struct {
	State     string    `json:"state"`
	Label     string    `json:"label"`
	Backend   string    `json:"backend"`
	Selector  string    `json:"selector"`
	Hotkey    string    `json:"hotkey"`
	PID       int32     `json:"pid"`
	StartedAt time.Time `json:"started_at"`
}

func newStatusView(st *pb.Status) statusView {
	return statusView{
		State:     st.GetState(),
		Label:     st.GetLabel(),
		Backend:   st.GetBackend(),
		Selector:  st.GetSelector(),
		Hotkey:    st.GetHotkey(),
		PID:       st.GetPid(),
		StartedAt: time.Unix(st.GetStartedAtUnix(), 0).UTC(),
	}
}

type toggleView struct {
	AttemptID  string `json:"attempt_id"`
	Previous   string `json:"previous"`
	State      string `json:"state"`
	Committed  bool   `json:"committed"`
	Reconciled bool   `json:"reconciled"`
	Outcome    string `json:"outcome"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

func newToggleView(resp *pb.ToggleResponse) toggleView {
	return toggleView{
		AttemptID:  resp.GetAttemptId(),
		Previous:   resp.GetPrevious(),
		State:      resp.GetState(),
		Committed:  resp.GetCommitted(),
		Reconciled: resp.GetReconciled(),
		Outcome:    resp.GetOutcome(),
		Error:      resp.GetError(),
		DurationMs: resp.GetDurationMs(),
	}
}

type refreshView struct {
	State   string `json:"state"`
	Changed bool   `json:"changed"`
}

func marshalView(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func printJSON(v any) error {
	data, err := marshalView(v)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
