package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pb "github.com/onetouch-io/onetouch/proto"
)

func TestStateBadge(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"enabled", "enabled"},
		{"disabled", "disabled"},
		{"unknown", "unknown"},
		{"", "unknown"},
		{"bogus", "unknown"},
	}
	for _, tt := range tests {
		assert.Contains(t, stateBadge(tt.in), tt.want, "state %q", tt.in)
	}
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "1m30s", formatUptime(90*time.Second+400*time.Millisecond))
	assert.Equal(t, "0s", formatUptime(-time.Second))
}

func TestToggleSummary(t *testing.T) {
	tests := []struct {
		name string
		resp *pb.ToggleResponse
		want string
	}{
		{
			name: "committed",
			resp: &pb.ToggleResponse{State: "disabled", Committed: true},
			want: "Touchscreen disabled",
		},
		{
			name: "reconciled",
			resp: &pb.ToggleResponse{State: "enabled", Committed: true, Reconciled: true},
			want: "Touchscreen enabled (confirmed after re-check)",
		},
		{
			name: "failed",
			resp: &pb.ToggleResponse{State: "enabled", Error: "device did not change state"},
			want: "Touchscreen is still enabled: device did not change state",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toggleSummary(tt.resp))
		})
	}
}
