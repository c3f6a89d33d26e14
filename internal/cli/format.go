package cli

import (
	"fmt"
	"time"

	pb "github.com/onetouch-io/onetouch/proto"
	"github.com/onetouch-io/onetouch/internal/models"
)

const labelWidth = 10

func printField(label, value string) {
	fmt.Printf("  %s %s\n", styleLabel.Render(fmt.Sprintf("%-*s", labelWidth, label+":")), styleValue.Render(value))
}

// stateBadge renders a state name from the daemon ("enabled", "disabled",
// anything else is unknown).
func stateBadge(state string) string {
	switch models.ParseDeviceState(state) {
	case models.DeviceEnabled:
		return badgeEnabled.Render("enabled")
	case models.DeviceDisabled:
		return badgeDisabled.Render("disabled")
	default:
		return badgeUnknown.Render("unknown")
	}
}

// formatUptime truncates d to whole seconds.
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return d.Truncate(time.Second).String()
}

// toggleSummary describes a toggle attempt in one line, without styling.
func toggleSummary(resp *pb.ToggleResponse) string {
	if !resp.Committed {
		return fmt.Sprintf("Touchscreen is still %s: %s", resp.State, resp.Error)
	}
	summary := fmt.Sprintf("Touchscreen %s", resp.State)
	if resp.Reconciled {
		summary += " (confirmed after re-check)"
	}
	return summary
}
