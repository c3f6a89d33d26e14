package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pb "github.com/onetouch-io/onetouch/proto"
)

// errToggleFailed makes the command exit non-zero after the failure was
// already printed.
var errToggleFailed = errors.New("toggle failed")

var toggleCmd = &cobra.Command{
	Use:     "toggle",
	Aliases: []string{"t"},
	Short:   "Enable the touchscreen if disabled, disable it if enabled",
	Args:    cobra.NoArgs,
	RunE:    runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	client, err := ensureAndConnect()
	if err != nil {
		return err
	}
	defer client.Close()

	// Two commands of 10s each plus a re-check, with room to queue behind
	// another toggle.
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	resp, err := client.Toggle(ctx, &pb.ToggleRequest{Origin: "cli"})
	if err != nil {
		return fmt.Errorf("toggle request failed: %w", err)
	}

	if flagJSON {
		if err := printJSON(newToggleView(resp)); err != nil {
			return err
		}
		if !resp.Committed {
			return errToggleFailed
		}
		return nil
	}

	if !resp.Committed {
		fmt.Println(styleError.Render("✗ ") + toggleSummary(resp))
		return errToggleFailed
	}

	fmt.Printf("%s Touchscreen %s %s\n",
		styleSuccess.Render("✓"),
		stateBadge(resp.State),
		styleHint.Render(fmt.Sprintf("(%dms)", resp.DurationMs)),
	)
	if resp.Reconciled {
		fmt.Println(styleHint.Render("  The command reported a failure, but the device already shows the new state."))
	}
	return nil
}
