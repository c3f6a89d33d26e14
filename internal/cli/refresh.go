package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pb "github.com/onetouch-io/onetouch/proto"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-read the touchscreen state from the operating system",
	Long: `Ask the daemon to query the touchscreen again. Use this after the device
was enabled or disabled outside OneTouch (for example in Device Manager).`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	client, err := ensureAndConnect()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Refresh(ctx, &pb.RefreshRequest{})
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	if flagJSON {
		return printJSON(refreshView{State: resp.GetState(), Changed: resp.GetChanged()})
	}

	note := "unchanged"
	if resp.Changed {
		note = "updated"
	}
	fmt.Printf("Touchscreen %s %s\n", stateBadge(resp.State), styleHint.Render("("+note+")"))
	return nil
}
