package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/onetouch-io/onetouch/internal/models"
	pb "github.com/onetouch-io/onetouch/proto"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the touchscreen state known to the daemon",
	Args:    cobra.NoArgs,
	RunE:    runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := ensureAndConnect()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st, err := client.GetStatus(ctx, &pb.StatusRequest{})
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if flagJSON {
		return printJSON(newStatusView(st))
	}

	fmt.Printf("%s %s\n", styleBrand.Render("OneTouch"), stateBadge(st.State))
	printField("Device", st.Selector)
	printField("Backend", st.Backend+" "+styleHint.Render("("+models.BackendDescription(st.Backend)+")"))
	hotkey := st.Hotkey
	if hotkey == "" {
		hotkey = "none"
	}
	printField("Hotkey", hotkey)
	printField("Daemon", fmt.Sprintf("PID %d, up %s", st.Pid, formatUptime(time.Since(time.Unix(st.StartedAtUnix, 0)))))
	return nil
}
