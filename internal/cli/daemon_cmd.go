package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/onetouch-io/onetouch/internal/config"
	pb "github.com/onetouch-io/onetouch/proto"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the OneTouch daemon",
	Long:  `Manage the onetouchd daemon process.`,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	RunE:  runDaemonStatus,
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the daemon",
	RunE:  runDaemonStart,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the daemon",
	RunE:  runDaemonStop,
}

func init() {
	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStatusCmd)
	daemonCmd.AddCommand(daemonStopCmd)
}

func runDaemonStart(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if running && info != nil {
		fmt.Printf("Daemon is already running (PID %d, port %d).\n", info.PID, info.Port)
		return nil
	}

	fmt.Print("Starting daemon...")
	if startErr := startDaemon(); startErr != nil {
		fmt.Println()
		return startErr
	}

	_, freshInfo, err := config.IsDaemonRunning()
	if err != nil || freshInfo == nil {
		fmt.Println(" " + styleSuccess.Render("started."))
		return nil
	}

	fmt.Printf(" %s (PID %d, port %d).\n", styleSuccess.Render("started"), freshInfo.PID, freshInfo.Port)
	return nil
}

func runDaemonStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return err
	}

	if !running || info == nil {
		fmt.Println("Daemon is not running.")
		return nil
	}

	mode := "foreground"
	if info.Tray {
		mode = "tray"
	}

	fmt.Println(styleSuccess.Render("Daemon is running."))
	printField("Address", info.Address())
	printField("PID", fmt.Sprintf("%d", info.PID))
	printField("Mode", mode)
	if info.BuildVersion != "" {
		printField("Version", info.BuildVersion)
	}
	printField("Uptime", formatUptime(time.Since(info.StartedAt)))
	return nil
}

func runDaemonStop(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if !running || info == nil {
		fmt.Println("Daemon is not running.")
		return nil
	}

	client, err := connectDaemon()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Shutdown(ctx, &pb.ShutdownRequest{}); err != nil {
		return fmt.Errorf("failed to send stop request: %w", err)
	}

	// Poll for shutdown (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		stillRunning, _, err := config.IsDaemonRunning()
		if err == nil && !stillRunning {
			fmt.Println("Daemon stopped.")
			return nil
		}
	}

	return fmt.Errorf("daemon did not stop within timeout")
}
