// Package cmd implements the onetouchd command line.
package cmd

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/onetouch-io/onetouch/internal/config"
)

var (
	flagForeground bool
	flagPort       int
	flagLogLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "onetouchd",
	Short: "OneTouch touchscreen toggle daemon",
	Long: `onetouchd keeps the touchscreen state in sync with the operating system and
toggles it from a global hotkey, the system tray menu, or the onetouch CLI.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(flagLogLevel, !flagForeground && cmd == cmd.Root())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon(flagForeground, flagPort)
	},
}

// Execute runs the daemon command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&flagForeground, "foreground", false, "Run in foreground without a system tray")
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "Port to listen on (0 for dynamic allocation)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// setupLogging configures logrus. The tray daemon has no console to write to,
// so it logs to ~/.onetouch/logs/onetouchd.log.
func setupLogging(level string, toFile bool) error {
	l, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	log.SetLevel(l)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	var out io.Writer = os.Stderr
	if toFile {
		if err := config.EnsureGlobalLogsDir(); err != nil {
			return err
		}
		path, err := config.DaemonLogFile()
		if err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		out = io.MultiWriter(os.Stderr, f)
	}
	log.SetOutput(out)
	return nil
}
