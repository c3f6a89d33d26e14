// Package cli implements the onetouch CLI commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "onetouch",
	Short: "Toggle the touchscreen from the command line",
	Long: `OneTouch turns the touchscreen on and off. The onetouchd daemon owns the
device state; this CLI asks it to toggle, report or refresh that state.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errToggleFailed) {
		fmt.Fprintf(os.Stderr, "%s %v\n", styleError.Render("Error:"), err)
	}
	return err
}

var flagJSON bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print machine-readable JSON")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(versionCmd)
}
