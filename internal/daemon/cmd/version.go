package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/onetouch-io/onetouch/internal/buildinfo"
	"github.com/onetouch-io/onetouch/internal/config"
	"github.com/onetouch-io/onetouch/internal/models"
	"github.com/onetouch-io/onetouch/internal/privilege"
)

// Styles for daemon version output (matching CLI styles).
var (
	dStyleBrand   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "30", Dark: "45"})
	dStyleVersion = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})
	dStyleLabel   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"})
	dStyleValue   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"})
	dStyleHint    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"})
)

var daemonVersionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version and device backend information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("  %s %s %s\n",
			dStyleBrand.Render("onetouchd"),
			dStyleVersion.Render(buildinfo.Version),
			dStyleHint.Render("("+buildinfo.Codename+")"),
		)
		printVersionField("Commit", buildinfo.CommitHash)
		printVersionField("Built", buildinfo.BuildDate)
		printVersionField("OS/Arch", runtime.GOOS+"/"+runtime.GOARCH)
		printVersionField("Go", runtime.Version())
		fmt.Println()

		// Show what a start would drive, so a wrong backend is caught before
		// the first toggle fails.
		settings, err := config.LoadSettings()
		if err != nil {
			settings = models.NewSettings()
			fmt.Printf("    %s\n", dStyleHint.Render("settings unreadable, showing defaults: "+err.Error()))
		}
		printVersionField("Backend", settings.Device.Backend+" "+dStyleHint.Render("("+models.BackendDescription(settings.Device.Backend)+")"))
		printVersionField("Device", settings.Device.Selector)
		elevated := "no"
		if privilege.Elevated() {
			elevated = "yes"
		}
		printVersionField("Elevated", elevated)
		if path, err := config.GlobalSettingsFile(); err == nil {
			printVersionField("Settings", path)
		}
	},
}

func printVersionField(label, value string) {
	fmt.Printf("    %s %s\n", dStyleLabel.Render(fmt.Sprintf("%-8s", label)), dStyleValue.Render(value))
}

func init() {
	rootCmd.AddCommand(daemonVersionCmd)
}
