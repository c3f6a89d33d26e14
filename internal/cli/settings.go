package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/onetouch-io/onetouch/internal/config"
	"github.com/onetouch-io/onetouch/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show or change OneTouch settings",
	Long: `Show or change the settings stored in ~/.onetouch/settings.yaml.

A running daemon picks up hotkey and notification changes immediately.
Device backend, selector and timeouts apply the next time it starts.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Example: `  onetouch settings set hotkey.combo ctrl+shift+f9
  onetouch settings set notifications.enabled false
  onetouch settings set device.selector "ELAN Touchscreen"`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	return writeSettings(os.Stdout, settings)
}

func writeSettings(w io.Writer, settings *models.Settings) error {
	for _, key := range config.SettingKeys {
		value, err := config.GetSetting(settings, key)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", styleKey.Render(fmt.Sprintf("%-24s", key)), styleValue.Render(value)); err != nil {
			return err
		}
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := config.SetSetting(settings, key, value); err != nil {
		return err
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	current, _ := config.GetSetting(settings, key)
	fmt.Printf("%s %s = %s\n", styleSuccess.Render("✓"), key, current)
	if needsRestart(key) {
		fmt.Println(styleWarning.Render("  Restart the daemon to apply: ") + styleHint.Render("onetouch daemon stop && onetouch daemon start"))
	}
	return nil
}

func needsRestart(key string) bool {
	switch key {
	case "device.backend", "device.selector", "device.query_timeout", "device.command_timeout":
		return true
	}
	return false
}
