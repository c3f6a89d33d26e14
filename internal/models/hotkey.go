package models

import (
	"fmt"
	"strings"
)

// HotkeyCombo is a parsed shortcut such as "ctrl+alt+t". Modifiers and key
// are kept as names; the daemon maps them to platform key codes.
type HotkeyCombo struct {
	Mods []string
	Key  string
	Text string // normalized form, e.g. "ctrl+shift+f9"
}

// HotkeyModifiers lists the accepted modifier names. "win" is the Super key
// on Linux and Command on macOS.
var HotkeyModifiers = []string{"ctrl", "alt", "shift", "win"}

// HotkeyKeys lists the accepted key names.
var HotkeyKeys = func() []string {
	var keys []string
	for c := 'a'; c <= 'z'; c++ {
		keys = append(keys, string(c))
	}
	for c := '0'; c <= '9'; c++ {
		keys = append(keys, string(c))
	}
	for i := 1; i <= 12; i++ {
		keys = append(keys, fmt.Sprintf("f%d", i))
	}
	return append(keys, "space")
}()

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ParseHotkey parses "mod+mod+key". At least one modifier is required so a
// plain key press is never swallowed system-wide.
func ParseHotkey(s string) (HotkeyCombo, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(parts) < 2 {
		return HotkeyCombo{}, fmt.Errorf("hotkey %q needs at least one modifier and a key", s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var c HotkeyCombo
	for _, name := range parts[:len(parts)-1] {
		if contains(c.Mods, name) {
			return HotkeyCombo{}, fmt.Errorf("hotkey %q repeats modifier %q", s, name)
		}
		if !contains(HotkeyModifiers, name) {
			return HotkeyCombo{}, fmt.Errorf("hotkey %q: unknown modifier %q", s, name)
		}
		c.Mods = append(c.Mods, name)
	}

	c.Key = parts[len(parts)-1]
	if !contains(HotkeyKeys, c.Key) {
		return HotkeyCombo{}, fmt.Errorf("hotkey %q: unsupported key %q", s, c.Key)
	}
	c.Text = strings.Join(parts, "+")
	return c, nil
}
