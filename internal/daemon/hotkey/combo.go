//go:build linux || darwin || windows

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"

	"github.com/onetouch-io/onetouch/internal/models"
)

// Combo is a shortcut resolved to platform key codes.
type Combo struct {
	Mods []hotkey.Modifier
	Key  hotkey.Key
	Text string
}

var keys = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
	"space": hotkey.KeySpace,
}

// ParseCombo parses s with models.ParseHotkey and resolves the names to
// key codes for this platform.
func ParseCombo(s string) (Combo, error) {
	parsed, err := models.ParseHotkey(s)
	if err != nil {
		return Combo{}, err
	}

	c := Combo{Text: parsed.Text}
	for _, name := range parsed.Mods {
		mod, ok := modifiers[name]
		if !ok {
			return Combo{}, fmt.Errorf("hotkey %q: modifier %q is not available on this platform", s, name)
		}
		c.Mods = append(c.Mods, mod)
	}
	key, ok := keys[parsed.Key]
	if !ok {
		return Combo{}, fmt.Errorf("hotkey %q: key %q is not available on this platform", s, parsed.Key)
	}
	c.Key = key
	return c, nil
}
