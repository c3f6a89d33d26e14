package hotkey

import "golang.design/x/hotkey"

// Mod1 is Alt and Mod4 is Super on common X11 layouts.
var modifiers = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"alt":   hotkey.Mod1,
	"shift": hotkey.ModShift,
	"win":   hotkey.Mod4,
}
