// Package tray implements the system tray icon and menu for the daemon.
package tray

// Actions are the daemon operations reachable from the tray menu.
// Each is invoked on its own goroutine.
type Actions interface {
	Toggle()
	Refresh()
	RequestShutdown()
}

// View is the surface a Presenter draws on.
type View interface {
	SetIcon(icon []byte)
	SetTooltip(text string)
	SetStatus(text string)
}
