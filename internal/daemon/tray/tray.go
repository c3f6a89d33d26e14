package tray

import (
	"fmt"

	"github.com/getlantern/systray"
	log "github.com/sirupsen/logrus"

	"github.com/onetouch-io/onetouch/internal/models"
)

var (
	actions Actions
	onStart func()
	onExit  func()

	statusItem  *systray.MenuItem
	toggleItem  *systray.MenuItem
	refreshItem *systray.MenuItem
	quitItem    *systray.MenuItem

	ready = make(chan struct{})
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (start the controller and
// triggers here). onExitFn is called when the tray exits (cleanup here).
func Run(a Actions, onStartFn, onExitFn func()) {
	actions = a
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetIcon(Icon(models.DeviceUnknown))
	systray.SetTooltip(formatTooltip(models.DeviceUnknown))

	header := systray.AddMenuItem("OneTouch", "")
	header.Disable()

	statusItem = systray.AddMenuItem("Checking touchscreen...", "")
	statusItem.Disable()

	systray.AddSeparator()

	toggleItem = systray.AddMenuItem("Toggle Touchscreen", "Enable or disable the touchscreen")
	refreshItem = systray.AddMenuItem("Refresh", "Re-read the touchscreen state")

	systray.AddSeparator()

	quitItem = systray.AddMenuItem("Quit", "Shut down OneTouch")

	close(ready)

	if onStart != nil {
		onStart()
	}

	go handleClicks()
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for {
		select {
		case <-toggleItem.ClickedCh:
			if actions != nil {
				go actions.Toggle()
			}
		case <-refreshItem.ClickedCh:
			if actions != nil {
				go actions.Refresh()
			}
		case <-quitItem.ClickedCh:
			log.Info("Quit requested from tray")
			if actions != nil {
				actions.RequestShutdown()
			}
			return
		}
	}
}

// SystrayView draws on the system tray. Calls made before the tray is ready
// wait for it.
type SystrayView struct{}

func (SystrayView) SetIcon(icon []byte) {
	<-ready
	systray.SetIcon(icon)
}

func (SystrayView) SetTooltip(text string) {
	<-ready
	systray.SetTooltip(text)
}

func (SystrayView) SetStatus(text string) {
	<-ready
	statusItem.SetTitle(text)
}

func formatTooltip(state models.DeviceState) string {
	return fmt.Sprintf("OneTouch – %s", state.Label())
}
