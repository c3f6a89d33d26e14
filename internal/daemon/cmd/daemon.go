package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/onetouch-io/onetouch/internal/buildinfo"
	"github.com/onetouch-io/onetouch/internal/config"
	"github.com/onetouch-io/onetouch/internal/daemon/controller"
	"github.com/onetouch-io/onetouch/internal/daemon/hotkey"
	"github.com/onetouch-io/onetouch/internal/daemon/notify"
	"github.com/onetouch-io/onetouch/internal/daemon/server"
	"github.com/onetouch-io/onetouch/internal/daemon/tray"
	"github.com/onetouch-io/onetouch/internal/daemon/watcher"
	"github.com/onetouch-io/onetouch/internal/device"
	"github.com/onetouch-io/onetouch/internal/models"
	"github.com/onetouch-io/onetouch/internal/privilege"
)

// daemon wires the controller to its triggers and observers.
type daemon struct {
	port     int
	withTray bool
	quit     func()

	settings  *models.Settings
	adapter   *device.Adapter
	notifier  *notify.Notifier
	presenter *tray.Presenter
	ctrl      *controller.Controller
	hotkeys   *hotkey.Listener
	watcher   *watcher.Watcher
	srv       *server.Server

	serveErr chan error
	stopOnce sync.Once
}

func newDaemon(port int, view tray.View, withTray bool) (*daemon, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	adapter, err := device.New(settings.Device)
	if err != nil {
		return nil, err
	}

	d := &daemon{
		port:     port,
		withTray: withTray,
		settings: settings,
		adapter:  adapter,
		notifier: notify.New(settings.Notifications.Enabled),
		serveErr: make(chan error, 1),
	}
	d.presenter = tray.NewPresenter(view, d.notifier)
	d.ctrl = controller.New(adapter, adapter, d.presenter)
	d.hotkeys = hotkey.NewListener(func() { d.toggle("hotkey") })
	return d, nil
}

// start brings up everything after the tray (if any) is ready.
func (d *daemon) start() error {
	if d.adapter.Backend() == models.BackendPowerShell && !privilege.Elevated() {
		log.Warn("Not running as administrator; enabling or disabling the touchscreen will likely fail")
	}

	d.ctrl.Init(context.Background())

	srv, err := server.New(server.Options{
		Port:     d.port,
		Device:   d.ctrl,
		Backend:  d.adapter.Backend(),
		Selector: d.adapter.Selector(),
		Hotkey:   d.hotkeys.Combo,
		Shutdown: d.RequestShutdown,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	d.srv = srv

	info := models.NewDaemonInfo("127.0.0.1", srv.Port(), os.Getpid())
	info.BuildVersion = buildinfo.Version
	info.Tray = d.withTray
	if err := config.SaveDaemonInfo(info); err != nil {
		srv.Stop()
		return fmt.Errorf("failed to write daemon info: %w", err)
	}

	go func() {
		d.serveErr <- srv.Serve()
	}()

	log.WithFields(log.Fields{
		"port":    srv.Port(),
		"pid":     os.Getpid(),
		"backend": d.adapter.Backend(),
	}).Infof("Daemon started, onetouchd %s", buildinfo.Summary())

	d.applyHotkey(d.settings.Hotkey)

	w, err := watcher.New("")
	if err != nil {
		log.WithError(err).Warn("Settings watcher unavailable, changes apply on restart")
		return nil
	}
	if err := w.Start(); err != nil {
		log.WithError(err).Warn("Settings watcher unavailable, changes apply on restart")
		return nil
	}
	d.watcher = w
	go d.watchSettings()
	return nil
}

func (d *daemon) applyHotkey(cfg models.HotkeyConfig) {
	if !cfg.Enabled || cfg.Combo == "" {
		d.hotkeys.Unbind()
		return
	}
	if err := d.hotkeys.Bind(cfg.Combo); err != nil {
		log.WithError(err).Error("Failed to bind hotkey")
	}
}

func (d *daemon) watchSettings() {
	for ev := range d.watcher.Events() {
		log.WithField("event", ev.Type).Debug("Settings file changed")

		settings := models.NewSettings()
		if ev.Type == watcher.EventSettingsChanged {
			loaded, err := config.LoadSettings()
			if err != nil {
				log.WithError(err).Warn("Ignoring unreadable settings")
				continue
			}
			settings = loaded
		}

		d.notifier.SetEnabled(settings.Notifications.Enabled)
		d.applyHotkey(settings.Hotkey)

		if settings.Device != d.settings.Device {
			log.Info("Device settings changed, restart onetouchd to apply them")
		}
		d.settings.Hotkey = settings.Hotkey
		d.settings.Notifications = settings.Notifications
	}
}

func (d *daemon) toggle(origin string) {
	res, err := d.ctrl.Toggle(context.Background())
	entry := log.WithFields(log.Fields{
		"origin":  origin,
		"attempt": res.ID,
	})
	if err != nil {
		entry.WithError(err).Warn("Toggle failed")
		return
	}
	entry.WithField("state", res.State).Debug("Toggle finished")
}

// Toggle implements tray.Actions.
func (d *daemon) Toggle() {
	d.toggle("tray")
}

// Refresh implements tray.Actions.
func (d *daemon) Refresh() {
	state, changed := d.ctrl.Refresh(context.Background())
	log.WithFields(log.Fields{"state": state, "changed": changed}).Info("Touchscreen state refreshed")
}

// RequestShutdown implements tray.Actions and is the server's shutdown hook.
func (d *daemon) RequestShutdown() {
	if d.quit != nil {
		d.quit()
	}
}

// stop releases triggers first so no new toggles arrive, then drains the
// controller's queued notifications.
func (d *daemon) stop() {
	d.stopOnce.Do(func() {
		d.hotkeys.Unbind()
		if d.watcher != nil {
			d.watcher.Stop()
		}
		if d.srv != nil {
			d.srv.Stop()
		}
		d.ctrl.Close()

		if err := config.RemoveDaemonInfo(); err != nil {
			log.WithError(err).Warn("Failed to remove daemon info")
		}
		log.Info("Daemon stopped")
	})
}

func runDaemon(foreground bool, port int) error {
	if err := config.EnsureGlobalDir(); err != nil {
		return fmt.Errorf("failed to create global directory: %w", err)
	}

	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}
	if running {
		return fmt.Errorf("daemon already running on port %d (PID %d)", info.Port, info.PID)
	}

	if foreground {
		log.Info("Running in foreground mode (no system tray)")
		return runForeground(port)
	}
	log.Info("Running in background mode (with system tray)")
	return runWithTray(port)
}

// runForeground runs the daemon without a system tray, blocking on signals.
func runForeground(port int) error {
	d, err := newDaemon(port, tray.LogView{}, false)
	if err != nil {
		return err
	}

	shutdownCh := make(chan struct{})
	var once sync.Once
	d.quit = func() { once.Do(func() { close(shutdownCh) }) }

	if err := d.start(); err != nil {
		d.stop()
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		log.Infof("Received signal %v, shutting down...", sig)
	case <-shutdownCh:
		log.Info("Shutting down...")
	case err := <-d.serveErr:
		log.WithError(err).Error("Server error")
	}

	d.stop()
	return nil
}

// runWithTray runs the daemon with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray(port int) error {
	d, err := newDaemon(port, tray.SystrayView{}, true)
	if err != nil {
		return err
	}
	d.quit = tray.Quit

	var startErr error
	onStart := func() {
		if startErr = d.start(); startErr != nil {
			tray.Quit()
			return
		}

		go func() {
			if err := <-d.serveErr; err != nil {
				log.WithError(err).Error("Server error")
			}
			tray.Quit()
		}()

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Infof("Received signal %v, shutting down...", sig)
			tray.Quit()
		}()
	}

	// This blocks the main goroutine until the tray exits.
	tray.Run(d, onStart, d.stop)
	return startErr
}
