package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/facegreeter/internal/config"
	"github.com/jmylchreest/facegreeter/internal/dbus"
	"github.com/jmylchreest/facegreeter/internal/display"
	"github.com/jmylchreest/facegreeter/internal/greeter"
	"github.com/jmylchreest/facegreeter/internal/theme"
)

const appID = "io.github.jmylchreest.facegreeter"

var runOpts struct {
	control bool
	watch   bool
}

// runGreeter builds the greeter UI and runs the GTK main loop until a
// window is destroyed or the process is signalled.
func runGreeter(cmd *cobra.Command, args []string) error {
	log := logger.With("session", ulid.Make().String())
	log.Info("starting facegreeter", "version", version, "config", configPath())

	app := adw.NewApplication(appID, 0)

	// Shared state between GTK main loop and signal handlers
	var (
		ui        *greeter.UI
		backend   *display.Backend
		control   *dbus.ControlServer
		watcher   *config.Watcher
		themeW    *theme.Watcher
		running   atomic.Bool
		activeErr error
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			log.Info("received signal, shutting down", "signal", sig)
			glib.IdleAdd(func() {
				app.Quit()
			})
		case <-ctx.Done():
		}
	}()

	app.ConnectActivate(func() {
		if running.Load() {
			log.Warn("application already running")
			return
		}
		running.Store(true)

		display.ApplyColorScheme(config.ColorScheme(cfg.ColorScheme))

		var err error
		backend, err = display.NewBackend(cfg.PrimaryMonitor, log)
		if err != nil {
			activeErr = err
			app.Quit()
			return
		}

		tk := display.NewToolkit(&app.Application, log)
		ui, err = greeter.Initialize(backend, tk, cfg, log)
		if err != nil {
			activeErr = fmt.Errorf("failed to initialize greeter: %w", err)
			app.Quit()
			return
		}
		ui.Show()

		if runOpts.control {
			control = dbus.NewControlServer(ui, scheduleOnMainLoop, log)
			if err := control.Start(); err != nil {
				log.Warn("failed to start D-Bus control server", "error", err)
				control = nil
			}
		}

		if runOpts.watch {
			watcher = startRestyleWatcher(ctx, ui, backend)
			themeW = startThemeWatcher(ctx, backend)
		}
	})

	// cobra has already consumed the arguments
	status := app.Run(os.Args[:1])

	cancel()
	if watcher != nil {
		watcher.Stop()
	}
	if themeW != nil {
		themeW.Stop()
	}
	if control != nil {
		_ = control.Stop()
	}

	if activeErr != nil {
		return activeErr
	}
	if status != 0 {
		return fmt.Errorf("application exited with status %d", status)
	}
	log.Info("facegreeter stopped")
	return nil
}

// scheduleOnMainLoop runs fn on the GTK main loop.
func scheduleOnMainLoop(fn func()) {
	glib.IdleAdd(fn)
}

// startRestyleWatcher reinstalls the stylesheet whenever the config file
// changes. A config that fails to load keeps the current style.
func startRestyleWatcher(ctx context.Context, ui *greeter.UI, dc greeter.DisplayContext) *config.Watcher {
	log := logger
	w, err := config.NewWatcher(configPath(), log)
	if err != nil {
		log.Warn("failed to create config watcher", "error", err)
		return nil
	}

	w.SetReloadCallback(func(updated *config.Config) {
		glib.IdleAdd(func() {
			if ui.Restyle(dc, updated) {
				log.Info("restyled from updated config")
			}
		})
	})
	w.SetErrorCallback(func(err error) {
		log.Warn("ignoring invalid config change", "error", err)
	})

	if err := w.Start(ctx); err != nil {
		log.Warn("failed to start config watcher", "error", err)
		return nil
	}
	return w
}

// startThemeWatcher reinstalls the theme file whenever it changes on disk.
func startThemeWatcher(ctx context.Context, dc greeter.DisplayContext) *theme.Watcher {
	if cfg.ThemeFile == "" {
		return nil
	}
	th, err := theme.LoadTheme(cfg.ThemeFile)
	if err != nil {
		logger.Warn("not watching theme file", "path", cfg.ThemeFile, "error", err)
		return nil
	}

	w := theme.NewWatcher(th, logger)
	w.SetChangeCallback(func(css string) {
		glib.IdleAdd(func() {
			if err := dc.InstallStyle(css, theme.PriorityTheme); err != nil {
				logger.Warn("failed to install theme file", "path", th.Path, "error", err)
			}
		})
	})
	if err := w.Start(ctx); err != nil {
		logger.Warn("failed to start theme watcher", "error", err)
		return nil
	}
	return w
}
