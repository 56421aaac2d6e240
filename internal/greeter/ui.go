package greeter

import (
	"errors"
	"log/slog"

	"github.com/jmylchreest/facegreeter/internal/config"
	"github.com/jmylchreest/facegreeter/internal/theme"
)

var (
	// ErrNilConfig is returned when Initialize is called without a config.
	ErrNilConfig = errors.New("greeter: config is required")
	// ErrNoDisplay is returned when Initialize is called without a display context.
	ErrNoDisplay = errors.New("greeter: display context is required")
	// ErrNoToolkit is returned when Initialize is called without a toolkit.
	ErrNoToolkit = errors.New("greeter: toolkit is required")
)

// UI holds every window and widget of a greeter session.
// It is built once by Initialize and torn down as a whole when any
// top-level window is destroyed.
type UI struct {
	toolkit Toolkit
	logger  *slog.Logger

	monitors          MonitorSet
	backgroundWindows []Window
	main              *MainWindowController
	layout            *LayoutContainer
	password          *CredentialField
	feedback          *FeedbackIndicator

	styled      bool
	terminating bool
}

// Initialize builds the greeter UI for cfg.
//
// Stages run in order, each depending only on the ones before it:
// monitor enumeration, background windows, pointer relocation, main window,
// layout, feedback label and password entry, stylesheet.
func Initialize(dc DisplayContext, tk Toolkit, cfg *config.Config, logger *slog.Logger) (*UI, error) {
	switch {
	case cfg == nil:
		return nil, ErrNilConfig
	case dc == nil:
		return nil, ErrNoDisplay
	case tk == nil:
		return nil, ErrNoToolkit
	}
	if logger == nil {
		logger = slog.Default()
	}

	ui := &UI{
		toolkit: tk,
		logger:  logger,
	}

	ui.monitors = EnumerateMonitors(dc, logger)

	factory := NewBackgroundWindowFactory(tk, cfg, ui.terminate, logger)
	ui.backgroundWindows = factory.Build(ui.monitors)

	ui.relocatePointer(dc)

	ui.main = NewMainWindowController(tk, cfg.LayoutSpacing, ui.monitors, ui.terminate, logger)
	ui.layout = NewLayoutContainer(tk, cfg.LayoutSpacing, ui.main.Window())
	ui.feedback = NewFeedbackIndicator(tk, cfg.Feedback.Faces, ui.layout, logger)
	ui.password = NewCredentialField(tk, cfg, ui.layout)

	ui.styled = ui.applyStyles(dc, cfg)

	logger.Info("greeter UI initialized",
		"monitors", ui.monitors.Len(),
		"background_windows", len(ui.backgroundWindows),
		"styled", ui.styled,
	)
	return ui, nil
}

// relocatePointer moves the pointer onto a background window, where the
// blank cursor applies. The password entry would otherwise show it.
func (ui *UI) relocatePointer(dc DisplayContext) {
	var target Point
	if primary, ok := ui.monitors.PrimaryMonitor(); ok {
		target = primary.Geometry.Origin()
	}

	if err := dc.WarpPointer(target.X, target.Y); err != nil {
		if errors.Is(err, ErrUnsupported) {
			ui.logger.Debug("pointer warp not supported by backend")
			return
		}
		ui.logger.Warn("failed to move pointer", "error", err)
	}
}

// applyStyles installs the optional theme file and the generated stylesheet.
// Failures leave the previous style in place and are not fatal.
func (ui *UI) applyStyles(dc DisplayContext, cfg *config.Config) bool {
	if cfg.ThemeFile != "" {
		if th, err := theme.LoadTheme(cfg.ThemeFile); err != nil {
			ui.logger.Warn("failed to load theme file", "path", cfg.ThemeFile, "error", err)
		} else if err := dc.InstallStyle(th.CSS, theme.PriorityTheme); err != nil {
			ui.logger.Warn("failed to install theme file", "path", cfg.ThemeFile, "error", err)
		}
	}

	sheet, err := theme.Generate(cfg)
	if err != nil {
		ui.logger.Warn("failed to generate stylesheet, using toolkit defaults", "error", err)
		return false
	}
	if err := dc.InstallStyle(sheet.String(), theme.PriorityGreeter); err != nil {
		ui.logger.Warn("failed to install stylesheet", "error", err)
		return false
	}
	return true
}

// Restyle installs the stylesheets for an updated cfg and reports whether
// the new sheet was installed. On failure the previous sheet stays active.
// Windows and widgets are not rebuilt, so the image class keeps following
// the initial config.
func (ui *UI) Restyle(dc DisplayContext, cfg *config.Config) bool {
	if !ui.applyStyles(dc, cfg) {
		return false
	}
	ui.styled = true
	return true
}

// terminate ends the session. Every top-level window shares it as its
// destroy handler, so the first destroy wins.
func (ui *UI) terminate() {
	if ui.terminating {
		return
	}
	ui.terminating = true
	ui.logger.Info("window destroyed, ending greeter session")
	ui.toolkit.Quit()
}

// Show presents the background windows and then the main window.
func (ui *UI) Show() {
	for _, w := range ui.backgroundWindows {
		w.Present()
	}
	ui.main.Window().Present()
}

// RevealCredentialField shows the password entry.
func (ui *UI) RevealCredentialField() {
	if ui.password != nil {
		ui.password.Reveal()
	}
}

// ConcealCredentialField hides and clears the password entry.
func (ui *UI) ConcealCredentialField() {
	if ui.password != nil {
		ui.password.Conceal()
	}
}

// CredentialFieldVisible reports whether the password entry is shown.
func (ui *UI) CredentialFieldVisible() bool {
	return ui.password != nil && ui.password.Visible()
}

// AdvanceFeedback renders the face for failures consecutive failed attempts.
func (ui *UI) AdvanceFeedback(failures int) string {
	return ui.feedback.Advance(failures)
}

// FeedbackState returns the last failure count and the face shown for it.
func (ui *UI) FeedbackState() (int, string) {
	return ui.feedback.Failures(), ui.feedback.Face()
}

// Feedback returns the feedback indicator.
func (ui *UI) Feedback() *FeedbackIndicator {
	return ui.feedback
}

// Monitors returns the resolved monitors.
func (ui *UI) Monitors() MonitorSet {
	return ui.monitors
}

// BackgroundWindows returns the background windows in monitor order.
func (ui *UI) BackgroundWindows() []Window {
	return ui.backgroundWindows
}

// MainWindow returns the main window controller.
func (ui *UI) MainWindow() *MainWindowController {
	return ui.main
}

// Layout returns the layout container.
func (ui *UI) Layout() *LayoutContainer {
	return ui.layout
}

// Styled reports whether the generated stylesheet was installed.
func (ui *UI) Styled() bool {
	return ui.styled
}
