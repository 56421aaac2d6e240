package display

import (
	"log/slog"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/facegreeter/internal/config"
	"github.com/jmylchreest/facegreeter/internal/greeter"
)

// Toolkit creates GTK widgets for the greeter. It implements greeter.Toolkit.
type Toolkit struct {
	app        *gtk.Application
	layerShell bool
	windows    []*window
	quitting   bool
	logger     *slog.Logger
}

var _ greeter.Toolkit = (*Toolkit)(nil)

// NewToolkit creates a toolkit whose windows belong to app.
func NewToolkit(app *gtk.Application, logger *slog.Logger) *Toolkit {
	if logger == nil {
		logger = slog.Default()
	}

	tk := &Toolkit{
		app:        app,
		layerShell: layershell.IsSupported(),
		logger:     logger,
	}
	if !tk.layerShell {
		logger.Warn("compositor does not support layer-shell, windows cannot be stacked or positioned")
	}
	return tk
}

// LayerShell reports whether windows are placed through layer-shell.
func (tk *Toolkit) LayerShell() bool {
	return tk.layerShell
}

func (tk *Toolkit) NewWindow() greeter.Window {
	w := newWindow(tk.app, tk.layerShell, tk.logger)
	tk.windows = append(tk.windows, w)
	return w
}

func (tk *Toolkit) NewGrid() greeter.Grid {
	return newGrid()
}

func (tk *Toolkit) NewEntry() greeter.Entry {
	return newEntry()
}

func (tk *Toolkit) NewLabel(text string) greeter.Label {
	return newLabel(text)
}

// Quit closes every window and stops the application's main loop.
func (tk *Toolkit) Quit() {
	if tk.quitting {
		return
	}
	tk.quitting = true

	for _, w := range tk.windows {
		w.Close()
	}
	tk.windows = nil

	if tk.app != nil {
		tk.app.Quit()
	}
}

// ApplyColorScheme sets the libadwaita color scheme.
func ApplyColorScheme(scheme config.ColorScheme) {
	adw.StyleManagerGetDefault().SetColorScheme(adwColorScheme(scheme))
}

func adwColorScheme(scheme config.ColorScheme) adw.ColorScheme {
	switch scheme {
	case config.ColorSchemeLight:
		return adw.ColorSchemeForceLight
	case config.ColorSchemeDark:
		return adw.ColorSchemeForceDark
	default:
		return adw.ColorSchemeDefault
	}
}
