package greeter

import (
	"log/slog"

	"github.com/jmylchreest/facegreeter/internal/theme"
)

// MainWindowController owns the interactive window and centers it on the
// primary monitor once it has been laid out.
type MainWindowController struct {
	window  Window
	primary Monitor
	hasArea bool
	placed  bool
	logger  *slog.Logger
}

// NewMainWindowController creates the main window.
// Centering is deferred to the window's first show event because the
// measured size is only known after its children have been laid out.
func NewMainWindowController(tk Toolkit, borderWidth int, monitors MonitorSet, onDestroy Handler, logger *slog.Logger) *MainWindowController {
	if logger == nil {
		logger = slog.Default()
	}

	c := &MainWindowController{
		window: tk.NewWindow(),
		logger: logger,
	}
	c.primary, c.hasArea = monitors.PrimaryMonitor()

	c.window.SetRole(RoleMain)
	c.window.SetDecorated(false)
	c.window.SetBorderWidth(borderWidth)
	c.window.SetName(theme.NameMain)
	if c.hasArea {
		c.window.SetMonitor(c.primary)
	}

	c.window.Connect(EventShow, c.Place)
	c.window.Connect(EventRealize, c.window.HideCursor)
	c.window.Connect(EventDestroy, onDestroy)

	return c
}

// Window returns the main window.
func (c *MainWindowController) Window() Window {
	return c.window
}

// Place centers the window on the primary monitor using its measured size.
// Only the first call has an effect.
func (c *MainWindowController) Place() {
	if c.placed {
		return
	}
	c.placed = true

	if !c.hasArea {
		c.logger.Warn("no monitor to center the main window on, leaving default placement")
		return
	}

	measured := c.window.MeasuredSize()
	pos := CenterIn(c.primary.Geometry, measured)
	c.window.Move(pos.X, pos.Y)

	c.logger.Debug("placed main window",
		"x", pos.X,
		"y", pos.Y,
		"width", measured.Width,
		"height", measured.Height,
		"monitor", c.primary.Connector,
	)
}

// Placed reports whether the placement pass has run.
func (c *MainWindowController) Placed() bool {
	return c.placed
}
