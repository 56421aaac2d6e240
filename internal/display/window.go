package display

import (
	"log/slog"

	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/facegreeter/internal/greeter"
)

// Layer-shell namespaces, visible to compositor window rules.
const (
	namespaceMain       = "facegreeter"
	namespaceBackground = "facegreeter-background"
)

// window adapts a GTK toplevel to greeter.Window.
// GTK signals are forwarded into the embedded dispatch table.
type window struct {
	widget
	greeter.Dispatcher

	win        *gtk.Window
	layerShell bool
	role       greeter.WindowRole
	monitor    *gdk.Monitor
	area       greeter.Rect
	border     int
	child      *gtk.Widget
	logger     *slog.Logger
}

func newWindow(app *gtk.Application, layerShell bool, logger *slog.Logger) *window {
	win := gtk.NewWindow()
	if app != nil {
		win.SetApplication(app)
	}

	w := &window{
		widget:     widget{gtk.BaseWidget(win)},
		win:        win,
		layerShell: layerShell,
		logger:     logger,
	}

	win.ConnectRealize(func() { w.Dispatch(greeter.EventRealize) })
	win.ConnectShow(func() { w.Dispatch(greeter.EventShow) })
	win.ConnectDestroy(func() { w.Dispatch(greeter.EventDestroy) })

	return w
}

// SetRole sets the stacking role. Under layer-shell it must run before
// the window is realized.
func (w *window) SetRole(role greeter.WindowRole) {
	w.role = role
	if !w.layerShell {
		return
	}

	layershell.InitForWindow(w.win)
	switch role {
	case greeter.RoleBackground:
		layershell.SetLayer(w.win, layershell.LayerShellLayerBackground)
		layershell.SetNamespace(w.win, namespaceBackground)
		layershell.SetKeyboardMode(w.win, layershell.LayerShellKeyboardModeNone)
		// Cover the whole output, ignoring panels' exclusive zones
		layershell.SetExclusiveZone(w.win, -1)
		for _, edge := range allEdges {
			layershell.SetAnchor(w.win, edge, true)
		}
	default:
		layershell.SetLayer(w.win, layershell.LayerShellLayerOverlay)
		layershell.SetNamespace(w.win, namespaceMain)
		layershell.SetKeyboardMode(w.win, layershell.LayerShellKeyboardModeExclusive)
		layershell.SetExclusiveZone(w.win, 0)
	}
}

var allEdges = []layershell.Edge{
	layershell.LayerShellEdgeTop,
	layershell.LayerShellEdgeBottom,
	layershell.LayerShellEdgeLeft,
	layershell.LayerShellEdgeRight,
}

// SetMonitor binds the window to m.
func (w *window) SetMonitor(m greeter.Monitor) {
	w.area = m.Geometry
	w.monitor = monitorAt(w.win.Display(), m.Index)
	if w.monitor == nil {
		w.logger.Warn("monitor vanished before window was bound", "monitor", m.Index)
		return
	}
	if w.layerShell {
		layershell.SetMonitor(w.win, w.monitor)
	}
}

func (w *window) SetDecorated(decorated bool)      { w.win.SetDecorated(decorated) }
func (w *window) SetResizable(resizable bool)      { w.win.SetResizable(resizable) }
func (w *window) SetSizeRequest(width, height int) { w.win.SetSizeRequest(width, height) }

// SetBorderWidth sets the empty space kept around the child.
func (w *window) SetBorderWidth(width int) {
	w.border = max(width, 0)
	w.applyBorder()
}

func (w *window) SetChild(child greeter.Widget) {
	w.child = nativeOf(child)
	if w.child == nil {
		w.win.SetChild(nil)
		return
	}
	w.win.SetChild(w.child)
	w.applyBorder()
}

func (w *window) applyBorder() {
	if w.child == nil {
		return
	}
	w.child.SetMarginTop(w.border)
	w.child.SetMarginBottom(w.border)
	w.child.SetMarginStart(w.border)
	w.child.SetMarginEnd(w.border)
}

// Move positions the window at absolute display coordinates by anchoring
// it to the top-left corner of its monitor.
func (w *window) Move(x, y int) {
	if !w.layerShell {
		w.logger.Debug("window positioning needs layer-shell, leaving placement to the window manager",
			"x", x, "y", y)
		return
	}

	left, top := layerMargins(w.area, x, y)
	layershell.SetAnchor(w.win, layershell.LayerShellEdgeTop, true)
	layershell.SetAnchor(w.win, layershell.LayerShellEdgeLeft, true)
	layershell.SetMargin(w.win, layershell.LayerShellEdgeLeft, left)
	layershell.SetMargin(w.win, layershell.LayerShellEdgeTop, top)
}

// layerMargins converts a display position to margins from the
// top-left corner of the monitor area.
func layerMargins(area greeter.Rect, x, y int) (left, top int) {
	return x - area.X, y - area.Y
}

// MeasuredSize returns the window's natural size.
func (w *window) MeasuredSize() greeter.Size {
	_, width, _, _ := w.win.Measure(gtk.OrientationHorizontal, -1)
	_, height, _, _ := w.win.Measure(gtk.OrientationVertical, width)
	return greeter.Size{Width: width, Height: height}
}

func (w *window) HideCursor() {
	w.win.SetCursor(gdk.NewCursorFromName("none", nil))
}

func (w *window) Present() {
	if !w.layerShell && w.role == greeter.RoleBackground && w.monitor != nil {
		w.win.FullscreenOnMonitor(w.monitor)
	}
	w.win.Present()
}

// Close destroys the window.
func (w *window) Close() {
	w.win.Close()
}
