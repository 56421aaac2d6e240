package display

import (
	"unsafe"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"

	"github.com/jmylchreest/facegreeter/internal/greeter"
)

// monitorAt returns the GDK monitor at index, or nil if it cannot be resolved.
func monitorAt(display *gdk.Display, index int) *gdk.Monitor {
	if display == nil || index < 0 {
		return nil
	}
	monitors := display.Monitors()
	if monitors == nil || uint(index) >= monitors.NItems() {
		return nil
	}
	return wrapMonitor(monitors.Item(uint(index)))
}

// monitorCount returns the number of monitors the display reports.
func monitorCount(display *gdk.Display) int {
	if display == nil {
		return 0
	}
	monitors := display.Monitors()
	if monitors == nil {
		return 0
	}
	return int(monitors.NItems())
}

// wrapMonitor wraps a coreglib.Object as a gdk.Monitor.
// This is necessary because gotk4 doesn't expose the wrapMonitor function.
func wrapMonitor(obj *glib.Object) *gdk.Monitor {
	if obj == nil {
		return nil
	}
	// The gdk.Monitor struct embeds a *coreglib.Object, so we can create
	// one by casting the native pointer. This is how gotk4 does it internally.
	type monitor struct {
		_ [0]func()
		*glib.Object
	}
	m := &monitor{Object: obj}
	return (*gdk.Monitor)(unsafe.Pointer(m))
}

// toMonitor converts a GDK monitor to the greeter's view of it.
func toMonitor(index int, m *gdk.Monitor) greeter.Monitor {
	geom := m.Geometry()
	return greeter.Monitor{
		Index:     index,
		Connector: m.Connector(),
		Geometry: greeter.Rect{
			X:      geom.X(),
			Y:      geom.Y(),
			Width:  geom.Width(),
			Height: geom.Height(),
		},
	}
}
