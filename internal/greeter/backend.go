package greeter

import (
	"errors"

	"github.com/jmylchreest/facegreeter/internal/theme"
)

// ErrUnsupported is returned by backends for operations the windowing
// system does not allow, such as warping the pointer under Wayland.
var ErrUnsupported = errors.New("operation not supported by display backend")

// Monitor is one display surface as reported by the display subsystem.
type Monitor struct {
	Index     int    // Position in the display's monitor list
	Connector string // e.g. "DP-1", may be empty
	Geometry  Rect
}

// DisplayContext answers display-subsystem queries.
// It is passed explicitly to every stage that needs the display.
type DisplayContext interface {
	// NMonitors returns the reported monitor count. It is an upper bound:
	// Monitor may fail to resolve an index below it.
	NMonitors() int
	// Monitor returns the monitor at index, or false if it cannot be resolved.
	Monitor(index int) (Monitor, bool)
	// PrimaryMonitor returns the primary monitor, or false if there is none.
	PrimaryMonitor() (Monitor, bool)
	// WarpPointer moves the pointer to the given display position.
	WarpPointer(x, y int) error
	// InstallStyle installs CSS as a display-wide style source.
	InstallStyle(css string, priority theme.Priority) error
}

// Widget is the part of a toolkit widget the greeter touches.
type Widget interface {
	SetName(name string)
	AddClass(class string)
	HasClass(class string) bool
	SetVisible(visible bool)
	Visible() bool
}

// WindowRole selects how a top-level window is stacked.
type WindowRole int

const (
	// RoleMain is a normal interactive top-level window.
	RoleMain WindowRole = iota
	// RoleBackground is a desktop-type surface kept below all other windows.
	RoleBackground
)

// Window is a top-level window.
type Window interface {
	Widget
	// Connect registers an event handler in the window's dispatch table.
	Connect(kind EventKind, h Handler)
	SetRole(role WindowRole)
	SetMonitor(m Monitor)
	SetDecorated(decorated bool)
	SetResizable(resizable bool)
	SetSizeRequest(width, height int)
	SetBorderWidth(width int)
	// Move positions the window at absolute display coordinates.
	Move(x, y int)
	SetChild(child Widget)
	// MeasuredSize returns the laid-out size, valid once the window is shown.
	MeasuredSize() Size
	// HideCursor replaces the pointer cursor over this window with a blank one.
	HideCursor()
	Present()
}

// Grid is a two-dimensional layout container.
type Grid interface {
	Widget
	SetSpacing(row, column int)
	Attach(child Widget, column, row, width, height int)
}

// Entry is a single-line text input.
type Entry interface {
	Widget
	SetMasked(masked bool)
	SetAlignment(xalign float32)
	SetWidthChars(chars int)
	Clear()
	GrabFocus()
}

// Label is a text label.
type Label interface {
	Widget
	SetText(text string)
	Text() string
	SetJustifyCenter()
}

// Toolkit creates widgets and owns the main loop.
type Toolkit interface {
	NewWindow() Window
	NewGrid() Grid
	NewEntry() Entry
	NewLabel(text string) Label
	// Quit closes every window and stops the main loop.
	Quit()
}
