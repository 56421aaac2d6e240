package display

import (
	"fmt"
	"log/slog"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/facegreeter/internal/greeter"
	"github.com/jmylchreest/facegreeter/internal/theme"
)

// Backend answers display queries for the default GDK display.
// It implements greeter.DisplayContext.
type Backend struct {
	display          *gdk.Display
	primaryConnector string
	providers        map[theme.Priority]*gtk.CSSProvider
	logger           *slog.Logger
}

var _ greeter.DisplayContext = (*Backend)(nil)

// NewBackend opens the default display. primaryConnector names the monitor
// treated as primary; when empty or not connected the first monitor is used.
// GTK must be initialized, i.e. call this from the application's activate
// handler.
func NewBackend(primaryConnector string, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	display := gdk.DisplayGetDefault()
	if display == nil {
		return nil, &DisplayError{Message: "no display available"}
	}

	return &Backend{
		display:          display,
		primaryConnector: primaryConnector,
		providers:        make(map[theme.Priority]*gtk.CSSProvider),
		logger:           logger,
	}, nil
}

// NMonitors returns the number of monitors the display reports.
func (b *Backend) NMonitors() int {
	return monitorCount(b.display)
}

// Monitor returns the monitor at index.
func (b *Backend) Monitor(index int) (greeter.Monitor, bool) {
	m := monitorAt(b.display, index)
	if m == nil {
		return greeter.Monitor{}, false
	}
	return toMonitor(index, m), true
}

// PrimaryMonitor returns the configured primary monitor.
// GTK4 has no primary monitor of its own.
func (b *Backend) PrimaryMonitor() (greeter.Monitor, bool) {
	var monitors []greeter.Monitor
	for i := range b.NMonitors() {
		m, ok := b.Monitor(i)
		if !ok {
			break
		}
		monitors = append(monitors, m)
	}

	primary, ok := resolvePrimary(monitors, b.primaryConnector)
	if ok && b.primaryConnector != "" && primary.Connector != b.primaryConnector {
		b.logger.Warn("configured primary monitor not connected, using first monitor",
			"configured", b.primaryConnector,
			"using", primary.Connector,
		)
	}
	return primary, ok
}

// resolvePrimary picks the monitor named by connector, or the first one.
func resolvePrimary(monitors []greeter.Monitor, connector string) (greeter.Monitor, bool) {
	if len(monitors) == 0 {
		return greeter.Monitor{}, false
	}
	if connector != "" {
		for _, m := range monitors {
			if m.Connector == connector {
				return m, true
			}
		}
	}
	return monitors[0], true
}

// WarpPointer is not possible in GTK4; clients cannot move the pointer.
func (b *Backend) WarpPointer(x, y int) error {
	return fmt.Errorf("warp pointer to %d,%d: %w", x, y, greeter.ErrUnsupported)
}

// InstallStyle loads css into a provider registered on the display.
// Installing again at the same priority replaces the earlier source.
func (b *Backend) InstallStyle(css string, priority theme.Priority) error {
	provider := gtk.NewCSSProvider()

	var parseErr error
	provider.ConnectParsingError(func(section *gtk.CSSSection, err error) {
		if parseErr == nil {
			parseErr = err
		}
	})
	provider.LoadFromString(css)
	if parseErr != nil {
		return &DisplayError{Message: "failed to parse stylesheet", Cause: parseErr}
	}

	if old, ok := b.providers[priority]; ok {
		gtk.StyleContextRemoveProviderForDisplay(b.display, old)
	}
	gtk.StyleContextAddProviderForDisplay(b.display, provider, providerPriority(priority))
	b.providers[priority] = provider

	b.logger.Debug("installed stylesheet", "priority", providerPriority(priority), "bytes", len(css))
	return nil
}

// providerPriority maps a style source to its GTK provider priority.
// The generated sheet sits above user-level settings.css.
func providerPriority(p theme.Priority) uint {
	switch p {
	case theme.PriorityTheme:
		return gtk.STYLE_PROVIDER_PRIORITY_APPLICATION
	default:
		return gtk.STYLE_PROVIDER_PRIORITY_USER + 1
	}
}

// DisplayError represents a display-related error.
type DisplayError struct {
	Message string
	Cause   error
}

func (e *DisplayError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *DisplayError) Unwrap() error {
	return e.Cause
}
