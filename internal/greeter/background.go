package greeter

import (
	"log/slog"

	"github.com/jmylchreest/facegreeter/internal/config"
	"github.com/jmylchreest/facegreeter/internal/theme"
)

// BackgroundWindowFactory builds one background window per monitor.
type BackgroundWindowFactory struct {
	toolkit   Toolkit
	config    *config.Config
	logger    *slog.Logger
	onDestroy Handler
}

// NewBackgroundWindowFactory creates a factory. onDestroy is connected to
// every window it builds.
func NewBackgroundWindowFactory(tk Toolkit, cfg *config.Config, onDestroy Handler, logger *slog.Logger) *BackgroundWindowFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &BackgroundWindowFactory{
		toolkit:   tk,
		config:    cfg,
		logger:    logger,
		onDestroy: onDestroy,
	}
}

// ShowImage reports whether a monitor's background gets the image class.
func ShowImage(cfg *config.Config, isPrimary bool) bool {
	return (isPrimary || cfg.ShowImageOnAllMonitors) && cfg.HasBackgroundImage()
}

// Build creates a window for every monitor in set, in monitor order.
func (f *BackgroundWindowFactory) Build(set MonitorSet) []Window {
	windows := make([]Window, 0, set.Len())
	for i, m := range set.Monitors {
		windows = append(windows, f.New(m, ShowImage(f.config, set.IsPrimary(i))))
	}
	return windows
}

// New creates the background window for a single monitor.
func (f *BackgroundWindowFactory) New(m Monitor, withImage bool) Window {
	w := f.toolkit.NewWindow()
	w.SetRole(RoleBackground)
	w.SetDecorated(false)
	w.SetName(theme.NameBackground)
	w.SetMonitor(m)

	// Pin to the monitor's exact geometry
	w.SetSizeRequest(m.Geometry.Width, m.Geometry.Height)
	w.Move(m.Geometry.X, m.Geometry.Y)
	w.SetResizable(false)

	if withImage {
		w.AddClass(theme.ClassWithImage)
	}

	w.Connect(EventRealize, w.HideCursor)
	w.Connect(EventDestroy, f.onDestroy)

	f.logger.Debug("created background window",
		"monitor", m.Index,
		"connector", m.Connector,
		"x", m.Geometry.X,
		"y", m.Geometry.Y,
		"width", m.Geometry.Width,
		"height", m.Geometry.Height,
		"with_image", withImage,
	)
	return w
}
