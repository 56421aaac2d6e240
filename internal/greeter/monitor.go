package greeter

import (
	"log/slog"
)

// MonitorSet is the ordered list of resolved monitors plus the primary.
type MonitorSet struct {
	Monitors []Monitor
	Primary  int // Index into Monitors, -1 if there are no monitors
}

// EnumerateMonitors resolves the display's monitors in display order.
//
// The reported count is treated as an upper bound: enumeration stops at the
// first index that cannot be resolved. If the display reports no primary
// monitor, or one that was not enumerated, the first monitor is used.
func EnumerateMonitors(dc DisplayContext, logger *slog.Logger) MonitorSet {
	if logger == nil {
		logger = slog.Default()
	}

	reported := dc.NMonitors()
	set := MonitorSet{
		Monitors: make([]Monitor, 0, max(reported, 0)),
		Primary:  -1,
	}

	seen := make(map[int]bool, cap(set.Monitors))
	for i := 0; i < reported; i++ {
		m, ok := dc.Monitor(i)
		if !ok {
			logger.Warn("monitor could not be resolved, stopping enumeration",
				"index", i,
				"reported", reported,
			)
			break
		}
		if seen[m.Index] {
			logger.Warn("monitor reported twice, skipping", "index", m.Index, "connector", m.Connector)
			continue
		}
		seen[m.Index] = true
		set.Monitors = append(set.Monitors, m)
	}

	if len(set.Monitors) == 0 {
		logger.Warn("no monitors available")
		return set
	}

	set.Primary = 0
	if primary, ok := dc.PrimaryMonitor(); ok {
		for i, m := range set.Monitors {
			if m.Index == primary.Index {
				set.Primary = i
				break
			}
		}
	} else {
		logger.Debug("no primary monitor reported, using first monitor")
	}

	logger.Debug("monitors enumerated",
		"count", len(set.Monitors),
		"reported", reported,
		"primary", set.Monitors[set.Primary].Connector,
	)
	return set
}

// Len returns the number of resolved monitors.
func (s MonitorSet) Len() int {
	return len(s.Monitors)
}

// IsPrimary reports whether the i-th resolved monitor is the primary one.
func (s MonitorSet) IsPrimary(i int) bool {
	return s.Primary >= 0 && i == s.Primary
}

// PrimaryMonitor returns the primary monitor, or false if there are none.
func (s MonitorSet) PrimaryMonitor() (Monitor, bool) {
	if s.Primary < 0 || s.Primary >= len(s.Monitors) {
		return Monitor{}, false
	}
	return s.Monitors[s.Primary], true
}
