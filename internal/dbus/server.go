package dbus

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

const (
	// DBusInterface is the control interface name.
	DBusInterface = "io.github.jmylchreest.FaceGreeter"
	// DBusPath is the control object path.
	DBusPath = "/io/github/jmylchreest/FaceGreeter"
	// DBusBusName is the bus name to claim.
	DBusBusName = "io.github.jmylchreest.FaceGreeter"
)

// Controller is the part of the greeter UI the service drives.
type Controller interface {
	RevealCredentialField()
	ConcealCredentialField()
	CredentialFieldVisible() bool
	AdvanceFeedback(failures int) string
	FeedbackState() (failures int, face string)
}

// Scheduler runs fn on the UI thread. D-Bus methods arrive on the bus
// goroutine and must not touch widgets directly.
type Scheduler func(fn func())

// ControlServer implements the greeter control interface.
type ControlServer struct {
	conn       *dbus.Conn
	controller Controller
	schedule   Scheduler
	logger     *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewControlServer creates a server driving controller. A nil schedule
// runs calls on the calling goroutine.
func NewControlServer(controller Controller, schedule Scheduler, logger *slog.Logger) *ControlServer {
	if logger == nil {
		logger = slog.Default()
	}
	if schedule == nil {
		schedule = func(fn func()) { fn() }
	}
	return &ControlServer{
		controller: controller,
		schedule:   schedule,
		logger:     logger,
	}
}

// Start connects to the session bus and exports the control service.
func (s *ControlServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("server already running")
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	s.conn = conn

	if err := conn.Export(s, DBusPath, DBusInterface); err != nil {
		return fmt.Errorf("failed to export object: %w", err)
	}

	node := &introspect.Node{
		Name: DBusPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name:    DBusInterface,
				Methods: controlMethods(),
				Signals: controlSignals(),
			},
		},
	}
	if err := conn.Export(introspect.NewIntrospectable(node), DBusPath,
		"org.freedesktop.DBus.Introspectable"); err != nil {
		return fmt.Errorf("failed to export introspectable: %w", err)
	}

	reply, err := conn.RequestName(DBusBusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("failed to request bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("bus name %s already taken", DBusBusName)
	}

	s.running = true
	s.logger.Info("D-Bus control server started", "interface", DBusInterface, "path", DBusPath)
	return nil
}

// Stop releases the bus name and unexports the object.
func (s *ControlServer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	if s.conn != nil {
		if _, err := s.conn.ReleaseName(DBusBusName); err != nil {
			s.logger.Warn("failed to release bus name", "error", err)
		}
		_ = s.conn.Export(nil, DBusPath, DBusInterface)
		// Don't close the connection as it's shared (SessionBus)
	}

	s.logger.Info("D-Bus control server stopped")
	return nil
}

// call runs fn through the scheduler and waits for it to finish.
func (s *ControlServer) call(fn func()) {
	done := make(chan struct{})
	s.schedule(func() {
		defer close(done)
		fn()
	})
	<-done
}

// RevealCredentialField shows the password entry.
// D-Bus method: RevealCredentialField() -> nothing
func (s *ControlServer) RevealCredentialField() *dbus.Error {
	s.logger.Debug("RevealCredentialField called")
	s.call(s.controller.RevealCredentialField)
	return nil
}

// ConcealCredentialField hides and clears the password entry.
// D-Bus method: ConcealCredentialField() -> nothing
func (s *ControlServer) ConcealCredentialField() *dbus.Error {
	s.logger.Debug("ConcealCredentialField called")
	s.call(s.controller.ConcealCredentialField)
	return nil
}

// AdvanceFeedback reports the number of consecutive failed attempts.
// D-Bus method: AdvanceFeedback(u) -> nothing
func (s *ControlServer) AdvanceFeedback(failures uint32) *dbus.Error {
	s.logger.Debug("AdvanceFeedback called", "failures", failures)

	count := int(min(uint64(failures), math.MaxInt32))
	var face string
	s.call(func() { face = s.controller.AdvanceFeedback(count) })

	if s.conn != nil {
		if err := s.EmitFeedbackChanged(uint32(count), face); err != nil {
			s.logger.Warn("failed to emit FeedbackChanged signal", "error", err)
		}
	}
	return nil
}

// State returns whether the password entry is shown, the last failure
// count, and the face shown for it.
// D-Bus method: State() -> (bus)
func (s *ControlServer) State() (bool, uint32, string, *dbus.Error) {
	var (
		revealed bool
		failures int
		face     string
	)
	s.call(func() {
		revealed = s.controller.CredentialFieldVisible()
		failures, face = s.controller.FeedbackState()
	})
	return revealed, uint32(max(failures, 0)), face, nil
}

// controlMethods returns the D-Bus method introspection data.
func controlMethods() []introspect.Method {
	return []introspect.Method{
		{Name: "RevealCredentialField"},
		{Name: "ConcealCredentialField"},
		{
			Name: "AdvanceFeedback",
			Args: []introspect.Arg{
				{Name: "failures", Type: "u", Direction: "in"},
			},
		},
		{
			Name: "State",
			Args: []introspect.Arg{
				{Name: "revealed", Type: "b", Direction: "out"},
				{Name: "failures", Type: "u", Direction: "out"},
				{Name: "face", Type: "s", Direction: "out"},
			},
		},
	}
}

// controlSignals returns the D-Bus signal introspection data.
func controlSignals() []introspect.Signal {
	return []introspect.Signal{
		{
			Name: "FeedbackChanged",
			Args: []introspect.Arg{
				{Name: "failures", Type: "u"},
				{Name: "face", Type: "s"},
			},
		},
	}
}
