package dbus

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// EmitFeedbackChanged emits the FeedbackChanged signal.
func (s *ControlServer) EmitFeedbackChanged(failures uint32, face string) error {
	if s.conn == nil {
		return fmt.Errorf("not connected to D-Bus")
	}

	err := s.conn.Emit(DBusPath, DBusInterface+".FeedbackChanged", failures, face)
	if err != nil {
		return fmt.Errorf("failed to emit FeedbackChanged signal: %w", err)
	}

	s.logger.Debug("emitted FeedbackChanged signal", "failures", failures, "face", face)
	return nil
}

// Connection returns the underlying D-Bus connection.
func (s *ControlServer) Connection() *dbus.Conn {
	return s.conn
}
