// Package dbus exposes the greeter's session controls on the D-Bus session
// bus, so a login front end can reveal the password entry and report failed
// attempts without linking against the UI.
package dbus
