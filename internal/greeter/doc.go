// Package greeter composes the greeter UI: one background window per
// monitor, a centered main window holding the password entry and the
// feedback face, and the generated stylesheet. It is toolkit-independent;
// windows and display queries come from a DisplayContext and Toolkit
// supplied by the caller (see internal/display for the GTK4 backend).
//
// Everything here runs on the toolkit's main loop. Nothing is safe for
// concurrent use.
package greeter
