// Package display implements the greeter's display context and widget
// toolkit on GTK4/libadwaita. Windows are placed via Wayland layer-shell
// where the compositor supports it.
package display
