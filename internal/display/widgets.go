package display

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/facegreeter/internal/greeter"
)

// nativeWidget is implemented by every widget this package hands out.
type nativeWidget interface {
	native() *gtk.Widget
}

func nativeOf(w greeter.Widget) *gtk.Widget {
	if nw, ok := w.(nativeWidget); ok {
		return nw.native()
	}
	return nil
}

// widget adapts a GTK widget to greeter.Widget. Names and classes are the
// CSS selectors the generated stylesheet targets.
type widget struct {
	w *gtk.Widget
}

func (b widget) native() *gtk.Widget        { return b.w }
func (b widget) SetName(name string)        { b.w.SetName(name) }
func (b widget) AddClass(class string)      { b.w.AddCSSClass(class) }
func (b widget) HasClass(class string) bool { return b.w.HasCSSClass(class) }
func (b widget) SetVisible(visible bool)    { b.w.SetVisible(visible) }
func (b widget) Visible() bool              { return b.w.Visible() }

type grid struct {
	widget
	grid *gtk.Grid
}

func newGrid() *grid {
	g := gtk.NewGrid()
	return &grid{widget: widget{gtk.BaseWidget(g)}, grid: g}
}

func (g *grid) SetSpacing(row, column int) {
	g.grid.SetRowSpacing(uint(max(row, 0)))
	g.grid.SetColumnSpacing(uint(max(column, 0)))
}

func (g *grid) Attach(child greeter.Widget, column, row, width, height int) {
	native := nativeOf(child)
	if native == nil {
		return
	}
	g.grid.Attach(native, column, row, max(width, 1), max(height, 1))
}

type entry struct {
	widget
	entry *gtk.Entry
}

func newEntry() *entry {
	e := gtk.NewEntry()
	return &entry{widget: widget{gtk.BaseWidget(e)}, entry: e}
}

// SetMasked hides the typed characters behind the theme's invisible char.
func (e *entry) SetMasked(masked bool)       { e.entry.SetVisibility(!masked) }
func (e *entry) SetAlignment(xalign float32) { e.entry.SetAlignment(xalign) }
func (e *entry) SetWidthChars(chars int)     { e.entry.SetWidthChars(chars) }
func (e *entry) Clear()                      { e.entry.SetText("") }
func (e *entry) GrabFocus()                  { e.entry.GrabFocus() }

type label struct {
	widget
	label *gtk.Label
}

func newLabel(text string) *label {
	l := gtk.NewLabel(text)
	return &label{widget: widget{gtk.BaseWidget(l)}, label: l}
}

func (l *label) SetText(text string) { l.label.SetText(text) }
func (l *label) Text() string        { return l.label.Text() }
func (l *label) SetJustifyCenter()   { l.label.SetJustify(gtk.JustifyCenter) }
