package greeter

import (
	"github.com/jmylchreest/facegreeter/internal/theme"
)

type fakeDisplay struct {
	monitors []Monitor
	reported int // -1 means len(monitors)
	primary  int // Index of the primary monitor, -1 for none
	warpErr  error

	warps     []Point
	styles    []installedStyle
	installFn func(css string, p theme.Priority) error
}

type installedStyle struct {
	css      string
	priority theme.Priority
}

func newFakeDisplay(geoms ...Rect) *fakeDisplay {
	d := &fakeDisplay{reported: -1, primary: 0}
	for i, g := range geoms {
		d.monitors = append(d.monitors, Monitor{Index: i, Connector: "OUT-" + string(rune('A'+i)), Geometry: g})
	}
	if len(geoms) == 0 {
		d.primary = -1
	}
	return d
}

func (d *fakeDisplay) NMonitors() int {
	if d.reported >= 0 {
		return d.reported
	}
	return len(d.monitors)
}

func (d *fakeDisplay) Monitor(index int) (Monitor, bool) {
	if index < 0 || index >= len(d.monitors) {
		return Monitor{}, false
	}
	return d.monitors[index], true
}

func (d *fakeDisplay) PrimaryMonitor() (Monitor, bool) {
	if d.primary < 0 || d.primary >= len(d.monitors) {
		return Monitor{}, false
	}
	return d.monitors[d.primary], true
}

func (d *fakeDisplay) WarpPointer(x, y int) error {
	d.warps = append(d.warps, Point{X: x, Y: y})
	return d.warpErr
}

func (d *fakeDisplay) InstallStyle(css string, p theme.Priority) error {
	if d.installFn != nil {
		if err := d.installFn(css, p); err != nil {
			return err
		}
	}
	d.styles = append(d.styles, installedStyle{css: css, priority: p})
	return nil
}

type fakeWidget struct {
	name    string
	classes []string
	visible bool
}

func (w *fakeWidget) SetName(name string)   { w.name = name }
func (w *fakeWidget) AddClass(class string) { w.classes = append(w.classes, class) }
func (w *fakeWidget) SetVisible(v bool)     { w.visible = v }
func (w *fakeWidget) Visible() bool         { return w.visible }

func (w *fakeWidget) HasClass(class string) bool {
	for _, c := range w.classes {
		if c == class {
			return true
		}
	}
	return false
}

type fakeWindow struct {
	fakeWidget
	Dispatcher

	role         WindowRole
	monitor      *Monitor
	decorated    bool
	resizable    bool
	sizeRequest  Size
	borderWidth  int
	position     *Point
	moves        int
	child        Widget
	measured     Size
	cursorHidden bool
	presented    bool
}

func (w *fakeWindow) SetRole(role WindowRole)  { w.role = role }
func (w *fakeWindow) SetMonitor(m Monitor)     { w.monitor = &m }
func (w *fakeWindow) SetDecorated(d bool)      { w.decorated = d }
func (w *fakeWindow) SetResizable(r bool)      { w.resizable = r }
func (w *fakeWindow) SetSizeRequest(wd, h int) { w.sizeRequest = Size{Width: wd, Height: h} }
func (w *fakeWindow) SetBorderWidth(width int) { w.borderWidth = width }
func (w *fakeWindow) SetChild(child Widget)    { w.child = child }
func (w *fakeWindow) MeasuredSize() Size       { return w.measured }
func (w *fakeWindow) HideCursor()              { w.cursorHidden = true }

func (w *fakeWindow) Move(x, y int) {
	w.position = &Point{X: x, Y: y}
	w.moves++
}

// Present mimics a toolkit: realize, then show, both on first present only.
func (w *fakeWindow) Present() {
	if w.presented {
		return
	}
	w.presented = true
	w.visible = true
	w.Dispatch(EventRealize)
	w.Dispatch(EventShow)
}

func (w *fakeWindow) destroy() {
	w.Dispatch(EventDestroy)
}

type fakeGrid struct {
	fakeWidget
	rowSpacing, columnSpacing int
	children                  []attached
}

type attached struct {
	child Widget
	cell  Cell
}

func (g *fakeGrid) SetSpacing(row, column int) {
	g.rowSpacing, g.columnSpacing = row, column
}

func (g *fakeGrid) Attach(child Widget, column, row, width, height int) {
	g.children = append(g.children, attached{child: child, cell: Cell{Column: column, Row: row, Width: width, Height: height}})
}

type fakeEntry struct {
	fakeWidget
	masked     bool
	alignment  float32
	widthChars int
	text       string
	focused    bool
}

func (e *fakeEntry) SetMasked(m bool)        { e.masked = m }
func (e *fakeEntry) SetAlignment(a float32)  { e.alignment = a }
func (e *fakeEntry) SetWidthChars(chars int) { e.widthChars = chars }
func (e *fakeEntry) Clear()                  { e.text = "" }
func (e *fakeEntry) GrabFocus()              { e.focused = true }

type fakeLabel struct {
	fakeWidget
	text     string
	centered bool
}

func (l *fakeLabel) SetText(text string) { l.text = text }
func (l *fakeLabel) Text() string        { return l.text }
func (l *fakeLabel) SetJustifyCenter()   { l.centered = true }

type fakeToolkit struct {
	windows []*fakeWindow
	grids   []*fakeGrid
	entries []*fakeEntry
	labels  []*fakeLabel
	quits   int

	// measured is applied to windows created after it is set
	measured Size
}

func (tk *fakeToolkit) NewWindow() Window {
	// Toplevels start hidden, like GTK
	w := &fakeWindow{measured: tk.measured, decorated: true, resizable: true}
	tk.windows = append(tk.windows, w)
	return w
}

func (tk *fakeToolkit) NewGrid() Grid {
	g := &fakeGrid{fakeWidget: fakeWidget{visible: true}}
	tk.grids = append(tk.grids, g)
	return g
}

func (tk *fakeToolkit) NewEntry() Entry {
	e := &fakeEntry{fakeWidget: fakeWidget{visible: true}}
	tk.entries = append(tk.entries, e)
	return e
}

func (tk *fakeToolkit) NewLabel(text string) Label {
	l := &fakeLabel{fakeWidget: fakeWidget{visible: true}, text: text}
	tk.labels = append(tk.labels, l)
	return l
}

func (tk *fakeToolkit) Quit() {
	tk.quits++
}
