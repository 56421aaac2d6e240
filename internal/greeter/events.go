package greeter

// EventKind identifies a window lifecycle event.
type EventKind int

const (
	// EventRealize fires when the window gets its native surface (first paint).
	EventRealize EventKind = iota
	// EventShow fires when the window is first shown, after layout.
	EventShow
	// EventDestroy fires when the window is destroyed.
	EventDestroy
)

func (k EventKind) String() string {
	switch k {
	case EventRealize:
		return "realize"
	case EventShow:
		return "show"
	case EventDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Handler is invoked synchronously when an event is dispatched.
type Handler func()

// Dispatcher is a per-window event table mapping event kinds to handlers.
// Backends embed it and call Dispatch from their native signal callbacks.
type Dispatcher struct {
	handlers map[EventKind][]Handler
}

// Connect registers h for kind. Handlers run in registration order.
func (d *Dispatcher) Connect(kind EventKind, h Handler) {
	if h == nil {
		return
	}
	if d.handlers == nil {
		d.handlers = make(map[EventKind][]Handler)
	}
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Dispatch runs every handler registered for kind.
func (d *Dispatcher) Dispatch(kind EventKind) {
	for _, h := range d.handlers[kind] {
		h()
	}
}

// Handlers returns the number of handlers registered for kind.
func (d *Dispatcher) Handlers(kind EventKind) int {
	return len(d.handlers[kind])
}
