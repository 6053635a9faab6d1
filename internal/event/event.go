package event

// Type identifies a host event.
type Type string

const (
	// Resize fires when the viewport size or pixel density changes.
	Resize Type = "resize"
	// Scroll fires when the page scroll offset changes. Data is the new
	// offset in logical pixels (float64).
	Scroll Type = "scroll"
)

// Event is a dispatched host event.
type Event struct {
	Type Type
	Data any
}

// Handler receives dispatched events.
type Handler func(Event)

type subscription struct {
	id      uint64
	handler Handler
}

// Dispatcher delivers events to subscribers in subscription order. It is not
// safe for concurrent use; hosts dispatch from their render goroutine.
type Dispatcher struct {
	listeners map[Type][]subscription
	nextID    uint64
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]subscription),
	}
}

// Subscribe registers h for events of type t and returns the function that
// removes it. Calling the returned function more than once is harmless.
func (d *Dispatcher) Subscribe(t Type, h Handler) (unsubscribe func()) {
	d.nextID++
	id := d.nextID
	d.listeners[t] = append(d.listeners[t], subscription{id: id, handler: h})
	return func() { d.remove(t, id) }
}

func (d *Dispatcher) remove(t Type, id uint64) {
	subs := d.listeners[t]
	for i, s := range subs {
		if s.id == id {
			d.listeners[t] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch sends e to every handler subscribed to e.Type. Handlers added or
// removed during dispatch take effect for the next event.
func (d *Dispatcher) Dispatch(e Event) {
	subs := d.listeners[e.Type]
	for _, s := range subs {
		s.handler(e)
	}
}

// Count reports how many handlers are subscribed to t.
func (d *Dispatcher) Count(t Type) int {
	return len(d.listeners[t])
}
