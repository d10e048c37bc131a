package engine

// EventHandler receives routed events
type EventHandler interface {
	// HandleEvent processes one event during dispatch
	HandleEvent(ev GameEvent)

	// EventTypes returns the types this handler subscribes to
	EventTypes() []EventType
}

// EventRouter dispatches queued events to registered handlers
// Single-threaded dispatch on the game loop; handlers run in registration order
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

// NewEventRouter creates a router attached to queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register subscribes handler to its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue and routes each event in FIFO order
// Events pushed by handlers are delivered on the next dispatch
func (r *EventRouter) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HasHandlers reports whether t has subscribers
func (r *EventRouter) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of subscribers for t
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
