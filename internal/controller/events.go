package controller

// Event names published by the controller.
const (
	EventSubmitStart   = "submit_start"
	EventSubmitSuccess = "submit_success"
	EventSubmitFailed  = "submit_failed"
	EventIdle          = "idle"
)

// Event represents a controller lifecycle event.
// Minimal and stable: name + generation and optional fields via key/values.
type Event struct {
	Name       string
	Generation uint64
	Fields     map[string]any
}

// EventPublisher receives events from the controller. Implementations should
// be lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
