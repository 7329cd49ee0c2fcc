package gesture

import "time"

// EventSink is the interface for optional event forwarding. When set on a
// Recognizer, every recognized gesture is also emitted as an Event, after
// the registered callbacks have run.
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(event Event)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event Event) { f(event) }

// Event is a recognized gesture as a flat record.
type Event struct {
	Type EventType
	At   time.Time

	// Swipe fields (valid for EventSwipe)
	Direction Direction
	// Pinch fields (valid for EventPinch)
	Scale float64
	Pinch PinchType
	// Rotate fields (valid for EventRotate)
	Angle float64

	// Center is the primary contact for single-finger gestures and the
	// midpoint of the first two contacts for pinch and rotate.
	Center   Point
	Contacts int
	Raw      any
}
