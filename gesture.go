package gesture

import "fmt"

// Point is a 2D position in surface pixels. The origin is the top-left of
// the surface, with Y increasing downward.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Contact is one finger touching the surface. ID is stable for the lifetime
// of that finger's contact and is supplied by the input source.
type Contact struct {
	ID int     `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// Point returns the contact's position.
func (c Contact) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// Direction is the dominant axis direction of a swipe.
type Direction uint8

const (
	DirectionNone  Direction = iota // no swipe observed
	DirectionLeft                   // negative X displacement
	DirectionRight                  // positive X displacement
	DirectionUp                     // negative Y displacement
	DirectionDown                   // positive Y displacement
)

var directionNames = [...]string{"none", "left", "right", "up", "down"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection converts a direction name ("left", "right", "up", "down",
// "none") back into a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return DirectionNone, fmt.Errorf("unknown direction %q", s)
}

// PinchType tells whether the fingers moved apart or together.
type PinchType uint8

const (
	PinchIn  PinchType = iota // fingers moved together (scale < 1)
	PinchOut                  // fingers moved apart (scale > 1)
)

func (p PinchType) String() string {
	switch p {
	case PinchIn:
		return "in"
	case PinchOut:
		return "out"
	default:
		return fmt.Sprintf("PinchType(%d)", p)
	}
}

// ParsePinchType converts "in" or "out" into a PinchType.
func ParsePinchType(s string) (PinchType, error) {
	switch s {
	case "in":
		return PinchIn, nil
	case "out":
		return PinchOut, nil
	}
	return PinchIn, fmt.Errorf("unknown pinch type %q", s)
}

// EventType identifies a kind of recognized gesture.
type EventType uint8

const (
	EventSwipe     EventType = iota // first swipe threshold crossing in a session
	EventPinch                      // every move while the pinch threshold is exceeded
	EventRotate                     // every move while the rotate threshold is exceeded
	EventTap                        // short touch released within TapMaxDuration
	EventDoubleTap                  // second tap within DoubleTapDelay of the previous one
	EventLongPress                  // contact held without movement for LongPressDelay
)

var eventTypeNames = [...]string{"swipe", "pinch", "rotate", "tap", "double_tap", "long_press"}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return fmt.Sprintf("EventType(%d)", e)
}

// ParseEventType converts an event name such as "double_tap" into an
// EventType.
func ParseEventType(s string) (EventType, error) {
	for i, name := range eventTypeNames {
		if name == s {
			return EventType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown event type %q", s)
}

// MarshalText implements encoding.TextMarshaler so event types read well in
// JSON output.
func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EventType) UnmarshalText(text []byte) error {
	v, err := ParseEventType(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PinchType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PinchType) UnmarshalText(text []byte) error {
	v, err := ParsePinchType(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// DefaultPreventer is implemented by raw events whose source supports
// suppressing its default handling (scrolling, zooming, synthesized clicks).
type DefaultPreventer interface {
	PreventDefault()
}
