package wsbridge

import (
	"github.com/phanxgames/gesture"
)

// Client message types.
const (
	TypeStart = "start"
	TypeMove  = "move"
	TypeEnd   = "end"
)

// Server message types.
const (
	TypeGesture = "gesture"
	TypeError   = "error"
)

// TouchMessage is sent by the client for every touchstart, touchmove and
// touchend. Contacts lists every finger still on the surface after the
// change, which is what TouchEvent.touches holds in a browser.
type TouchMessage struct {
	Type     string            `json:"type"`
	Contacts []gesture.Contact `json:"contacts"`
}

// ServerMessage is written back to the client. Gesture fields are set when
// Type is "gesture"; Error is set when Type is "error".
type ServerMessage struct {
	Type string `json:"type"`

	Gesture   string         `json:"gesture,omitempty"`
	Direction string         `json:"direction,omitempty"`
	Scale     float64        `json:"scale,omitempty"`
	Pinch     string         `json:"pinch,omitempty"`
	Angle     float64        `json:"angle,omitempty"`
	Center    *gesture.Point `json:"center,omitempty"`
	Contacts  int            `json:"contacts,omitempty"`
	At        int64          `json:"at,omitempty"` // unix milliseconds

	Error string `json:"error,omitempty"`
}

func gestureMessage(ev gesture.Event) ServerMessage {
	center := ev.Center
	msg := ServerMessage{
		Type:     TypeGesture,
		Gesture:  ev.Type.String(),
		Center:   &center,
		Contacts: ev.Contacts,
		At:       ev.At.UnixMilli(),
	}
	switch ev.Type {
	case gesture.EventSwipe:
		msg.Direction = ev.Direction.String()
	case gesture.EventPinch:
		msg.Scale = ev.Scale
		msg.Pinch = ev.Pinch.String()
	case gesture.EventRotate:
		msg.Angle = ev.Angle
	}
	return msg
}

func errorMessage(err error) ServerMessage {
	return ServerMessage{Type: TypeError, Error: err.Error()}
}
