package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/phanxgames/gesture"
)

// Epoch is the instant every scenario run starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TraceEntry is one recognized gesture.
type TraceEntry struct {
	Ms        int64   `json:"ms"` // milliseconds since the run started
	Event     string  `json:"event"`
	Direction string  `json:"direction,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
	Pinch     string  `json:"pinch,omitempty"`
	Angle     float64 `json:"angle,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Contacts  int     `json:"contacts,omitempty"`
}

func newTraceEntry(ev gesture.Event) TraceEntry {
	e := TraceEntry{
		Ms:       ev.At.Sub(Epoch).Milliseconds(),
		Event:    ev.Type.String(),
		X:        ev.Center.X,
		Y:        ev.Center.Y,
		Contacts: ev.Contacts,
	}
	switch ev.Type {
	case gesture.EventSwipe:
		e.Direction = ev.Direction.String()
	case gesture.EventPinch:
		e.Scale = ev.Scale
		e.Pinch = ev.Pinch.String()
	case gesture.EventRotate:
		e.Angle = ev.Angle
	}
	return e
}

// String renders the entry on one line with two-decimal floats.
func (e TraceEntry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "+%dms %s", e.Ms, e.Event)
	switch e.Event {
	case "swipe":
		fmt.Fprintf(&b, " direction=%s", e.Direction)
	case "pinch":
		fmt.Fprintf(&b, " scale=%.2f kind=%s", e.Scale, e.Pinch)
	case "rotate":
		fmt.Fprintf(&b, " angle=%.2f", e.Angle)
	}
	fmt.Fprintf(&b, " at=(%.2f,%.2f)", e.X, e.Y)
	if e.Contacts > 0 {
		fmt.Fprintf(&b, " contacts=%d", e.Contacts)
	}
	return b.String()
}

// FinalState is the recognizer State after the last step, in file form.
type FinalState struct {
	Swiping         bool     `json:"swiping"`
	Pinching        bool     `json:"pinching"`
	Rotating        bool     `json:"rotating"`
	LongPressing    bool     `json:"long_pressing"`
	LastSwipe       string   `json:"last_swipe"`
	LastPinchScale  *float64 `json:"last_pinch_scale,omitempty"`
	LastRotateAngle *float64 `json:"last_rotate_angle,omitempty"`
}

func newFinalState(st gesture.State) FinalState {
	fs := FinalState{
		Swiping:      st.Swiping,
		Pinching:     st.Pinching,
		Rotating:     st.Rotating,
		LongPressing: st.LongPressing,
		LastSwipe:    st.LastSwipe.String(),
	}
	if st.HasPinchScale {
		v := st.LastPinchScale
		fs.LastPinchScale = &v
	}
	if st.HasRotateAngle {
		v := st.LastRotateAngle
		fs.LastRotateAngle = &v
	}
	return fs
}

// String renders the state on one line. Unset values print as "-".
func (fs FinalState) String() string {
	return fmt.Sprintf("final swiping=%t pinching=%t rotating=%t long_pressing=%t last_swipe=%s last_pinch_scale=%s last_rotate_angle=%s",
		fs.Swiping, fs.Pinching, fs.Rotating, fs.LongPressing, fs.LastSwipe,
		optFloat(fs.LastPinchScale), optFloat(fs.LastRotateAngle))
}

func optFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
