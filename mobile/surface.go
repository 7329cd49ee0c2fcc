// Package mobile adapts golang.org/x/mobile touch events to gesture
// notifications.
//
// x/mobile delivers one touch.Event per finger per change, while a
// recognizer expects every notification to carry the full set of active
// contacts. Surface keeps that set, keyed by touch sequence.
package mobile

import (
	"github.com/phanxgames/gesture"

	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/touch"
)

// Surface is a gesture.Surface fed from an x/mobile event loop.
//
//	case touch.Event:
//		surface.HandleTouch(e)
//	case lifecycle.Event:
//		surface.HandleLifecycle(e)
type Surface struct {
	gesture.Listeners

	// Scale converts x/mobile pixels into recognizer coordinates. Zero means 1.
	Scale float64

	down []gesture.Contact
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Contacts returns a copy of the contacts currently down.
func (s *Surface) Contacts() []gesture.Contact {
	return append([]gesture.Contact(nil), s.down...)
}

// HandleTouch applies one x/mobile touch event. It reports whether a
// notification was broadcast. A move for an unknown sequence, or one that
// does not change the position, is dropped. A repeated begin for a sequence
// already down is treated as a move.
func (s *Surface) HandleTouch(e touch.Event) bool {
	c := s.contact(e)
	i := s.index(c.ID)

	switch e.Type {
	case touch.TypeBegin:
		if i >= 0 {
			return s.move(i, c, e)
		}
		s.down = append(s.down, c)
		s.Start(s.Contacts(), e)
		return true
	case touch.TypeMove:
		if i < 0 {
			return false
		}
		return s.move(i, c, e)
	case touch.TypeEnd:
		if i < 0 {
			return false
		}
		s.down = append(s.down[:i], s.down[i+1:]...)
		s.End(s.Contacts(), e)
		return true
	}
	return false
}

// HandleLifecycle lifts every contact when the app loses focus. Platforms do
// not deliver TypeEnd for fingers that were down at that moment.
func (s *Surface) HandleLifecycle(e lifecycle.Event) bool {
	if e.Crosses(lifecycle.StageFocused) != lifecycle.CrossOff {
		return false
	}
	return s.Cancel(e)
}

// Cancel lifts every contact with a single end notification. It reports
// whether anything was down.
func (s *Surface) Cancel(raw any) bool {
	if len(s.down) == 0 {
		return false
	}
	s.down = s.down[:0]
	s.End(nil, raw)
	return true
}

func (s *Surface) move(i int, c gesture.Contact, e touch.Event) bool {
	if s.down[i] == c {
		return false
	}
	s.down[i] = c
	s.Move(s.Contacts(), e)
	return true
}

func (s *Surface) contact(e touch.Event) gesture.Contact {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	return gesture.Contact{
		ID: int(e.Sequence),
		X:  float64(e.X) * scale,
		Y:  float64(e.Y) * scale,
	}
}

func (s *Surface) index(id int) int {
	for i, c := range s.down {
		if c.ID == id {
			return i
		}
	}
	return -1
}
