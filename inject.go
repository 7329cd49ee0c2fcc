package gesture

// SyntheticEvent is the raw event attached to injected notifications.
type SyntheticEvent struct {
	Kind      string // "start", "move" or "end"
	Seq       int    // 1-based injection counter per surface
	Prevented bool   // set when a recognizer called PreventDefault
}

// PreventDefault records that a listener suppressed default handling.
func (e *SyntheticEvent) PreventDefault() {
	e.Prevented = true
}

// InjectSurface is a Surface driven by code instead of hardware. Each Inject
// call broadcasts one notification synchronously, the way a platform input
// source would, so tests, scripts and bridges can feed recognizers directly.
type InjectSurface struct {
	Listeners
	down []Contact
	seq  int
}

// NewInjectSurface creates an empty injection surface.
func NewInjectSurface() *InjectSurface {
	return &InjectSurface{}
}

// Contacts returns a copy of the contacts currently down.
func (s *InjectSurface) Contacts() []Contact {
	return append([]Contact(nil), s.down...)
}

// InjectStart adds contacts to the set that is down and broadcasts a start
// notification carrying the full set.
func (s *InjectSurface) InjectStart(added ...Contact) *SyntheticEvent {
	s.down = append(s.down, added...)
	ev := s.next("start")
	s.Start(s.Contacts(), ev)
	return ev
}

// InjectMove replaces the set that is down with contacts and broadcasts a
// move notification. Passing fewer contacts than are down simulates a finger
// lifting without its own end notification.
func (s *InjectSurface) InjectMove(contacts ...Contact) *SyntheticEvent {
	s.down = append(s.down[:0], contacts...)
	ev := s.next("move")
	s.Move(s.Contacts(), ev)
	return ev
}

// InjectEnd lifts the contacts with the given IDs (all of them when no IDs
// are given) and broadcasts an end notification carrying the remainder.
func (s *InjectSurface) InjectEnd(ids ...int) *SyntheticEvent {
	if len(ids) == 0 {
		s.down = s.down[:0]
	} else {
		kept := s.down[:0]
		for _, c := range s.down {
			if !containsID(ids, c.ID) {
				kept = append(kept, c)
			}
		}
		s.down = kept
	}
	ev := s.next("end")
	s.End(s.Contacts(), ev)
	return ev
}

func (s *InjectSurface) next(kind string) *SyntheticEvent {
	s.seq++
	return &SyntheticEvent{Kind: kind, Seq: s.seq}
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
