package gesture

import "time"

// touchSession is the mutable record of one continuous interaction, from the
// first contact to the last release. It is owned by exactly one Recognizer.
type touchSession struct {
	active    bool
	origin    Point
	startTime time.Time
	contacts  []Contact

	// Two-finger baseline, captured the first time two contacts are down.
	// Never recomputed for the rest of the session.
	hasBaseline   bool
	baselineDist  float64
	baselineAngle float64

	swiped bool // a swipe was already emitted this session
}

// start opens the session. The start point is the first contact.
func (s *touchSession) start(contacts []Contact, now time.Time) {
	s.clear()
	s.active = true
	s.startTime = now
	if len(contacts) > 0 {
		s.origin = contacts[0].Point()
	}
	s.setContacts(contacts)
}

// update replaces the active contacts, capturing the baseline at the instant
// a second finger joins.
func (s *touchSession) update(contacts []Contact) {
	s.setContacts(contacts)
}

func (s *touchSession) setContacts(contacts []Contact) {
	s.contacts = append(s.contacts[:0], contacts...)
	if !s.hasBaseline && len(s.contacts) >= 2 {
		s.hasBaseline = true
		s.baselineDist = Distance(s.contacts[0], s.contacts[1])
		s.baselineAngle = Angle(s.contacts[0], s.contacts[1])
	}
}

func (s *touchSession) clear() {
	*s = touchSession{contacts: s.contacts[:0]}
}
