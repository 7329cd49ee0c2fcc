package gesture

import (
	"github.com/sirupsen/logrus"
)

// debugNotification logs an incoming notification. Only active in debug mode.
func (r *Recognizer) debugNotification(kind string, contacts []Contact) {
	if !r.debug {
		return
	}
	r.log.WithFields(logrus.Fields{
		"notification": kind,
		"contacts":     len(contacts),
		"session":      r.session.active,
		"baseline":     r.session.hasBaseline,
	}).Info("touch")
}

// debugEvent logs a recognized gesture. Only active in debug mode.
func (r *Recognizer) debugEvent(ev Event) {
	if !r.debug {
		return
	}
	fields := logrus.Fields{"gesture": ev.Type.String()}
	switch ev.Type {
	case EventSwipe:
		fields["direction"] = ev.Direction.String()
	case EventPinch:
		fields["scale"] = ev.Scale
		fields["pinch"] = ev.Pinch.String()
	case EventRotate:
		fields["angle"] = ev.Angle
	}
	r.log.WithFields(fields).Info("recognized")
}
