package gesture

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Recognizer turns touch notifications into gestures. It owns one touch
// session, one long-press timer and one State snapshot; separate recognizers
// share nothing.
//
// A Recognizer is not safe for concurrent use. Notifications, Update and
// scheduler callbacks must all run on the same goroutine.
type Recognizer struct {
	opts     Options
	sched    Scheduler
	cb       Handlers
	handlers handlerRegistry
	sink     EventSink

	session touchSession
	state   State

	longPress Timer
	// gen is bumped whenever a session ends so a timer callback that
	// outlived its session can tell.
	gen uint64

	lastTap   time.Time
	hasTapped bool

	debug bool
	log   logrus.FieldLogger
}

// New creates a recognizer with the given options and handlers.
func New(opts Options, h Handlers) *Recognizer {
	opts = opts.withDefaults()
	sched := opts.Scheduler
	if sched == nil {
		sched = NewTimerQueue(nil)
	}
	return &Recognizer{
		opts:  opts,
		sched: sched,
		cb:    h,
		debug: opts.Debug,
		log:   opts.Logger.WithField("component", "gesture"),
	}
}

// Options returns the effective options, with defaults applied.
func (r *Recognizer) Options() Options {
	return r.opts
}

// Scheduler returns the scheduler driving the long-press timer.
func (r *Recognizer) Scheduler() Scheduler {
	return r.sched
}

// State returns a snapshot of the current gesture state.
func (r *Recognizer) State() State {
	return r.state
}

// SetEventSink sets the optional event forwarder. Pass nil to remove it.
func (r *Recognizer) SetEventSink(sink EventSink) {
	r.sink = sink
}

// SetDebugMode enables or disables debug logging of every notification and
// recognized gesture.
func (r *Recognizer) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// Update runs due timer callbacks when the scheduler is a Poller. Call it
// once per frame from the host's update loop.
func (r *Recognizer) Update() {
	if p, ok := r.sched.(Poller); ok {
		p.Poll()
	}
}

// Reset cancels any pending long-press, discards the session and clears the
// in-progress flags. Last* values and the previous tap time are kept.
func (r *Recognizer) Reset() {
	r.cancelLongPress()
	r.session.clear()
	r.gen++
	r.state.resetActive()
}

// --- Notifications ---

// TouchStart handles a contact landing. The first start opens a session and
// arms the long-press timer; a start while a session is open (another finger
// joining) only refreshes the contacts.
func (r *Recognizer) TouchStart(contacts []Contact, raw any) {
	r.preventDefault(raw)
	r.debugNotification("start", contacts)

	if r.session.active {
		r.session.update(contacts)
		return
	}
	if len(contacts) == 0 {
		return
	}
	r.session.start(contacts, r.sched.Now())
	r.armLongPress(raw)
}

// TouchMove handles contacts moving. Any move cancels a pending long-press,
// regardless of distance.
func (r *Recognizer) TouchMove(contacts []Contact, raw any) {
	r.preventDefault(raw)
	r.debugNotification("move", contacts)

	r.cancelLongPress()
	if !r.session.active {
		return
	}
	r.session.update(contacts)
	if len(contacts) == 0 {
		return
	}
	r.classify(contacts, raw)
}

// TouchEnd handles contacts lifting. contacts lists the fingers still down.
// Every end resets the in-progress flags; only the last lift closes the
// session and runs tap detection.
func (r *Recognizer) TouchEnd(contacts []Contact, raw any) {
	r.preventDefault(raw)
	r.debugNotification("end", contacts)

	r.cancelLongPress()
	r.state.resetActive()
	if !r.session.active {
		return
	}
	if len(contacts) > 0 {
		r.session.update(contacts)
		return
	}

	now := r.sched.Now()
	duration := now.Sub(r.session.startTime)
	origin := r.session.origin
	r.session.clear()
	r.gen++

	if duration >= TapMaxDuration {
		return
	}
	r.emit(Event{Type: EventTap, Center: origin, Raw: raw})
	if r.hasTapped && now.Sub(r.lastTap) < r.opts.DoubleTapDelay {
		r.emit(Event{Type: EventDoubleTap, Center: origin, Raw: raw})
	}
	r.lastTap = now
	r.hasTapped = true
}

// --- Classification ---

// classify runs swipe, then pinch, then rotate. Kinds do not suppress each
// other; pinch and rotate fire on every notification above threshold while
// swipe fires once per session.
func (r *Recognizer) classify(contacts []Contact, raw any) {
	primary := contacts[0]
	if !r.session.swiped {
		if dir, ok := classifySwipe(r.session.origin, primary, r.opts.SwipeThreshold); ok {
			r.session.swiped = true
			r.state.Swiping = true
			r.state.LastSwipe = dir
			r.emit(Event{Type: EventSwipe, Direction: dir, Center: primary.Point(), Contacts: len(contacts), Raw: raw})
		}
	}

	if len(contacts) < 2 || !r.session.hasBaseline {
		return
	}
	a, b := contacts[0], contacts[1]
	center := Midpoint(a, b)

	if scale, kind, ok := classifyPinch(r.session.baselineDist, a, b, r.opts.PinchThreshold); ok {
		r.state.Pinching = true
		r.state.LastPinchScale = scale
		r.state.HasPinchScale = true
		r.emit(Event{Type: EventPinch, Scale: scale, Pinch: kind, Center: center, Contacts: len(contacts), Raw: raw})
	}
	if delta, ok := classifyRotate(r.session.baselineAngle, a, b, r.opts.RotateThreshold); ok {
		r.state.Rotating = true
		r.state.LastRotateAngle = delta
		r.state.HasRotateAngle = true
		r.emit(Event{Type: EventRotate, Angle: delta, Center: center, Contacts: len(contacts), Raw: raw})
	}
}

// --- Long-press timer ---

func (r *Recognizer) armLongPress(raw any) {
	r.cancelLongPress()
	gen := r.gen
	origin := r.session.origin
	r.state.LongPress = LongPressArmed
	r.longPress = r.sched.AfterFunc(r.opts.LongPressDelay, func() {
		if gen != r.gen || !r.session.active {
			return
		}
		r.longPress = nil
		r.state.LongPressing = true
		r.state.LongPress = LongPressFired
		r.emit(Event{Type: EventLongPress, Center: origin, Contacts: len(r.session.contacts), Raw: raw})
	})
}

// cancelLongPress stops a pending long-press. Safe to call at any time.
func (r *Recognizer) cancelLongPress() {
	if r.longPress != nil {
		r.longPress.Cancel()
		r.longPress = nil
	}
	if r.state.LongPress == LongPressArmed {
		r.state.LongPress = LongPressIdle
	}
}

// --- Dispatch ---

// emit invokes the matching Handlers callback, then registered callbacks,
// then the event sink.
func (r *Recognizer) emit(ev Event) {
	ev.At = r.sched.Now()
	r.debugEvent(ev)

	switch ev.Type {
	case EventSwipe:
		if r.cb.OnSwipe != nil {
			r.cb.OnSwipe(ev.Direction, ev.Raw)
		}
		for _, h := range r.handlers.swipe {
			h.fn(ev.Direction, ev.Raw)
		}
	case EventPinch:
		if r.cb.OnPinch != nil {
			r.cb.OnPinch(ev.Scale, ev.Pinch, ev.Raw)
		}
		for _, h := range r.handlers.pinch {
			h.fn(ev.Scale, ev.Pinch, ev.Raw)
		}
	case EventRotate:
		if r.cb.OnRotate != nil {
			r.cb.OnRotate(ev.Angle, ev.Raw)
		}
		for _, h := range r.handlers.rotate {
			h.fn(ev.Angle, ev.Raw)
		}
	case EventTap:
		if r.cb.OnTap != nil {
			r.cb.OnTap(ev.Raw)
		}
		for _, h := range r.handlers.tap {
			h.fn(ev.Raw)
		}
	case EventDoubleTap:
		if r.cb.OnDoubleTap != nil {
			r.cb.OnDoubleTap(ev.Raw)
		}
		for _, h := range r.handlers.doubleTap {
			h.fn(ev.Raw)
		}
	case EventLongPress:
		if r.cb.OnLongPress != nil {
			r.cb.OnLongPress(ev.Raw)
		}
		for _, h := range r.handlers.longPress {
			h.fn(ev.Raw)
		}
	}

	if r.sink != nil {
		r.sink.EmitEvent(ev)
	}
}

func (r *Recognizer) preventDefault(raw any) {
	if !r.opts.PreventDefaultTouchEvents {
		return
	}
	if p, ok := raw.(DefaultPreventer); ok {
		p.PreventDefault()
	}
}
