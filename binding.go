package gesture

// TouchListener receives the three touch notification kinds. Each carries
// every contact still active after the change and the source's raw event,
// which is passed through to callbacks untouched.
type TouchListener interface {
	TouchStart(contacts []Contact, raw any)
	TouchMove(contacts []Contact, raw any)
	TouchEnd(contacts []Contact, raw any)
}

// Surface is an input source that listeners can be attached to.
// Implementations must be comparable (pointer types) so a Binding can tell
// whether it is being re-attached to the same surface.
type Surface interface {
	AddTouchListener(l TouchListener)
	RemoveTouchListener(l TouchListener)
}

// --- Listeners ---

// Listeners is a reusable listener set. Embed it in a surface type to
// satisfy Surface and use Start, Move and End to broadcast.
type Listeners struct {
	list []TouchListener
}

// AddTouchListener registers l. Adding a listener that is already registered
// is a no-op, so a surface never delivers a notification twice to the same
// listener.
func (ls *Listeners) AddTouchListener(l TouchListener) {
	for _, existing := range ls.list {
		if existing == l {
			return
		}
	}
	ls.list = append(ls.list, l)
}

// RemoveTouchListener unregisters l. Unknown listeners are ignored.
func (ls *Listeners) RemoveTouchListener(l TouchListener) {
	for i, existing := range ls.list {
		if existing == l {
			copy(ls.list[i:], ls.list[i+1:])
			ls.list[len(ls.list)-1] = nil
			ls.list = ls.list[:len(ls.list)-1]
			return
		}
	}
}

// Len returns the number of registered listeners.
func (ls *Listeners) Len() int {
	return len(ls.list)
}

// Start broadcasts a start notification.
func (ls *Listeners) Start(contacts []Contact, raw any) {
	for _, l := range ls.snapshot() {
		l.TouchStart(contacts, raw)
	}
}

// Move broadcasts a move notification.
func (ls *Listeners) Move(contacts []Contact, raw any) {
	for _, l := range ls.snapshot() {
		l.TouchMove(contacts, raw)
	}
}

// End broadcasts an end notification.
func (ls *Listeners) End(contacts []Contact, raw any) {
	for _, l := range ls.snapshot() {
		l.TouchEnd(contacts, raw)
	}
}

// snapshot copies the list so listeners may detach while being notified.
func (ls *Listeners) snapshot() []TouchListener {
	if len(ls.list) == 0 {
		return nil
	}
	return append([]TouchListener(nil), ls.list...)
}

// --- Binding ---

// Binding attaches a Recognizer to a Surface. It is gated by a touch
// capability flag supplied by the host: when false the binding never
// registers anything and the recognizer stays inert.
type Binding struct {
	rec     *Recognizer
	capable bool
	surface Surface
}

// NewBinding creates a binding for rec.
func NewBinding(rec *Recognizer, touchCapable bool) *Binding {
	return &Binding{rec: rec, capable: touchCapable}
}

// Recognizer returns the bound recognizer.
func (b *Binding) Recognizer() *Recognizer {
	return b.rec
}

// Attach registers the recognizer on s. A nil s detaches. Attaching to a
// different surface first detaches from the current one; attaching to the
// current surface again is a no-op.
func (b *Binding) Attach(s Surface) {
	if s == nil {
		b.Detach()
		return
	}
	if !b.capable {
		return
	}
	if b.surface == s {
		return
	}
	b.Detach()
	s.AddTouchListener(b.rec)
	b.surface = s
}

// Detach unregisters from the current surface and resets the recognizer, so
// a pending long-press can never fire against the torn-down session. Safe to
// call when not attached.
func (b *Binding) Detach() {
	if b.surface == nil {
		return
	}
	b.surface.RemoveTouchListener(b.rec)
	b.surface = nil
	b.rec.Reset()
}

// Attached reports whether the binding is currently registered on a surface.
func (b *Binding) Attached() bool {
	return b.surface != nil
}
