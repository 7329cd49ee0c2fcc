package gesture

// Handlers is the set of optional callbacks passed to New. Each receives the
// classified result plus the raw event of the notification that produced it.
type Handlers struct {
	OnSwipe     func(dir Direction, raw any)
	OnPinch     func(scale float64, kind PinchType, raw any)
	OnRotate    func(angle float64, raw any)
	OnTap       func(raw any)
	OnDoubleTap func(raw any)
	OnLongPress func(raw any)
}

// --- Handler registry ---

type handlerEntry[F any] struct {
	id uint32
	fn F
}

type handlerRegistry struct {
	swipe     []handlerEntry[func(Direction, any)]
	pinch     []handlerEntry[func(float64, PinchType, any)]
	rotate    []handlerEntry[func(float64, any)]
	tap       []handlerEntry[func(any)]
	doubleTap []handlerEntry[func(any)]
	longPress []handlerEntry[func(any)]
	nextID    uint32
}

// CallbackHandle allows removing a callback registered on a Recognizer.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice is
// a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSwipe:
		h.reg.swipe = removeHandler(h.reg.swipe, h.id)
	case EventPinch:
		h.reg.pinch = removeHandler(h.reg.pinch, h.id)
	case EventRotate:
		h.reg.rotate = removeHandler(h.reg.rotate, h.id)
	case EventTap:
		h.reg.tap = removeHandler(h.reg.tap, h.id)
	case EventDoubleTap:
		h.reg.doubleTap = removeHandler(h.reg.doubleTap, h.id)
	case EventLongPress:
		h.reg.longPress = removeHandler(h.reg.longPress, h.id)
	}
}

func removeHandler[F any](s []handlerEntry[F], id uint32) []handlerEntry[F] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handlerEntry[F]{}
			return s[:len(s)-1]
		}
	}
	return s
}

func addHandler[F any](reg *handlerRegistry, s *[]handlerEntry[F], fn F, event EventType) CallbackHandle {
	reg.nextID++
	id := reg.nextID
	*s = append(*s, handlerEntry[F]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: reg, event: event}
}

// --- Recognizer-level registration ---

// OnSwipe registers an additional swipe callback.
func (r *Recognizer) OnSwipe(fn func(dir Direction, raw any)) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.swipe, fn, EventSwipe)
}

// OnPinch registers an additional pinch callback.
func (r *Recognizer) OnPinch(fn func(scale float64, kind PinchType, raw any)) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.pinch, fn, EventPinch)
}

// OnRotate registers an additional rotate callback.
func (r *Recognizer) OnRotate(fn func(angle float64, raw any)) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.rotate, fn, EventRotate)
}

// OnTap registers an additional tap callback.
func (r *Recognizer) OnTap(fn func(raw any)) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.tap, fn, EventTap)
}

// OnDoubleTap registers an additional double-tap callback.
func (r *Recognizer) OnDoubleTap(fn func(raw any)) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.doubleTap, fn, EventDoubleTap)
}

// OnLongPress registers an additional long-press callback.
func (r *Recognizer) OnLongPress(fn func(raw any)) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.longPress, fn, EventLongPress)
}
