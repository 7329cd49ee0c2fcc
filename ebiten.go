package gesture

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// MouseContactID is the contact ID used for the mouse when
// EbitenSurfaceConfig.EmulateTouchWithMouse is set. Real touch IDs are
// never negative.
const MouseContactID = -1

// EbitenSurfaceConfig configures an EbitenSurface.
type EbitenSurfaceConfig struct {
	// EmulateTouchWithMouse reports the cursor as a contact while the left
	// mouse button is held, so gestures can be exercised on desktop.
	EmulateTouchWithMouse bool
	// ScreenToWorld optionally converts screen pixels to the coordinate
	// space the recognizer should see (for example a camera transform).
	ScreenToWorld func(x, y float64) (float64, float64)
}

// EbitenFrame is the raw event attached to notifications from an
// EbitenSurface.
type EbitenFrame struct {
	Frame    uint64           // update counter since the surface was created
	Pressed  []ebiten.TouchID // touch IDs that landed this frame
	Released []ebiten.TouchID // touch IDs that lifted this frame
}

// touchSource is the part of ebiten's input API the surface polls.
type touchSource interface {
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	CursorPosition() (int, int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
}

type ebitenInput struct{}

func (ebitenInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenInput) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenInput) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

// EbitenSurface polls Ebitengine touch input once per frame and converts the
// difference from the previous frame into notifications. Call Update from the
// game's Update method, before the recognizer's own Update.
type EbitenSurface struct {
	Listeners
	cfg    EbitenSurfaceConfig
	source touchSource

	frame    uint64
	ids      []ebiten.TouchID
	prev     []Contact
	contacts []Contact
}

// NewEbitenSurface creates a surface reading ebiten's global input state.
func NewEbitenSurface(cfg EbitenSurfaceConfig) *EbitenSurface {
	return newEbitenSurface(cfg, ebitenInput{})
}

func newEbitenSurface(cfg EbitenSurfaceConfig, src touchSource) *EbitenSurface {
	return &EbitenSurface{cfg: cfg, source: src}
}

// Contacts returns the contacts seen on the most recent Update. The returned
// slice MUST NOT be mutated.
func (s *EbitenSurface) Contacts() []Contact {
	return s.contacts
}

// Update polls input and broadcasts this frame's notifications in order: a
// move when a finger that stayed down moved (carrying only those fingers), an
// end when fingers lifted (carrying the fingers that stay down), then a start
// when fingers landed.
func (s *EbitenSurface) Update() {
	s.frame++
	s.prev = append(s.prev[:0], s.contacts...)
	s.contacts = s.read(s.contacts[:0])

	var pressed, released []ebiten.TouchID
	moved := false
	for _, c := range s.contacts {
		p, ok := findContact(s.prev, c.ID)
		if !ok {
			pressed = appendTouchID(pressed, c.ID)
		} else if p.X != c.X || p.Y != c.Y {
			moved = true
		}
	}
	for _, p := range s.prev {
		if _, ok := findContact(s.contacts, p.ID); !ok {
			released = appendTouchID(released, p.ID)
		}
	}

	ev := &EbitenFrame{Frame: s.frame, Pressed: pressed, Released: released}
	current := append([]Contact(nil), s.contacts...)
	survivors := withoutTouchIDs(current, pressed)
	if moved {
		s.Move(survivors, ev)
	}
	if len(released) > 0 {
		s.End(survivors, ev)
	}
	if len(pressed) > 0 {
		s.Start(current, ev)
	}
}

// read collects every active contact, touch IDs first in ebiten's order.
func (s *EbitenSurface) read(dst []Contact) []Contact {
	s.ids = s.source.AppendTouchIDs(s.ids[:0])
	for _, id := range s.ids {
		x, y := s.source.TouchPosition(id)
		dst = append(dst, s.contact(int(id), x, y))
	}
	if s.cfg.EmulateTouchWithMouse && s.source.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := s.source.CursorPosition()
		dst = append(dst, s.contact(MouseContactID, x, y))
	}
	return dst
}

func (s *EbitenSurface) contact(id, x, y int) Contact {
	wx, wy := float64(x), float64(y)
	if s.cfg.ScreenToWorld != nil {
		wx, wy = s.cfg.ScreenToWorld(wx, wy)
	}
	return Contact{ID: id, X: wx, Y: wy}
}

func withoutTouchIDs(cs []Contact, ids []ebiten.TouchID) []Contact {
	out := make([]Contact, 0, len(cs))
	for _, c := range cs {
		skip := false
		for _, id := range ids {
			if int(id) == c.ID {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, c)
		}
	}
	return out
}

func findContact(cs []Contact, id int) (Contact, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// appendTouchID records a contact ID as an ebiten.TouchID. The mouse
// contact is reported with its sentinel ID.
func appendTouchID(ids []ebiten.TouchID, id int) []ebiten.TouchID {
	return append(ids, ebiten.TouchID(id))
}
