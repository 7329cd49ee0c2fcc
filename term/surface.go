// Package term turns tcell mouse input into touch notifications so gestures
// can be exercised from a terminal.
//
// The left button is a finger. Holding Ctrl while pressing adds a second,
// mirrored finger so pinch and rotate can be produced with a single pointer.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/gesture"
)

const (
	DefaultCellWidth    = 8.0  // pixels per terminal column
	DefaultCellHeight   = 16.0 // pixels per terminal row
	DefaultMirrorRadius = 40.0 // pixels between the pointer and the mirror pivot
)

// Contact IDs used by the surface.
const (
	PointerID = 1
	MirrorID  = 2
)

// Config maps terminal cells to recognizer pixels.
type Config struct {
	CellWidth    float64
	CellHeight   float64
	MirrorRadius float64
}

func (c Config) withDefaults() Config {
	if c.CellWidth <= 0 {
		c.CellWidth = DefaultCellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = DefaultCellHeight
	}
	if c.MirrorRadius <= 0 {
		c.MirrorRadius = DefaultMirrorRadius
	}
	return c
}

// Surface is a gesture.Surface fed from tcell events. The screen must have
// mouse reporting enabled (screen.EnableMouse()).
type Surface struct {
	gesture.Listeners
	cfg Config

	down     bool
	mirrored bool
	pivot    gesture.Point
	last     gesture.Point
}

// NewSurface creates a surface.
func NewSurface(cfg Config) *Surface {
	return &Surface{cfg: cfg.withDefaults()}
}

// Pressed reports whether the pointer is currently down.
func (s *Surface) Pressed() bool {
	return s.down
}

// HandleEvent consumes a tcell event and reports whether it produced a
// notification. Non-mouse events are ignored.
func (s *Surface) HandleEvent(ev tcell.Event) bool {
	me, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	x, y := me.Position()
	p := s.toPixels(x, y)
	held := me.Buttons()&tcell.Button1 != 0

	switch {
	case held && !s.down:
		s.down = true
		s.mirrored = me.Modifiers()&tcell.ModCtrl != 0
		s.pivot = gesture.Point{X: p.X - s.cfg.MirrorRadius, Y: p.Y}
		s.last = p
		s.Start(s.contacts(p), me)
		return true
	case held && s.down:
		if p == s.last {
			return false
		}
		s.last = p
		s.Move(s.contacts(p), me)
		return true
	case !held && s.down:
		s.down = false
		s.mirrored = false
		s.End(nil, me)
		return true
	}
	return false
}

// contacts returns the pointer, plus its reflection through the pivot in
// mirrored mode.
func (s *Surface) contacts(p gesture.Point) []gesture.Contact {
	cs := []gesture.Contact{{ID: PointerID, X: p.X, Y: p.Y}}
	if s.mirrored {
		cs = append(cs, gesture.Contact{
			ID: MirrorID,
			X:  2*s.pivot.X - p.X,
			Y:  2*s.pivot.Y - p.Y,
		})
	}
	return cs
}

// toPixels maps a cell to the pixel at its center.
func (s *Surface) toPixels(x, y int) gesture.Point {
	return gesture.Point{
		X: (float64(x) + 0.5) * s.cfg.CellWidth,
		Y: (float64(y) + 0.5) * s.cfg.CellHeight,
	}
}
