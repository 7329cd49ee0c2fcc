package gesture

// LongPressPhase is the long-press branch of the timing state machine.
type LongPressPhase uint8

const (
	LongPressIdle  LongPressPhase = iota // no timer armed
	LongPressArmed                       // timer pending since touch start
	LongPressFired                       // timer fired; cleared on touch end
)

func (p LongPressPhase) String() string {
	switch p {
	case LongPressIdle:
		return "idle"
	case LongPressArmed:
		return "armed"
	case LongPressFired:
		return "fired"
	default:
		return "unknown"
	}
}

// State is the observable snapshot of a Recognizer. The "is" flags describe
// the current session and are reset on every touch end; the Last fields hold
// the most recently observed values and survive touch end.
type State struct {
	Swiping      bool
	Pinching     bool
	Rotating     bool
	LongPressing bool

	LastSwipe       Direction // DirectionNone until a swipe is observed
	LastPinchScale  float64   // valid when HasPinchScale
	HasPinchScale   bool
	LastRotateAngle float64 // valid when HasRotateAngle
	HasRotateAngle  bool

	LongPress LongPressPhase
}

// Idle reports whether no gesture is currently in progress.
func (s State) Idle() bool {
	return !s.Swiping && !s.Pinching && !s.Rotating && !s.LongPressing
}

// resetActive clears the per-session flags, keeping Last* values.
func (s *State) resetActive() {
	s.Swiping = false
	s.Pinching = false
	s.Rotating = false
	s.LongPressing = false
	s.LongPress = LongPressIdle
}
