package gesture

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Script step actions.
const (
	ActionStart  = "start"  // contacts land (Contacts)
	ActionMove   = "move"   // contacts move to Contacts
	ActionEnd    = "end"    // contacts in IDs lift (all when empty)
	ActionWait   = "wait"   // advance the clock by Ms
	ActionTap    = "tap"    // press at X,Y, hold Ms, release
	ActionSwipe  = "swipe"  // press at From, Steps moves to To over Ms, release
	ActionPinch  = "pinch"  // two fingers around Center from FromDistance to ToDistance
	ActionRotate = "rotate" // two fingers on a Radius circle from FromAngle to ToAngle
)

const (
	defaultTapHold       = 50 * time.Millisecond
	defaultGestureLength = 100 * time.Millisecond
	defaultGestureSteps  = 5
)

// ScriptStep is a single action in a gesture script.
type ScriptStep struct {
	Action   string    `json:"action" yaml:"action"`
	Contacts []Contact `json:"contacts,omitempty" yaml:"contacts,omitempty"`
	IDs      []int     `json:"ids,omitempty" yaml:"ids,omitempty"`

	X    float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y    float64 `json:"y,omitempty" yaml:"y,omitempty"`
	From Point   `json:"from,omitempty" yaml:"from,omitempty"`
	To   Point   `json:"to,omitempty" yaml:"to,omitempty"`

	Center       Point   `json:"center,omitempty" yaml:"center,omitempty"`
	Radius       float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	FromDistance float64 `json:"fromDistance,omitempty" yaml:"fromDistance,omitempty"`
	ToDistance   float64 `json:"toDistance,omitempty" yaml:"toDistance,omitempty"`
	FromAngle    float64 `json:"fromAngle,omitempty" yaml:"fromAngle,omitempty"`
	ToAngle      float64 `json:"toAngle,omitempty" yaml:"toAngle,omitempty"`

	Steps int `json:"steps,omitempty" yaml:"steps,omitempty"`
	Ms    int `json:"ms,omitempty" yaml:"ms,omitempty"`
}

// Validate checks that the step names a known action with usable parameters.
func (st ScriptStep) Validate() error {
	if st.Ms < 0 {
		return fmt.Errorf("%s: ms must not be negative", st.Action)
	}
	if st.Steps < 0 {
		return fmt.Errorf("%s: steps must not be negative", st.Action)
	}
	switch st.Action {
	case ActionStart:
		if len(st.Contacts) == 0 {
			return fmt.Errorf("start: at least one contact is required")
		}
	case ActionMove, ActionEnd, ActionWait, ActionTap, ActionSwipe:
	case ActionPinch:
		if st.FromDistance <= 0 || st.ToDistance < 0 {
			return fmt.Errorf("pinch: fromDistance must be positive and toDistance non-negative")
		}
	case ActionRotate:
		if st.Radius <= 0 {
			return fmt.Errorf("rotate: radius must be positive")
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func (st ScriptStep) duration(def time.Duration) time.Duration {
	if st.Ms > 0 {
		return time.Duration(st.Ms) * time.Millisecond
	}
	return def
}

func (st ScriptStep) moveCount() int {
	if st.Steps > 0 {
		return st.Steps
	}
	return defaultGestureSteps
}

// Script is the top-level structure of a gesture script.
type Script struct {
	Steps []ScriptStep `json:"steps" yaml:"steps"`
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script Script
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Validate checks every step.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// ScriptRunner plays a Script into an InjectSurface, moving a
// ManualScheduler's clock between notifications so timer-driven gestures
// (long-press, double-tap windows) replay deterministically.
type ScriptRunner struct {
	steps   []ScriptStep
	cursor  int
	surface *InjectSurface
	sched   *ManualScheduler
}

// NewScriptRunner creates a runner. Recognizers that should observe the
// script must be attached to surface and use sched as their Scheduler.
func NewScriptRunner(script *Script, surface *InjectSurface, sched *ManualScheduler) *ScriptRunner {
	return &ScriptRunner{steps: script.Steps, surface: surface, sched: sched}
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.cursor >= len(r.steps)
}

// Cursor returns the number of steps executed so far.
func (r *ScriptRunner) Cursor() int {
	return r.cursor
}

// Run executes all remaining steps.
func (r *ScriptRunner) Run() {
	for r.Step() {
	}
}

// Step executes the next step. It returns false once the script is done.
func (r *ScriptRunner) Step() bool {
	if r.Done() {
		return false
	}
	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case ActionStart:
		r.surface.InjectStart(st.Contacts...)
	case ActionMove:
		r.surface.InjectMove(st.Contacts...)
	case ActionEnd:
		r.surface.InjectEnd(st.IDs...)
	case ActionWait:
		r.sched.Advance(st.duration(0))
	case ActionTap:
		r.surface.InjectStart(Contact{ID: 1, X: st.X, Y: st.Y})
		r.sched.Advance(st.duration(defaultTapHold))
		r.surface.InjectEnd()
	case ActionSwipe:
		r.swipe(st)
	case ActionPinch:
		r.twoFinger(st, func(t float64) (Contact, Contact) {
			d := st.FromDistance + (st.ToDistance-st.FromDistance)*t
			return Contact{ID: 1, X: st.Center.X - d/2, Y: st.Center.Y},
				Contact{ID: 2, X: st.Center.X + d/2, Y: st.Center.Y}
		})
	case ActionRotate:
		r.twoFinger(st, func(t float64) (Contact, Contact) {
			deg := st.FromAngle + (st.ToAngle-st.FromAngle)*t
			rad := deg * math.Pi / 180
			dx := st.Radius * math.Cos(rad)
			dy := st.Radius * math.Sin(rad)
			return Contact{ID: 1, X: st.Center.X - dx, Y: st.Center.Y - dy},
				Contact{ID: 2, X: st.Center.X + dx, Y: st.Center.Y + dy}
		})
	}
	return true
}

// swipe presses at From and moves in equal steps to To, then releases.
func (r *ScriptRunner) swipe(st ScriptStep) {
	n := st.moveCount()
	interval := st.duration(defaultGestureLength) / time.Duration(n)
	r.surface.InjectStart(Contact{ID: 1, X: st.From.X, Y: st.From.Y})
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		r.sched.Advance(interval)
		r.surface.InjectMove(Contact{
			ID: 1,
			X:  st.From.X + (st.To.X-st.From.X)*t,
			Y:  st.From.Y + (st.To.Y-st.From.Y)*t,
		})
	}
	r.surface.InjectEnd()
}

// twoFinger lands both fingers at pose(0) in one start notification, moves
// through pose(i/n), then lifts both.
func (r *ScriptRunner) twoFinger(st ScriptStep, pose func(t float64) (Contact, Contact)) {
	n := st.moveCount()
	interval := st.duration(defaultGestureLength) / time.Duration(n)
	a, b := pose(0)
	r.surface.InjectStart(a, b)
	for i := 1; i <= n; i++ {
		r.sched.Advance(interval)
		a, b = pose(float64(i) / float64(n))
		r.surface.InjectMove(a, b)
	}
	r.surface.InjectEnd()
}
