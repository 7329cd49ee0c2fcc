package scenario

import (
	"fmt"
	"math"
	"strings"
)

// floatTolerance is the allowed difference for numeric final_state values.
const floatTolerance = 1e-6

// AssertionError is a failed assertion.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

func evaluate(a Assertion, r *Result) error {
	switch a.Type {
	case AssertEventCount:
		return assertEventCount(r.Trace, a)
	case AssertEventOrder:
		return assertEventOrder(r.Trace, a)
	case AssertNoEvent:
		return assertNoEvent(r.Trace, a)
	case AssertFinalState:
		return assertFinalState(r.Final, a)
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

func countEvents(trace []TraceEntry, event string) int {
	n := 0
	for _, e := range trace {
		if e.Event == event {
			n++
		}
	}
	return n
}

func assertEventCount(trace []TraceEntry, a Assertion) error {
	if n := countEvents(trace, a.Event); n != a.Count {
		return &AssertionError{
			Type:     AssertEventCount,
			Expected: fmt.Sprintf("%d %s", a.Count, a.Event),
			Actual:   fmt.Sprintf("%d", n),
		}
	}
	return nil
}

func assertNoEvent(trace []TraceEntry, a Assertion) error {
	for _, e := range trace {
		if e.Event == a.Event {
			return &AssertionError{
				Type:     AssertNoEvent,
				Expected: "no " + a.Event,
				Actual:   e.String(),
			}
		}
	}
	return nil
}

// assertEventOrder checks that Events is a subsequence of the trace.
func assertEventOrder(trace []TraceEntry, a Assertion) error {
	next := 0
	for _, e := range trace {
		if next < len(a.Events) && e.Event == a.Events[next] {
			next++
		}
	}
	if next == len(a.Events) {
		return nil
	}
	names := make([]string, len(trace))
	for i, e := range trace {
		names[i] = e.Event
	}
	return &AssertionError{
		Type:     AssertEventOrder,
		Expected: "[" + strings.Join(a.Events, " ") + "]",
		Actual:   "[" + strings.Join(names, " ") + "]",
	}
}

func assertFinalState(fs FinalState, a Assertion) error {
	actual := map[string]any{
		"swiping":       fs.Swiping,
		"pinching":      fs.Pinching,
		"rotating":      fs.Rotating,
		"long_pressing": fs.LongPressing,
		"last_swipe":    fs.LastSwipe,
	}
	if fs.LastPinchScale != nil {
		actual["last_pinch_scale"] = *fs.LastPinchScale
	}
	if fs.LastRotateAngle != nil {
		actual["last_rotate_angle"] = *fs.LastRotateAngle
	}

	for key, want := range a.State {
		got, ok := actual[key]
		if !ok {
			return &AssertionError{Type: AssertFinalState, Expected: fmt.Sprintf("%s=%v", key, want), Actual: "unset"}
		}
		if !valuesMatch(want, got) {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("%s=%v", key, want),
				Actual:   fmt.Sprintf("%s=%v", key, got),
			}
		}
	}
	return nil
}

// valuesMatch compares a decoded YAML value with an actual state value.
// Numbers compare with a small tolerance regardless of int/float form.
func valuesMatch(want, got any) bool {
	if g, ok := got.(float64); ok {
		w, ok := toFloat(want)
		return ok && math.Abs(w-g) <= floatTolerance
	}
	return want == got
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
