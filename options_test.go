package gesture

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.SwipeThreshold != 50 || o.PinchThreshold != 0.1 || o.RotateThreshold != 15 {
		t.Errorf("thresholds = %v %v %v", o.SwipeThreshold, o.PinchThreshold, o.RotateThreshold)
	}
	if o.LongPressDelay != 500*time.Millisecond || o.DoubleTapDelay != 300*time.Millisecond {
		t.Errorf("delays = %v %v", o.LongPressDelay, o.DoubleTapDelay)
	}
	if o.PreventDefaultTouchEvents {
		t.Error("PreventDefaultTouchEvents should default to false")
	}
	if o.Logger == nil {
		t.Error("Logger should default to the standard logger")
	}
}

func TestOptionsPartialOverride(t *testing.T) {
	rec := New(Options{SwipeThreshold: 80, Scheduler: NewManualScheduler(epoch)}, Handlers{})
	o := rec.Options()
	if o.SwipeThreshold != 80 {
		t.Errorf("SwipeThreshold = %v, want 80", o.SwipeThreshold)
	}
	if o.LongPressDelay != DefaultLongPressDelay {
		t.Errorf("LongPressDelay = %v, want default", o.LongPressDelay)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"zero", Options{}, true},
		{"custom", Options{SwipeThreshold: 10, LongPressDelay: time.Second}, true},
		{"negative swipe", Options{SwipeThreshold: -1}, false},
		{"nan pinch", Options{PinchThreshold: math.NaN()}, false},
		{"inf rotate", Options{RotateThreshold: math.Inf(1)}, false},
		{"negative long-press", Options{LongPressDelay: -time.Millisecond}, false},
		{"negative double-tap", Options{DoubleTapDelay: -time.Millisecond}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidOptions) {
				t.Fatalf("Validate = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if LongPressArmed.String() != "armed" || LongPressPhase(9).String() != "unknown" {
		t.Error("unexpected LongPressPhase names")
	}
}
