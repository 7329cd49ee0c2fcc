package gesture

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultSwipeThreshold  = 50.0                   // pixels
	DefaultPinchThreshold  = 0.1                    // deviation of scale from 1.0
	DefaultRotateThreshold = 15.0                   // degrees
	DefaultLongPressDelay  = 500 * time.Millisecond // hold time before a long-press
	DefaultDoubleTapDelay  = 300 * time.Millisecond // max gap between two taps

	// TapMaxDuration is the longest touch that still counts as a tap. It is
	// fixed and independent of DoubleTapDelay.
	TapMaxDuration = 300 * time.Millisecond
)

// ErrInvalidOptions is wrapped by every error returned from Options.Validate.
var ErrInvalidOptions = errors.New("invalid gesture options")

// Options configures a Recognizer. It is copied at construction and never
// changes afterwards. Zero or negative numeric fields take their defaults.
type Options struct {
	SwipeThreshold  float64       // minimum straight-line displacement for a swipe (px)
	PinchThreshold  float64       // minimum |scale-1| for a pinch
	RotateThreshold float64       // minimum |angle delta| for a rotation (degrees)
	LongPressDelay  time.Duration // hold time before a long-press fires
	DoubleTapDelay  time.Duration // maximum gap between taps for a double-tap

	// PreventDefaultTouchEvents calls PreventDefault on raw events that
	// implement DefaultPreventer.
	PreventDefaultTouchEvents bool

	// Scheduler drives the long-press timer and supplies timestamps. When nil
	// the recognizer owns a TimerQueue on the wall clock, polled by Update.
	Scheduler Scheduler

	// Logger receives debug output when Debug is set. Defaults to
	// logrus.StandardLogger().
	Logger logrus.FieldLogger
	Debug  bool
}

// DefaultOptions returns Options with every numeric field set to its default.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

// withDefaults fills zero-value fields.
func (o Options) withDefaults() Options {
	if !(o.SwipeThreshold > 0) {
		o.SwipeThreshold = DefaultSwipeThreshold
	}
	if !(o.PinchThreshold > 0) {
		o.PinchThreshold = DefaultPinchThreshold
	}
	if !(o.RotateThreshold > 0) {
		o.RotateThreshold = DefaultRotateThreshold
	}
	if o.LongPressDelay <= 0 {
		o.LongPressDelay = DefaultLongPressDelay
	}
	if o.DoubleTapDelay <= 0 {
		o.DoubleTapDelay = DefaultDoubleTapDelay
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}

// Validate reports negative or non-finite settings. Zero values are valid and
// mean "use the default".
func (o Options) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"swipe threshold", o.SwipeThreshold},
		{"pinch threshold", o.PinchThreshold},
		{"rotate threshold", o.RotateThreshold},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidOptions, c.name, c.v)
		}
		if c.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidOptions, c.name, c.v)
		}
	}
	if o.LongPressDelay < 0 {
		return fmt.Errorf("%w: long-press delay must not be negative, got %v", ErrInvalidOptions, o.LongPressDelay)
	}
	if o.DoubleTapDelay < 0 {
		return fmt.Errorf("%w: double-tap delay must not be negative, got %v", ErrInvalidOptions, o.DoubleTapDelay)
	}
	return nil
}
