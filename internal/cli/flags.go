package cli

import (
	"time"

	"github.com/phanxgames/gesture"
	"github.com/spf13/pflag"
)

// recognizerFlags are the recognizer tuning flags shared by serve and watch.
type recognizerFlags struct {
	swipeThreshold  float64
	pinchThreshold  float64
	rotateThreshold float64
	longPressDelay  time.Duration
	doubleTapDelay  time.Duration
	debug           bool
}

func (f *recognizerFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.swipeThreshold, "swipe-threshold", gesture.DefaultSwipeThreshold, "minimum swipe displacement in pixels")
	fs.Float64Var(&f.pinchThreshold, "pinch-threshold", gesture.DefaultPinchThreshold, "minimum |scale-1| for a pinch")
	fs.Float64Var(&f.rotateThreshold, "rotate-threshold", gesture.DefaultRotateThreshold, "minimum rotation in degrees")
	fs.DurationVar(&f.longPressDelay, "long-press", gesture.DefaultLongPressDelay, "hold time before a long-press")
	fs.DurationVar(&f.doubleTapDelay, "double-tap", gesture.DefaultDoubleTapDelay, "maximum gap between taps of a double-tap")
	fs.BoolVar(&f.debug, "debug", false, "log every touch notification and gesture")
}

// options converts the flags, rejecting values the recognizer would refuse.
func (f *recognizerFlags) options() (gesture.Options, error) {
	opts := gesture.Options{
		SwipeThreshold:  f.swipeThreshold,
		PinchThreshold:  f.pinchThreshold,
		RotateThreshold: f.rotateThreshold,
		LongPressDelay:  f.longPressDelay,
		DoubleTapDelay:  f.doubleTapDelay,
		Debug:           f.debug,
	}
	if err := opts.Validate(); err != nil {
		return gesture.Options{}, WrapExitError(ExitCommandError, "invalid recognizer flags", err)
	}
	return opts, nil
}
