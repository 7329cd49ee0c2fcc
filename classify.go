package gesture

import "math"

// classifySwipe reports the dominant-axis direction of the displacement from
// origin to cur once it exceeds threshold pixels.
func classifySwipe(origin Point, cur Contact, threshold float64) (Direction, bool) {
	dx := cur.X - origin.X
	dy := cur.Y - origin.Y
	if math.Hypot(dx, dy) <= threshold {
		return DirectionNone, false
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return DirectionRight, true
		}
		return DirectionLeft, true
	}
	if dy > 0 {
		return DirectionDown, true
	}
	return DirectionUp, true
}

// classifyPinch compares the current two-finger distance with the baseline.
// A zero baseline (both fingers landed on the same pixel) never pinches.
func classifyPinch(baselineDist float64, a, b Contact, threshold float64) (float64, PinchType, bool) {
	if baselineDist <= 0 {
		return 0, PinchIn, false
	}
	scale := Distance(a, b) / baselineDist
	if math.Abs(scale-1) <= threshold {
		return scale, PinchIn, false
	}
	if scale > 1 {
		return scale, PinchOut, true
	}
	return scale, PinchIn, true
}

// classifyRotate returns the signed angle delta from the baseline in degrees.
// The delta is not wrapped to ±180.
func classifyRotate(baselineAngle float64, a, b Contact, threshold float64) (float64, bool) {
	delta := Angle(a, b) - baselineAngle
	if math.Abs(delta) <= threshold {
		return delta, false
	}
	return delta, true
}
