package gesture

import "math"

// Distance returns the Euclidean distance between two contacts.
func Distance(a, b Contact) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Angle returns the angle of the line from a to b in degrees, in the range
// (-180, 180]. With Y increasing downward, positive angles turn clockwise.
func Angle(a, b Contact) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}

// Midpoint returns the point halfway between two contacts.
func Midpoint(a, b Contact) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
