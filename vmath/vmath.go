package vmath

import "math"

const (
	TwoPi = 2 * math.Pi

	// North is the dial's fixed reference direction (straight up).
	// Angle 0 points east, positive angles run clockwise in screen space.
	North = -math.Pi / 2

	// Epsilon for angle and time comparisons; all boundary checks go
	// through ApproxEqual / ApproxZero rather than raw ==
	Epsilon = 1e-9
)

// NormalizeAngle wraps an angle to [0, 2π)
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// WrapPi wraps an angle to (−π, π]
func WrapPi(angle float64) float64 {
	a := math.Mod(angle+math.Pi, TwoPi)
	if a <= 0 {
		a += TwoPi
	}
	return a - math.Pi
}

// AngleDiff returns the minimal signed difference to−from in (−π, π]
func AngleDiff(from, to float64) float64 {
	return WrapPi(to - from)
}

// ApproxEqual reports whether a and b agree within Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// ApproxZero reports whether x is within Epsilon of zero
func ApproxZero(x float64) bool {
	return math.Abs(x) <= Epsilon
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
