package vmath

import "math"

// PointerAngle returns the angle of point (px, py) relative to the dial
// center (cx, cy). Screen coordinates: y grows downward, so the result
// increases clockwise, matching the dial's rotation convention
func PointerAngle(cx, cy, px, py float64) float64 {
	return math.Atan2(py-cy, px-cx)
}

// PointerDelta returns the angular delta between two pointer positions
// around the dial center, normalized to (−π, π] so crossing the ±π
// boundary never produces a full-turn jump
func PointerDelta(cx, cy, prevX, prevY, curX, curY float64) float64 {
	prev := PointerAngle(cx, cy, prevX, prevY)
	cur := PointerAngle(cx, cy, curX, curY)
	return WrapPi(cur - prev)
}

// EaseOutCubic maps linear progress t in [0,1] to an eased value,
// fast at the start and settling at the end. Used for snap rotation
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}
