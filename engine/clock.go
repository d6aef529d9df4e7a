package engine

import (
	"time"

	"github.com/lixenwraith/timewheel/core"
	"github.com/lixenwraith/timewheel/vmath"
)

// Clock converts between wall-clock time and dial angle for one span.
// Pure math, no state beyond the span: the top of the dial (north,
// −π/2) is the start of the visible window, and one full clockwise
// revolution covers the span
type Clock struct {
	span core.TimeSpan
}

func NewClock(span core.TimeSpan) Clock {
	return Clock{span: span}
}

func (c Clock) Span() core.TimeSpan {
	return c.span
}

// AngleForOffset maps hours-from-window-start to a dial angle.
// Offset 0 maps exactly to north; offsets wrap every full span
func (c Clock) AngleForOffset(hours float64) float64 {
	return (hours/c.span.Hours())*vmath.TwoPi + vmath.North
}

// OffsetForAngle is the inverse of AngleForOffset, returning
// hours-from-window-start in [0, span)
func (c Clock) OffsetForAngle(angle float64) float64 {
	return vmath.NormalizeAngle(angle-vmath.North) / vmath.TwoPi * c.span.Hours()
}

// AngleForTime maps an absolute time to a dial angle given the start
// of the visible window
func (c Clock) AngleForTime(t, windowStart time.Time) float64 {
	return c.AngleForOffset(t.Sub(windowStart).Hours())
}

// WindowStartHours returns the start hour of the sub-day window
// containing the given hour of day: for a 6h span, 0/6/12/18. Spans
// of a day or longer anchor at 0
func (c Clock) WindowStartHours(hourOfDay float64) float64 {
	h := c.span.Hours()
	if h >= 24 {
		return 0
	}
	n := int(hourOfDay / h)
	if hourOfDay < 0 {
		n--
	}
	return float64(n) * h
}

// HoursPerRadian returns the time-per-angle ratio of the active span
func (c Clock) HoursPerRadian() float64 {
	return c.span.Hours() / vmath.TwoPi
}
