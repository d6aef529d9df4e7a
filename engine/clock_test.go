package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/timewheel/core"
	"github.com/lixenwraith/timewheel/vmath"
)

func TestAngleOffsetRoundTrip(t *testing.T) {
	for _, span := range core.Spans {
		c := NewClock(span)
		for _, frac := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.999} {
			offset := frac * span.Hours()
			got := c.OffsetForAngle(c.AngleForOffset(offset))
			if math.Abs(got-offset) > 1e-9 {
				t.Errorf("span %s: round trip of %v hours = %v", span.Label(), offset, got)
			}
		}
	}
}

func TestWindowStartMapsToNorth(t *testing.T) {
	for _, span := range core.Spans {
		c := NewClock(span)
		if a := c.AngleForOffset(0); !vmath.ApproxEqual(a, vmath.North) {
			t.Errorf("span %s: offset 0 maps to %v, want north %v", span.Label(), a, vmath.North)
		}
		// A full span wraps back to north
		a := vmath.NormalizeAngle(c.AngleForOffset(span.Hours()))
		if math.Abs(a-vmath.NormalizeAngle(vmath.North)) > 1e-9 {
			t.Errorf("span %s: full span maps to %v, want north", span.Label(), a)
		}
	}
}

func TestNineAMTwentyFourHour(t *testing.T) {
	// 09:00 in a 24h window starting at midnight
	c := NewClock(core.Span24h)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	at := day.Add(9 * time.Hour)

	want := (9.0*60/1440)*vmath.TwoPi - math.Pi/2
	got := c.AngleForTime(at, day)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("angle for 09:00 = %v, want %v", got, want)
	}
}

func TestSubDayWindowFlooring(t *testing.T) {
	cases := []struct {
		span  core.TimeSpan
		hour  float64
		start float64
	}{
		{core.Span6h, 0, 0},
		{core.Span6h, 5.99, 0},
		{core.Span6h, 6, 6},
		{core.Span6h, 14.5, 12},
		{core.Span6h, 23.9, 18},
		{core.Span12h, 11, 0},
		{core.Span12h, 12, 12},
		{core.Span24h, 17, 0},
		{core.Span7d, 17, 0},
	}
	for _, c := range cases {
		clock := NewClock(c.span)
		if got := clock.WindowStartHours(c.hour); got != c.start {
			t.Errorf("span %s hour %v: window start %v, want %v",
				c.span.Label(), c.hour, got, c.start)
		}
	}
}

func TestHoursPerRadian(t *testing.T) {
	c := NewClock(core.Span24h)
	want := 24.0 / vmath.TwoPi
	if got := c.HoursPerRadian(); math.Abs(got-want) > 1e-12 {
		t.Errorf("HoursPerRadian = %v, want %v", got, want)
	}
}
