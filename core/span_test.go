package core

import "testing"

func TestSpanTable(t *testing.T) {
	cases := []struct {
		span  TimeSpan
		hours float64
		tick  float64
		label string
		days  int
	}{
		{Span6h, 6, 1, "6H", 1},
		{Span12h, 12, 2, "12H", 1},
		{Span24h, 24, 3, "24H", 1},
		{Span3d, 72, 6, "3D", 3},
		{Span7d, 168, 12, "7D", 7},
	}
	for _, c := range cases {
		if got := c.span.Hours(); got != c.hours {
			t.Errorf("%s: hours %v, want %v", c.label, got, c.hours)
		}
		if got := c.span.TickInterval(); got != c.tick {
			t.Errorf("%s: tick interval %v, want %v", c.label, got, c.tick)
		}
		if got := c.span.Label(); got != c.label {
			t.Errorf("label %q, want %q", got, c.label)
		}
		if got := c.span.Days(); got != c.days {
			t.Errorf("%s: days %d, want %d", c.label, got, c.days)
		}
	}
}

func TestMultiDay(t *testing.T) {
	for _, s := range []TimeSpan{Span6h, Span12h, Span24h} {
		if s.MultiDay() {
			t.Errorf("%s reported multi-day", s.Label())
		}
	}
	for _, s := range []TimeSpan{Span3d, Span7d} {
		if !s.MultiDay() {
			t.Errorf("%s not reported multi-day", s.Label())
		}
	}
}

func TestOutOfRangeSpanFallsBack(t *testing.T) {
	bad := TimeSpan(99)
	if got := bad.Hours(); got != 24 {
		t.Errorf("out-of-range span hours %v, want 24h fallback", got)
	}
}

func TestSlotZero(t *testing.T) {
	var s Slot
	if !s.Zero() {
		t.Error("zero slot not reported as zero")
	}
	if (Slot{InteractionID: "x"}).Zero() {
		t.Error("populated slot reported as zero")
	}
}
