package core

// TimeSpan is the visible window size of the dial. Exactly one span is
// active at a time; switching spans rescales the angle-per-hour ratio
type TimeSpan int

const (
	Span6h TimeSpan = iota
	Span12h
	Span24h
	Span3d
	Span7d
)

// spanSpec holds the per-span values that every angle-dependent
// computation needs, so the span switch lives in one table instead of
// being repeated in each function
type spanSpec struct {
	hours        float64
	tickInterval float64 // hours between minor tick markers
	label        string
}

var spanTable = [...]spanSpec{
	Span6h:  {hours: 6, tickInterval: 1, label: "6H"},
	Span12h: {hours: 12, tickInterval: 2, label: "12H"},
	Span24h: {hours: 24, tickInterval: 3, label: "24H"},
	Span3d:  {hours: 72, tickInterval: 6, label: "3D"},
	Span7d:  {hours: 168, tickInterval: 12, label: "7D"},
}

// Spans lists all selectable windows in display order
var Spans = []TimeSpan{Span6h, Span12h, Span24h, Span3d, Span7d}

// Hours returns the total hours covered by one full revolution
func (s TimeSpan) Hours() float64 {
	return spanTable[s.index()].hours
}

// TickInterval returns hours between minor tick markers
func (s TimeSpan) TickInterval() float64 {
	return spanTable[s.index()].tickInterval
}

// Label returns the short display label
func (s TimeSpan) Label() string {
	return spanTable[s.index()].label
}

// MultiDay reports whether the span covers more than one calendar day
func (s TimeSpan) MultiDay() bool {
	return s.Hours() > 24
}

// Days returns the number of whole days the span covers (1 for sub-day)
func (s TimeSpan) Days() int {
	d := int(s.Hours()) / 24
	if d < 1 {
		d = 1
	}
	return d
}

func (s TimeSpan) index() int {
	if s < Span6h || s > Span7d {
		return int(Span24h)
	}
	return int(s)
}
