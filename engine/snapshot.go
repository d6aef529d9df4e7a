package engine

import (
	"time"

	"github.com/lixenwraith/timewheel/core"
	"github.com/lixenwraith/timewheel/vmath"
)

// SlotRender is one avatar ready to draw: rotation applied, angle
// wrapped to [0, 2π)
type SlotRender struct {
	Slot        core.Slot
	Participant string
	Category    string
	Angle       float64
	Radius      float64
}

// ArcRender is one duration arc ready to draw, rotation applied
type ArcRender struct {
	InteractionID string
	Category      string
	Start         float64
	End           float64
}

// Snapshot is the pull-based render state queried once per frame.
// It is a value copy; holding one across frames never observes
// later mutations
type Snapshot struct {
	Span     core.TimeSpan
	Rotation float64 // wrapped to [0, 2π) for rendering
	Velocity float64
	Dragging bool

	Date        time.Time
	CursorHours float64
	CursorTime  time.Time
	CursorLabel string
	WindowStart time.Time

	Slots     []SlotRender
	Arcs      []ArcRender
	Selection core.SelectionView
}

// Snapshot captures the current engine state for rendering
func (e *Engine) Snapshot() Snapshot {
	cursorTime := e.TimeUnderNorth()

	s := Snapshot{
		Span:        e.span,
		Rotation:    vmath.NormalizeAngle(e.rot.angle),
		Velocity:    e.rot.velocity,
		Dragging:    e.rot.dragging,
		Date:        e.date,
		CursorHours: e.cursor,
		CursorTime:  cursorTime,
		CursorLabel: cursorLabel(cursorTime, e.span),
		WindowStart: e.windowStart,
		Selection:   e.sel.view(),
	}

	s.Slots = make([]SlotRender, len(e.slots))
	for i, sl := range e.slots {
		s.Slots[i] = SlotRender{
			Slot:        sl.Slot,
			Participant: sl.Participant,
			Category:    sl.Category,
			Angle:       vmath.NormalizeAngle(sl.BaseAngle + e.rot.angle),
			Radius:      sl.Radius,
		}
	}

	s.Arcs = make([]ArcRender, len(e.arcs))
	for i, a := range e.arcs {
		s.Arcs[i] = ArcRender{
			InteractionID: a.InteractionID,
			Category:      a.Category,
			Start:         vmath.NormalizeAngle(a.Start + e.rot.angle),
			End:           vmath.NormalizeAngle(a.End + e.rot.angle),
		}
	}
	return s
}

// Interaction returns the interaction backing a slot, for detail
// display of a locked selection
func (e *Engine) Interaction(id string) (core.Interaction, bool) {
	for _, it := range e.interactions {
		if it.ID == id {
			return it, true
		}
	}
	return core.Interaction{}, false
}

func cursorLabel(t time.Time, span core.TimeSpan) string {
	if span.MultiDay() {
		return t.Format("Mon 15:04")
	}
	return t.Format("15:04")
}
