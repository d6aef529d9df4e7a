package engine

import (
	"time"

	"github.com/lixenwraith/timewheel/core"
	"github.com/lixenwraith/timewheel/parameter"
)

// SlotLayout is one avatar's placement before rotation is applied
type SlotLayout struct {
	Slot        core.Slot
	Participant string
	Category    string
	BaseAngle   float64 // radians, rotation not applied
	Radius      float64
}

// Arc is one interaction's duration indicator along the dial rim
type Arc struct {
	InteractionID string
	Category      string
	Start         float64 // radians at interaction start
	End           float64 // radians at interaction end
}

// computeLayout places every (interaction, participant-index) slot and
// every duration arc for the visible window. Participants of one
// interaction fan out clockwise from its start angle by a fixed
// per-index offset; overlapping interactions are not deconflicted
// beyond that
func computeLayout(items []core.Interaction, clock Clock, windowStart time.Time, p parameter.Engine) ([]SlotLayout, []Arc) {
	if len(items) == 0 {
		return nil, nil
	}

	overlap := p.OverlapAngle()
	slots := make([]SlotLayout, 0, len(items)*2)
	arcs := make([]Arc, 0, len(items))

	for _, it := range items {
		start := clock.AngleForTime(it.Start, windowStart)
		for i, name := range it.Participants {
			slots = append(slots, SlotLayout{
				Slot:        core.Slot{InteractionID: it.ID, ParticipantIndex: i},
				Participant: name,
				Category:    it.Category,
				BaseAngle:   start + float64(i)*overlap,
				Radius:      p.DialRadius,
			})
		}
		arcs = append(arcs, Arc{
			InteractionID: it.ID,
			Category:      it.Category,
			Start:         start,
			End:           clock.AngleForTime(it.End, windowStart),
		})
	}
	return slots, arcs
}

// findSlot returns the layout entry for a slot, or nil if the slot is
// no longer part of the visible window
func findSlot(slots []SlotLayout, s core.Slot) *SlotLayout {
	for i := range slots {
		if slots[i].Slot == s {
			return &slots[i]
		}
	}
	return nil
}
