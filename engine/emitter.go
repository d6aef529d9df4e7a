package engine

import (
	"math"

	"github.com/lixenwraith/timewheel/core"
	"github.com/lixenwraith/timewheel/events"
	"github.com/lixenwraith/timewheel/parameter"
	"github.com/lixenwraith/timewheel/vmath"
)

// emitter turns continuous rotation state into discrete feedback
// events: a tick when the cursor crosses a minor marker, a pass-by
// when an unselected avatar sweeps through north fast enough.
// Pass-bys are deduplicated per avatar until it leaves the window
// and re-enters, and throttled by a per-slot cooldown
type emitter struct {
	p parameter.Engine

	tickIndex int
	primed    bool // false until the first observation, which emits nothing

	inWindow map[core.Slot]bool
	lastFire map[core.Slot]float64 // engine seconds of last pass-by per slot
}

func newEmitter(p parameter.Engine) emitter {
	return emitter{
		p:        p,
		inWindow: make(map[core.Slot]bool),
		lastFire: make(map[core.Slot]float64),
	}
}

// reset forgets tick and pass-by history, e.g. after a span switch
func (e *emitter) reset() {
	e.primed = false
	e.tickIndex = 0
	clear(e.inWindow)
	clear(e.lastFire)
}

// observe inspects the new rotation state and pushes any crossing
// events. offset is hours-from-window-start, excluded is the slot
// currently held by the selection machine (never a pass-by source)
func (e *emitter) observe(offset float64, span core.TimeSpan, slots []SlotLayout,
	rotation, velocity, now float64, excluded core.Slot, q *events.Queue, frame int64) {

	idx := int(math.Floor(offset / span.TickInterval()))
	if !e.primed {
		e.primed = true
		e.tickIndex = idx
	} else if idx != e.tickIndex {
		e.tickIndex = idx
		q.Push(events.Event{
			Type:    events.EventTick,
			Payload: &events.TickPayload{Index: idx},
			Frame:   frame,
		})
	}

	fast := math.Abs(velocity) >= e.p.PassByMinVelocity
	for i := range slots {
		s := slots[i].Slot
		dist := math.Abs(vmath.AngleDiff(vmath.North, slots[i].BaseAngle+rotation))
		in := dist <= e.p.PassByWindow

		if in && !e.inWindow[s] && fast && s != excluded {
			if last, fired := e.lastFire[s]; !fired || now-last >= e.p.EventCooldown {
				e.lastFire[s] = now
				q.Push(events.Event{
					Type:    events.EventPassBy,
					Payload: &events.PassByPayload{Slot: s, Velocity: velocity},
					Frame:   frame,
				})
			}
		}
		e.inWindow[s] = in
	}
}

// prune drops window state for slots that left the visible set
func (e *emitter) prune(slots []SlotLayout) {
	keep := make(map[core.Slot]bool, len(slots))
	for i := range slots {
		keep[slots[i].Slot] = true
	}
	for s := range e.inWindow {
		if !keep[s] {
			delete(e.inWindow, s)
		}
	}
	for s := range e.lastFire {
		if !keep[s] {
			delete(e.lastFire, s)
		}
	}
}
