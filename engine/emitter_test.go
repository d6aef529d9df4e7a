package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/timewheel/core"
	"github.com/lixenwraith/timewheel/events"
	"github.com/lixenwraith/timewheel/parameter"
	"github.com/lixenwraith/timewheel/vmath"
)

func TestTickIndexCrossing(t *testing.T) {
	p := parameter.Default()
	day := testDay()
	eng := New(p, core.Span24h, day.Add(12*time.Hour)) // index floor(12/3) = 4

	// Prime the emitter
	eng.Tick(1.0 / p.TickRate)
	drain(eng)

	// Clockwise drag moves time backward across the 12:00 marker
	eng.BeginDrag()
	eng.ApplyDragDelta(0.1) // ~0.38h back, index 4 -> 3
	counts := drain(eng)
	if counts[events.EventTick] != 1 {
		t.Errorf("tick events after marker crossing: %d, want 1", counts[events.EventTick])
	}

	// Small wiggle that stays within the same interval: silent
	eng.ApplyDragDelta(0.01)
	if counts := drain(eng); counts[events.EventTick] != 0 {
		t.Errorf("tick emitted without an index change: %d", counts[events.EventTick])
	}
}

func TestFirstObservationIsSilent(t *testing.T) {
	p := parameter.Default()
	eng := New(p, core.Span24h, testDay().Add(7*time.Hour))
	eng.Tick(1.0 / p.TickRate)
	if counts := drain(eng); counts[events.EventTick] != 0 {
		t.Errorf("priming tick emitted %d events", counts[events.EventTick])
	}
}

// passSlots places one slot at north-adjacent angles for direct
// emitter tests
func passSlots(base float64) []SlotLayout {
	return []SlotLayout{{
		Slot:      core.Slot{InteractionID: "x", ParticipantIndex: 0},
		BaseAngle: base,
	}}
}

func TestPassByDedup(t *testing.T) {
	p := parameter.Default()
	em := newEmitter(p)
	q := events.NewQueue()
	span := core.Span24h

	outside := vmath.North + p.PassByWindow*3
	inside := vmath.North + p.PassByWindow/2

	// Approach from outside, then enter at speed
	em.observe(0, span, passSlots(outside), 0, 1.0, 0, core.Slot{}, q, 1)
	em.observe(0, span, passSlots(inside), 0, 1.0, 0.3, core.Slot{}, q, 2)

	evs := q.Consume()
	passes := 0
	for _, ev := range evs {
		if ev.Type == events.EventPassBy {
			passes++
		}
	}
	if passes != 1 {
		t.Fatalf("pass-by events on entry: %d, want 1", passes)
	}

	// Still inside: deduplicated
	em.observe(0, span, passSlots(inside), 0, 1.0, 0.35, core.Slot{}, q, 3)
	if evs := q.Consume(); len(evs) != 0 {
		t.Errorf("pass-by repeated while inside window: %d events", len(evs))
	}

	// Leave and re-enter after the cooldown: fires again
	em.observe(0, span, passSlots(outside), 0, 1.0, 0.4, core.Slot{}, q, 4)
	em.observe(0, span, passSlots(inside), 0, 1.0, 0.6, core.Slot{}, q, 5)
	evs = q.Consume()
	passes = 0
	for _, ev := range evs {
		if ev.Type == events.EventPassBy {
			passes++
		}
	}
	if passes != 1 {
		t.Errorf("pass-by events on re-entry: %d, want 1", passes)
	}
}

func TestPassByCooldown(t *testing.T) {
	p := parameter.Default()
	em := newEmitter(p)
	q := events.NewQueue()
	span := core.Span24h

	outside := vmath.North + p.PassByWindow*3
	inside := vmath.North + p.PassByWindow/2

	em.observe(0, span, passSlots(inside), 0, 1.0, 0.0, core.Slot{}, q, 1)
	// Leave and re-enter within the cooldown: suppressed
	em.observe(0, span, passSlots(outside), 0, 1.0, 0.02, core.Slot{}, q, 2)
	em.observe(0, span, passSlots(inside), 0, 1.0, 0.05, core.Slot{}, q, 3)

	evs := q.Consume()
	passes := 0
	for _, ev := range evs {
		if ev.Type == events.EventPassBy {
			passes++
		}
	}
	if passes != 1 {
		t.Errorf("pass-by events within cooldown: %d, want 1", passes)
	}
}

func TestPassBySlowAndExcluded(t *testing.T) {
	p := parameter.Default()
	em := newEmitter(p)
	q := events.NewQueue()
	span := core.Span24h
	inside := vmath.North + p.PassByWindow/2

	// Too slow
	em.observe(0, span, passSlots(inside), 0, p.PassByMinVelocity/2, 0, core.Slot{}, q, 1)
	if evs := q.Consume(); len(evs) != 0 {
		t.Errorf("slow pass emitted %d events", len(evs))
	}

	// Excluded (candidate/locked) slot
	em.reset()
	excluded := core.Slot{InteractionID: "x", ParticipantIndex: 0}
	em.observe(0, span, passSlots(inside), 0, 1.0, 1, excluded, q, 2)
	if evs := q.Consume(); len(evs) != 0 {
		t.Errorf("excluded slot emitted %d events", len(evs))
	}
}
