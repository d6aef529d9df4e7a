package engine

import (
	"time"

	"github.com/lixenwraith/timewheel/core"
	"github.com/lixenwraith/timewheel/events"
	"github.com/lixenwraith/timewheel/parameter"
	"github.com/lixenwraith/timewheel/vmath"
)

// Engine is the radial timeline engine: a single-owner state container
// coupling the dial's rotation angle to a wall-clock time cursor, with
// avatar layout, selection, and feedback event emission on top.
//
// Everything is synchronous and frame-driven. The caller feeds pointer
// deltas and periodic Tick(dt) calls, then pulls a Snapshot for
// rendering and drains Events for haptic/audio dispatch. No other
// goroutine mutates engine state
type Engine struct {
	p     parameter.Engine
	span  core.TimeSpan
	clock Clock

	rot  rotationController
	sel  selectionMachine
	emit emitter
	q    *events.Queue

	interactions []core.Interaction
	slots        []SlotLayout
	arcs         []Arc

	// Time state. cursor is hours since midnight of date, the day
	// currently under north. windowStart is midnight of the first day
	// of the visible multi-day block (== date for spans ≤ 24h)
	date        time.Time
	cursor      float64
	windowStart time.Time

	frame        int64
	now          float64 // engine seconds, accumulated from Tick
	snapAttempts int
}

// New builds an engine anchored so the given time sits under north
func New(p parameter.Engine, span core.TimeSpan, at time.Time) *Engine {
	e := &Engine{
		p:     p,
		span:  span,
		clock: NewClock(span),
		rot:   newRotationController(p),
		sel:   newSelectionMachine(p),
		emit:  newEmitter(p),
		q:     events.NewQueue(),
	}
	e.date = midnight(at)
	e.cursor = at.Sub(e.date).Hours()
	e.windowStart = e.date
	e.anchorRotation()
	return e
}

// SetInteractions replaces the visible interaction list. The engine
// never fetches data itself; the caller supplies a fresh list whenever
// the window or date changes
func (e *Engine) SetInteractions(items []core.Interaction) {
	e.interactions = make([]core.Interaction, len(items))
	copy(e.interactions, items)
	e.recomputeLayout()
	if findSlot(e.slots, e.sel.current()) == nil {
		e.handle(e.sel.clear())
	}
	e.emit.prune(e.slots)
}

// SetTimeSpan switches the visible window size. The rotation angle is
// re-anchored so the same wall-clock time stays under north, any
// active selection is cleared (its angle no longer means the same
// thing), and motion stops
func (e *Engine) SetTimeSpan(span core.TimeSpan) {
	if span == e.span {
		return
	}
	e.handle(e.sel.clear())
	e.rot.stop()

	e.span = span
	e.clock = NewClock(span)
	if !span.MultiDay() {
		e.windowStart = e.date
	}
	e.anchorRotation()
	e.recomputeLayout()
	e.emit.reset()
}

// ShiftWindow jumps the cursor by whole spans without rotating the
// dial: +1 moves into the next day or multi-day block, −1 into the
// previous. The caller is expected to refetch interactions on the
// resulting window event
func (e *Engine) ShiftWindow(dir int) {
	if dir == 0 {
		return
	}
	e.handle(e.sel.clear())
	e.rot.stop()
	e.advanceCursor(float64(dir) * e.span.Hours())
	if !e.span.MultiDay() {
		// Multi-day shifts already emit via the rollover path
		e.q.Push(events.Event{
			Type:    events.EventWindowShift,
			Payload: &events.RolloverPayload{Date: e.windowAnchor(), Direction: sign(dir)},
			Frame:   e.frame,
		})
	}
	e.postUpdate(0)
}

// BeginDrag starts a pointer gesture, cancelling momentum or snap so
// the pointer is the only motion source
func (e *Engine) BeginDrag() {
	e.rot.beginDrag()
}

// ApplyDragDelta applies one pointer-move delta in radians. The cursor
// moves opposite the rotation: clockwise drags travel backward in time
func (e *Engine) ApplyDragDelta(delta float64) {
	delta = vmath.WrapPi(delta)
	applied := e.rot.applyDrag(delta)
	e.advanceCursor(-applied * e.clock.HoursPerRadian())
	e.postUpdate(0)
}

// EndDrag releases the gesture. A slow release settles immediately
// and attempts a snap; a flick coasts under friction first
func (e *Engine) EndDrag() {
	if e.rot.endDrag() {
		e.snapAttempts++
	}
	e.postUpdate(0)
}

// Tick advances the engine by dt seconds: momentum decay, in-flight
// snap animation, selection dwell, and event emission. Driven
// externally at a nominal 60Hz
func (e *Engine) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	e.now += dt
	e.frame++

	applied, settled := e.rot.tick(dt)
	if applied != 0 {
		e.advanceCursor(-applied * e.clock.HoursPerRadian())
	}
	if settled {
		e.snapAttempts++
	}
	e.postUpdate(dt)
}

// Events drains the pending feedback queue in FIFO order
func (e *Engine) Events() []events.Event {
	return e.q.Consume()
}

// --- accessors ---

func (e *Engine) Span() core.TimeSpan    { return e.span }
func (e *Engine) Angle() float64         { return e.rot.angle }
func (e *Engine) Velocity() float64      { return e.rot.velocity }
func (e *Engine) Dragging() bool         { return e.rot.dragging }
func (e *Engine) CursorHours() float64   { return e.cursor }
func (e *Engine) Date() time.Time        { return e.date }
func (e *Engine) WindowStart() time.Time { return e.windowStart }
func (e *Engine) SnapAttempts() int      { return e.snapAttempts }

// Selection returns the current selection snapshot
func (e *Engine) Selection() core.SelectionView { return e.sel.view() }

// TimeUnderNorth returns the absolute time currently at the top of
// the dial
func (e *Engine) TimeUnderNorth() time.Time {
	return e.date.Add(time.Duration(e.cursor * float64(time.Hour)))
}

// WindowOffset returns hours-from-window-start for the cursor
func (e *Engine) WindowOffset() float64 {
	if e.span.MultiDay() {
		return e.date.Sub(e.windowStart).Hours() + e.cursor
	}
	return e.cursor - e.clock.WindowStartHours(e.cursor)
}

// windowAnchor returns the absolute time of the visible window start
func (e *Engine) windowAnchor() time.Time {
	if e.span.MultiDay() {
		return e.windowStart
	}
	start := e.clock.WindowStartHours(e.cursor)
	return e.date.Add(time.Duration(start * float64(time.Hour)))
}

// --- internals ---

// postUpdate runs selection and event emission after any rotation or
// time change. dt carries frame time into selection dwell; input
// events pass 0
func (e *Engine) postUpdate(dt float64) {
	e.handle(e.sel.update(e.slots, e.rot.angle, dt, e.rot.idle()))
	e.emit.observe(e.WindowOffset(), e.span, e.slots,
		e.rot.angle, e.rot.velocity, e.now, e.sel.current(), e.q, e.frame)
}

// handle applies a selection action's side effects: the corrective
// snap on lock (which also advances the cursor as it plays out) and
// the lock/release events
func (e *Engine) handle(act selAction) {
	if act.locked {
		if applied := e.rot.startSnap(act.snapDelta); applied != 0 {
			e.advanceCursor(-applied * e.clock.HoursPerRadian())
		}
		e.q.Push(events.Event{
			Type:    events.EventSelectionLock,
			Payload: &events.SelectionPayload{Slot: act.slot},
			Frame:   e.frame,
		})
	}
	if act.released {
		e.q.Push(events.Event{
			Type:    events.EventSelectionRelease,
			Payload: &events.SelectionPayload{Slot: act.slot},
			Frame:   e.frame,
		})
	}
}

// advanceCursor moves the time cursor by dh hours, rolling the date at
// every midnight crossing. Each 24h crossing moves the date exactly
// one day, so a full revolution in 7-day mode advances seven days
func (e *Engine) advanceCursor(dh float64) {
	if dh == 0 {
		return
	}
	e.cursor += dh
	for e.cursor >= 24 {
		e.cursor -= 24
		e.date = e.date.AddDate(0, 0, 1)
		e.rollover(1)
	}
	for e.cursor < 0 {
		e.cursor += 24
		e.date = e.date.AddDate(0, 0, -1)
		e.rollover(-1)
	}
}

// rollover records a midnight crossing and keeps the multi-day window
// tracking the date, shifting it block by block
func (e *Engine) rollover(dir int) {
	e.q.Push(events.Event{
		Type:    events.EventDayRollover,
		Payload: &events.RolloverPayload{Date: e.date, Direction: dir},
		Frame:   e.frame,
	})

	if !e.span.MultiDay() {
		e.windowStart = e.date
		return
	}

	days := e.span.Days()
	shifted := false
	for e.date.Sub(e.windowStart).Hours() >= float64(days)*24 {
		e.windowStart = e.windowStart.AddDate(0, 0, days)
		shifted = true
	}
	for e.date.Before(e.windowStart) {
		e.windowStart = e.windowStart.AddDate(0, 0, -days)
		shifted = true
	}
	if shifted {
		e.q.Push(events.Event{
			Type:    events.EventWindowShift,
			Payload: &events.RolloverPayload{Date: e.windowStart, Direction: dir},
			Frame:   e.frame,
		})
	}
}

// anchorRotation resets the rotation angle so the cursor's wall-clock
// time sits exactly under north for the active span
func (e *Engine) anchorRotation() {
	e.rot.angle = vmath.WrapPi(vmath.North - e.clock.AngleForOffset(e.WindowOffset()))
}

func (e *Engine) recomputeLayout() {
	e.slots, e.arcs = computeLayout(e.interactions, e.clock, e.windowAnchor(), e.p)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
