package events

import (
	"time"

	"github.com/lixenwraith/timewheel/core"
)

// EventType represents the type of feedback event
type EventType int

const (
	// EventTick fires when the time cursor crosses a minor tick marker
	// Trigger: tick index change during rotation
	// Consumer: haptics/audio dispatcher | Payload: *TickPayload
	EventTick EventType = iota

	// EventPassBy fires when an unselected avatar sweeps through the
	// narrow window around north at non-negligible velocity
	// Trigger: emitter, once per avatar per pass
	// Consumer: haptics/audio dispatcher | Payload: *PassByPayload
	EventPassBy

	// EventSelectionLock fires when a candidate dwells long enough and
	// the dial snaps it to north
	// Trigger: selection machine Candidate → Locked
	// Consumer: haptics/audio dispatcher, detail card | Payload: *SelectionPayload
	EventSelectionLock

	// EventSelectionRelease fires when a locked slot rotates past the
	// release threshold
	// Trigger: selection machine Locked → Idle
	// Consumer: detail card | Payload: *SelectionPayload
	EventSelectionRelease

	// EventDayRollover fires when the cursor crosses midnight in either
	// direction
	// Trigger: cursor crossing 0h or 24h
	// Consumer: caller's data feed (refetch interactions) | Payload: *RolloverPayload
	EventDayRollover

	// EventWindowShift fires when rotation or navigation moves the
	// visible multi-day window
	// Trigger: rollover past the window edge, ShiftWindow call
	// Consumer: caller's data feed | Payload: *RolloverPayload
	EventWindowShift
)

// Event is a single feedback event with frame metadata
type Event struct {
	Type    EventType
	Payload any
	Frame   int64 // engine frame the event was emitted on, for dedup
}

// TickPayload identifies the tick marker that was crossed
type TickPayload struct {
	Index int // floor(offset / tick interval) within the window
}

// PassByPayload identifies the avatar that swept past north
type PassByPayload struct {
	Slot     core.Slot
	Velocity float64 // rad/s at the moment of the pass
}

// SelectionPayload identifies the locked or released slot
type SelectionPayload struct {
	Slot core.Slot
}

// RolloverPayload carries the new reference time after a boundary
// cross: midnight of the day under the cursor for rollovers, the start
// of the newly visible window for window shifts
type RolloverPayload struct {
	Date      time.Time
	Direction int // +1 forward in time, −1 backward
}
