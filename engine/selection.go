package engine

import (
	"math"

	"github.com/lixenwraith/timewheel/core"
	"github.com/lixenwraith/timewheel/parameter"
	"github.com/lixenwraith/timewheel/vmath"
)

// selAction tells the engine what side effect a selection update
// produced. Lock carries the corrective snap delta that brings the
// locked slot exactly to north
type selAction struct {
	locked    bool
	released  bool
	snapDelta float64
	slot      core.Slot
}

// selectionMachine tracks which avatar is nearest north and decides
// when it becomes a locked selection.
//
// Idle → Candidate: nearest slot within LockThreshold of north.
// Candidate → Locked: same slot stayed nearest and within threshold
// for HoldSeconds, and the dial is idle (no drag, coast, or snap).
// Locked → Idle: the slot's distance from north exceeds
// ReleaseThreshold. The release band is wider than the lock band so
// a selection near the boundary cannot flicker
type selectionMachine struct {
	p parameter.Engine

	phase core.SelectionPhase
	slot  core.Slot
	dwell float64 // seconds the current candidate has been held
}

func newSelectionMachine(p parameter.Engine) selectionMachine {
	return selectionMachine{p: p}
}

// update re-evaluates selection after a rotation change. dt is the
// frame time for dwell accounting (0 for pure input events); lockable
// is false while any motion source is active
func (m *selectionMachine) update(slots []SlotLayout, rotation, dt float64, lockable bool) selAction {
	if len(slots) == 0 {
		return m.clear()
	}

	nearest, dist := nearestNorth(slots, rotation)

	if m.phase == core.SelectionLocked {
		cur := findSlot(slots, m.slot)
		if cur == nil {
			return m.clear()
		}
		d := math.Abs(vmath.AngleDiff(vmath.North, cur.BaseAngle+rotation))
		if d > m.p.ReleaseThreshold {
			released := m.slot
			m.phase = core.SelectionNone
			m.slot = core.Slot{}
			m.dwell = 0
			return selAction{released: true, slot: released}
		}
		return selAction{}
	}

	if dist > m.p.LockThreshold {
		m.phase = core.SelectionNone
		m.slot = core.Slot{}
		m.dwell = 0
		return selAction{}
	}

	if m.phase != core.SelectionCandidate || nearest.Slot != m.slot {
		m.phase = core.SelectionCandidate
		m.slot = nearest.Slot
		m.dwell = 0
		return selAction{}
	}

	m.dwell += dt
	if !lockable || m.dwell < m.p.HoldSeconds {
		return selAction{}
	}

	// Lock: rotate so the candidate sits exactly on north
	m.phase = core.SelectionLocked
	m.dwell = 0
	snap := -vmath.AngleDiff(vmath.North, nearest.BaseAngle+rotation)
	return selAction{locked: true, snapDelta: snap, slot: m.slot}
}

// clear drops any selection, reporting a release if one was locked
func (m *selectionMachine) clear() selAction {
	wasLocked := m.phase == core.SelectionLocked
	released := m.slot
	m.phase = core.SelectionNone
	m.slot = core.Slot{}
	m.dwell = 0
	if wasLocked {
		return selAction{released: true, slot: released}
	}
	return selAction{}
}

// view returns the read-only snapshot of the machine
func (m *selectionMachine) view() core.SelectionView {
	v := core.SelectionView{Phase: m.phase, Slot: m.slot}
	if m.phase == core.SelectionCandidate {
		v.Dwell = m.dwell
	}
	return v
}

// current returns the slot occupying the machine, zero when idle
func (m *selectionMachine) current() core.Slot {
	return m.slot
}

// nearestNorth returns the slot whose rotated angle is closest to
// north and its absolute angular distance
func nearestNorth(slots []SlotLayout, rotation float64) (*SlotLayout, float64) {
	best := &slots[0]
	bestDist := math.Abs(vmath.AngleDiff(vmath.North, slots[0].BaseAngle+rotation))
	for i := 1; i < len(slots); i++ {
		d := math.Abs(vmath.AngleDiff(vmath.North, slots[i].BaseAngle+rotation))
		if d < bestDist {
			best = &slots[i]
			bestDist = d
		}
	}
	return best, bestDist
}
