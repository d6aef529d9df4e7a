package engine

import (
	"math"

	"github.com/lixenwraith/timewheel/parameter"
	"github.com/lixenwraith/timewheel/vmath"
)

// rotationController owns the dial's rotation angle and angular
// velocity. The angle is unbounded (callers wrap modulo 2π for
// rendering); velocity is radians per second, positive clockwise.
// Exactly one motion source is active at a time: drag, momentum
// coast, or snap animation. A new drag cancels the other two
type rotationController struct {
	p parameter.Engine

	angle    float64
	velocity float64
	dragging bool
	coasting bool

	// In-flight snap animation
	snapping    bool
	snapTotal   float64 // full corrective delta
	snapApplied float64
	snapElapsed float64
}

func newRotationController(p parameter.Engine) rotationController {
	return rotationController{p: p}
}

// beginDrag interrupts any momentum or snap so the pointer becomes the
// single source of motion
func (r *rotationController) beginDrag() {
	r.dragging = true
	r.coasting = false
	r.velocity = 0
	r.cancelSnap()
}

// applyDrag applies one pointer delta, already normalized to (−π, π].
// Velocity is the delta scaled to the nominal event rate so releasing
// mid-gesture carries momentum
func (r *rotationController) applyDrag(delta float64) float64 {
	r.angle += delta
	r.velocity = delta * r.p.TickRate
	return delta
}

// endDrag releases the pointer. Slow releases settle immediately and
// report true so the caller can attempt a snap; fast releases start a
// momentum coast
func (r *rotationController) endDrag() (settled bool) {
	r.dragging = false
	if math.Abs(r.velocity) < r.p.FlickMin {
		r.velocity = 0
		return true
	}
	r.coasting = true
	return false
}

// tick advances momentum or snap by dt seconds. It returns the angular
// delta applied this frame and whether momentum settled on this exact
// tick (true at most once per coast)
func (r *rotationController) tick(dt float64) (applied float64, settled bool) {
	if r.dragging || dt <= 0 {
		return 0, false
	}

	if r.snapping {
		return r.advanceSnap(dt), false
	}

	if !r.coasting {
		return 0, false
	}

	r.velocity *= r.p.Friction
	applied = r.velocity * dt
	r.angle += applied

	if math.Abs(r.velocity) < r.p.StopVelocity {
		r.velocity = 0
		r.coasting = false
		return applied, true
	}
	return applied, false
}

// startSnap begins an eased corrective rotation of total radians.
// Zero-length snaps complete immediately; the returned value is the
// portion applied right now, so the caller can keep the time cursor
// coupled to the angle
func (r *rotationController) startSnap(total float64) (applied float64) {
	if vmath.ApproxZero(total) || r.p.SnapSeconds <= 0 {
		r.angle += total
		return total
	}
	r.snapping = true
	r.snapTotal = total
	r.snapApplied = 0
	r.snapElapsed = 0
	return 0
}

func (r *rotationController) advanceSnap(dt float64) float64 {
	r.snapElapsed += dt
	progress := vmath.EaseOutCubic(r.snapElapsed / r.p.SnapSeconds)
	target := r.snapTotal * progress
	step := target - r.snapApplied
	r.angle += step
	r.snapApplied = target

	if r.snapElapsed >= r.p.SnapSeconds {
		r.snapping = false
	}
	return step
}

func (r *rotationController) cancelSnap() {
	r.snapping = false
	r.snapTotal = 0
	r.snapApplied = 0
	r.snapElapsed = 0
}

// stop halts all motion without moving the dial. Used on span switch
func (r *rotationController) stop() {
	r.velocity = 0
	r.coasting = false
	r.cancelSnap()
}

// idle reports whether no motion source is active; selection may only
// lock while idle
func (r *rotationController) idle() bool {
	return !r.dragging && !r.coasting && !r.snapping
}
