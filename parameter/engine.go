package parameter

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Engine holds every tunable of the dial engine. Values ship with
// defaults and may be overridden from a TOML file; the engine never
// reads them from anywhere else
type Engine struct {
	// Momentum
	Friction     float64 `toml:"friction"`      // velocity multiplier per tick
	StopVelocity float64 `toml:"stop_velocity"` // rad/s below which momentum ends
	FlickMin     float64 `toml:"flick_min"`     // rad/s at release needed to start momentum
	TickRate     float64 `toml:"tick_rate"`     // nominal frames per second

	// Selection
	LockThreshold    float64 `toml:"lock_threshold"`    // rad from north to become candidate
	ReleaseThreshold float64 `toml:"release_threshold"` // rad from north to drop a lock
	HoldSeconds      float64 `toml:"hold_seconds"`      // dwell before candidate locks
	SnapSeconds      float64 `toml:"snap_seconds"`      // duration of the corrective snap

	// Feedback
	PassByWindow      float64 `toml:"passby_window"`       // rad around north counted as a pass
	PassByMinVelocity float64 `toml:"passby_min_velocity"` // rad/s below which passes are silent
	EventCooldown     float64 `toml:"event_cooldown"`      // s between repeat events per slot

	// Layout
	AvatarDiameter float64 `toml:"avatar_diameter"` // same unit as DialRadius
	DialRadius     float64 `toml:"dial_radius"`
	OverlapFactor  float64 `toml:"overlap_factor"` // shrinks per-index offset for visual overlap
}

// Default returns the tuning the engine ships with
func Default() Engine {
	return Engine{
		Friction:     0.95,
		StopVelocity: 0.18,
		FlickMin:     0.5,
		TickRate:     60,

		LockThreshold:    0.12,
		ReleaseThreshold: 0.35,
		HoldSeconds:      0.3,
		SnapSeconds:      0.25,

		PassByWindow:      0.1,
		PassByMinVelocity: 0.3,
		EventCooldown:     0.1,

		AvatarDiameter: 44,
		DialRadius:     160,
		OverlapFactor:  0.9,
	}
}

// Load reads TOML overrides on top of the defaults
func Load(path string) (Engine, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read engine parameters: %w", err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse engine parameters: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// OverlapAngle returns the per-participant angular offset in radians
func (p Engine) OverlapAngle() float64 {
	if p.DialRadius == 0 {
		return 0
	}
	return (p.AvatarDiameter / p.DialRadius) * p.OverlapFactor
}

// Validate checks the static parameter invariants. The hysteresis
// relation ReleaseThreshold > LockThreshold is what prevents selection
// flicker at the boundary and is enforced here, not just tested
func (p Engine) Validate() error {
	if p.Friction <= 0 || p.Friction >= 1 {
		return fmt.Errorf("friction %v outside (0, 1)", p.Friction)
	}
	if p.ReleaseThreshold <= p.LockThreshold {
		return fmt.Errorf("release threshold %v must exceed lock threshold %v",
			p.ReleaseThreshold, p.LockThreshold)
	}
	if p.LockThreshold <= 0 || p.ReleaseThreshold > math.Pi {
		return fmt.Errorf("thresholds out of range: lock %v release %v",
			p.LockThreshold, p.ReleaseThreshold)
	}
	if p.StopVelocity <= 0 || p.HoldSeconds < 0 || p.SnapSeconds < 0 {
		return fmt.Errorf("negative or zero timing parameter")
	}
	if p.FlickMin <= 0 {
		return fmt.Errorf("flick minimum %v must be positive", p.FlickMin)
	}
	if p.PassByWindow <= 0 || p.PassByWindow > math.Pi {
		return fmt.Errorf("pass-by window %v outside (0, π]", p.PassByWindow)
	}
	if p.PassByMinVelocity < 0 || p.EventCooldown < 0 {
		return fmt.Errorf("negative feedback parameter: pass velocity %v cooldown %v",
			p.PassByMinVelocity, p.EventCooldown)
	}
	if p.TickRate <= 0 {
		return fmt.Errorf("tick rate %v must be positive", p.TickRate)
	}
	if p.DialRadius <= 0 || p.AvatarDiameter <= 0 {
		return fmt.Errorf("dial geometry must be positive")
	}
	return nil
}
