package parameter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default parameters invalid: %v", err)
	}
}

func TestHysteresisRejected(t *testing.T) {
	p := Default()
	p.ReleaseThreshold = p.LockThreshold
	if err := p.Validate(); err == nil {
		t.Error("equal thresholds accepted")
	}
	p.ReleaseThreshold = p.LockThreshold / 2
	if err := p.Validate(); err == nil {
		t.Error("inverted thresholds accepted")
	}
}

func TestFrictionBounds(t *testing.T) {
	for _, f := range []float64{0, 1, 1.2, -0.5} {
		p := Default()
		p.Friction = f
		if err := p.Validate(); err == nil {
			t.Errorf("friction %v accepted", f)
		}
	}
}

func TestFeedbackBounds(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Engine)
	}{
		{"negative cooldown", func(p *Engine) { p.EventCooldown = -0.1 }},
		{"negative pass velocity", func(p *Engine) { p.PassByMinVelocity = -1 }},
		{"zero pass window", func(p *Engine) { p.PassByWindow = 0 }},
		{"oversized pass window", func(p *Engine) { p.PassByWindow = 4 }},
		{"zero flick minimum", func(p *Engine) { p.FlickMin = 0 }},
	}
	for _, c := range cases {
		p := Default()
		c.mut(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: accepted", c.name)
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	doc := "friction = 0.94\nhold_seconds = 0.5\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Friction != 0.94 {
		t.Errorf("friction %v, want 0.94", p.Friction)
	}
	if p.HoldSeconds != 0.5 {
		t.Errorf("hold %v, want 0.5", p.HoldSeconds)
	}
	// Untouched fields keep defaults
	if p.LockThreshold != Default().LockThreshold {
		t.Errorf("lock threshold %v changed by partial override", p.LockThreshold)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	doc := "release_threshold = 0.01\n" // below the lock threshold
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid override accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing file did not error")
	}
}

func TestOverlapAngle(t *testing.T) {
	p := Default()
	want := p.AvatarDiameter / p.DialRadius * p.OverlapFactor
	if got := p.OverlapAngle(); got != want {
		t.Errorf("OverlapAngle %v, want %v", got, want)
	}

	p.DialRadius = 0
	if got := p.OverlapAngle(); got != 0 {
		t.Errorf("zero radius OverlapAngle %v, want 0", got)
	}
}
