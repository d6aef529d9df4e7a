// Package audio is the demo's stand-in for the haptics collaborator:
// it maps engine feedback events to short generated cues.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/timewheel/events"
)

const sampleRate = beep.SampleRate(44100)

// Waveform types
const (
	waveSine = iota
	waveSquare
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		}
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(sampleRate))
	releaseSamples := int(releaseSec * float64(sampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(sampleRate))
}

// --- Cue generators (unity gain) ---

// generateTickCue is the light marker-crossing click
func generateTickCue() floatBuffer {
	buf := oscillator(waveSquare, 1800.0, durationToSamples(12*time.Millisecond))
	applyEnvelope(buf, 0.001, 0.008)
	return buf
}

// generatePassCue is the soft blip for an avatar sweeping past north
func generatePassCue() floatBuffer {
	buf := oscillator(waveSine, 880.0, durationToSamples(35*time.Millisecond))
	applyEnvelope(buf, 0.003, 0.02)
	return buf
}

// generateLockCue is the distinct two-tone selection confirmation
func generateLockCue() floatBuffer {
	samples := durationToSamples(120 * time.Millisecond)

	fund := oscillator(waveSine, 660.0, samples)
	applyEnvelope(fund, 0.004, 0.08)

	over := oscillator(waveSine, 1320.0, samples)
	applyEnvelope(over, 0.004, 0.05)

	return mixFloatBuffers(fund, over, 0.3/0.7)
}

// generateReleaseCue is the low tone when a selection drops
func generateReleaseCue() floatBuffer {
	buf := oscillator(waveSine, 330.0, durationToSamples(60*time.Millisecond))
	applyEnvelope(buf, 0.004, 0.04)
	return buf
}

// cueStreamer plays a floatBuffer once as mono-to-stereo
type cueStreamer struct {
	buf  floatBuffer
	pos  int
	gain float64
}

func (c *cueStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}
	for i := range samples {
		if c.pos >= len(c.buf) {
			return i, true
		}
		v := c.buf[c.pos] * c.gain
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *cueStreamer) Err() error { return nil }

// Service owns the speaker and the pre-generated cue buffers
type Service struct {
	ready bool

	tick    floatBuffer
	pass    floatBuffer
	lock    floatBuffer
	release floatBuffer
}

// NewService initializes the speaker. Failure is non-fatal for the
// caller: a nil-ready service silently drops cues
func NewService() (*Service, error) {
	s := &Service{
		tick:    generateTickCue(),
		pass:    generatePassCue(),
		lock:    generateLockCue(),
		release: generateReleaseCue(),
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return s, err
	}
	s.ready = true
	return s, nil
}

// Close releases the speaker
func (s *Service) Close() {
	if s.ready {
		speaker.Close()
	}
}

// Dispatch plays the cue for each engine event
func (s *Service) Dispatch(evs []events.Event) {
	if !s.ready {
		return
	}
	for _, ev := range evs {
		switch ev.Type {
		case events.EventTick:
			s.play(s.tick, 0.35)
		case events.EventPassBy:
			s.play(s.pass, 0.5)
		case events.EventSelectionLock:
			s.play(s.lock, 0.8)
		case events.EventSelectionRelease:
			s.play(s.release, 0.5)
		}
	}
}

func (s *Service) play(buf floatBuffer, gain float64) {
	speaker.Play(&cueStreamer{buf: buf, gain: gain})
}
