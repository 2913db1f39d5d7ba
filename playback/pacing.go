package playback

import (
	"math"
	"time"
)

// DefaultBaseInterval is the wall-clock time one simulated hour is shown
// for at speed 1.
const DefaultBaseInterval = 1000 * time.Millisecond

// Frozen is the interval reported while the playback is paused.
const Frozen = -1 * time.Millisecond

// speedFactor is the multiplier applied by Accelerate and Decelerate.
const speedFactor = 2

// A Policy maps the playback speed to the dispatch interval between
// successive hour slices. Pausing only raises a flag; the speed is kept so
// that resuming restores the exact prior interval.
type Policy struct {
	base   time.Duration
	speed  float64
	paused bool
}

// NewPolicy creates a Policy at speed 1 with the default base interval.
func NewPolicy() *Policy {
	return &Policy{
		base:  DefaultBaseInterval,
		speed: 1,
	}
}

// Interval returns the current dispatch interval, floor(base/speed) in
// whole milliseconds, or Frozen while paused.
func (p *Policy) Interval() time.Duration {
	if p.paused {
		return Frozen
	}

	ms := math.Floor(float64(p.base.Milliseconds()) / p.speed)

	return time.Duration(ms) * time.Millisecond
}

// Speed returns the current speed multiplier.
func (p *Policy) Speed() float64 {
	return p.speed
}

// SetSpeed replaces the speed multiplier. Zero, negative, and non-finite
// values are rejected and the prior speed is kept.
func (p *Policy) SetSpeed(speed float64) bool {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return false
	}

	p.speed = speed

	return true
}

// Accelerate doubles the playback speed.
func (p *Policy) Accelerate() {
	p.speed *= speedFactor
}

// Decelerate halves the playback speed.
func (p *Policy) Decelerate() {
	p.speed /= speedFactor
}

// Pause raises the paused flag. The speed is untouched.
func (p *Policy) Pause() {
	p.paused = true
}

// Resume clears the paused flag.
func (p *Policy) Resume() {
	p.paused = false
}

// Paused tells if the playback is paused.
func (p *Policy) Paused() bool {
	return p.paused
}
