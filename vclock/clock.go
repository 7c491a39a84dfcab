// Package vclock models the dilated virtual time that drives every rendering pass.
package vclock

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"
)

// MultiplierStep is the amount Increase and Decrease move the multiplier by.
const MultiplierStep = 0.1

// multiplierEpsilon snaps accumulated float error to an exact zero floor.
const multiplierEpsilon = 1e-9

// VirtualClock owns the virtual timestamp and the dilation multiplier.
// It is not safe for concurrent use; the UI loop is its only writer.
type VirtualClock struct {
	real       clockwork.Clock
	virtual    time.Time
	multiplier float64
	lastReal   time.Time
}

// New creates a clock whose virtual time starts at the real clock's current time,
// running at multiplier 1.0. A nil clock uses the real wall clock.
func New(real clockwork.Clock) *VirtualClock {
	if real == nil {
		real = clockwork.NewRealClock()
	}
	now := real.Now()
	return &VirtualClock{
		real:       real,
		virtual:    now,
		multiplier: 1.0,
		lastReal:   now,
	}
}

// Advance moves virtual time forward by the real time elapsed since the previous
// advance, scaled by the multiplier. A realNow earlier than the last tick counts as
// zero elapsed time so virtual time never moves backwards.
func (c *VirtualClock) Advance(realNow time.Time) {
	c.virtual = c.virtual.Add(c.scaled(realNow))
	c.lastReal = realNow
}

// Tick advances to the real clock's current time.
func (c *VirtualClock) Tick() {
	c.Advance(c.real.Now())
}

func (c *VirtualClock) scaled(realNow time.Time) time.Duration {
	delta := realNow.Sub(c.lastReal)
	if delta <= 0 || c.multiplier == 0 {
		return 0
	}
	// Saturate instead of wrapping negative when a huge multiplier overflows.
	f := float64(delta) * c.multiplier
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(f)
}

// Increase raises the multiplier by one step. There is no upper bound.
func (c *VirtualClock) Increase() {
	c.multiplier += MultiplierStep
}

// Decrease lowers the multiplier by one step, clamped at zero.
func (c *VirtualClock) Decrease() {
	c.SetMultiplier(c.multiplier - MultiplierStep)
}

// SetMultiplier replaces the multiplier. Negative and NaN values clamp to zero.
func (c *VirtualClock) SetMultiplier(m float64) {
	if !(m >= multiplierEpsilon) {
		m = 0
	}
	c.multiplier = m
}

// Multiplier returns the current dilation factor.
func (c *VirtualClock) Multiplier() float64 {
	return c.multiplier
}

// Now returns the virtual time as of the last advance.
func (c *VirtualClock) Now() time.Time {
	return c.virtual
}

// LastTick returns the real time of the last advance.
func (c *VirtualClock) LastTick() time.Time {
	return c.lastReal
}

// Snapshot projects virtual time to realNow without advancing the clock. Renders use
// it so motion stays smooth between coarse ticks.
func (c *VirtualClock) Snapshot(realNow time.Time) Snapshot {
	return Snapshot{
		Time:       c.virtual.Add(c.scaled(realNow)),
		Multiplier: c.multiplier,
	}
}

// Current is Snapshot at the real clock's current time.
func (c *VirtualClock) Current() Snapshot {
	return c.Snapshot(c.real.Now())
}
