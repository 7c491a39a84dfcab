// Package scheduler paces logic ticks at a fixed real-time cadence, independent of
// how often frames are rendered or input arrives.
package scheduler

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultCadence is roughly one tick per 60 Hz frame.
const DefaultCadence = 16 * time.Millisecond

// Scheduler fires a tick callback at most once per cadence window. Callers invoke
// Step after every render and every input event; the tick runs only once the window
// has fully elapsed.
type Scheduler struct {
	clock    clockwork.Clock
	cadence  time.Duration
	lastTick time.Time
	onTick   func()
	ticks    int
}

// New creates a scheduler whose first window opens now. A nil clock uses real time;
// a non-positive cadence uses DefaultCadence.
func New(clock clockwork.Clock, cadence time.Duration, onTick func()) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cadence <= 0 {
		cadence = DefaultCadence
	}
	return &Scheduler{
		clock:    clock,
		cadence:  cadence,
		lastTick: clock.Now(),
		onTick:   onTick,
	}
}

// Cadence returns the window length.
func (s *Scheduler) Cadence() time.Duration { return s.cadence }

// Ticks returns how many ticks have fired.
func (s *Scheduler) Ticks() int { return s.ticks }

// Remaining is how long input may be awaited before the current window closes.
// It never goes below zero.
func (s *Scheduler) Remaining() time.Duration {
	left := s.cadence - s.clock.Since(s.lastTick)
	if left < 0 {
		return 0
	}
	return left
}

// NextWait is the delay before the next frame: the rest of the window, or a full
// window if the current one just closed.
func (s *Scheduler) NextWait() time.Duration {
	if left := s.Remaining(); left > 0 {
		return left
	}
	return s.cadence
}

// Step fires the tick if the window has elapsed and opens the next one. It reports
// whether a tick ran.
func (s *Scheduler) Step() bool {
	if s.clock.Since(s.lastTick) < s.cadence {
		return false
	}
	if s.onTick != nil {
		s.onTick()
	}
	s.ticks++
	s.lastTick = s.clock.Now()
	return true
}
