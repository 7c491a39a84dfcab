package vclock

import (
	"math"
	"time"
)

// Breathing cycle: 4s inhale, 1s hold, 8s exhale.
const (
	InhaleSeconds = 4.0
	HoldSeconds   = 1.0
	ExhaleSeconds = 8.0
	BreathPeriod  = InhaleSeconds + HoldSeconds + ExhaleSeconds
)

// Emanation is one phase-shifted breathing ripple.
type Emanation struct {
	PhaseOffset float64
}

// DefaultEmanations returns three ripples spaced a third of a breath apart.
func DefaultEmanations() []Emanation {
	return []Emanation{
		{PhaseOffset: 0},
		{PhaseOffset: BreathPeriod / 3},
		{PhaseOffset: 2 * BreathPeriod / 3},
	}
}

// Scale returns the breathing intensity in [0,1] for a phase offset at virtual time t.
func Scale(phaseOffset float64, t time.Time) float64 {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return ScaleAt(secs + phaseOffset)
}

// ScaleAt evaluates the breathing curve at an absolute number of seconds.
func ScaleAt(seconds float64) float64 {
	t := math.Mod(seconds, BreathPeriod)
	if t < 0 {
		t += BreathPeriod
	}
	switch {
	case t < InhaleSeconds:
		return t / InhaleSeconds
	case t < InhaleSeconds+HoldSeconds:
		return 1
	default:
		return 1 - (t-InhaleSeconds-HoldSeconds)/ExhaleSeconds
	}
}
