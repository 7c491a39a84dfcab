package vclock

import (
	"math"
	"time"
)

// Snapshot is one consistent read of virtual time. Every pass of a frame derives
// its angles and phases from the same Snapshot.
type Snapshot struct {
	Time       time.Time
	Multiplier float64
}

// EpochSeconds returns seconds since the Unix epoch with sub-second precision.
func (s Snapshot) EpochSeconds() float64 {
	return float64(s.Time.Unix()) + float64(s.Time.Nanosecond())/1e9
}

// Seconds returns the second within the minute, including the fraction.
func (s Snapshot) Seconds() float64 {
	return float64(s.Time.Second()) + float64(s.Time.Nanosecond())/1e9
}

// Minutes returns the minute within the hour as a continuous value.
func (s Snapshot) Minutes() float64 {
	return float64(s.Time.Minute()) + s.Seconds()/60
}

// Hours returns the position on a 12 hour dial as a continuous value.
func (s Snapshot) Hours() float64 {
	return float64(s.Time.Hour()%12) + s.Minutes()/60
}

// Rotation is the lotus ring spin in radians. It runs backwards at 0.1 rad per
// virtual second.
func (s Snapshot) Rotation() float64 {
	return -s.EpochSeconds() * 0.1
}

// BreathingLight is the slow brightness swing of the lotus ring, in [0.7, 1.0].
func (s Snapshot) BreathingLight() float64 {
	return 0.7 + 0.3*math.Abs(math.Sin(s.EpochSeconds()*0.5))
}

// ExperienceUnits is the number of whole seconds since virtual local midnight.
func (s Snapshot) ExperienceUnits() int {
	t := s.Time
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// Breath returns the breathing scale of e at this snapshot.
func (s Snapshot) Breath(e Emanation) float64 {
	return Scale(e.PhaseOffset, s.Time)
}
