package vclock

import (
	"math"
	"testing"
	"time"
)

func TestScaleAtKeyPoints(t *testing.T) {
	cases := []struct {
		name string
		at   float64
		want float64
	}{
		{"start of inhale", 0, 0},
		{"mid inhale", 2, 0.5},
		{"top of inhale", 4, 1},
		{"hold", 4.5, 1},
		{"start of exhale", 5, 1},
		{"mid exhale", 9, 0.5},
		{"wraps", 13, 0},
		{"second cycle", 15, 0.5},
		{"negative folds forward", -11, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScaleAt(tc.at); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("ScaleAt(%v) = %v, want %v", tc.at, got, tc.want)
			}
		})
	}
}

func TestScaleAtContinuousAtBoundaries(t *testing.T) {
	const eps = 1e-7
	for _, b := range []float64{InhaleSeconds, InhaleSeconds + HoldSeconds, BreathPeriod} {
		left, right := ScaleAt(b-eps), ScaleAt(b+eps)
		if math.Abs(left-right) > 1e-5 {
			t.Fatalf("discontinuity at %v: %v vs %v", b, left, right)
		}
	}
}

func TestScaleAtRange(t *testing.T) {
	for s := -30.0; s < 30; s += 0.037 {
		v := ScaleAt(s)
		if v < 0 || v > 1 {
			t.Fatalf("ScaleAt(%v) = %v out of [0,1]", s, v)
		}
		if math.Abs(v-ScaleAt(s+BreathPeriod)) > 1e-9 {
			t.Fatalf("ScaleAt not periodic at %v", s)
		}
	}
}

func TestScaleUsesSubSecondTime(t *testing.T) {
	// 1300000000 is a multiple of 13, so the cycle starts on it.
	base := time.Unix(1_300_000_000, 0)
	if got := Scale(0, base); math.Abs(got) > 1e-9 {
		t.Fatalf("Scale at cycle start = %v, want 0", got)
	}
	if got := Scale(0, base.Add(1500*time.Millisecond)); math.Abs(got-0.375) > 1e-6 {
		t.Fatalf("Scale at 1.5s = %v, want 0.375", got)
	}
	if got := Scale(4, base); math.Abs(got-1) > 1e-9 {
		t.Fatalf("Scale with offset 4 = %v, want 1", got)
	}
}

func TestDefaultEmanationsAreStaggered(t *testing.T) {
	ems := DefaultEmanations()
	if len(ems) != 3 {
		t.Fatalf("len = %d, want 3", len(ems))
	}
	for i, e := range ems {
		want := float64(i) * BreathPeriod / 3
		if math.Abs(e.PhaseOffset-want) > 1e-9 {
			t.Fatalf("emanation %d offset = %v, want %v", i, e.PhaseOffset, want)
		}
	}
}
