package overlay

import (
	"math"
	"testing"
	"time"

	"github.com/yoanbernabeu/chronos/face"
	"github.com/yoanbernabeu/chronos/shader"
	"github.com/yoanbernabeu/chronos/vclock"
)

var snap = vclock.Snapshot{Time: time.Date(2026, 5, 2, 10, 17, 41, 0, time.Local), Multiplier: 1}

func render(g face.Geometry, selected int) *face.Frame {
	f := face.NewFrame(g.Width, g.Height)
	Overlay{}.Draw(f, g, snap, selected)
	return f
}

func countColor(f *face.Frame, c face.RGB) int {
	n := 0
	for _, cell := range f.Cells {
		if cell.Glyph != 0 && cell.Fg == c {
			n++
		}
	}
	return n
}

func TestLineEndpointsArePlotted(t *testing.T) {
	g := face.NewGeometry(120, 40)
	f := face.NewFrame(g.Width, g.Height)
	c := NewCanvas(f, g)
	c.Line(-50, 20, 60, -30, White)

	for _, p := range [][2]float64{{-50, 20}, {60, -30}} {
		col, row, ok := g.Cell(p[0], p[1])
		if !ok {
			t.Fatalf("endpoint %v off grid", p)
		}
		if cell := f.At(col, row); cell.Glyph != Dot {
			t.Fatalf("endpoint %v not plotted", p)
		}
	}
}

func TestCanvasDropsOffGridPoints(t *testing.T) {
	g := face.NewGeometry(20, 10)
	f := face.NewFrame(g.Width, g.Height)
	c := NewCanvas(f, g)
	c.Point(1e6, 1e6, White)
	c.Line(-1e4, 0, 1e4, 0, White)
	if countColor(f, White) != g.Width {
		t.Fatalf("horizontal line through the face should cover every column, got %d", countColor(f, White))
	}
}

func TestCircleHasNoGaps(t *testing.T) {
	g := face.NewGeometry(240, 100)
	f := face.NewFrame(g.Width, g.Height)
	NewCanvas(f, g).Circle(0, 0, 60, Gold)

	// Walk a ring of rows: every row the circle crosses has at least two dots.
	_, top, _ := g.Cell(0, 60)
	_, bottom, _ := g.Cell(0, -60)
	for row := top + 1; row < bottom; row++ {
		if row < 0 || row >= g.Height {
			continue
		}
		dots := 0
		for _, cell := range f.Row(row) {
			if cell.Glyph != 0 {
				dots++
			}
		}
		if dots < 2 {
			t.Fatalf("row %d has %d dots", row, dots)
		}
	}
}

func TestSelectedTickIsHighlighted(t *testing.T) {
	g := face.NewGeometry(240, 100)
	plain := countColor(render(g, -1), White)
	selected := countColor(render(g, 15), White)
	if selected <= plain {
		t.Fatalf("white cells with selection = %d, without = %d", selected, plain)
	}
}

func TestHubIsDrawnLast(t *testing.T) {
	g := face.NewGeometry(240, 100)
	f := render(g, -1)
	col, row, _ := g.Cell(0, 0)
	if cell := f.At(col, row); cell.Glyph != Dot || cell.Fg != White && cell.Fg != Gold {
		t.Fatalf("center cell = %+v, want hub color", cell)
	}
}

func TestMinuteHandMeetsSpiritGlow(t *testing.T) {
	g := face.NewGeometry(200, 60)
	f := face.NewFrame(g.Width, g.Height)
	if err := (shader.Compositor{Workers: 2}).Paint(f, g, snap); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	Overlay{}.Draw(f, g, snap, -1)

	col, row, ok := g.Cell(face.HandsAt(snap).MinuteTip())
	if !ok {
		t.Fatal("minute tip off grid")
	}
	cell := f.At(col, row)
	if cell.Fg != ActiveHand {
		t.Fatalf("tip cell fg = %v, want minute hand color", cell.Fg)
	}
	if !cell.HasBg || cell.Bg.R < 150 {
		t.Fatalf("tip cell bg = %v, want spirit glow beneath the hand", cell.Bg)
	}
}

func TestPetalsShareShaderRotation(t *testing.T) {
	later := vclock.Snapshot{Time: snap.Time.Add(7 * time.Second)}
	for i := 0; i < 12; i++ {
		base := face.Radians(90 - float64(i)*30)
		for _, s := range []vclock.Snapshot{snap, later} {
			if d := PetalAngle(i, s) - base - s.Rotation(); math.Abs(d) > 1e-9 {
				t.Fatalf("petal %d off by %v", i, d)
			}
		}
	}
}

func TestDimScalesTowardsBlack(t *testing.T) {
	if got := dim(Gold, 1); got != Gold {
		t.Fatalf("dim(Gold, 1) = %v", got)
	}
	if got := dim(Gold, 0); got != (face.RGB{}) {
		t.Fatalf("dim(Gold, 0) = %v", got)
	}
	half := dim(Gold, 0.5)
	if half.R < 105 || half.R > 107 {
		t.Fatalf("dim(Gold, 0.5).R = %d", half.R)
	}
}
