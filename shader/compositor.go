// Package shader computes the procedural background glow of the clock face, one
// character cell at a time.
package shader

import (
	"fmt"
	"math"
	"runtime"

	"github.com/yoanbernabeu/chronos/face"
	"github.com/yoanbernabeu/chronos/vclock"
	"golang.org/x/sync/errgroup"
)

// Threshold is the brightest channel value at or below which a cell stays transparent.
const Threshold = 15

var (
	voidTint   = face.RGB{R: 10, G: 10, B: 15}
	rippleTint = face.RGB{R: 212, G: 175, B: 55}
	spiritTint = face.RGB{R: 255, G: 215, B: 0}
	lotusTint  = face.RGB{R: 255, G: 215, B: 50}
)

const (
	rippleThickness = 4.0
	rippleReach     = 1.5
	spiritRadius    = 12.0
	lotusPetals     = 8.0
	lotusAmplitude  = 6.0
	lotusBand       = 2.5
)

// Compositor paints the background layer. The zero value uses the default
// emanations and one worker per CPU.
type Compositor struct {
	Emanations []vclock.Emanation
	// Workers bounds how many row bands are shaded at once. Zero means NumCPU.
	Workers int
}

// scene holds everything a term needs that is constant across one frame.
type scene struct {
	geo      face.Geometry
	width    float64
	breaths  []float64
	spiritDX float64
	spiritDY float64
	rotation float64
	light    float64
}

// sample is one cell in shader space.
type sample struct {
	dx, dy float64
	dist   float64
	angle  float64
}

// term is one additive contribution.
type term func(sc *scene, p sample) face.RGB

// terms are accumulated with saturating addition, so their order does not matter.
var terms = []term{vignette, ripples, spirit, lotus}

func (c Compositor) emanations() []vclock.Emanation {
	if c.Emanations == nil {
		return vclock.DefaultEmanations()
	}
	return c.Emanations
}

func (c Compositor) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

func (c Compositor) scene(g face.Geometry, s vclock.Snapshot) *scene {
	ems := c.emanations()
	breaths := make([]float64, len(ems))
	for i, e := range ems {
		breaths[i] = s.Breath(e)
	}
	sx, sy := g.OffsetOf(face.HandsAt(s).MinuteTip())
	return &scene{
		geo:      g,
		width:    float64(g.Width),
		breaths:  breaths,
		spiritDX: sx,
		spiritDY: sy,
		rotation: s.Rotation(),
		light:    s.BreathingLight(),
	}
}

// Paint shades every cell of f. Rows are split into bands shaded concurrently; each
// band writes only its own rows and reads only the shared, immutable scene.
func (c Compositor) Paint(f *face.Frame, g face.Geometry, s vclock.Snapshot) error {
	if f.Width != g.Width || f.Height != g.Height {
		return fmt.Errorf("frame %dx%d does not match geometry %dx%d", f.Width, f.Height, g.Width, g.Height)
	}
	if f.Height == 0 || f.Width == 0 {
		return nil
	}
	sc := c.scene(g, s)

	workers := c.workers()
	if workers > f.Height {
		workers = f.Height
	}
	if workers <= 1 {
		shadeRows(f, sc, 0, f.Height)
		return nil
	}

	band := (f.Height + workers - 1) / workers
	var eg errgroup.Group
	eg.SetLimit(workers)
	for start := 0; start < f.Height; start += band {
		start, end := start, min(start+band, f.Height)
		eg.Go(func() error {
			shadeRows(f, sc, start, end)
			return nil
		})
	}
	return eg.Wait()
}

func shadeRows(f *face.Frame, sc *scene, start, end int) {
	for row := start; row < end; row++ {
		for col := 0; col < f.Width; col++ {
			if color, ok := shadeCell(sc, col, row, terms); ok {
				f.SetBackground(col, row, color)
			}
		}
	}
}

// Shade returns the background color of one cell and whether it is opaque.
func (c Compositor) Shade(g face.Geometry, s vclock.Snapshot, col, row int) (face.RGB, bool) {
	return shadeCell(c.scene(g, s), col, row, terms)
}

func shadeCell(sc *scene, col, row int, ts []term) (face.RGB, bool) {
	dx, dy := sc.geo.Offset(col, row)
	p := sample{dx: dx, dy: dy, dist: math.Hypot(dx, dy), angle: math.Atan2(dy, dx)}

	var acc face.RGB
	for _, t := range ts {
		acc = acc.AddSat(t(sc, p))
	}
	return acc, acc.Max() > Threshold
}

func vignette(sc *scene, p sample) face.RGB {
	if sc.width <= 0 {
		return face.RGB{}
	}
	v := math.Max(0, 1-p.dist/sc.width)
	return voidTint.Scale(v * v)
}

func ripples(sc *scene, p sample) face.RGB {
	var acc face.RGB
	for _, scale := range sc.breaths {
		radius := scale * sc.geo.RadiusX * rippleReach
		d := math.Abs(p.dist - radius)
		if d < rippleThickness {
			acc = acc.AddSat(rippleTint.Scale((1 - d/rippleThickness) * scale * 0.5))
		}
	}
	return acc
}

func spirit(sc *scene, p sample) face.RGB {
	d := math.Hypot(p.dx-sc.spiritDX, p.dy-sc.spiritDY)
	if d >= spiritRadius {
		return face.RGB{}
	}
	glow := 1 - d/spiritRadius
	return spiritTint.Scale(glow * glow * glow)
}

func lotus(sc *scene, p sample) face.RGB {
	petal := math.Abs(math.Sin(lotusPetals * (p.angle + sc.rotation)))
	target := sc.geo.RadiusX + lotusAmplitude*petal
	d := math.Abs(p.dist - target)
	if d >= lotusBand {
		return face.RGB{}
	}
	return lotusTint.Scale((1 - d/lotusBand) * sc.light)
}
