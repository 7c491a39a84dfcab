// Package overlay draws the exact clock geometry (ticks, petals, hands) as dots on top
// of the shaded background.
package overlay

import (
	"math"

	"github.com/yoanbernabeu/chronos/face"
)

// Dot is the glyph used for every painted point.
const Dot = '•'

// Canvas plots world-space primitives into a frame through a face geometry.
type Canvas struct {
	frame *face.Frame
	geo   face.Geometry
}

// NewCanvas wraps a frame. The frame and geometry must have the same size.
func NewCanvas(f *face.Frame, g face.Geometry) *Canvas {
	return &Canvas{frame: f, geo: g}
}

// Point plots a single world point; points off the grid are dropped.
func (c *Canvas) Point(x, y float64, color face.RGB) {
	if col, row, ok := c.geo.Cell(x, y); ok {
		c.frame.SetGlyph(col, row, Dot, color)
	}
}

// Points plots each coordinate pair.
func (c *Canvas) Points(coords [][2]float64, color face.RGB) {
	for _, p := range coords {
		c.Point(p[0], p[1], color)
	}
}

// Line draws a segment with Bresenham's algorithm in cell space.
func (c *Canvas) Line(x1, y1, x2, y2 float64, color face.RGB) {
	cf1, rf1 := c.geo.Project(x1, y1)
	cf2, rf2 := c.geo.Project(x2, y2)
	c0, r0 := int(math.Floor(cf1)), int(math.Floor(rf1))
	c1, r1 := int(math.Floor(cf2)), int(math.Floor(rf2))

	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	e := dc + dr
	for {
		c.plot(c0, r0, color)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

// Circle draws the outline of a world-space circle. The sample count follows the
// projected circumference so large rings have no gaps.
func (c *Canvas) Circle(x, y, radius float64, color face.RGB) {
	if radius <= 0 {
		c.Point(x, y, color)
		return
	}
	cells := radius / face.WorldRadius * math.Max(c.geo.RadiusX, c.geo.RadiusY)
	n := int(math.Ceil(2 * math.Pi * cells * 2))
	if n < 360 {
		n = 360
	}
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := float64(i) * step
		c.Point(x+radius*math.Cos(a), y+radius*math.Sin(a), color)
	}
}

func (c *Canvas) plot(col, row int, color face.RGB) {
	if c.geo.Contains(col, row) {
		c.frame.SetGlyph(col, row, Dot, color)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
