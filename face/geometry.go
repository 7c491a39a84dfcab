// Package face holds the clock face geometry shared by the shader and vector passes.
//
// Both passes project through the same Geometry, so a point on the face lands on the
// same cell whether it is glowing in the background or drawn as a vector.
package face

import (
	"math"

	"github.com/yoanbernabeu/chronos/vclock"
)

const (
	// WorldRadius is the clock radius in world units.
	WorldRadius = 100.0
	// Anisotropy is the height/width ratio of a character cell.
	Anisotropy = 2.1

	SecondHandLength = 95.0
	MinuteHandLength = 85.0
	HourHandLength   = 60.0
)

// Geometry maps world coordinates (origin at the face center, y up) onto a grid of
// character cells.
type Geometry struct {
	Width   int
	Height  int
	CenterX float64
	CenterY float64
	// RadiusX and RadiusY are the clock radius measured in columns and rows.
	RadiusX float64
	RadiusY float64
}

// NewGeometry sizes the face to fit a width x height cell region.
func NewGeometry(width, height int) Geometry {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	ry := math.Min(float64(height)*0.45, float64(width)*0.22)
	return Geometry{
		Width:   width,
		Height:  height,
		CenterX: float64(width) / 2,
		CenterY: float64(height) / 2,
		RadiusX: ry * Anisotropy,
		RadiusY: ry,
	}
}

// Project converts world coordinates to fractional cell coordinates.
func (g Geometry) Project(x, y float64) (col, row float64) {
	return g.CenterX + x/WorldRadius*g.RadiusX, g.CenterY - y/WorldRadius*g.RadiusY
}

// Cell returns the integer cell containing a world point and whether it is on the grid.
func (g Geometry) Cell(x, y float64) (col, row int, ok bool) {
	cf, rf := g.Project(x, y)
	col, row = int(math.Floor(cf)), int(math.Floor(rf))
	return col, row, g.Contains(col, row)
}

// Contains reports whether a cell lies inside the grid.
func (g Geometry) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Width && row < g.Height
}

// Offset returns the anisotropy-corrected vector from the face center to the center of
// a cell. Its length is measured in columns.
func (g Geometry) Offset(col, row int) (dx, dy float64) {
	dx = float64(col) + 0.5 - g.CenterX
	dy = (float64(row) + 0.5 - g.CenterY) * Anisotropy
	return dx, dy
}

// OffsetOf is Offset for a world point, in the same metric.
func (g Geometry) OffsetOf(x, y float64) (dx, dy float64) {
	cf, rf := g.Project(x, y)
	return cf - g.CenterX, (rf - g.CenterY) * Anisotropy
}

// Hands are the hand angles in radians, counter-clockwise from three o'clock.
type Hands struct {
	Second float64
	Minute float64
	Hour   float64
}

// HandsAt derives continuous hand angles from a snapshot.
func HandsAt(s vclock.Snapshot) Hands {
	return Hands{
		Second: Radians(90 - s.Seconds()*6),
		Minute: Radians(90 - s.Minutes()*6),
		Hour:   Radians(90 - s.Hours()*30),
	}
}

// MinuteTip is the world position of the minute hand tip.
func (h Hands) MinuteTip() (x, y float64) {
	return Polar(MinuteHandLength, h.Minute)
}

// Polar converts a radius and angle to world coordinates.
func Polar(r, angle float64) (x, y float64) {
	return r * math.Cos(angle), r * math.Sin(angle)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
