package overlay

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yoanbernabeu/chronos/face"
	"github.com/yoanbernabeu/chronos/vclock"
)

// Palette of the vector layer.
var (
	Gold       = face.RGB{R: 212, G: 175, B: 55}
	GoldDim    = face.RGB{R: 100, G: 80, B: 20}
	ActiveHand = face.RGB{R: 252, G: 246, B: 186}
	SecondHand = face.RGB{R: 180, G: 50, B: 50}
	White      = face.RGB{R: 255, G: 255, B: 255}
)

const (
	tickInner    = 98.0
	tickOuter    = 100.0
	petalBase    = 102.0
	petalApex    = 118.0
	petalSpread  = 6.0
	markerRadius = 90.0
	crossArm     = 2.0
	selectMarker = 4.0
	rippleReach  = 1.5
)

// Overlay draws the vector face for one frame.
type Overlay struct {
	Emanations []vclock.Emanation
}

// Draw paints the vector layer on f. selected is the highlighted minute, or -1.
// Later layers overwrite earlier ones where they share a cell.
func (o Overlay) Draw(f *face.Frame, g face.Geometry, s vclock.Snapshot, selected int) {
	c := NewCanvas(f, g)
	o.drawRipples(c, s)
	drawTicks(c, selected)
	drawPetals(c, s)
	drawHourMarkers(c)
	drawHands(c, face.HandsAt(s))
	drawHub(c)
}

func (o Overlay) drawRipples(c *Canvas, s vclock.Snapshot) {
	ems := o.Emanations
	if ems == nil {
		ems = vclock.DefaultEmanations()
	}
	for _, e := range ems {
		c.Circle(0, 0, s.Breath(e)*face.WorldRadius*rippleReach, GoldDim)
	}
}

func drawTicks(c *Canvas, selected int) {
	for i := 0; i < 60; i++ {
		angle := face.Radians(90 - float64(i)*6)
		color := GoldDim
		switch {
		case i == selected:
			color = White
		case i%5 == 0:
			color = Gold
		}
		x1, y1 := face.Polar(tickInner, angle)
		x2, y2 := face.Polar(tickOuter, angle)
		c.Line(x1, y1, x2, y2, color)
		if i == selected {
			c.Circle(x2, y2, selectMarker, White)
		}
	}
}

// PetalAngle is the central angle of petal i, in radians. It shares the rotation term
// with the shader's lotus ring so the two layers turn together.
func PetalAngle(i int, s vclock.Snapshot) float64 {
	return face.Radians(90-float64(i)*30) + s.Rotation()
}

func drawPetals(c *Canvas, s vclock.Snapshot) {
	color := dim(Gold, s.BreathingLight())
	spread := face.Radians(petalSpread)
	for i := 0; i < 12; i++ {
		a := PetalAngle(i, s)
		ax, ay := face.Polar(petalApex, a)
		lx, ly := face.Polar(petalBase, a-spread)
		rx, ry := face.Polar(petalBase, a+spread)
		c.Line(lx, ly, ax, ay, color)
		c.Line(rx, ry, ax, ay, color)
	}
}

func drawHourMarkers(c *Canvas) {
	for i := 0; i < 12; i++ {
		x, y := face.Polar(markerRadius, face.Radians(90-float64(i)*30))
		if i%3 == 0 {
			c.Line(x-crossArm, y, x+crossArm, y, Gold)
			c.Line(x, y-crossArm, x, y+crossArm, Gold)
			continue
		}
		c.Points([][2]float64{{x, y}}, GoldDim)
	}
}

func drawHands(c *Canvas, h face.Hands) {
	x, y := face.Polar(face.SecondHandLength, h.Second)
	c.Line(0, 0, x, y, SecondHand)
	x, y = face.Polar(face.MinuteHandLength, h.Minute)
	c.Line(0, 0, x, y, ActiveHand)
	x, y = face.Polar(face.HourHandLength, h.Hour)
	c.Line(0, 0, x, y, Gold)
}

func drawHub(c *Canvas) {
	c.Circle(0, 0, 3, Gold)
	c.Circle(0, 0, 1, White)
}

// dim darkens a color towards black by factor k in [0,1].
func dim(base face.RGB, k float64) face.RGB {
	src := colorful.Color{R: float64(base.R) / 255, G: float64(base.G) / 255, B: float64(base.B) / 255}
	out := colorful.Color{}.BlendRgb(src, k).Clamped()
	r, g, b := out.RGB255()
	return face.RGB{R: r, G: g, B: b}
}
