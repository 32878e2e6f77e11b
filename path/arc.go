package path

import (
	"math"

	"github.com/milk9111/mischieflink/geom"
)

// WindDirection is the rotational sense of an arc in y-up world space.
type WindDirection int

const (
	Clockwise WindDirection = iota
	CounterClockwise
)

func (d WindDirection) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// ArcTo appends segments line segments approximating a circular arc from the
// current vertex to end around center, turning in dir.
//
// The radius is taken from the current vertex. end is assumed to lie on the
// same circle and is not checked; if it does not, the last vertex lands on
// the ray from center through end instead of on end itself.
func (b *Builder) ArcTo(end, center geom.Point, segments int, dir WindDirection) *Builder {
	b.mustBeOpen("ArcTo")
	if segments <= 0 {
		return b
	}

	start := b.Last()
	radius := start.Sub(center).Length()
	startAngle := start.Sub(center).Angle()
	step := Sweep(startAngle, end.Sub(center).Angle(), dir) / float64(segments)

	for i := 1; i <= segments; i++ {
		b.LineTo(geom.Polar(center, radius, startAngle+float64(i)*step))
	}
	return b
}

// Sweep returns the signed angle swept when turning from startAngle to
// endAngle in dir: negative for Clockwise, positive for CounterClockwise,
// with magnitude below one full turn. Equal angles sweep nothing, so a full
// circle cannot be requested this way.
func Sweep(startAngle, endAngle float64, dir WindDirection) float64 {
	sweep := endAngle - startAngle
	switch dir {
	case Clockwise:
		for sweep > 0 {
			sweep -= 2 * math.Pi
		}
	case CounterClockwise:
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	return sweep
}
