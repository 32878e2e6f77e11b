package geom

// Cross returns the z component of (a - o) x (b - o). It is positive when
// o, a, b turn counter-clockwise, negative when they turn clockwise and zero
// when they are collinear.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Orientation of an ordered point triple.
type Orientation int

const (
	Collinear Orientation = iota
	CounterClockwise
	Clockwise
)

// Orient classifies the turn a -> b -> c.
func Orient(a, b, c Point) Orientation {
	switch d := Cross(a, b, c); {
	case d > 0:
		return CounterClockwise
	case d < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// TriangleArea returns the signed area of triangle abc, positive when the
// corners are counter-clockwise.
func TriangleArea(a, b, c Point) float64 {
	return Cross(a, b, c) / 2
}

// SignedArea returns the shoelace area of the closed polygon pts.
func SignedArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	prev := pts[len(pts)-1]
	for _, p := range pts {
		sum += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return sum / 2
}

// PointInTriangle reports whether p lies inside triangle abc or on its
// boundary. The triangle may be given in either winding. Each edge is tested
// with the same sign computation as Cross; p is outside only when two edge
// signs disagree strictly.
func PointInTriangle(p, a, b, c Point) bool {
	d1 := Cross(a, b, p)
	d2 := Cross(b, c, p)
	d3 := Cross(c, a, p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
