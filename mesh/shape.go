package mesh

import (
	"fmt"

	"github.com/milk9111/mischieflink/geom"
	"github.com/milk9111/mischieflink/path"
	"github.com/milk9111/mischieflink/triangulate"
)

// Shape is everything exported from one closed path.
type Shape struct {
	Name      string
	Fill      []geom.Point
	Wireframe []geom.Point
	Collider  Collider
	Triangles int
}

// Build triangulates p once and derives the fill mesh, the wireframe and a
// collider of the requested kind from it.
func Build(name string, p *path.Path, kind ColliderKind) (*Shape, error) {
	if p == nil {
		return nil, fmt.Errorf("mesh: shape %q: nil path", name)
	}
	tris, err := triangulate.Path(p)
	if err != nil {
		return nil, fmt.Errorf("mesh: shape %q: %w", name, err)
	}

	s := &Shape{
		Name:      name,
		Fill:      expand(p.Vertices(), tris),
		Wireframe: PolylineMesh(p),
		Triangles: len(tris),
	}
	switch kind {
	case ColliderTrimesh:
		s.Collider = Collider{Kind: ColliderTrimesh, Vertices: p.Vertices(), Triangles: tris}
	case ColliderPolyline:
		s.Collider = PolylineCollider(p)
	default:
		return nil, fmt.Errorf("mesh: shape %q: unknown collider kind %v", name, kind)
	}
	return s, nil
}

// Area returns the area covered by the shape's fill mesh.
func (s *Shape) Area() float64 {
	if s == nil {
		return 0
	}
	return Area(s.Fill)
}

// OutlineArea returns the shoelace area of the wireframe boundary. It is
// positive for a counter-clockwise outline and matches Area when the fill
// covers the outline exactly.
func (s *Shape) OutlineArea() float64 {
	if s == nil {
		return 0
	}
	var sum float64
	for i := 0; i+1 < len(s.Wireframe); i += 2 {
		a, b := s.Wireframe[i], s.Wireframe[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}
