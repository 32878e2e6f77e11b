// Package mesh exports closed paths as flat render buffers and collider
// descriptors.
package mesh

import (
	"fmt"

	"github.com/milk9111/mischieflink/geom"
	"github.com/milk9111/mischieflink/path"
	"github.com/milk9111/mischieflink/triangulate"
)

// PolylineMesh returns the boundary as a line list: two endpoints per edge,
// in edge order, without sharing vertices.
func PolylineMesh(p *path.Path) []geom.Point {
	verts := p.Vertices()
	out := make([]geom.Point, 0, 2*len(p.Edges()))
	for _, e := range p.Edges() {
		out = append(out, verts[e[0]], verts[e[1]])
	}
	return out
}

// TriangleMesh returns the triangulated interior as a triangle list: three
// counter-clockwise corners per triangle, without sharing vertices.
func TriangleMesh(p *path.Path) ([]geom.Point, error) {
	tris, err := triangulate.Path(p)
	if err != nil {
		return nil, fmt.Errorf("mesh: triangle mesh: %w", err)
	}
	return expand(p.Vertices(), tris), nil
}

func expand(verts []geom.Point, tris []triangulate.Triangle) []geom.Point {
	out := make([]geom.Point, 0, 3*len(tris))
	for _, t := range tris {
		out = append(out, verts[t[0]], verts[t[1]], verts[t[2]])
	}
	return out
}

// Area sums the signed areas of a triangle list.
func Area(fill []geom.Point) float64 {
	var sum float64
	for i := 0; i+2 < len(fill); i += 3 {
		sum += geom.TriangleArea(fill[i], fill[i+1], fill[i+2])
	}
	return sum
}
