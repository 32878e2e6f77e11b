// Package path builds closed polygon outlines from move/line/arc commands.
//
// A path goes through three phases. There is no exported way to obtain an
// empty builder: MoveTo is the only constructor and yields an open Builder.
// Close turns the builder into a *Path, which has no drawing methods, so a
// line cannot be appended to a closed outline.
package path

import (
	"github.com/milk9111/mischieflink/geom"
)

// Edge is a directed boundary segment between two vertex indices.
type Edge [2]int

// Builder accumulates an open path.
type Builder struct {
	vertices []geom.Point
	edges    []Edge
	spent    bool
}

// MoveTo starts a new path at p.
func MoveTo(p geom.Point) *Builder {
	return &Builder{vertices: []geom.Point{p}}
}

// LineTo appends p and the edge from the previous vertex to it.
func (b *Builder) LineTo(p geom.Point) *Builder {
	b.mustBeOpen("LineTo")
	n := len(b.vertices)
	b.vertices = append(b.vertices, p)
	b.edges = append(b.edges, Edge{n - 1, n})
	return b
}

// Last returns the most recently appended vertex.
func (b *Builder) Last() geom.Point {
	b.mustBeOpen("Last")
	return b.vertices[len(b.vertices)-1]
}

// Len returns the number of vertices appended so far.
func (b *Builder) Len() int {
	return len(b.vertices)
}

// Close connects the last vertex back to the first and hands the buffers
// over to the returned Path. The builder must not be used afterwards.
func (b *Builder) Close() *Path {
	b.mustBeOpen("Close")
	n := len(b.vertices)
	b.edges = append(b.edges, Edge{n - 1, 0})

	p := &Path{vertices: b.vertices, edges: b.edges}
	b.vertices, b.edges, b.spent = nil, nil, true
	return p
}

func (b *Builder) mustBeOpen(op string) {
	if b == nil || len(b.vertices) == 0 {
		if b != nil && b.spent {
			panic("path: " + op + " on closed path")
		}
		panic("path: " + op + " before MoveTo")
	}
}

// Path is a closed outline: vertices plus the directed edges of its single
// boundary cycle.
type Path struct {
	vertices []geom.Point
	edges    []Edge
}

// New builds a closed path from a vertex ring, as if by MoveTo, LineTo for
// each remaining vertex, then Close. It returns nil for an empty ring.
func New(ring []geom.Point) *Path {
	if len(ring) == 0 {
		return nil
	}
	b := MoveTo(ring[0])
	for _, p := range ring[1:] {
		b.LineTo(p)
	}
	return b.Close()
}

// Vertices returns the vertex array. Callers must not modify it.
func (p *Path) Vertices() []geom.Point {
	return p.vertices
}

// Edges returns the boundary edges in cycle order. Callers must not modify it.
func (p *Path) Edges() []Edge {
	return p.edges
}

// Len returns the vertex count.
func (p *Path) Len() int {
	return len(p.vertices)
}

// Boundary returns the vertex indices in the order the edges visit them.
func (p *Path) Boundary() []int {
	out := make([]int, len(p.edges))
	for i, e := range p.edges {
		out[i] = e[0]
	}
	return out
}

// Ring returns the vertex positions in boundary order.
func (p *Path) Ring() []geom.Point {
	out := make([]geom.Point, len(p.edges))
	for i, e := range p.edges {
		out[i] = p.vertices[e[0]]
	}
	return out
}

// SignedArea returns the shoelace area of the boundary. It is positive when
// the edges run counter-clockwise.
func (p *Path) SignedArea() float64 {
	return geom.SignedArea(p.Ring())
}

// IsCounterClockwise reports whether the interior lies to the left of the
// edges, which is what the triangulator expects.
func (p *Path) IsCounterClockwise() bool {
	return p.SignedArea() > 0
}

// ReverseWindingOrder reverses the edge order and the direction of every
// edge. Calling it twice restores the original edges.
func (p *Path) ReverseWindingOrder() {
	for i, j := 0, len(p.edges)-1; i < j; i, j = i+1, j-1 {
		p.edges[i], p.edges[j] = p.edges[j], p.edges[i]
	}
	for i, e := range p.edges {
		p.edges[i] = Edge{e[1], e[0]}
	}
}
