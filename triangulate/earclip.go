// Package triangulate splits simple polygons into triangles by ear clipping.
package triangulate

import (
	"errors"
	"fmt"

	"github.com/milk9111/mischieflink/geom"
	"github.com/milk9111/mischieflink/path"
)

// ErrTriangulationFailed is returned when no ear can be found while three or
// more vertices remain. The input was not a simple, counter-clockwise polygon.
var ErrTriangulationFailed = errors.New("triangulate: no ear found")

// Triangle holds three vertex indices in counter-clockwise order.
type Triangle [3]int

// Path triangulates a closed path along its boundary order.
func Path(p *path.Path) ([]Triangle, error) {
	if p == nil {
		return nil, nil
	}
	return EarClip(p.Vertices(), p.Boundary())
}

// EarClip triangulates the polygon whose corners are vertices[boundary[i]],
// visited in order. The polygon must be simple and wound counter-clockwise.
// A valid n-gon yields n-2 triangles; the first ear in scan order is always
// the one clipped, so the result is deterministic.
func EarClip(vertices []geom.Point, boundary []int) ([]Triangle, error) {
	if len(boundary) < 3 {
		return nil, nil
	}

	remaining := append([]int(nil), boundary...)
	out := make([]Triangle, 0, len(boundary)-2)

	for len(remaining) >= 3 {
		n := len(remaining)
		clipped := false
		for i := 0; i < n; i++ {
			prev := remaining[(i+n-1)%n]
			ear := remaining[i]
			next := remaining[(i+1)%n]
			if !isEar(vertices, remaining, prev, ear, next) {
				continue
			}
			out = append(out, Triangle{prev, ear, next})
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return out, fmt.Errorf("%w: %d of %d vertices left", ErrTriangulationFailed, n, len(boundary))
		}
	}
	return out, nil
}

// isEar reports whether (prev, ear, next) is a convex corner whose triangle
// contains no other remaining vertex. A vertex sitting exactly on one of the
// three corners does not block.
func isEar(vertices []geom.Point, remaining []int, prev, ear, next int) bool {
	a, b, c := vertices[prev], vertices[ear], vertices[next]
	if geom.Cross(a, b, c) <= 0 {
		return false
	}
	for _, idx := range remaining {
		if idx == prev || idx == ear || idx == next {
			continue
		}
		p := vertices[idx]
		if p == a || p == b || p == c {
			continue
		}
		if geom.PointInTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

// Area sums the signed areas of tris over vertices.
func Area(vertices []geom.Point, tris []Triangle) float64 {
	var sum float64
	for _, t := range tris {
		sum += geom.TriangleArea(vertices[t[0]], vertices[t[1]], vertices[t[2]])
	}
	return sum
}
