package mesh

import (
	"fmt"
	"strings"

	"github.com/milk9111/mischieflink/geom"
	"github.com/milk9111/mischieflink/path"
	"github.com/milk9111/mischieflink/triangulate"
)

// ColliderKind selects how a path is handed to the physics engine.
type ColliderKind int

const (
	// ColliderPolyline is the closed boundary as connected segments.
	ColliderPolyline ColliderKind = iota
	// ColliderTrimesh is the triangulated interior as a triangle soup.
	ColliderTrimesh
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderPolyline:
		return "polyline"
	case ColliderTrimesh:
		return "trimesh"
	default:
		return fmt.Sprintf("ColliderKind(%d)", int(k))
	}
}

// ParseColliderKind accepts "polyline" or "trimesh". An empty string selects
// ColliderPolyline.
func ParseColliderKind(s string) (ColliderKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "polyline":
		return ColliderPolyline, nil
	case "trimesh":
		return ColliderTrimesh, nil
	default:
		return 0, fmt.Errorf("mesh: unknown collider kind %q", s)
	}
}

// UnmarshalText lets config decoders read a ColliderKind from text.
func (k *ColliderKind) UnmarshalText(text []byte) error {
	v, err := ParseColliderKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Collider describes a static collision shape. Edges is set for polylines,
// Triangles for trimeshes; both index into Vertices.
type Collider struct {
	Kind      ColliderKind
	Vertices  []geom.Point
	Edges     []path.Edge
	Triangles []triangulate.Triangle
}

// PolylineCollider describes the path boundary as a concave polyline shape.
func PolylineCollider(p *path.Path) Collider {
	return Collider{
		Kind:     ColliderPolyline,
		Vertices: p.Vertices(),
		Edges:    p.Edges(),
	}
}

// TrimeshCollider describes the triangulated path interior.
func TrimeshCollider(p *path.Path) (Collider, error) {
	tris, err := triangulate.Path(p)
	if err != nil {
		return Collider{}, fmt.Errorf("mesh: trimesh collider: %w", err)
	}
	return Collider{
		Kind:      ColliderTrimesh,
		Vertices:  p.Vertices(),
		Triangles: tris,
	}, nil
}

// BuildCollider returns the collider variant selected by kind.
func BuildCollider(p *path.Path, kind ColliderKind) (Collider, error) {
	switch kind {
	case ColliderPolyline:
		return PolylineCollider(p), nil
	case ColliderTrimesh:
		return TrimeshCollider(p)
	default:
		return Collider{}, fmt.Errorf("mesh: unknown collider kind %v", kind)
	}
}

// Segments returns the collider as endpoint pairs: boundary edges for a
// polyline, triangle sides for a trimesh.
func (c Collider) Segments() [][2]geom.Point {
	switch c.Kind {
	case ColliderPolyline:
		out := make([][2]geom.Point, 0, len(c.Edges))
		for _, e := range c.Edges {
			out = append(out, [2]geom.Point{c.Vertices[e[0]], c.Vertices[e[1]]})
		}
		return out
	case ColliderTrimesh:
		out := make([][2]geom.Point, 0, 3*len(c.Triangles))
		for _, t := range c.Triangles {
			for i := range 3 {
				out = append(out, [2]geom.Point{c.Vertices[t[i]], c.Vertices[t[(i+1)%3]]})
			}
		}
		return out
	}
	return nil
}
