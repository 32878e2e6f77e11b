package mesh

import (
	"testing"

	"github.com/milk9111/mischieflink/geom"
	"github.com/milk9111/mischieflink/path"
	"github.com/milk9111/mischieflink/triangulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *path.Path {
	return path.MoveTo(geom.Pt(0, 0)).
		LineTo(geom.Pt(1, 0)).
		LineTo(geom.Pt(1, 1)).
		LineTo(geom.Pt(0, 1)).
		Close()
}

func TestPolylineMesh(t *testing.T) {
	lines := PolylineMesh(square())
	assert.Equal(t, []geom.Point{
		geom.Pt(0, 0), geom.Pt(1, 0),
		geom.Pt(1, 0), geom.Pt(1, 1),
		geom.Pt(1, 1), geom.Pt(0, 1),
		geom.Pt(0, 1), geom.Pt(0, 0),
	}, lines)
}

func TestPolylineMeshFollowsReversal(t *testing.T) {
	p := square()
	p.ReverseWindingOrder()
	lines := PolylineMesh(p)
	require.Len(t, lines, 8)
	assert.Equal(t, geom.Pt(0, 0), lines[0])
	assert.Equal(t, geom.Pt(0, 1), lines[1])
}

func TestTriangleMesh(t *testing.T) {
	fill, err := TriangleMesh(square())
	require.NoError(t, err)
	assert.Len(t, fill, 6)
	assert.InDelta(t, 1.0, Area(fill), 1e-12)
	for i := 0; i < len(fill); i += 3 {
		assert.Greater(t, geom.TriangleArea(fill[i], fill[i+1], fill[i+2]), 0.0)
	}
}

func TestTriangleMeshError(t *testing.T) {
	p := path.New([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)})
	_, err := TriangleMesh(p)
	assert.ErrorIs(t, err, triangulate.ErrTriangulationFailed)

	_, err = TrimeshCollider(p)
	assert.ErrorIs(t, err, triangulate.ErrTriangulationFailed)

	_, err = Build("flat", p, ColliderPolyline)
	assert.ErrorIs(t, err, triangulate.ErrTriangulationFailed)
	assert.ErrorContains(t, err, `"flat"`)
}

func TestColliders(t *testing.T) {
	p := square()

	poly := PolylineCollider(p)
	assert.Equal(t, ColliderPolyline, poly.Kind)
	assert.Equal(t, p.Edges(), poly.Edges)
	assert.Empty(t, poly.Triangles)
	assert.Len(t, poly.Segments(), 4)

	tri, err := TrimeshCollider(p)
	require.NoError(t, err)
	assert.Equal(t, ColliderTrimesh, tri.Kind)
	assert.Len(t, tri.Triangles, 2)
	assert.Empty(t, tri.Edges)
	assert.Len(t, tri.Segments(), 6)
	assert.Equal(t, p.Vertices(), tri.Vertices)
}

func TestBuildCollider(t *testing.T) {
	cases := []struct {
		kind    ColliderKind
		wantErr bool
	}{
		{ColliderPolyline, false},
		{ColliderTrimesh, false},
		{ColliderKind(7), true},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			col, err := BuildCollider(square(), c.kind)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.kind, col.Kind)
		})
	}
}

func TestParseColliderKind(t *testing.T) {
	for in, want := range map[string]ColliderKind{
		"":          ColliderPolyline,
		"polyline":  ColliderPolyline,
		" TriMesh ": ColliderTrimesh,
	} {
		got, err := ParseColliderKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseColliderKind("convex")
	assert.Error(t, err)

	var k ColliderKind
	require.NoError(t, k.UnmarshalText([]byte("trimesh")))
	assert.Equal(t, ColliderTrimesh, k)
}

func TestBuildShape(t *testing.T) {
	s, err := Build("box", square(), ColliderTrimesh)
	require.NoError(t, err)
	assert.Equal(t, "box", s.Name)
	assert.Equal(t, 2, s.Triangles)
	assert.Len(t, s.Fill, 6)
	assert.Len(t, s.Wireframe, 8)
	assert.Equal(t, ColliderTrimesh, s.Collider.Kind)
	assert.InDelta(t, 1.0, s.Area(), 1e-12)

	_, err = Build("none", nil, ColliderPolyline)
	assert.Error(t, err)
}

func TestOutlineArea(t *testing.T) {
	s, err := Build("box", square(), ColliderPolyline)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.OutlineArea(), 1e-12)

	var none *Shape
	assert.Zero(t, none.OutlineArea())
	assert.Zero(t, none.Area())
}
