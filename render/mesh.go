package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mischieflink/geom"
)

// maxBatch is the largest triangle list whose indices fit in uint16.
const maxBatch = math.MaxUint16 / 3 * 3

var whiteImage *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// FillVertices converts a triangle list into ebiten vertices and indices
// tinted with clr. Triangle lists longer than a uint16 index range are cut
// at maxBatch; callers draw them in slices.
func FillVertices(fill []geom.Point, cam Camera, clr color.Color) ([]ebiten.Vertex, []uint16) {
	n := len(fill) - len(fill)%3
	if n > maxBatch {
		n = maxBatch
	}
	r, g, b, a := clr.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff

	verts := make([]ebiten.Vertex, n)
	indices := make([]uint16, n)
	for i := 0; i < n; i++ {
		x, y := cam.ToScreen(fill[i])
		verts[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
		// Flipping y turns counter-clockwise world triangles clockwise on
		// screen; ebiten draws both.
		indices[i] = uint16(i)
	}
	return verts, indices
}

// DrawFill draws a triangle list in a solid color.
func DrawFill(dst *ebiten.Image, fill []geom.Point, cam Camera, clr color.Color) {
	if dst == nil {
		return
	}
	src := whiteSubImage()
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	for len(fill) >= 3 {
		verts, indices := FillVertices(fill, cam, clr)
		dst.DrawTriangles(verts, indices, src, op)
		fill = fill[len(verts):]
	}
}

// DrawWireframe strokes a line list: each pair of points is one segment.
func DrawWireframe(dst *ebiten.Image, lines []geom.Point, cam Camera, width float32, clr color.Color) {
	if dst == nil {
		return
	}
	for i := 0; i+1 < len(lines); i += 2 {
		x0, y0 := cam.ToScreen(lines[i])
		x1, y1 := cam.ToScreen(lines[i+1])
		vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
	}
}

// DrawDisc fills a circle given in world space.
func DrawDisc(dst *ebiten.Image, center geom.Point, radius float64, cam Camera, clr color.Color) {
	if dst == nil {
		return
	}
	x, y := cam.ToScreen(center)
	vector.FillCircle(dst, x, y, float32(radius*cam.Scale), clr, true)
}
