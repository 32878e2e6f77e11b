// Package render draws exported meshes and physics debug geometry with ebiten.
package render

import (
	"github.com/milk9111/mischieflink/common"
	"github.com/milk9111/mischieflink/geom"
)

// Camera maps y-up world units onto a y-down screen centered on the world
// origin.
type Camera struct {
	Scale         float64
	Width, Height float64
}

// NewCamera returns the default camera for a screen of the given size.
func NewCamera(width, height int) Camera {
	return Camera{Scale: common.PixelsPerMeter, Width: float64(width), Height: float64(height)}
}

// ToScreen converts a world point to pixel coordinates.
func (c Camera) ToScreen(p geom.Point) (float32, float32) {
	x := c.Width/2 + p.X*c.Scale
	y := c.Height/2 - p.Y*c.Scale
	return float32(x), float32(y)
}

// ToWorld converts pixel coordinates back to a world point.
func (c Camera) ToWorld(x, y float64) geom.Point {
	if c.Scale == 0 {
		return geom.Point{}
	}
	return geom.Pt((x-c.Width/2)/c.Scale, (c.Height/2-y)/c.Scale)
}
