package level

import (
	"github.com/milk9111/mischieflink/geom"
	"github.com/milk9111/mischieflink/path"
)

type bounds struct {
	left, right, bottom, top float64
}

func (c Config) bounds() bounds {
	return bounds{
		left:   -c.Width / 2,
		right:  c.Width / 2,
		bottom: -c.Height / 2,
		top:    c.Height / 2,
	}
}

// LeftWall traces the left outer wall, bin and playfield slope, counter-
// clockwise from the bottom-left corner.
func LeftWall(c Config) *path.Path {
	b := c.bounds()
	pw := c.PlayfieldWidth()
	binBottom := b.bottom + c.BinBottomOffset

	return path.MoveTo(geom.Pt(b.left, b.bottom)).
		LineTo(geom.Pt(-c.DrainWidth/2, b.bottom)).
		LineTo(geom.Pt(-c.DrainWidth/2, b.bottom+c.OuterWallThickness)).
		LineTo(geom.Pt(-pw/2, b.bottom+1)).
		LineTo(geom.Pt(-pw/2, c.BinTop)).
		LineTo(geom.Pt(-pw/2-c.PlayfieldWallThickness, c.BinTop)).
		LineTo(geom.Pt(-pw/2-c.PlayfieldWallThickness, binBottom)).
		LineTo(geom.Pt(b.left+c.OuterWallThickness, binBottom)).
		LineTo(geom.Pt(b.left+c.OuterWallThickness, b.top-3)).
		LineTo(geom.Pt(-c.InletWidth/2, b.top-c.OuterWallThickness)).
		LineTo(geom.Pt(-c.InletWidth/2, b.top)).
		LineTo(geom.Pt(b.left, b.top)).
		Close()
}

// RightWall traces the right side with a rounded playfield wall cap and a
// rounded bin bottom. It is drawn clockwise and reversed before returning.
func RightWall(c Config) *path.Path {
	b := c.bounds()
	pw := c.PlayfieldWidth()
	pwt := c.PlayfieldWallThickness
	binBottom := b.bottom + c.BinBottomOffset
	capY := c.BinTop - pwt/2
	bowlY := binBottom + c.BinWidth/2

	p := path.MoveTo(geom.Pt(b.right, b.bottom)).
		LineTo(geom.Pt(c.DrainWidth/2, b.bottom)).
		LineTo(geom.Pt(c.DrainWidth/2, b.bottom+c.OuterWallThickness)).
		LineTo(geom.Pt(pw/2, b.bottom+1)).
		LineTo(geom.Pt(pw/2, capY)).
		ArcTo(geom.Pt(pw/2+pwt, capY), geom.Pt(pw/2+pwt/2, capY), c.ArcSegments, path.Clockwise).
		LineTo(geom.Pt(pw/2+pwt, bowlY)).
		ArcTo(geom.Pt(b.right-c.OuterWallThickness, bowlY), geom.Pt(pw/2+pwt+c.BinWidth/2, bowlY), c.ArcSegments, path.CounterClockwise).
		LineTo(geom.Pt(b.right-c.OuterWallThickness, b.top-3)).
		LineTo(geom.Pt(c.InletWidth/2, b.top-c.OuterWallThickness)).
		LineTo(geom.Pt(c.InletWidth/2, b.top)).
		LineTo(geom.Pt(b.right, b.top)).
		Close()
	p.ReverseWindingOrder()
	return p
}

// Rect returns an axis-aligned rectangle centered on center.
func Rect(center geom.Point, width, height float64) *path.Path {
	hw, hh := width/2, height/2
	return path.MoveTo(geom.Pt(center.X-hw, center.Y-hh)).
		LineTo(geom.Pt(center.X+hw, center.Y-hh)).
		LineTo(geom.Pt(center.X+hw, center.Y+hh)).
		LineTo(geom.Pt(center.X-hw, center.Y+hh)).
		Close()
}

// InletBlock closes the inlet at the top of the level.
func InletBlock(c Config) *path.Path {
	b := c.bounds()
	return Rect(geom.Pt(0, b.top-c.OuterWallThickness/2), c.InletWidth, c.OuterWallThickness)
}

// DrainBlock closes the drain at the bottom of the level.
func DrainBlock(c Config) *path.Path {
	b := c.bounds()
	return Rect(geom.Pt(0, b.bottom+c.OuterWallThickness/2), c.DrainWidth, c.OuterWallThickness)
}
