// Package physics hands exported colliders to a Chipmunk space.
package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mischieflink/common"
	"github.com/milk9111/mischieflink/geom"
	"github.com/milk9111/mischieflink/mesh"
)

const (
	collisionTypeLevel cp.CollisionType = iota + 1
	collisionTypeBlocker
	collisionTypeBall
)

// segmentRadius thickens polyline edges so fast bodies do not tunnel through.
const segmentRadius = 0.01

// Layer is a collision category bit.
type Layer uint

const (
	LayerRope Layer = 1 << iota
	LayerLevel
	LayerShapes
	LayerPlayerBlocker
)

// Layers pairs the categories a shape belongs to with the categories it
// collides with.
type Layers struct {
	Memberships Layer
	Filters     Layer
}

var (
	// WallLayers is used by the level outline.
	WallLayers = Layers{Memberships: LayerLevel, Filters: LayerRope | LayerShapes}
	// BlockerLayers only stops the rope.
	BlockerLayers = Layers{Memberships: LayerPlayerBlocker, Filters: LayerRope}
	// BallLayers is used by dropped demo bodies.
	BallLayers = Layers{Memberships: LayerShapes, Filters: LayerRope | LayerLevel | LayerShapes}
)

// Interacts reports whether shapes on l and o can touch.
func (l Layers) Interacts(o Layers) bool {
	return l.Memberships&o.Filters != 0 && o.Memberships&l.Filters != 0
}

func (l Layers) filter() cp.ShapeFilter {
	return cp.ShapeFilter{Group: 0, Categories: uint(l.Memberships), Mask: uint(l.Filters)}
}

// Ball is a dynamic circle dropped into the world.
type Ball struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64
}

// Position returns the ball center.
func (b *Ball) Position() geom.Point {
	p := b.Body.Position()
	return geom.Pt(p.X, p.Y)
}

// World owns the Chipmunk space, the static level shapes and the demo balls.
type World struct {
	space *cp.Space

	static map[string][]*cp.Shape
	layers map[*cp.Shape]Layers
	balls  []*Ball
}

// NewWorld creates an empty world with the default gravity.
func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	return &World{
		space:  space,
		static: make(map[string][]*cp.Shape),
		layers: make(map[*cp.Shape]Layers),
	}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// AddCollider attaches c to the static body under name. Polylines become one
// segment per boundary edge, trimeshes one triangle per ear.
func (w *World) AddCollider(name string, c mesh.Collider, layers Layers) []*cp.Shape {
	if w == nil || w.space == nil {
		return nil
	}
	if _, ok := w.static[name]; ok {
		w.RemoveStatic(name)
	}

	var shapes []*cp.Shape
	switch c.Kind {
	case mesh.ColliderPolyline:
		for _, seg := range c.Segments() {
			shapes = append(shapes, cp.NewSegment(w.space.StaticBody, vec(seg[0]), vec(seg[1]), segmentRadius))
		}
	case mesh.ColliderTrimesh:
		for _, t := range c.Triangles {
			verts := []cp.Vector{vec(c.Vertices[t[0]]), vec(c.Vertices[t[1]]), vec(c.Vertices[t[2]])}
			shapes = append(shapes, cp.NewPolyShapeRaw(w.space.StaticBody, 3, verts, 0))
		}
	default:
		log.Printf("physics: collider %q has unknown kind %v", name, c.Kind)
		return nil
	}

	ct := collisionTypeLevel
	if layers.Memberships&LayerPlayerBlocker != 0 {
		ct = collisionTypeBlocker
	}
	for _, s := range shapes {
		s.SetFriction(0.8)
		s.SetCollisionType(ct)
		s.SetFilter(layers.filter())
		w.space.AddShape(s)
		w.layers[s] = layers
	}
	w.static[name] = shapes
	return shapes
}

// RemoveStatic drops every shape registered under name.
func (w *World) RemoveStatic(name string) {
	if w == nil {
		return
	}
	for _, s := range w.static[name] {
		w.space.RemoveShape(s)
		delete(w.layers, s)
	}
	delete(w.static, name)
}

// ClearStatic removes all level shapes, keeping the balls.
func (w *World) ClearStatic() {
	if w == nil {
		return
	}
	for name := range w.static {
		w.RemoveStatic(name)
	}
}

// StaticShapes returns the shapes registered under name.
func (w *World) StaticShapes(name string) []*cp.Shape {
	if w == nil {
		return nil
	}
	return w.static[name]
}

// LayersOf returns the layers a shape was added with.
func (w *World) LayersOf(s *cp.Shape) (Layers, bool) {
	if w == nil {
		return Layers{}, false
	}
	l, ok := w.layers[s]
	return l, ok
}

// DropBall adds a dynamic circle centered at p.
func (w *World) DropBall(p geom.Point, radius float64) *Ball {
	if w == nil || w.space == nil || radius <= 0 {
		return nil
	}
	mass := math.Pi * radius * radius
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(vec(p))

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0.8)
	shape.SetElasticity(0.1)
	shape.SetCollisionType(collisionTypeBall)
	shape.SetFilter(BallLayers.filter())

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.layers[shape] = BallLayers

	b := &Ball{Body: body, Shape: shape, Radius: radius}
	w.balls = append(w.balls, b)
	return b
}

// Balls returns the live demo balls.
func (w *World) Balls() []*Ball {
	if w == nil {
		return nil
	}
	return w.balls
}

// Prune removes balls whose center fell below minY and returns how many were
// removed.
func (w *World) Prune(minY float64) int {
	if w == nil {
		return 0
	}
	kept := w.balls[:0]
	removed := 0
	for _, b := range w.balls {
		if b.Body.Position().Y >= minY {
			kept = append(kept, b)
			continue
		}
		w.space.RemoveShape(b.Shape)
		w.space.RemoveBody(b.Body)
		delete(w.layers, b.Shape)
		removed++
	}
	for i := len(kept); i < len(w.balls); i++ {
		w.balls[i] = nil
	}
	w.balls = kept
	return removed
}

// Step advances the physics simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(dt)
}

func vec(p geom.Point) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}
