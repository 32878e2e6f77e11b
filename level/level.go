// Package level assembles the play area from config: the two side walls,
// the inlet and drain blockers, and any shapes drawn by tengo scripts.
package level

import (
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/mischieflink/mesh"
	"github.com/milk9111/mischieflink/path"
	"github.com/milk9111/mischieflink/physics"
)

// Piece is one exported shape with how it should be drawn and collided.
type Piece struct {
	Shape  *mesh.Shape
	Color  color.Color
	Layers physics.Layers
}

// Failure records a shape that could not be exported.
type Failure struct {
	Name string
	Err  error
}

func (f Failure) Error() string {
	return f.Err.Error()
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Level is the compiled result of a Config.
type Level struct {
	Config   Config
	Pieces   []Piece
	Failures []Failure
}

type source struct {
	name   string
	path   *path.Path
	kind   mesh.ColliderKind
	color  color.Color
	layers physics.Layers
}

// Build compiles every shape in cfg. A shape that fails to triangulate is
// logged, recorded in Failures and left out; the rest of the level still
// builds.
func Build(cfg Config) *Level {
	lvl := &Level{Config: cfg}
	pal := cfg.Palette

	sources := []source{
		{"left_wall", LeftWall(cfg), cfg.Collider, pal.Left, physics.WallLayers},
		{"right_wall", RightWall(cfg), cfg.Collider, pal.Right, physics.WallLayers},
		{"inlet_block", InletBlock(cfg), cfg.Collider, pal.Bad, physics.BlockerLayers},
		{"drain_block", DrainBlock(cfg), cfg.Collider, pal.Bad, physics.BlockerLayers},
	}

	for _, spec := range cfg.Scripts {
		paths, err := LoadScript(spec)
		if err != nil {
			log.Printf("level: %v", err)
			lvl.Failures = append(lvl.Failures, Failure{Name: spec.Name, Err: err})
		}
		for i, p := range paths {
			name := spec.Name
			if len(paths) > 1 {
				name = fmt.Sprintf("%s_%d", spec.Name, i)
			}
			sources = append(sources, source{name, p, spec.Collider, spec.Color, physics.WallLayers})
		}
	}

	for _, src := range sources {
		shape, err := mesh.Build(src.name, src.path, src.kind)
		if err != nil {
			log.Printf("level: skipping %s: %v", src.name, err)
			lvl.Failures = append(lvl.Failures, Failure{Name: src.name, Err: err})
			continue
		}
		lvl.Pieces = append(lvl.Pieces, Piece{Shape: shape, Color: src.color, Layers: src.layers})
	}
	return lvl
}

// Attach registers every piece's collider with w, replacing shapes of the
// same name.
func (l *Level) Attach(w *physics.World) int {
	if l == nil || w == nil {
		return 0
	}
	n := 0
	for _, p := range l.Pieces {
		n += len(w.AddCollider(p.Shape.Name, p.Shape.Collider, p.Layers))
	}
	return n
}

// Piece returns the piece named name.
func (l *Level) Piece(name string) (Piece, bool) {
	if l == nil {
		return Piece{}, false
	}
	for _, p := range l.Pieces {
		if p.Shape.Name == name {
			return p, true
		}
	}
	return Piece{}, false
}

// Triangles returns the total triangle count across all pieces.
func (l *Level) Triangles() int {
	if l == nil {
		return 0
	}
	n := 0
	for _, p := range l.Pieces {
		n += p.Shape.Triangles
	}
	return n
}

// MinY is the lowest point a body can reach before it is considered lost.
func (c Config) MinY() float64 {
	return -c.Height/2 - 1
}
