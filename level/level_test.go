package level

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/mischieflink/geom"
	"github.com/milk9111/mischieflink/mesh"
	"github.com/milk9111/mischieflink/path"
	"github.com/milk9111/mischieflink/physics"
	"github.com/milk9111/mischieflink/prefabs"
	"github.com/milk9111/mischieflink/triangulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func withPrefabDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 12.0, cfg.PlayfieldWidth(), 1e-12)
	assert.Equal(t, -5.5, cfg.MinY())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero_size", func(c *Config) { c.Width = 0 }},
		{"no_playfield", func(c *Config) { c.BinWidth = 7 }},
		{"wide_drain", func(c *Config) { c.DrainWidth = 20 }},
		{"wide_inlet", func(c *Config) { c.InletWidth = 16 }},
		{"negative_segments", func(c *Config) { c.ArcSegments = -1 }},
		{"bin_top_low", func(c *Config) { c.BinTop = -4 }},
		{"bin_top_high", func(c *Config) { c.BinTop = 2 }},
		{"unnamed_script", func(c *Config) { c.Scripts = []ScriptSpec{{File: "a.tengo"}} }},
		{"duplicate_script", func(c *Config) {
			c.Scripts = []ScriptSpec{{Name: "a", File: "a.tengo"}, {Name: "a", File: "b.tengo"}}
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{"#119fa6", color.NRGBA{R: 0x11, G: 0x9f, B: 0xa6, A: 0xff}, false},
		{" #11223344 ", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, false},
		{"Gold", color.RGBA{R: 255, G: 215, A: 255}, false},
		{"#12345", nil, true},
		{"#zz0000", nil, true},
		{"not-a-color", nil, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	r, g, b, a := Color{}.RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestConfigYAML(t *testing.T) {
	src := `
collider: trimesh
arc_segments: 4
palette:
  left: navy
scripts:
  - name: s
    file: s.tengo
    color: "#ff000080"
    params: {x: 1, y: 2.5}
`
	cfg := DefaultConfig()
	require.NoError(t, yaml.Unmarshal([]byte(src), &cfg))
	assert.Equal(t, mesh.ColliderTrimesh, cfg.Collider)
	assert.Equal(t, 4, cfg.ArcSegments)
	assert.Equal(t, 16.0, cfg.Width)
	assert.Equal(t, color.RGBA{B: 128, A: 255}, cfg.Palette.Left.Color)
	assert.Equal(t, DefaultConfig().Palette.Right, cfg.Palette.Right)
	require.Len(t, cfg.Scripts, 1)
	assert.Equal(t, mesh.ColliderPolyline, cfg.Scripts[0].Collider)
	assert.Equal(t, map[string]float64{"x": 1, "y": 2.5}, cfg.Scripts[0].Params)
	assert.Equal(t, color.NRGBA{R: 255, A: 128}, cfg.Scripts[0].Color.Color)

	err := yaml.Unmarshal([]byte("palette: {left: mauve-ish}"), &cfg)
	assert.ErrorContains(t, err, "mauve-ish")
	err = yaml.Unmarshal([]byte("collider: convex"), &cfg)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := withPrefabDir(t)

	cfg, err := LoadConfig(DefaultConfigName)
	require.NoError(t, err)
	assert.Equal(t, "mischief", cfg.Name)
	assert.Equal(t, 10, cfg.ArcSegments)
	require.Len(t, cfg.Scripts, 1)
	assert.Equal(t, "bumpers", cfg.Scripts[0].Name)
	assert.Equal(t, mesh.ColliderTrimesh, cfg.Scripts[0].Collider)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("width: -1\n"), 0o644))
	_, err = LoadConfig("broken.yaml")
	assert.ErrorContains(t, err, "level: broken.yaml")
}

func TestWalls(t *testing.T) {
	cfg := DefaultConfig()

	left := LeftWall(cfg)
	assert.Equal(t, 12, left.Len())
	assert.True(t, left.IsCounterClockwise())
	assert.InDelta(t, 13.80875, left.SignedArea(), 1e-9)

	right := RightWall(cfg)
	assert.Equal(t, 10+2*cfg.ArcSegments, right.Len())
	assert.True(t, right.IsCounterClockwise())
	assert.InDelta(t, 13.997824, right.SignedArea(), 1e-5)

	blocks := []struct {
		name string
		path *path.Path
		area float64
	}{
		{"inlet", InletBlock(cfg), 2.0},
		{"drain", DrainBlock(cfg), 0.5},
	}
	for _, b := range blocks {
		t.Run(b.name, func(t *testing.T) {
			assert.Equal(t, 4, b.path.Len())
			assert.True(t, b.path.IsCounterClockwise())
			assert.InDelta(t, b.area, b.path.SignedArea(), 1e-12)
		})
	}

	// Both walls end at the top of the level.
	assert.True(t, left.Vertices()[11].Near(geom.Pt(-8, 4.5), 1e-12))
}

func TestBuildDefault(t *testing.T) {
	lvl := Build(DefaultConfig())
	require.Empty(t, lvl.Failures)
	require.Len(t, lvl.Pieces, 4)

	want := map[string]int{"left_wall": 10, "right_wall": 28, "inlet_block": 2, "drain_block": 2}
	for name, tris := range want {
		p, ok := lvl.Piece(name)
		require.True(t, ok, name)
		assert.Equal(t, tris, p.Shape.Triangles, name)
		assert.InDelta(t, mesh.Area(p.Shape.Fill), p.Shape.Area(), 1e-12)
	}
	assert.Equal(t, 42, lvl.Triangles())

	wall, _ := lvl.Piece("left_wall")
	assert.Equal(t, physics.WallLayers, wall.Layers)
	assert.Equal(t, DefaultConfig().Palette.Left, wall.Color)
	drain, _ := lvl.Piece("drain_block")
	assert.Equal(t, physics.BlockerLayers, drain.Layers)

	_, ok := lvl.Piece("nope")
	assert.False(t, ok)
}

func TestBuildWithScripts(t *testing.T) {
	withPrefabDir(t)
	cfg, err := LoadConfig(DefaultConfigName)
	require.NoError(t, err)

	lvl := Build(cfg)
	require.Empty(t, lvl.Failures)
	assert.Len(t, lvl.Pieces, 7)

	bowl, ok := lvl.Piece("bumpers_0")
	require.True(t, ok)
	assert.Equal(t, 11, bowl.Shape.Triangles)
	assert.Equal(t, mesh.ColliderTrimesh, bowl.Shape.Collider.Kind)

	for _, name := range []string{"bumpers_1", "bumpers_2"} {
		peg, ok := lvl.Piece(name)
		require.True(t, ok, name)
		assert.Equal(t, 4, peg.Shape.Triangles)
	}
}

func TestBuildSkipsFailedShapes(t *testing.T) {
	dir := withPrefabDir(t)
	bad := `
shape.move_to(0, 0)
shape.line_to(0, 1)
shape.line_to(1, 1)
shape.line_to(1, 0)
shape.close()
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "cw.tengo"), []byte(bad), 0o644))

	cfg := DefaultConfig()
	cfg.Scripts = []ScriptSpec{
		{Name: "cw", File: "cw.tengo"},
		{Name: "missing", File: "missing.tengo"},
	}
	lvl := Build(cfg)
	assert.Len(t, lvl.Pieces, 4)
	require.Len(t, lvl.Failures, 2)

	assert.Equal(t, "missing", lvl.Failures[0].Name)
	assert.Equal(t, "cw", lvl.Failures[1].Name)
	assert.ErrorIs(t, lvl.Failures[1], triangulate.ErrTriangulationFailed)
}

func TestAttachAndSimulate(t *testing.T) {
	cfg := DefaultConfig()
	lvl := Build(cfg)
	w := physics.NewWorld()

	// One segment per boundary edge.
	assert.Equal(t, 12+30+4+4, lvl.Attach(w))

	binX := -cfg.Width/2 + cfg.OuterWallThickness + cfg.BinWidth/2
	inBin := w.DropBall(geom.Pt(binX, 1), 0.25)
	inDrain := w.DropBall(geom.Pt(0, -3.5), 0.25)

	for i := 0; i < 4*60; i++ {
		w.Step(1.0 / 60)
	}

	binBottom := -cfg.Height/2 + cfg.BinBottomOffset
	assert.InDelta(t, binBottom+0.25, inBin.Position().Y, 0.15)
	assert.Less(t, inDrain.Position().Y, cfg.MinY())

	assert.Equal(t, 1, w.Prune(cfg.MinY()))
	assert.Len(t, w.Balls(), 1)
}
