package level

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/mischieflink/mesh"
	"github.com/milk9111/mischieflink/prefabs"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the level config shipped in prefabs.
const DefaultConfigName = "level.yaml"

// Config describes the level outline in world units.
type Config struct {
	Name                   string            `yaml:"name"`
	Width                  float64           `yaml:"width"`
	Height                 float64           `yaml:"height"`
	OuterWallThickness     float64           `yaml:"outer_wall_thickness"`
	PlayfieldWallThickness float64           `yaml:"playfield_wall_thickness"`
	BinWidth               float64           `yaml:"bin_width"`
	BinBottomOffset        float64           `yaml:"bin_bottom_offset"`
	BinTop                 float64           `yaml:"bin_top"`
	DrainWidth             float64           `yaml:"drain_width"`
	InletWidth             float64           `yaml:"inlet_width"`
	ArcSegments            int               `yaml:"arc_segments"`
	Collider               mesh.ColliderKind `yaml:"collider"`
	Palette                Palette           `yaml:"palette"`
	Scripts                []ScriptSpec      `yaml:"scripts"`
}

// Palette holds the level colors.
type Palette struct {
	Left       Color `yaml:"left"`
	Right      Color `yaml:"right"`
	Bad        Color `yaml:"bad"`
	Background Color `yaml:"background"`
	Text       Color `yaml:"text"`
	Wireframe  Color `yaml:"wireframe"`
}

// ScriptSpec names a tengo script that draws extra shapes.
type ScriptSpec struct {
	Name     string             `yaml:"name"`
	File     string             `yaml:"file"`
	Color    Color              `yaml:"color"`
	Collider mesh.ColliderKind  `yaml:"collider"`
	Params   map[string]float64 `yaml:"params"`
}

// Color is a color.Color read from "#rrggbb", "#rrggbbaa" or a color name.
type Color struct {
	color.Color
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	c.Color = v
	return nil
}

// RGBA returns the color, or opaque white when unset.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c.Color == nil {
		return color.White.RGBA()
	}
	return c.Color.RGBA()
}

// ParseColor accepts hex notation or a name from colornames.
func ParseColor(v string) (color.Color, error) {
	s := strings.TrimSpace(v)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return nil, fmt.Errorf("unknown color %q", v)
	}
	s = s[1:]
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %q", v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		n, err := parse(2 * i)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", v, err)
		}
		rgba[i] = n
	}
	return color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}

func mustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return Color{c}
}

// DefaultConfig returns the stock level dimensions and palette.
func DefaultConfig() Config {
	return Config{
		Name:                   "default",
		Width:                  16,
		Height:                 9,
		OuterWallThickness:     0.25,
		PlayfieldWallThickness: 0.4,
		BinWidth:               1.35,
		BinBottomOffset:        0.4,
		BinTop:                 0,
		DrainWidth:             2,
		InletWidth:             8,
		ArcSegments:            10,
		Collider:               mesh.ColliderPolyline,
		Palette: Palette{
			Left:       mustColor("#119fa6"),
			Right:      mustColor("#e2653c"),
			Bad:        mustColor("#e52724"),
			Background: mustColor("#40434e"),
			Text:       mustColor("#d7d9ce"),
			Wireframe:  mustColor("white"),
		},
	}
}

// LoadConfig reads name from prefabs on top of DefaultConfig.
func LoadConfig(name string) (Config, error) {
	cfg := DefaultConfig()
	if err := prefabs.Decode(name, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("level: %s: %w", name, err)
	}
	return cfg, nil
}

// PlayfieldWidth is the horizontal span between the two inner walls.
func (c Config) PlayfieldWidth() float64 {
	return c.Width - (c.OuterWallThickness+c.PlayfieldWallThickness+c.BinWidth)*2
}

// Validate rejects dimensions that cannot produce a closed, simple outline.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %vx%v must be positive", c.Width, c.Height))
	}
	if c.OuterWallThickness <= 0 || c.PlayfieldWallThickness <= 0 || c.BinWidth <= 0 {
		errs = append(errs, errors.New("wall and bin sizes must be positive"))
	}
	if c.ArcSegments < 0 {
		errs = append(errs, fmt.Errorf("arc_segments %d is negative", c.ArcSegments))
	}
	pw := c.PlayfieldWidth()
	if pw <= 0 {
		errs = append(errs, fmt.Errorf("walls leave no playfield (width %v)", pw))
	}
	if c.DrainWidth <= 0 || c.DrainWidth >= pw {
		errs = append(errs, fmt.Errorf("drain_width %v must be in (0, %v)", c.DrainWidth, pw))
	}
	if c.InletWidth <= 0 || c.InletWidth >= c.Width-2*c.OuterWallThickness {
		errs = append(errs, fmt.Errorf("inlet_width %v does not fit between the outer walls", c.InletWidth))
	}
	bottom := -c.Height / 2
	binBottom := bottom + c.BinBottomOffset
	if c.BinBottomOffset <= 0 ||
		c.BinTop <= bottom+1 ||
		c.BinTop-c.PlayfieldWallThickness/2 <= binBottom+c.BinWidth/2 ||
		c.BinTop >= c.Height/2-3 {
		errs = append(errs, fmt.Errorf("bin_top %v must sit between the bin bottom and the upper walls", c.BinTop))
	}
	names := make(map[string]bool)
	for i, s := range c.Scripts {
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.File) == "" {
			errs = append(errs, fmt.Errorf("scripts[%d] needs a name and a file", i))
			continue
		}
		if names[s.Name] {
			errs = append(errs, fmt.Errorf("scripts[%d]: duplicate name %q", i, s.Name))
		}
		names[s.Name] = true
	}
	return errors.Join(errs...)
}
