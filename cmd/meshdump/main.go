// Command meshdump compiles a level config without opening a window and
// prints what every shape exports.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/milk9111/mischieflink/level"
	"github.com/milk9111/mischieflink/mesh"
	"gopkg.in/yaml.v3"
)

type shapeReport struct {
	Name        string  `yaml:"name"`
	Vertices    int     `yaml:"vertices"`
	Edges       int     `yaml:"edges"`
	Triangles   int     `yaml:"triangles"`
	Collider    string  `yaml:"collider"`
	Segments    int     `yaml:"collider_segments"`
	SignedArea  float64 `yaml:"signed_area"`
	TriangleSum float64 `yaml:"triangulated_area"`
}

type report struct {
	Level    string            `yaml:"level"`
	Shapes   []shapeReport     `yaml:"shapes"`
	Failures map[string]string `yaml:"failures,omitempty"`
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("meshdump", flag.ContinueOnError)
	configName := fs.String("level", level.DefaultConfigName, "level config in prefabs/")
	collider := fs.String("collider", "", "override the collider kind for every shape (polyline or trimesh)")
	format := fs.String("format", "text", "output format: text or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := level.LoadConfig(*configName)
	if err != nil {
		return err
	}
	if *collider != "" {
		kind, err := mesh.ParseColliderKind(*collider)
		if err != nil {
			return err
		}
		cfg.Collider = kind
		for i := range cfg.Scripts {
			cfg.Scripts[i].Collider = kind
		}
	}

	r := buildReport(cfg.Name, level.Build(cfg))
	switch *format {
	case "text":
		return writeText(out, r)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("meshdump: unknown format %q", *format)
	}
}

func buildReport(name string, lvl *level.Level) report {
	r := report{Level: name}
	for _, p := range lvl.Pieces {
		s := p.Shape
		r.Shapes = append(r.Shapes, shapeReport{
			Name:        s.Name,
			Vertices:    len(s.Collider.Vertices),
			Edges:       len(s.Wireframe) / 2,
			Triangles:   s.Triangles,
			Collider:    s.Collider.Kind.String(),
			Segments:    len(s.Collider.Segments()),
			SignedArea:  s.OutlineArea(),
			TriangleSum: s.Area(),
		})
	}
	if len(lvl.Failures) > 0 {
		r.Failures = make(map[string]string, len(lvl.Failures))
		for _, f := range lvl.Failures {
			r.Failures[f.Name] = f.Err.Error()
		}
	}
	return r
}

func writeText(out io.Writer, r report) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "level %s\n", r.Level)
	fmt.Fprintln(tw, "shape\tvertices\tedges\ttriangles\tcollider\tsegments\tsigned area\ttriangulated area")
	for _, s := range r.Shapes {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%d\t%.4f\t%.4f\n",
			s.Name, s.Vertices, s.Edges, s.Triangles, s.Collider, s.Segments, s.SignedArea, s.TriangleSum)
	}
	for _, name := range slices.Sorted(maps.Keys(r.Failures)) {
		fmt.Fprintf(tw, "FAILED %s: %s\n", name, r.Failures[name])
	}
	return tw.Flush()
}
