package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/mischieflink/geom"
	"github.com/milk9111/mischieflink/path"
	"github.com/milk9111/mischieflink/prefabs"
)

// shapeRecorder collects the paths a script draws. Builder misuse is turned
// into script errors instead of panics.
type shapeRecorder struct {
	open   *path.Builder
	closed []*path.Path
}

func (r *shapeRecorder) moveTo(p geom.Point) error {
	if r.open != nil {
		return errors.New("move_to while a path is open")
	}
	r.open = path.MoveTo(p)
	return nil
}

func (r *shapeRecorder) lineTo(p geom.Point) error {
	if r.open == nil {
		return errors.New("line_to before move_to")
	}
	r.open.LineTo(p)
	return nil
}

func (r *shapeRecorder) arcTo(end, center geom.Point, segments int, dir path.WindDirection) error {
	if r.open == nil {
		return errors.New("arc_to before move_to")
	}
	r.open.ArcTo(end, center, segments, dir)
	return nil
}

func (r *shapeRecorder) close() error {
	if r.open == nil {
		return errors.New("close before move_to")
	}
	r.closed = append(r.closed, r.open.Close())
	r.open = nil
	return nil
}

func (r *shapeRecorder) reverse() error {
	if len(r.closed) == 0 {
		return errors.New("reverse before close")
	}
	r.closed[len(r.closed)-1].ReverseWindingOrder()
	return nil
}

// RunScript executes a tengo script that draws closed paths through the
// global `shape` object and returns them in drawing order. params is exposed
// as the global `params` map. On error the paths closed so far are returned
// with it.
func RunScript(src []byte, params map[string]float64) ([]*path.Path, error) {
	rec := &shapeRecorder{}

	values := make(map[string]any, len(params))
	for k, v := range params {
		values[k] = v
	}

	script := tengo.NewScript(src)
	if err := script.Add("shape", buildShapeObject(rec)); err != nil {
		return nil, err
	}
	if err := script.Add("params", values); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap("math", "fmt"))

	if _, err := script.Run(); err != nil {
		return rec.closed, err
	}
	if rec.open != nil {
		return rec.closed, errors.New("script ended with an open path")
	}
	return rec.closed, nil
}

// LoadScript runs the script named by spec from prefabs.
func LoadScript(spec ScriptSpec) ([]*path.Path, error) {
	src, err := prefabs.LoadScript(spec.File)
	if err != nil {
		return nil, fmt.Errorf("level: script %s: %w", spec.Name, err)
	}
	paths, err := RunScript(src, spec.Params)
	if err != nil {
		return paths, fmt.Errorf("level: script %s: %w", spec.Name, err)
	}
	return paths, nil
}

func buildShapeObject(rec *shapeRecorder) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["move_to"] = &tengo.UserFunction{Name: "move_to", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p, err := pointArgs("move_to", args)
		if err != nil {
			return nil, err
		}
		return tengo.UndefinedValue, rec.moveTo(p)
	}}

	values["line_to"] = &tengo.UserFunction{Name: "line_to", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p, err := pointArgs("line_to", args)
		if err != nil {
			return nil, err
		}
		return tengo.UndefinedValue, rec.lineTo(p)
	}}

	// arc_to(end_x, end_y, center_x, center_y, segments, "cw"|"ccw")
	values["arc_to"] = &tengo.UserFunction{Name: "arc_to", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 6 {
			return nil, tengo.ErrWrongNumArguments
		}
		end, err := pointArgs("arc_to", args[0:2])
		if err != nil {
			return nil, err
		}
		center, err := pointArgs("arc_to", args[2:4])
		if err != nil {
			return nil, err
		}
		segments, ok := tengo.ToInt(args[4])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "segments", Expected: "int", Found: args[4].TypeName()}
		}
		dirName, ok := tengo.ToString(args[5])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "direction", Expected: "string", Found: args[5].TypeName()}
		}
		dir, err := parseWindDirection(dirName)
		if err != nil {
			return nil, err
		}
		return tengo.UndefinedValue, rec.arcTo(end, center, segments, dir)
	}}

	values["close"] = &tengo.UserFunction{Name: "close", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 0 {
			return nil, tengo.ErrWrongNumArguments
		}
		return tengo.UndefinedValue, rec.close()
	}}

	values["reverse"] = &tengo.UserFunction{Name: "reverse", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 0 {
			return nil, tengo.ErrWrongNumArguments
		}
		return tengo.UndefinedValue, rec.reverse()
	}}

	return &tengo.ImmutableMap{Value: values}
}

func pointArgs(fn string, args []tengo.Object) (geom.Point, error) {
	if len(args) != 2 {
		return geom.Point{}, tengo.ErrWrongNumArguments
	}
	x, ok := tengo.ToFloat64(args[0])
	if !ok {
		return geom.Point{}, tengo.ErrInvalidArgumentType{Name: fn + " x", Expected: "float", Found: args[0].TypeName()}
	}
	y, ok := tengo.ToFloat64(args[1])
	if !ok {
		return geom.Point{}, tengo.ErrInvalidArgumentType{Name: fn + " y", Expected: "float", Found: args[1].TypeName()}
	}
	return geom.Pt(x, y), nil
}

func parseWindDirection(s string) (path.WindDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cw", "clockwise":
		return path.Clockwise, nil
	case "ccw", "counterclockwise", "counter_clockwise":
		return path.CounterClockwise, nil
	}
	return 0, fmt.Errorf("unknown wind direction %q", s)
}
