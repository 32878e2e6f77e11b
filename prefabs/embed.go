// Package prefabs serves level configs and shape scripts, preferring copies
// on disk over the ones compiled into the binary so they can be edited live.
package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml scripts/*.tengo
var FS embed.FS

// Dir is the on-disk directory checked before the embedded files.
var Dir = "prefabs"

// Load returns the named config file, e.g. "level.yaml".
func Load(name string) ([]byte, error) {
	return read(cleanPath(name))
}

// LoadScript returns the named script. The "scripts/" prefix is optional.
func LoadScript(name string) ([]byte, error) {
	return read(cleanScriptPath(name))
}

// ModTime reports the modification time of the on-disk copy of name.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func read(clean string) ([]byte, error) {
	if clean == "" {
		return nil, fs.ErrNotExist
	}
	data, err := os.ReadFile(diskPath(clean))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FS.ReadFile(clean)
}

func cleanPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}
	return s
}

func cleanScriptPath(p string) string {
	s := cleanPath(p)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "scripts/") {
		return s
	}
	return "scripts/" + s
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
