package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDir(t *testing.T, dir string) {
	t.Helper()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })
}

func TestCleanPaths(t *testing.T) {
	cases := []struct {
		in, path, script string
	}{
		{"level.yaml", "level.yaml", "scripts/level.yaml"},
		{"prefabs/level.yaml", "level.yaml", "scripts/level.yaml"},
		{"bumpers.tengo", "bumpers.tengo", "scripts/bumpers.tengo"},
		{"prefabs/scripts/bumpers.tengo", "scripts/bumpers.tengo", "scripts/bumpers.tengo"},
		{"", "", ""},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.path, cleanPath(c.in))
			assert.Equal(t, c.script, cleanScriptPath(c.in))
		})
	}
}

func TestLoadEmbedded(t *testing.T) {
	withDir(t, t.TempDir())

	data, err := Load("level.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "outer_wall_thickness")

	data, err = LoadScript("bumpers.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(data), "shape.move_to")

	_, err = Load("missing.yaml")
	assert.Error(t, err)
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.yaml"), []byte("name: override\n"), 0o644))

	data, err := Load("prefabs/level.yaml")
	require.NoError(t, err)
	assert.Equal(t, "name: override\n", string(data))

	_, ok := ModTime("level.yaml")
	assert.True(t, ok)
	_, ok = ModTime("other.yaml")
	assert.False(t, ok)
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("name: a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: [\n"), 0o644))

	out := struct {
		Name  string `yaml:"name"`
		Width int    `yaml:"width"`
	}{Width: 7}
	require.NoError(t, Decode("a.yaml", &out))
	assert.Equal(t, "a", out.Name)
	assert.Equal(t, 7, out.Width)

	assert.ErrorContains(t, Decode("bad.yaml", &out), "prefabs: unmarshal bad.yaml")
	assert.ErrorContains(t, Decode("nope.yaml", &out), "prefabs: load nope.yaml")
}

func TestClassify(t *testing.T) {
	k, ok := classify("x/level.YAML")
	assert.True(t, ok)
	assert.Equal(t, ConfigChanged, k)

	k, ok = classify("scripts/a.tengo")
	assert.True(t, ok)
	assert.Equal(t, ScriptChanged, k)

	_, ok = classify("notes.txt")
	assert.False(t, ok)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(50*time.Millisecond, dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(target, []byte("name: x\n"), 0o644))

	select {
	case c := <-w.Events:
		assert.Equal(t, target, c.Name)
		assert.Equal(t, ConfigChanged, c.Kind)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(0, filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
