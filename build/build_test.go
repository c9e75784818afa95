package build

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autolang/logging"
	"autolang/mods"

	"github.com/fsnotify/fsnotify"
	"github.com/nalgeon/be"
)

const boxTree = `
module = "app"

[[types]]
name = "Box"
span = [1, 0, 3, 1]

  [[types.generics]]
  name = "T"

  [[types.members]]
  kind = "field"
  name = "value"
  type = "T"
`

const mainTree = `
module = ["app", "main"]

[[types]]
name = "Main"
span = [1, 0, 6, 1]
extends = { path = "Box", generics = ["i32"] }

  [[types.members]]
  kind = "method"
  name = "run"
  type = "void"
  params = [{ name = "n", type = "i32" }]
  body = [
    { kind = "expr", expr = { kind = "binop", op = "=", lhs = { kind = "ident", name = "n" }, rhs = { kind = "num", value = "1" } } },
  ]
`

const brokenTree = `
module = "app"

[[types]]
name = "Broken"
span = [1, 0, 2, 1]

  [[types.members]]
  kind = "field"
  name = "missing"
  type = "Nowhere"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	be.Err(t, os.MkdirAll(filepath.Dir(path), 0o755), nil)
	be.Err(t, os.WriteFile(path, []byte(content), 0o644), nil)
}

func newModule(t *testing.T, files map[string]string) *mods.AutoModule {
	t.Helper()

	root := t.TempDir()
	be.Err(t, mods.InitModule("app", root), nil)
	for name, content := range files {
		writeFile(t, filepath.Join(root, "src", name), content)
	}

	mod, err := mods.LoadModule(root)
	be.Err(t, err, nil)
	return mod
}

func TestAnalyze(t *testing.T) {
	mod := newModule(t, map[string]string{
		"box.ast.toml":  boxTree,
		"main.ast.toml": mainTree,
	})

	c := NewCompiler(mod)
	be.True(t, c.Analyze())

	res := c.Result()
	be.True(t, res != nil)
	be.Equal(t, res.Pool.Len(), 2)
	be.Equal(t, len(res.Root.Types), 2)
	be.Equal(t, len(res.Members.Fields), 1)
	be.Equal(t, len(res.Members.Methods), 1)
}

func TestAnalyzeFailure(t *testing.T) {
	mod := newModule(t, map[string]string{"broken.ast.toml": brokenTree})

	c := NewCompiler(mod)
	be.True(t, !c.Compile())
	be.True(t, c.Result() == nil)
}

func TestAnalyzeMalformedFile(t *testing.T) {
	mod := newModule(t, map[string]string{"bad.ast.toml": "module = [1, \"a\""})
	be.True(t, !NewCompiler(mod).Compile())
}

func TestDump(t *testing.T) {
	mod := newModule(t, map[string]string{
		"box.ast.toml":  boxTree,
		"main.ast.toml": mainTree,
	})

	c := NewCompiler(mod)
	be.True(t, c.Analyze())

	var buf bytes.Buffer
	Dump(&buf, c.Result())
	out := buf.String()

	be.True(t, strings.Contains(out, "0: class app::Box<T>"))
	be.True(t, strings.Contains(out, "1: class app::main::Main : app::Box<i32>"))
	be.True(t, strings.Contains(out, "Box.value"))
	be.True(t, strings.Contains(out, "Main.run(i32)"))
	be.True(t, strings.Contains(out, "-- TIR --"))

	// dumps carry no pointer addresses so they are reproducible
	var again bytes.Buffer
	Dump(&again, c.Result())
	be.Equal(t, again.String(), out)
}

func TestCheckFile(t *testing.T) {
	// CheckFile leaves the error count to its caller
	t.Cleanup(logging.LogCompilationFinished)
	dir := t.TempDir()

	good := filepath.Join(dir, "box.ast.toml")
	writeFile(t, good, boxTree)
	ok, err := CheckFile(good)
	be.Err(t, err, nil)
	be.True(t, ok)

	bad := filepath.Join(dir, "broken.ast.toml")
	writeFile(t, bad, brokenTree)
	ok, err = CheckFile(bad)
	be.Err(t, err, nil)
	be.True(t, !ok)

	_, err = CheckFile(filepath.Join(dir, "missing.ast.toml"))
	be.Err(t, err)
}

func TestIsRelevantEvent(t *testing.T) {
	tests := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: "/m/src/a.ast.toml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/m/src/a.ast.toml", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "/m/auto-mod.toml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/m/src/a.ast.toml", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/m/src/notes.txt", Op: fsnotify.Write}, false},
	}

	for _, test := range tests {
		be.Equal(t, isRelevantEvent(test.ev), test.want)
	}
}

func TestWatchDirs(t *testing.T) {
	mod := newModule(t, map[string]string{
		"box.ast.toml":         boxTree,
		"nested/main.ast.toml": mainTree,
	})

	dirs := watchDirs(mod)
	be.Equal(t, dirs, []string{
		mod.ModuleRoot,
		filepath.Join(mod.ModuleRoot, "src"),
		filepath.Join(mod.ModuleRoot, "src", "nested"),
	})
}

func TestWatchStopsOnCancel(t *testing.T) {
	mod := newModule(t, map[string]string{"box.ast.toml": boxTree})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var results []bool
	err := Watch(ctx, mod, func(ok bool) {
		results = append(results, ok)
		cancel()
	})

	be.Err(t, err, nil)
	be.Equal(t, results, []bool{true})
}
