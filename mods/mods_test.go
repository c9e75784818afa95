package mods

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	be.Err(t, os.MkdirAll(filepath.Dir(path), 0o755), nil)
	be.Err(t, os.WriteFile(path, []byte(content), 0o644), nil)
}

func TestLoadModule(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "auto-mod.toml"), `
[module]
name = "telno"
compiler-version = ">= 0.1.0, < 1.0.0"
sources = ["main.ast.toml"]
source-dirs = ["src"]
dump = true
`)
	writeFile(t, filepath.Join(root, "main.ast.toml"), `module = "telno"`)
	writeFile(t, filepath.Join(root, "src", "b.ast.toml"), `module = "telno::b"`)
	writeFile(t, filepath.Join(root, "src", "nested", "a.ast.toml"), `module = "telno::a"`)
	writeFile(t, filepath.Join(root, "src", "notes.txt"), `not a tree`)

	mod, err := LoadModule(root)
	be.Err(t, err, nil)
	be.Equal(t, mod.Name, "telno")
	be.True(t, mod.Dump)
	be.Equal(t, mod.ModuleRoot, root)

	files, err := mod.SourceFiles()
	be.Err(t, err, nil)
	be.Equal(t, files, []string{
		filepath.Join(root, "main.ast.toml"),
		filepath.Join(root, "src", "b.ast.toml"),
		filepath.Join(root, "src", "nested", "a.ast.toml"),
	})

	be.Equal(t, mod.SourceDirPaths(), []string{root, filepath.Join(root, "src")})
}

func TestLoadModuleErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no table", `name = "x"`, "missing `[module]` table"},
		{"no name", "[module]\nsources = [\"a\"]", "missing module name"},
		{"bad name", "[module]\nname = \"1st\"\nsources = [\"a\"]", "valid identifier"},
		{"no sources", "[module]\nname = \"x\"", "must specify"},
		{"bad constraint", "[module]\nname = \"x\"\nsources = [\"a\"]\ncompiler-version = \"not a version\"", "invalid compiler version"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, "auto-mod.toml"), test.content)

			_, err := LoadModule(root)
			be.Err(t, err, test.want)
		})
	}
}

func TestCheckCompilerVersion(t *testing.T) {
	ok, err := CheckCompilerVersion(">= 0.1.0")
	be.Err(t, err, nil)
	be.True(t, ok)

	ok, err = CheckCompilerVersion("^2.0.0")
	be.Err(t, err, nil)
	be.True(t, !ok)
}

func TestSourceFilesMissing(t *testing.T) {
	mod := &AutoModule{Name: "x", ModuleRoot: t.TempDir(), Sources: []string{"missing.ast.toml"}}
	_, err := mod.SourceFiles()
	be.Err(t, err, "matches no files")
}

func TestInitAndFindModule(t *testing.T) {
	root := t.TempDir()
	be.Err(t, InitModule("demo", root), nil)

	mod, err := LoadModule(root)
	be.Err(t, err, nil)
	be.Equal(t, mod.Name, "demo")
	be.Equal(t, mod.SourceDirs, []string{"src"})

	// a second init fails
	be.Err(t, InitModule("demo", root), "already exists")

	found, err := FindModuleRoot(filepath.Join(root, "src"))
	be.Err(t, err, nil)
	be.Equal(t, found, root)
}

func TestIsValidIdentifier(t *testing.T) {
	be.True(t, IsValidIdentifier("telno_2"))
	be.True(t, IsValidIdentifier("_x"))
	be.True(t, !IsValidIdentifier(""))
	be.True(t, !IsValidIdentifier("2x"))
	be.True(t, !IsValidIdentifier("a-b"))
}
