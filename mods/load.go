package mods

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"autolang/common"
	"autolang/logging"
	"autolang/syntax"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-set/v3"
	"github.com/pelletier/go-toml"
)

// tomlModuleFile represents the module file as it is encoded in TOML
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
}

// tomlModule represents a module as it is encoded in TOML
type tomlModule struct {
	Name            string   `toml:"name"`
	CompilerVersion string   `toml:"compiler-version,omitempty"`
	Sources         []string `toml:"sources,omitempty"`
	SourceDirs      []string `toml:"source-dirs,omitempty"`
	Dump            bool     `toml:"dump"`
	LogLevel        string   `toml:"log-level,omitempty"`
}

// LoadModule loads the module whose module file is in the directory at path
func LoadModule(path string) (*AutoModule, error) {
	abspath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	buff, err := os.ReadFile(filepath.Join(abspath, common.ModuleFileName))
	if err != nil {
		return nil, err
	}

	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, fmt.Errorf("malformed module file: %w", err)
	}

	if tmf.Module == nil {
		return nil, fmt.Errorf("missing `[module]` table in module file at %s", abspath)
	}

	if err := validateModule(abspath, tmf.Module); err != nil {
		return nil, err
	}

	return &AutoModule{
		Name:            tmf.Module.Name,
		ModuleRoot:      abspath,
		CompilerVersion: tmf.Module.CompilerVersion,
		Sources:         tmf.Module.Sources,
		SourceDirs:      tmf.Module.SourceDirs,
		Dump:            tmf.Module.Dump,
		LogLevel:        tmf.Module.LogLevel,
	}, nil
}

// validateModule checks that the top level module contents are valid
func validateModule(root string, mod *tomlModule) error {
	if mod.Name == "" {
		return fmt.Errorf("missing module name for module at %s", root)
	}

	if !IsValidIdentifier(mod.Name) {
		return errors.New("module name must be a valid identifier")
	}

	if len(mod.Sources) == 0 && len(mod.SourceDirs) == 0 {
		return fmt.Errorf("module `%s` must specify `sources` or `source-dirs`", mod.Name)
	}

	if mod.CompilerVersion != "" {
		ok, err := CheckCompilerVersion(mod.CompilerVersion)
		if err != nil {
			return fmt.Errorf("invalid compiler version constraint for module `%s`: %w", mod.Name, err)
		}

		if !ok {
			logging.LogBuildWarning(
				"module",
				fmt.Sprintf(
					"module `%s` requires compiler version `%s` but this is v%s",
					mod.Name,
					mod.CompilerVersion,
					common.AutoVersion,
				),
			)
		}
	}

	return nil
}

// CheckCompilerVersion checks whether the current compiler version satisfies a
// semantic version constraint
func CheckCompilerVersion(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}

	v, err := semver.NewVersion(common.AutoVersion)
	if err != nil {
		return false, err
	}

	return c.Check(v), nil
}

// SourceFiles expands the sources and source directories of the module into
// the list of syntax tree files to compile.  Explicit sources come first in the
// order given; files found in source directories follow in lexical order.  No
// file is listed twice.
func (m *AutoModule) SourceFiles() ([]string, error) {
	seen := set.New[string](16)
	var files []string

	add := func(path string) {
		if seen.Insert(path) {
			files = append(files, path)
		}
	}

	for _, pattern := range m.Sources {
		matches, err := filepath.Glob(filepath.Join(m.ModuleRoot, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad source pattern `%s`: %w", pattern, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("source `%s` matches no files", pattern)
		}

		for _, match := range matches {
			add(match)
		}
	}

	for _, dir := range m.SourceDirs {
		var dirFiles []string

		err := filepath.WalkDir(filepath.Join(m.ModuleRoot, dir), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && syntax.IsSyntaxFile(path) {
				dirFiles = append(dirFiles, path)
			}

			return nil
		})

		if err != nil {
			return nil, fmt.Errorf("failed to read source directory `%s`: %w", dir, err)
		}

		sort.Strings(dirFiles)
		for _, f := range dirFiles {
			add(f)
		}
	}

	return files, nil
}

// SourceDirPaths returns the absolute paths of every directory containing
// sources of the module.  These are the directories watched for changes.
func (m *AutoModule) SourceDirPaths() []string {
	dirs := set.New[string](8)
	var paths []string

	add := func(dir string) {
		if dirs.Insert(dir) {
			paths = append(paths, dir)
		}
	}

	add(m.ModuleRoot)
	for _, dir := range m.SourceDirs {
		add(filepath.Join(m.ModuleRoot, dir))
	}

	for _, pattern := range m.Sources {
		add(filepath.Dir(filepath.Join(m.ModuleRoot, pattern)))
	}

	return paths
}
