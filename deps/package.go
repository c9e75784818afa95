package deps

import (
	"path/filepath"

	"autolang/common"
	"autolang/logging"
	"autolang/syntax"
)

// Unit is a compilation unit: a set of syntax tree files that are lowered
// together into one type pool.  A module compiles as a single unit.
type Unit struct {
	// ID is a unique identifier for the unit based on its root path
	ID uint

	// Name is the name of the unit (usually the module name)
	Name string

	// RootPath is the absolute path to the root directory of the unit
	RootPath string

	// Files contains all the individual files in this unit in the order they
	// should be lowered.
	Files []*SourceFile
}

// NewUnit creates a new compilation unit with no files
func NewUnit(name, rootPath string) *Unit {
	return &Unit{
		ID:       common.GenerateIDFromPath(rootPath),
		Name:     name,
		RootPath: rootPath,
	}
}

// SourceFile is a single syntax tree file of a unit
type SourceFile struct {
	// Parent is a reference to this file's unit
	Parent *Unit

	// FilePath is the absolute path to the file
	FilePath string

	// LogContext is the log context for this file
	LogContext *logging.LogContext

	// AST is the syntax tree stored in the file
	AST *syntax.Root
}

// AddFile adds a decoded syntax tree to the unit
func (u *Unit) AddFile(root *syntax.Root) *SourceFile {
	sf := &SourceFile{
		Parent:   u,
		FilePath: root.FilePath,
		AST:      root,
		LogContext: &logging.LogContext{
			UnitName:   u.Name,
			FilePath:   root.FilePath,
			SourcePath: root.SourcePath,
		},
	}

	u.Files = append(u.Files, sf)
	return sf
}

// RelPath returns the path of a file relative to the root of its unit.  It is
// used when displaying file names.
func (sf *SourceFile) RelPath() string {
	if rel, err := filepath.Rel(sf.Parent.RootPath, sf.FilePath); err == nil {
		return rel
	}

	return sf.FilePath
}
