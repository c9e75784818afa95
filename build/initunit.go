package build

import (
	"fmt"
	"path/filepath"
	"runtime"

	"autolang/common"
	"autolang/deps"
	"autolang/logging"
	"autolang/syntax"

	"golang.org/x/sync/errgroup"
)

// initUnit loads all the syntax tree files of the module into a compilation
// unit.  Files are decoded concurrently but keep the order given by the module.
// It returns the unit along with a boolean flag indicating success or failure.
func (c *Compiler) initUnit() (*deps.Unit, bool) {
	paths, err := c.mod.SourceFiles()
	if err != nil {
		logging.LogConfigError("Module", err.Error())
		return nil, false
	}

	if len(paths) == 0 {
		logging.LogConfigError("Module", fmt.Sprintf("module `%s` contains no syntax tree files", c.mod.Name))
		return nil, false
	}

	roots := make([]*syntax.Root, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			root, err := syntax.LoadFile(path)
			if err != nil {
				return err
			}

			roots[i] = root
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logging.LogConfigError("Syntax", err.Error())
		return nil, false
	}

	unit := deps.NewUnit(c.mod.Name, c.mod.ModuleRoot)
	for _, root := range roots {
		unit.AddFile(root)
	}

	return unit, true
}

// CheckFile loads and lowers a single syntax tree file on its own.  This is
// used to check files outside of any module.  Errors in the program are
// reported through the logger; the returned error is only set if the file could
// not be loaded.
func CheckFile(path string) (bool, error) {
	root, err := syntax.LoadFile(path)
	if err != nil {
		return false, err
	}

	unit := deps.NewUnit(common.JoinPath(root.Module), filepath.Dir(path))
	unit.AddFile(root)

	_, ok := lowerUnit(unit, nil)
	return ok, nil
}
