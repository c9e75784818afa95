package mods

import (
	"errors"
	"os"
	"path/filepath"

	"autolang/common"

	"github.com/pelletier/go-toml"
)

// FindModuleRoot walks up from the directory start until it finds a directory
// containing a valid module file and returns the absolute path to it.
func FindModuleRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if checkPath(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no module file found in any enclosing directory")
		}

		dir = parent
	}
}

// checkPath checks to see if a potential module path is valid -- accepts the
// path to the module root not the path to the module file
func checkPath(abspath string) bool {
	// convert the abs path into a path to the module file
	mfPath := filepath.Join(abspath, common.ModuleFileName)

	// check to see if we can open the module file
	finfo, err := os.Stat(mfPath)
	if err != nil || finfo.IsDir() {
		return false
	}

	// only the name is checked here so we don't do the full unmarshal.  A file
	// which is not a valid module is skipped since the user didn't explicitly
	// specify that this path was a module.
	tree, err := toml.LoadFile(mfPath)
	if err != nil {
		return false
	}

	name, ok := tree.Get("module.name").(string)
	return ok && IsValidIdentifier(name)
}
