package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"autolang/common"

	"github.com/pelletier/go-toml"
)

// InitModule creates a new module with the given name at the given path.  The
// new module compiles every syntax tree file in its `src` directory.
func InitModule(name, path string) error {
	// convert the module directory to the path to module file
	modFilePath := filepath.Join(path, common.ModuleFileName)

	// check to see if a module already exists
	_, err := os.Stat(modFilePath)
	if err == nil {
		return errors.New("module file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("module file error: %w", err)
	}

	// validate module name
	if !IsValidIdentifier(name) {
		return errors.New("module name must be a valid identifier")
	}

	mod := &tomlModule{
		Name:            name,
		CompilerVersion: ">= " + common.AutoVersion,
		SourceDirs:      []string{"src"},
		LogLevel:        "verbose",
	}

	if err := os.MkdirAll(filepath.Join(path, "src"), 0o755); err != nil {
		return fmt.Errorf("error creating source directory: %w", err)
	}

	// encode and save module to file
	f, err := os.Create(modFilePath)
	if err != nil {
		return fmt.Errorf("error creating module file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlModuleFile{Module: mod}); err != nil {
		return fmt.Errorf("error encoding TOML: %w", err)
	}

	return nil
}
