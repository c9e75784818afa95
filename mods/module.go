package mods

// AutoModule represents a module: a directory containing a module file and the
// syntax tree files that make up its compilation unit.
type AutoModule struct {
	// Name is the name of the module
	Name string

	// ModuleRoot is the absolute path to the root directory of the module
	ModuleRoot string

	// CompilerVersion is the semantic version constraint the module places on
	// the compiler (eg. `>= 0.1.0`).  It may be empty.
	CompilerVersion string

	// Sources is the list of source patterns of the module relative to the
	// module root.  Patterns may contain globs.
	Sources []string

	// SourceDirs is the list of directories (relative to the module root) whose
	// syntax tree files all belong to the module.
	SourceDirs []string

	// Dump indicates whether the type pool and TIR should be dumped after
	// lowering
	Dump bool

	// LogLevel is the default log level for building this module.  It is
	// overridden by the `--loglevel` flag.
	LogLevel string
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (module name, type name, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
