package common

const (
	SyntaxFileExtension = ".ast.toml"
	ModuleFileName      = "auto-mod.toml"
	AutoVersion         = "0.1.0"

	// PathSeparator is the separator used between the segments of a path when
	// the path is displayed to the user
	PathSeparator = "::"
)
