package logging

// TextPosition represents a positional range in the source text
type TextPosition struct {
	StartLn, StartCol int // starting line, starting 0-indexed column
	EndLn, EndCol     int // ending Line, column trailing token (one over)
}

// TextPositionFromRange takes two positions and computes the text position
// spanning them.
func TextPositionFromRange(start, end *TextPosition) *TextPosition {
	if start == nil {
		return end
	} else if end == nil {
		return start
	}

	return &TextPosition{
		StartLn:  start.StartLn,
		StartCol: start.StartCol,
		EndLn:    end.EndLn,
		EndCol:   end.EndCol,
	}
}

// LogContext is the context in which a compile message was produced: the unit
// being compiled and the file that contains the erroneous declaration.
type LogContext struct {
	// UnitName is the name of the compilation unit (usually the module name)
	UnitName string

	// FilePath is the path to the syntax tree file the message refers to.
	FilePath string

	// SourcePath is the path to the original source text the syntax tree was
	// built from.  It may be empty in which case no code selection is shown.
	SourcePath string
}
