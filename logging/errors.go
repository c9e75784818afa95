package logging

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the different kinds of compile errors.  Every error the
// front-end produces has exactly one kind so callers (and tests) can react to
// the kind instead of the message.
type ErrorKind int

// Enumeration of compile error kinds
const (
	ErrDuplicateType ErrorKind = iota
	ErrDuplicateGeneric
	ErrDuplicateModifier
	ErrIllegalModifier
	ErrDuplicateMember
	ErrUnresolvedType
	ErrGenericOnPrimitive
	ErrGenericOnGeneric
	ErrInvalidSuperClass
	ErrArityMismatch
	ErrBoundViolation
	ErrMultipleSuperBounds
	ErrSelfExtension
	ErrInheritanceCycle
	ErrGenericBoundCycle
	ErrUnsupported
)

var errorKindStrings = map[ErrorKind]string{
	ErrDuplicateType:       "Definition",
	ErrDuplicateGeneric:    "Generic",
	ErrDuplicateModifier:   "Modifier",
	ErrIllegalModifier:     "Modifier",
	ErrDuplicateMember:     "Definition",
	ErrUnresolvedType:      "Name",
	ErrGenericOnPrimitive:  "Type",
	ErrGenericOnGeneric:    "Type",
	ErrInvalidSuperClass:   "Inheritance",
	ErrArityMismatch:       "Generic",
	ErrBoundViolation:      "Generic",
	ErrMultipleSuperBounds: "Generic",
	ErrSelfExtension:       "Inheritance",
	ErrInheritanceCycle:    "Inheritance",
	ErrGenericBoundCycle:   "Generic",
	ErrUnsupported:         "Usage",
}

// String returns the banner category of the error kind
func (k ErrorKind) String() string {
	if s, ok := errorKindStrings[k]; ok {
		return s
	}

	return "Compile"
}

// CompileError is an error in the user's program.  It is returned by every
// phase of the front-end and is fatal to the compilation unit it occurs in.
type CompileError struct {
	Kind    ErrorKind
	Message string

	// Position may be `nil` if the error has no meaningful position (or if the
	// syntax tree carried none).
	Position *TextPosition
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Raise creates a new compile error of the given kind.  The message is
// formatted with the given arguments.
func Raise(kind ErrorKind, pos *TextPosition, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Position: pos}
}

// AtPosition attaches a position to an error that has none.  This is used by
// the lowerer for errors produced by position-agnostic operations (such as
// bound checking).  Errors which are not compile errors are returned as is.
func AtPosition(err error, pos *TextPosition) error {
	var cerr *CompileError
	if errors.As(err, &cerr) && cerr.Position == nil {
		cerr.Position = pos
	}

	return err
}

// IsKind returns whether or not err is a compile error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		return cerr.Kind == kind
	}

	return false
}
