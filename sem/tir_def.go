package sem

import (
	"autolang/logging"
	"autolang/syntax"
	"autolang/typing"
)

// TIRRoot is the typed intermediate representation of a whole compilation
// unit.  Types appear in the order they were declared (file by file).
type TIRRoot struct {
	Types []*TIRType
}

// TIRType is a lowered class declaration
type TIRType struct {
	Span *logging.TextPosition

	// Index is the index of the type in the type pool
	Index int

	// File is the syntax tree file the type was declared in relative to the
	// root of its unit
	File string

	Visibility syntax.Visibility
	IsAbstract bool

	// SuperClass is `nil` if the class extends nothing
	SuperClass *typing.TypeRefType

	Members []*TIRMember
}

// TIRMember is a lowered field or method
type TIRMember struct {
	Span *logging.TextPosition

	Kind       syntax.MemberKind
	Visibility syntax.Visibility
	Name       string

	Static, Abstract, Native bool

	// Type is the type of a field or the return type of a method
	Type typing.ResolvedType

	// Params is only used by methods
	Params []*TIRParam

	// Init is the optional field initializer
	Init TIRExpr

	// Body is the optional method body
	Body *TIRBlock
}

// TIRParam is a method parameter with a resolved type
type TIRParam struct {
	Span *logging.TextPosition

	Name string
	Type typing.ResolvedType
}

// ParamTypes returns the parameter types of a method member
func (tm *TIRMember) ParamTypes() []typing.ResolvedType {
	types := make([]typing.ResolvedType, len(tm.Params))
	for i, p := range tm.Params {
		types[i] = p.Type
	}

	return types
}
