package syntax

import (
	"autolang/logging"
)

// ASTNode represents a piece of the Abstract Syntax Tree (AST).  Trees are
// built by an external parser and handed to the front-end.
type ASTNode interface {
	// Position should span the entire ASTNode (meaningfully).  It may be `nil`
	// if the producer of the tree did not record positions.
	Position() *logging.TextPosition
}

// Span is embedded in every node to implement `Position`
type Span struct {
	Pos *logging.TextPosition
}

func (s Span) Position() *logging.TextPosition {
	return s.Pos
}

// Path is a `::` separated path such as `telno::util::Box`
type Path []string

// -----------------------------------------------------------------------------

// Root is the root of a single file's syntax tree
type Root struct {
	Span

	// FilePath is the path the tree was loaded from (if any)
	FilePath string

	// SourcePath is the path to the source text the tree was parsed from.  It is
	// only used for diagnostics.
	SourcePath string

	Module Path
	Uses   []Path
	Types  []*TypeDecl
}

// TypeKind enumerates the kinds of type declarations
type TypeKind int

// Enumeration of type declaration kinds
const (
	TypeClass TypeKind = iota
	TypeInterface
	TypeEnum
	TypeImpl
)

// Visibility enumerates the visibility of declarations and members
type Visibility int

// Enumeration of visibilities
const (
	VisPublic Visibility = iota
	VisModule
	VisPrivate
)

// Modifier enumerates declaration modifiers
type Modifier int

// Enumeration of modifiers
const (
	ModStatic Modifier = iota
	ModAbstract
	ModNative
)

func (m Modifier) String() string {
	switch m {
	case ModStatic:
		return "static"
	case ModAbstract:
		return "abstract"
	default:
		return "native"
	}
}

// TypeDecl is a declaration of a class (or interface, enum or impl block)
type TypeDecl struct {
	Span

	Kind       TypeKind
	Visibility Visibility
	Modifiers  []Modifier
	Name       string
	NameSpan   *logging.TextPosition

	Generics []*GenericDecl

	// SuperClass is `nil` if no superclass was declared
	SuperClass *TypeLabel
	Interfaces []*TypeLabel

	Members []*Member
}

// GenericDecl is a generic parameter declaration: `T: Comparable<T>`
type GenericDecl struct {
	Span

	Name        string
	SuperBounds []*TypeLabel
	ImplBounds  []*TypeLabel
}

// MemberKind enumerates the kinds of members
type MemberKind int

// Enumeration of member kinds
const (
	MemberField MemberKind = iota
	MemberMethod
)

// Member is a field or a method of a type
type Member struct {
	Span

	Kind       MemberKind
	Visibility Visibility
	Modifiers  []Modifier
	Name       string

	// Type is the field type or the method's return type
	Type *TypeLabel

	// Params is only used by methods
	Params []*Param

	// Init is the (optional) initializer of a field
	Init Expr

	// Body is the (optional) body of a method
	Body *Block
}

// Param is a method parameter
type Param struct {
	Span

	Name string
	Type *TypeLabel
}

// TypeLabel is a syntactic mention of a type: `Box<Number>[]`
type TypeLabel struct {
	Span

	Path     Path
	Generics []*TypeLabel
	ArrayDim int
}
