package sem

import (
	"autolang/logging"
	"autolang/typing"
)

// TIRExpr is the parent interface for all expression TIR nodes.  Expressions
// carry no types yet: only type mentions are resolved.
type TIRExpr interface {
	Position() *logging.TextPosition
}

// TIRStmt is the parent interface for all statement TIR nodes
type TIRStmt interface {
	Position() *logging.TextPosition
}

// ExprBase is the base struct for all expressions and statements
type ExprBase struct {
	pos *logging.TextPosition
}

func (eb ExprBase) Position() *logging.TextPosition {
	return eb.pos
}

// NewExprBase creates a new expression base at the given position
func NewExprBase(pos *logging.TextPosition) ExprBase {
	return ExprBase{pos: pos}
}

// TIRBlock is a lowered statement block
type TIRBlock struct {
	Span  *logging.TextPosition
	Stmts []TIRStmt
}

// TIRLocal is a local variable declaration.  Type and Value may be `nil`.
type TIRLocal struct {
	ExprBase

	Name  string
	Type  typing.ResolvedType
	Value TIRExpr
}

// TIRExprStmt is an expression statement
type TIRExprStmt struct {
	ExprBase

	Expr   TIRExpr
	Ending bool
}

// -----------------------------------------------------------------------------

// TIRLiteral is a literal value.  Numbers keep their source text.
type TIRLiteral struct {
	ExprBase

	Kind  int
	Value string
}

// Enumeration of literal kinds
const (
	LitString = iota
	LitNum
	LitFloat
	LitBool
	LitNull
)

// TIRVariableAccess is an access to a local, a parameter or a field of the
// enclosing type.
type TIRVariableAccess struct {
	ExprBase

	Name string
}

// TIRTypeAccess is a reference to a declared type used as a value: the root of
// a static access for example.
type TIRTypeAccess struct {
	ExprBase

	Index int
}

// TIRBinOp is a binary operator application
type TIRBinOp struct {
	ExprBase

	Lhs TIRExpr
	Op  Operator
	Rhs TIRExpr
}

// TIRUnaryOp is a prefix or postfix operator application
type TIRUnaryOp struct {
	ExprBase

	Op      Operator
	Operand TIRExpr
	Postfix bool
}

// TIRMemberAccess is `root.Member` or `root::Member` (when Static is set)
type TIRMemberAccess struct {
	ExprBase

	Root   TIRExpr
	Member string
	Static bool
}

// TIRCall is a call
type TIRCall struct {
	ExprBase

	Func TIRExpr
	Args []TIRExpr
}

// TIRIndex is an indexing expression
type TIRIndex struct {
	ExprBase

	Root, Index TIRExpr
}

// TIRBlockExpr is a block used as an expression
type TIRBlockExpr struct {
	ExprBase

	Block *TIRBlock
}

// TIRIf is an if expression.  Else is `nil` if there is no else branch.
type TIRIf struct {
	ExprBase

	Cond       TIRExpr
	Then, Else *TIRBlock
}

// TIRLoop is a `loop` (Cond is `nil`) or a `while` loop
type TIRLoop struct {
	ExprBase

	Cond TIRExpr
	Body *TIRBlock
}
