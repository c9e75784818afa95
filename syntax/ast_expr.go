package syntax

// Expr is an expression node
type Expr interface {
	ASTNode

	isExpr()
}

// Stmt is a statement node
type Stmt interface {
	ASTNode

	isStmt()
}

// Block is a sequence of statements
type Block struct {
	Span

	Stmts []Stmt
}

// LocalStmt is a local variable declaration.  Both Type and Value are optional.
type LocalStmt struct {
	Span

	Name  string
	Type  *TypeLabel
	Value Expr
}

// ExprStmt is an expression used as a statement.  Ending indicates whether the
// statement was terminated by a semicolon.
type ExprStmt struct {
	Span

	Expr   Expr
	Ending bool
}

func (*LocalStmt) isStmt() {}
func (*ExprStmt) isStmt()  {}

// -----------------------------------------------------------------------------

// Operator enumerates the operators of Auto
type Operator int

// Enumeration of operators
const (
	OpPlus Operator = iota
	OpMinus
	OpMul
	OpDiv
	OpPlusAssign
	OpMinusAssign
	OpMulAssign
	OpDivAssign
	OpAssign
	OpAnd
	OpOr
	OpEq
	OpNotEq
	OpGt
	OpGtEq
	OpLs
	OpLsEq
	OpInc
	OpDec
	OpNot
)

var opSymbols = map[string]Operator{
	"+":  OpPlus,
	"-":  OpMinus,
	"*":  OpMul,
	"/":  OpDiv,
	"+=": OpPlusAssign,
	"-=": OpMinusAssign,
	"*=": OpMulAssign,
	"/=": OpDivAssign,
	"=":  OpAssign,
	"&&": OpAnd,
	"||": OpOr,
	"==": OpEq,
	"!=": OpNotEq,
	">":  OpGt,
	">=": OpGtEq,
	"<":  OpLs,
	"<=": OpLsEq,
	"++": OpInc,
	"--": OpDec,
	"!":  OpNot,
}

// OperatorFromSymbol looks up an operator by its symbol
func OperatorFromSymbol(sym string) (Operator, bool) {
	op, ok := opSymbols[sym]
	return op, ok
}

// -----------------------------------------------------------------------------

// Ident is a bare name used as a value: a local, parameter or field
type Ident struct {
	Span

	Name string
}

// PathExpr is a path used as a value: it always names a type
type PathExpr struct {
	Span

	Path Path
}

// Literal kinds keep their source text: numeric values are not interpreted by
// the front-end.
type (
	StringLit struct {
		Span
		Value string
	}

	NumLit struct {
		Span
		Value string
	}

	FloatLit struct {
		Span
		Value string
	}

	BoolLit struct {
		Span
		Value bool
	}

	NullLit struct {
		Span
	}
)

// BinOp is a binary operator application
type BinOp struct {
	Span

	Lhs Expr
	Op  Operator
	Rhs Expr
}

// PreOp is a prefix operator application: `!x`, `++x`
type PreOp struct {
	Span

	Op      Operator
	Operand Expr
}

// PostOp is a postfix operator application: `x++`
type PostOp struct {
	Span

	Operand Expr
	Op      Operator
}

// MemberAccess is `root.Member`
type MemberAccess struct {
	Span

	Root   Expr
	Member string
}

// StaticAccess is `root::Member`
type StaticAccess struct {
	Span

	Root   Expr
	Member string
}

// Call is a function call
type Call struct {
	Span

	Func Expr
	Args []Expr
}

// Indexing is `root[index]`
type Indexing struct {
	Span

	Root  Expr
	Index Expr
}

// BlockExpr is a block used as an expression
type BlockExpr struct {
	Span

	Block *Block
}

// IfExpr is an if expression.  Else may be `nil`.
type IfExpr struct {
	Span

	Cond Expr
	Then *Block
	Else *Block
}

// LoopExpr is an infinite loop
type LoopExpr struct {
	Span

	Body *Block
}

// WhileExpr is a conditional loop
type WhileExpr struct {
	Span

	Cond Expr
	Body *Block
}

func (*Ident) isExpr()        {}
func (*PathExpr) isExpr()     {}
func (*StringLit) isExpr()    {}
func (*NumLit) isExpr()       {}
func (*FloatLit) isExpr()     {}
func (*BoolLit) isExpr()      {}
func (*NullLit) isExpr()      {}
func (*BinOp) isExpr()        {}
func (*PreOp) isExpr()        {}
func (*PostOp) isExpr()       {}
func (*MemberAccess) isExpr() {}
func (*StaticAccess) isExpr() {}
func (*Call) isExpr()         {}
func (*Indexing) isExpr()     {}
func (*BlockExpr) isExpr()    {}
func (*IfExpr) isExpr()       {}
func (*LoopExpr) isExpr()     {}
func (*WhileExpr) isExpr()    {}
