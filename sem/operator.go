package sem

// Operator is an operator of the typed IR
type Operator int

// Enumeration of operators
const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpAssign
	OpAnd
	OpOr
	OpEq
	OpNotEq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
	OpInc
	OpDec
	OpNot
)

var opSymbols = [...]string{
	OpAdd:       "+",
	OpSub:       "-",
	OpMul:       "*",
	OpDiv:       "/",
	OpAddAssign: "+=",
	OpSubAssign: "-=",
	OpMulAssign: "*=",
	OpDivAssign: "/=",
	OpAssign:    "=",
	OpAnd:       "&&",
	OpOr:        "||",
	OpEq:        "==",
	OpNotEq:     "!=",
	OpGt:        ">",
	OpGtEq:      ">=",
	OpLt:        "<",
	OpLtEq:      "<=",
	OpInc:       "++",
	OpDec:       "--",
	OpNot:       "!",
}

func (op Operator) String() string {
	return opSymbols[op]
}

// IsAssign returns whether the operator is an assignment (compound or not)
func (op Operator) IsAssign() bool {
	return OpAddAssign <= op && op <= OpAssign
}
