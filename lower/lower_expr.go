package lower

import (
	"autolang/sem"
	"autolang/syntax"
)

var opTable = [...]sem.Operator{
	syntax.OpPlus:        sem.OpAdd,
	syntax.OpMinus:       sem.OpSub,
	syntax.OpMul:         sem.OpMul,
	syntax.OpDiv:         sem.OpDiv,
	syntax.OpPlusAssign:  sem.OpAddAssign,
	syntax.OpMinusAssign: sem.OpSubAssign,
	syntax.OpMulAssign:   sem.OpMulAssign,
	syntax.OpDivAssign:   sem.OpDivAssign,
	syntax.OpAssign:      sem.OpAssign,
	syntax.OpAnd:         sem.OpAnd,
	syntax.OpOr:          sem.OpOr,
	syntax.OpEq:          sem.OpEq,
	syntax.OpNotEq:       sem.OpNotEq,
	syntax.OpGt:          sem.OpGt,
	syntax.OpGtEq:        sem.OpGtEq,
	syntax.OpLs:          sem.OpLt,
	syntax.OpLsEq:        sem.OpLtEq,
	syntax.OpInc:         sem.OpInc,
	syntax.OpDec:         sem.OpDec,
	syntax.OpNot:         sem.OpNot,
}

func (l *Lowerer) lowerBlock(scope *memberScope, block *syntax.Block) (*sem.TIRBlock, error) {
	if block == nil {
		return &sem.TIRBlock{}, nil
	}

	tb := &sem.TIRBlock{Span: block.Pos}

	for _, stmt := range block.Stmts {
		ts, err := l.lowerStmt(scope, stmt)
		if err != nil {
			return nil, err
		}

		tb.Stmts = append(tb.Stmts, ts)
	}

	return tb, nil
}

func (l *Lowerer) lowerStmt(scope *memberScope, stmt syntax.Stmt) (sem.TIRStmt, error) {
	switch v := stmt.(type) {
	case *syntax.LocalStmt:
		local := &sem.TIRLocal{ExprBase: sem.NewExprBase(v.Pos), Name: v.Name}

		var err error
		if v.Type != nil {
			if local.Type, err = l.resolveChecked(scope, v.Type); err != nil {
				return nil, err
			}
		}

		if v.Value != nil {
			if local.Value, err = l.lowerExpr(scope, v.Value); err != nil {
				return nil, err
			}
		}

		return local, nil
	case *syntax.ExprStmt:
		expr, err := l.lowerExpr(scope, v.Expr)
		if err != nil {
			return nil, err
		}

		return &sem.TIRExprStmt{ExprBase: sem.NewExprBase(v.Pos), Expr: expr, Ending: v.Ending}, nil
	}

	// unreachable: the statement kinds are closed
	return nil, nil
}

// lowerExpr lowers an expression.  Bare identifiers become variable accesses
// and paths are resolved to the types they name.
func (l *Lowerer) lowerExpr(scope *memberScope, expr syntax.Expr) (sem.TIRExpr, error) {
	base := sem.NewExprBase(expr.Position())

	switch v := expr.(type) {
	case *syntax.Ident:
		return &sem.TIRVariableAccess{ExprBase: base, Name: v.Name}, nil
	case *syntax.PathExpr:
		index, err := l.resolver.ResolveTypeRef(scope.info.origin, v.Path, v.Pos)
		if err != nil {
			return nil, err
		}

		return &sem.TIRTypeAccess{ExprBase: base, Index: index}, nil
	case *syntax.StringLit:
		return &sem.TIRLiteral{ExprBase: base, Kind: sem.LitString, Value: v.Value}, nil
	case *syntax.NumLit:
		return &sem.TIRLiteral{ExprBase: base, Kind: sem.LitNum, Value: v.Value}, nil
	case *syntax.FloatLit:
		return &sem.TIRLiteral{ExprBase: base, Kind: sem.LitFloat, Value: v.Value}, nil
	case *syntax.BoolLit:
		value := "false"
		if v.Value {
			value = "true"
		}

		return &sem.TIRLiteral{ExprBase: base, Kind: sem.LitBool, Value: value}, nil
	case *syntax.NullLit:
		return &sem.TIRLiteral{ExprBase: base, Kind: sem.LitNull}, nil
	case *syntax.BinOp:
		lhs, err := l.lowerExpr(scope, v.Lhs)
		if err != nil {
			return nil, err
		}

		rhs, err := l.lowerExpr(scope, v.Rhs)
		if err != nil {
			return nil, err
		}

		return &sem.TIRBinOp{ExprBase: base, Lhs: lhs, Op: opTable[v.Op], Rhs: rhs}, nil
	case *syntax.PreOp:
		operand, err := l.lowerExpr(scope, v.Operand)
		if err != nil {
			return nil, err
		}

		return &sem.TIRUnaryOp{ExprBase: base, Op: opTable[v.Op], Operand: operand}, nil
	case *syntax.PostOp:
		operand, err := l.lowerExpr(scope, v.Operand)
		if err != nil {
			return nil, err
		}

		return &sem.TIRUnaryOp{ExprBase: base, Op: opTable[v.Op], Operand: operand, Postfix: true}, nil
	case *syntax.MemberAccess:
		root, err := l.lowerExpr(scope, v.Root)
		if err != nil {
			return nil, err
		}

		return &sem.TIRMemberAccess{ExprBase: base, Root: root, Member: v.Member}, nil
	case *syntax.StaticAccess:
		root, err := l.lowerExpr(scope, v.Root)
		if err != nil {
			return nil, err
		}

		return &sem.TIRMemberAccess{ExprBase: base, Root: root, Member: v.Member, Static: true}, nil
	case *syntax.Call:
		fn, err := l.lowerExpr(scope, v.Func)
		if err != nil {
			return nil, err
		}

		call := &sem.TIRCall{ExprBase: base, Func: fn}
		for _, arg := range v.Args {
			targ, err := l.lowerExpr(scope, arg)
			if err != nil {
				return nil, err
			}

			call.Args = append(call.Args, targ)
		}

		return call, nil
	case *syntax.Indexing:
		root, err := l.lowerExpr(scope, v.Root)
		if err != nil {
			return nil, err
		}

		index, err := l.lowerExpr(scope, v.Index)
		if err != nil {
			return nil, err
		}

		return &sem.TIRIndex{ExprBase: base, Root: root, Index: index}, nil
	case *syntax.BlockExpr:
		block, err := l.lowerBlock(scope, v.Block)
		if err != nil {
			return nil, err
		}

		return &sem.TIRBlockExpr{ExprBase: base, Block: block}, nil
	case *syntax.IfExpr:
		cond, err := l.lowerExpr(scope, v.Cond)
		if err != nil {
			return nil, err
		}

		then, err := l.lowerBlock(scope, v.Then)
		if err != nil {
			return nil, err
		}

		ifExpr := &sem.TIRIf{ExprBase: base, Cond: cond, Then: then}
		if v.Else != nil {
			if ifExpr.Else, err = l.lowerBlock(scope, v.Else); err != nil {
				return nil, err
			}
		}

		return ifExpr, nil
	case *syntax.LoopExpr:
		body, err := l.lowerBlock(scope, v.Body)
		if err != nil {
			return nil, err
		}

		return &sem.TIRLoop{ExprBase: base, Body: body}, nil
	case *syntax.WhileExpr:
		cond, err := l.lowerExpr(scope, v.Cond)
		if err != nil {
			return nil, err
		}

		body, err := l.lowerBlock(scope, v.Body)
		if err != nil {
			return nil, err
		}

		return &sem.TIRLoop{ExprBase: base, Cond: cond, Body: body}, nil
	}

	// unreachable: the expression kinds are closed
	return nil, nil
}
