package syntax

import (
	"github.com/pelletier/go-toml"
)

// expr decodes an expression table.  Every expression table has a `kind` key
// selecting which other keys are expected.
func (d decoder) expr(parent *toml.Tree, key string, value interface{}) (Expr, error) {
	tree, ok := value.(*toml.Tree)
	if !ok {
		return nil, d.errorf(parent, key, "expected an expression table")
	}

	span, err := d.span(tree)
	if err != nil {
		return nil, err
	}

	kind, err := d.str(tree, "kind")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "ident":
		name, err := d.str(tree, "name")
		if err != nil {
			return nil, err
		}

		return &Ident{Span: span, Name: name}, nil
	case "path":
		path, err := d.path(tree, "path")
		if err != nil {
			return nil, err
		}

		return &PathExpr{Span: span, Path: path}, nil
	case "string", "num", "float":
		text, err := d.str(tree, "value")
		if err != nil {
			return nil, err
		}

		switch kind {
		case "string":
			return &StringLit{Span: span, Value: text}, nil
		case "num":
			return &NumLit{Span: span, Value: text}, nil
		default:
			return &FloatLit{Span: span, Value: text}, nil
		}
	case "bool":
		b, ok := tree.Get("value").(bool)
		if !ok {
			return nil, d.errorf(tree, "value", "expected a boolean")
		}

		return &BoolLit{Span: span, Value: b}, nil
	case "null":
		return &NullLit{Span: span}, nil
	case "binop":
		lhs, err := d.subExpr(tree, "lhs")
		if err != nil {
			return nil, err
		}

		op, err := d.operator(tree)
		if err != nil {
			return nil, err
		}

		rhs, err := d.subExpr(tree, "rhs")
		if err != nil {
			return nil, err
		}

		return &BinOp{Span: span, Lhs: lhs, Op: op, Rhs: rhs}, nil
	case "preop", "postop":
		op, err := d.operator(tree)
		if err != nil {
			return nil, err
		}

		operand, err := d.subExpr(tree, "operand")
		if err != nil {
			return nil, err
		}

		if kind == "preop" {
			return &PreOp{Span: span, Op: op, Operand: operand}, nil
		}

		return &PostOp{Span: span, Operand: operand, Op: op}, nil
	case "member", "static":
		root, err := d.subExpr(tree, "root")
		if err != nil {
			return nil, err
		}

		member, err := d.str(tree, "member")
		if err != nil {
			return nil, err
		}

		if kind == "member" {
			return &MemberAccess{Span: span, Root: root, Member: member}, nil
		}

		return &StaticAccess{Span: span, Root: root, Member: member}, nil
	case "call":
		fn, err := d.subExpr(tree, "func")
		if err != nil {
			return nil, err
		}

		call := &Call{Span: span, Func: fn}
		if tree.Has("args") {
			args, err := d.list(tree, "args")
			if err != nil {
				return nil, err
			}

			for _, arg := range args {
				argExpr, err := d.expr(tree, "args", arg)
				if err != nil {
					return nil, err
				}

				call.Args = append(call.Args, argExpr)
			}
		}

		return call, nil
	case "index":
		root, err := d.subExpr(tree, "root")
		if err != nil {
			return nil, err
		}

		index, err := d.subExpr(tree, "index")
		if err != nil {
			return nil, err
		}

		return &Indexing{Span: span, Root: root, Index: index}, nil
	case "block":
		body, err := d.optBlock(tree, "body")
		if err != nil {
			return nil, err
		}

		return &BlockExpr{Span: span, Block: body}, nil
	case "if":
		cond, err := d.subExpr(tree, "cond")
		if err != nil {
			return nil, err
		}

		then, err := d.optBlock(tree, "then")
		if err != nil {
			return nil, err
		}

		ifExpr := &IfExpr{Span: span, Cond: cond, Then: then}
		if tree.Has("else") {
			if ifExpr.Else, err = d.block(tree, "else"); err != nil {
				return nil, err
			}
		}

		return ifExpr, nil
	case "loop":
		body, err := d.optBlock(tree, "body")
		if err != nil {
			return nil, err
		}

		return &LoopExpr{Span: span, Body: body}, nil
	case "while":
		cond, err := d.subExpr(tree, "cond")
		if err != nil {
			return nil, err
		}

		body, err := d.optBlock(tree, "body")
		if err != nil {
			return nil, err
		}

		return &WhileExpr{Span: span, Cond: cond, Body: body}, nil
	}

	return nil, d.errorf(tree, "kind", "unknown expression kind `%s`", kind)
}

func (d decoder) subExpr(tree *toml.Tree, key string) (Expr, error) {
	if !tree.Has(key) {
		return nil, d.errorf(tree, key, "missing operand")
	}

	return d.expr(tree, key, tree.Get(key))
}

// optBlock decodes a block which defaults to an empty block
func (d decoder) optBlock(tree *toml.Tree, key string) (*Block, error) {
	if !tree.Has(key) {
		return &Block{}, nil
	}

	return d.block(tree, key)
}

func (d decoder) operator(tree *toml.Tree) (Operator, error) {
	sym, err := d.str(tree, "op")
	if err != nil {
		return 0, err
	}

	if op, ok := OperatorFromSymbol(sym); ok {
		return op, nil
	}

	return 0, d.errorf(tree, "op", "unknown operator `%s`", sym)
}
