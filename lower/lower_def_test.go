package lower

import (
	"testing"

	"autolang/logging"
	"autolang/sem"
	"autolang/syntax"
	"autolang/typing"

	"github.com/nalgeon/be"
)

func block(stmts ...syntax.Stmt) *syntax.Block {
	return &syntax.Block{Stmts: stmts}
}

func exprStmt(expr syntax.Expr) *syntax.ExprStmt {
	return &syntax.ExprStmt{Expr: expr, Ending: true}
}

func ident(name string) *syntax.Ident {
	return &syntax.Ident{Name: name}
}

func TestLowerMembers(t *testing.T) {
	// class Counter<T> {
	//     count: i32 = 0;
	//     items: T[];
	//     static fn make(start: i32): Counter<i32> { let c: Counter<i32>; c; }
	//     fn bump(by: i32): void { count += by; Math::abs(count); }
	// }
	res, err := lowerDecls(
		class("Math"),
		class("Counter",
			generics(generic("T")),
			members(
				field("count", lbl("i32"), &syntax.NumLit{Value: "0"}),
				field("items", arr(lbl("T"), 1), nil),
				method("make", lbl("Counter", lbl("i32")), []*syntax.Param{param("start", lbl("i32"))}, block(
					&syntax.LocalStmt{Name: "c", Type: lbl("Counter", lbl("i32"))},
					exprStmt(ident("c")),
				), syntax.ModStatic),
				method("bump", lbl("void"), []*syntax.Param{param("by", lbl("i32"))}, block(
					exprStmt(&syntax.BinOp{Lhs: ident("count"), Op: syntax.OpPlusAssign, Rhs: ident("by")}),
					exprStmt(&syntax.Call{
						Func: &syntax.StaticAccess{Root: &syntax.PathExpr{Path: syntax.Path{"Math"}}, Member: "abs"},
						Args: []syntax.Expr{ident("count")},
					}),
				)),
			),
		),
	)
	be.Err(t, err, nil)

	math, _ := res.Pool.LookupByPath([]string{"Math"})
	counter, _ := res.Pool.LookupByPath([]string{"Counter"})
	ct := res.Root.Types[1]
	be.Equal(t, len(ct.Members), 4)

	count := ct.Members[0]
	be.True(t, typing.Equals(count.Type, &typing.PrimType{Kind: typing.PrimI32}))
	be.Equal(t, count.Init.(*sem.TIRLiteral).Value, "0")

	items := ct.Members[1]
	be.True(t, typing.Equals(items.Type, &typing.GenericType{Owner: counter, Slot: 0, ArrayDim: 1}))

	mk := ct.Members[2]
	be.True(t, mk.Static)
	be.Equal(t, mk.Params[0].Name, "start")
	local := mk.Body.Stmts[0].(*sem.TIRLocal)
	be.True(t, typing.Equals(local.Type, &typing.TypeRefType{
		Index:    counter,
		Generics: []typing.ResolvedType{&typing.PrimType{Kind: typing.PrimI32}},
	}))

	bump := ct.Members[3]
	assign := bump.Body.Stmts[0].(*sem.TIRExprStmt).Expr.(*sem.TIRBinOp)
	be.Equal(t, assign.Op, sem.OpAddAssign)
	be.Equal(t, assign.Lhs.(*sem.TIRVariableAccess).Name, "count")

	call := bump.Body.Stmts[1].(*sem.TIRExprStmt).Expr.(*sem.TIRCall)
	access := call.Func.(*sem.TIRMemberAccess)
	be.True(t, access.Static)
	be.Equal(t, access.Root.(*sem.TIRTypeAccess).Index, math)

	// the member pool records every member
	be.Equal(t, len(res.Members.Fields), 2)
	be.Equal(t, len(res.Members.Methods), 2)

	index, ok := res.Members.LookupMethod(counter, "bump", []typing.ResolvedType{&typing.PrimType{Kind: typing.PrimI32}})
	be.True(t, ok)
	be.True(t, typing.IsVoid(res.Members.Methods[index].Return))
}

func TestLowerControlFlow(t *testing.T) {
	// fn run(): void { while x < 10 { x++; } if !done { loop {} } else { {} } }
	body := block(
		exprStmt(&syntax.WhileExpr{
			Cond: &syntax.BinOp{Lhs: ident("x"), Op: syntax.OpLs, Rhs: &syntax.NumLit{Value: "10"}},
			Body: block(exprStmt(&syntax.PostOp{Operand: ident("x"), Op: syntax.OpInc})),
		}),
		exprStmt(&syntax.IfExpr{
			Cond: &syntax.PreOp{Op: syntax.OpNot, Operand: ident("done")},
			Then: block(exprStmt(&syntax.LoopExpr{Body: block()})),
			Else: block(exprStmt(&syntax.BlockExpr{Block: block()})),
		}),
		exprStmt(&syntax.Indexing{Root: ident("xs"), Index: &syntax.BoolLit{Value: true}}),
	)

	res, err := lowerDecls(class("Runner", members(method("run", lbl("void"), nil, body))))
	be.Err(t, err, nil)

	stmts := res.Root.Types[0].Members[0].Body.Stmts
	be.Equal(t, len(stmts), 3)

	while := stmts[0].(*sem.TIRExprStmt).Expr.(*sem.TIRLoop)
	be.Equal(t, while.Cond.(*sem.TIRBinOp).Op, sem.OpLt)
	inc := while.Body.Stmts[0].(*sem.TIRExprStmt).Expr.(*sem.TIRUnaryOp)
	be.True(t, inc.Postfix)
	be.Equal(t, inc.Op, sem.OpInc)

	ifExpr := stmts[1].(*sem.TIRExprStmt).Expr.(*sem.TIRIf)
	be.Equal(t, ifExpr.Cond.(*sem.TIRUnaryOp).Op, sem.OpNot)
	loop := ifExpr.Then.Stmts[0].(*sem.TIRExprStmt).Expr.(*sem.TIRLoop)
	be.True(t, loop.Cond == nil)
	be.True(t, ifExpr.Else != nil)

	index := stmts[2].(*sem.TIRExprStmt).Expr.(*sem.TIRIndex)
	be.Equal(t, index.Index.(*sem.TIRLiteral).Value, "true")
}

func TestLowerMemberErrors(t *testing.T) {
	tests := []struct {
		name string
		decl *syntax.TypeDecl
		kind logging.ErrorKind
	}{
		{
			"duplicate field",
			class("A", members(field("x", lbl("i32"), nil), field("x", lbl("bool"), nil))),
			logging.ErrDuplicateMember,
		},
		{
			"duplicate overload",
			class("A", members(
				method("f", lbl("void"), []*syntax.Param{param("a", lbl("i32"))}, nil),
				method("f", lbl("i32"), []*syntax.Param{param("b", lbl("i32"))}, nil),
			)),
			logging.ErrDuplicateMember,
		},
		{
			"duplicate member modifier",
			class("A", members(field("x", lbl("i32"), nil, syntax.ModStatic, syntax.ModStatic))),
			logging.ErrDuplicateModifier,
		},
		{
			"abstract field",
			class("A", modifiers(syntax.ModAbstract), members(field("x", lbl("i32"), nil, syntax.ModAbstract))),
			logging.ErrIllegalModifier,
		},
		{
			"native field",
			class("A", members(field("x", lbl("i32"), nil, syntax.ModNative))),
			logging.ErrIllegalModifier,
		},
		{
			"abstract method in concrete class",
			class("A", members(method("f", lbl("void"), nil, nil, syntax.ModAbstract))),
			logging.ErrIllegalModifier,
		},
		{
			"abstract method with body",
			class("A", modifiers(syntax.ModAbstract), members(method("f", lbl("void"), nil, block(), syntax.ModAbstract))),
			logging.ErrIllegalModifier,
		},
		{
			"native abstract method",
			class("A", modifiers(syntax.ModAbstract), members(method("f", lbl("void"), nil, nil, syntax.ModAbstract, syntax.ModNative))),
			logging.ErrIllegalModifier,
		},
		{
			"unresolved field type",
			class("A", members(field("x", lbl("Missing"), nil))),
			logging.ErrUnresolvedType,
		},
		{
			"unresolved parameter type",
			class("A", members(method("f", lbl("void"), []*syntax.Param{param("a", lbl("Missing"))}, nil))),
			logging.ErrUnresolvedType,
		},
		{
			"unresolved path expression",
			class("A", members(field("x", lbl("i32"), &syntax.PathExpr{Path: syntax.Path{"Missing"}}))),
			logging.ErrUnresolvedType,
		},
		{
			"unresolved local type",
			class("A", members(method("f", lbl("void"), nil, block(&syntax.LocalStmt{Name: "y", Type: lbl("Missing")})))),
			logging.ErrUnresolvedType,
		},
		{
			"generic primitive field",
			class("A", members(field("x", lbl("i32", lbl("bool")), nil))),
			logging.ErrGenericOnPrimitive,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := lowerDecls(test.decl)
			be.True(t, logging.IsKind(err, test.kind))
		})
	}
}

func TestLowerOverloadsAndAbstractMethods(t *testing.T) {
	res, err := lowerDecls(class("Shape",
		modifiers(syntax.ModAbstract),
		members(
			method("area", lbl("f64"), nil, nil, syntax.ModAbstract),
			method("scale", lbl("void"), []*syntax.Param{param("by", lbl("i32"))}, block()),
			method("scale", lbl("void"), []*syntax.Param{param("by", lbl("f64"))}, block()),
			method("hash", lbl("u64"), nil, nil, syntax.ModNative),
		),
	))
	be.Err(t, err, nil)

	shape := res.Root.Types[0]
	be.True(t, shape.IsAbstract)
	be.True(t, shape.Members[0].Abstract)
	be.True(t, shape.Members[3].Native)
	be.Equal(t, len(res.Members.Overloads(shape.Index, "scale")), 2)
}
