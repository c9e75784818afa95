package lower

import (
	"strings"

	"autolang/deps"
	"autolang/syntax"
)

// lbl builds a type label from a `::` separated path
func lbl(path string, generics ...*syntax.TypeLabel) *syntax.TypeLabel {
	return &syntax.TypeLabel{Path: strings.Split(path, "::"), Generics: generics}
}

func arr(label *syntax.TypeLabel, dim int) *syntax.TypeLabel {
	label.ArrayDim = dim
	return label
}

func generic(name string, bounds ...*syntax.TypeLabel) *syntax.GenericDecl {
	return &syntax.GenericDecl{Name: name, SuperBounds: bounds}
}

type declOpt func(*syntax.TypeDecl)

func class(name string, opts ...declOpt) *syntax.TypeDecl {
	td := &syntax.TypeDecl{Kind: syntax.TypeClass, Name: name}
	for _, opt := range opts {
		opt(td)
	}

	return td
}

func extends(super *syntax.TypeLabel) declOpt {
	return func(td *syntax.TypeDecl) { td.SuperClass = super }
}

func generics(gds ...*syntax.GenericDecl) declOpt {
	return func(td *syntax.TypeDecl) { td.Generics = gds }
}

func modifiers(mods ...syntax.Modifier) declOpt {
	return func(td *syntax.TypeDecl) { td.Modifiers = mods }
}

func members(ms ...*syntax.Member) declOpt {
	return func(td *syntax.TypeDecl) { td.Members = ms }
}

func field(name string, typ *syntax.TypeLabel, init syntax.Expr, mods ...syntax.Modifier) *syntax.Member {
	return &syntax.Member{Kind: syntax.MemberField, Name: name, Type: typ, Init: init, Modifiers: mods}
}

func method(name string, ret *syntax.TypeLabel, params []*syntax.Param, body *syntax.Block, mods ...syntax.Modifier) *syntax.Member {
	return &syntax.Member{Kind: syntax.MemberMethod, Name: name, Type: ret, Params: params, Body: body, Modifiers: mods}
}

func param(name string, typ *syntax.TypeLabel) *syntax.Param {
	return &syntax.Param{Name: name, Type: typ}
}

func file(module string, decls ...*syntax.TypeDecl) *syntax.Root {
	var mod syntax.Path
	if module != "" {
		mod = strings.Split(module, "::")
	}

	return &syntax.Root{Module: mod, Types: decls, FilePath: module + ".ast.toml"}
}

func unitOf(roots ...*syntax.Root) *deps.Unit {
	unit := deps.NewUnit("test", "/test")
	for _, root := range roots {
		unit.AddFile(root)
	}

	return unit
}

// lowerDecls lowers a single file in the root module
func lowerDecls(decls ...*syntax.TypeDecl) (*Result, error) {
	return NewLowerer(unitOf(file("", decls...)), nil).Lower()
}
