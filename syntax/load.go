package syntax

import (
	"fmt"
	"path/filepath"
	"strings"

	"autolang/common"
	"autolang/logging"

	"github.com/pelletier/go-toml"
)

// LoadFile loads a syntax tree from a `.ast.toml` file
func LoadFile(path string) (*Root, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load syntax tree `%s`: %w", path, err)
	}

	root, err := decodeTree(tree)
	if err != nil {
		return nil, fmt.Errorf("malformed syntax tree `%s`: %w", path, err)
	}

	root.FilePath = path

	// source paths are relative to the tree file
	if root.SourcePath != "" && !filepath.IsAbs(root.SourcePath) {
		root.SourcePath = filepath.Join(filepath.Dir(path), root.SourcePath)
	}

	return root, nil
}

// Decode decodes a syntax tree from TOML text
func Decode(data []byte) (*Root, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, err
	}

	return decodeTree(tree)
}

func decodeTree(tree *toml.Tree) (*Root, error) {
	d := decoder{}

	root := &Root{}
	var err error

	if root.Span, err = d.span(tree); err != nil {
		return nil, err
	}

	if root.Module, err = d.path(tree, "module"); err != nil {
		return nil, err
	} else if len(root.Module) == 0 {
		return nil, d.errorf(tree, "module", "missing module path")
	}

	if root.SourcePath, err = d.optString(tree, "source", ""); err != nil {
		return nil, err
	}

	if tree.Has("uses") {
		uses, err := d.list(tree, "uses")
		if err != nil {
			return nil, err
		}

		for _, use := range uses {
			path, err := d.pathValue(tree, "uses", use)
			if err != nil {
				return nil, err
			}

			root.Uses = append(root.Uses, path)
		}
	}

	typeTrees, err := d.tables(tree, "types")
	if err != nil {
		return nil, err
	}

	for _, tt := range typeTrees {
		td, err := d.typeDecl(tt)
		if err != nil {
			return nil, err
		}

		root.Types = append(root.Types, td)
	}

	return root, nil
}

// -----------------------------------------------------------------------------

// decoder walks the TOML tree of a syntax tree file.  All of its methods report
// errors with the position of the offending key.
type decoder struct{}

func (decoder) errorf(tree *toml.Tree, key, msg string, args ...interface{}) error {
	return fmt.Errorf("%s at %s: %s", key, tree.GetPosition(key), fmt.Sprintf(msg, args...))
}

func (d decoder) typeDecl(tree *toml.Tree) (*TypeDecl, error) {
	td := &TypeDecl{}
	var err error

	if td.Span, err = d.span(tree); err != nil {
		return nil, err
	}

	td.NameSpan = td.Pos

	if td.Name, err = d.str(tree, "name"); err != nil {
		return nil, err
	}

	kind, err := d.optString(tree, "kind", "class")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "class":
		td.Kind = TypeClass
	case "interface":
		td.Kind = TypeInterface
	case "enum":
		td.Kind = TypeEnum
	case "impl":
		td.Kind = TypeImpl
	default:
		return nil, d.errorf(tree, "kind", "unknown type kind `%s`", kind)
	}

	if td.Visibility, err = d.visibility(tree); err != nil {
		return nil, err
	}

	if td.Modifiers, err = d.modifiers(tree); err != nil {
		return nil, err
	}

	genericTrees, err := d.tables(tree, "generics")
	if err != nil {
		return nil, err
	}

	for _, gt := range genericTrees {
		gd := &GenericDecl{}
		if gd.Span, err = d.span(gt); err != nil {
			return nil, err
		}

		if gd.Name, err = d.str(gt, "name"); err != nil {
			return nil, err
		}

		if gd.SuperBounds, err = d.labels(gt, "super"); err != nil {
			return nil, err
		}

		if gd.ImplBounds, err = d.labels(gt, "impl"); err != nil {
			return nil, err
		}

		td.Generics = append(td.Generics, gd)
	}

	if tree.Has("extends") {
		if td.SuperClass, err = d.label(tree, "extends", tree.Get("extends")); err != nil {
			return nil, err
		}
	}

	if td.Interfaces, err = d.labels(tree, "implements"); err != nil {
		return nil, err
	}

	memberTrees, err := d.tables(tree, "members")
	if err != nil {
		return nil, err
	}

	for _, mt := range memberTrees {
		member, err := d.member(mt)
		if err != nil {
			return nil, err
		}

		td.Members = append(td.Members, member)
	}

	return td, nil
}

func (d decoder) member(tree *toml.Tree) (*Member, error) {
	member := &Member{}
	var err error

	if member.Span, err = d.span(tree); err != nil {
		return nil, err
	}

	if member.Name, err = d.str(tree, "name"); err != nil {
		return nil, err
	}

	if member.Visibility, err = d.visibility(tree); err != nil {
		return nil, err
	}

	if member.Modifiers, err = d.modifiers(tree); err != nil {
		return nil, err
	}

	if !tree.Has("type") {
		return nil, d.errorf(tree, "name", "member `%s` has no type", member.Name)
	}

	if member.Type, err = d.label(tree, "type", tree.Get("type")); err != nil {
		return nil, err
	}

	kind, err := d.str(tree, "kind")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "field":
		member.Kind = MemberField

		if tree.Has("init") {
			if member.Init, err = d.expr(tree, "init", tree.Get("init")); err != nil {
				return nil, err
			}
		}
	case "method":
		member.Kind = MemberMethod

		paramTrees, err := d.tables(tree, "params")
		if err != nil {
			return nil, err
		}

		for _, pt := range paramTrees {
			param := &Param{}
			if param.Span, err = d.span(pt); err != nil {
				return nil, err
			}

			if param.Name, err = d.str(pt, "name"); err != nil {
				return nil, err
			}

			if param.Type, err = d.label(pt, "type", pt.Get("type")); err != nil {
				return nil, err
			}

			member.Params = append(member.Params, param)
		}

		if tree.Has("body") {
			if member.Body, err = d.block(tree, "body"); err != nil {
				return nil, err
			}
		}
	default:
		return nil, d.errorf(tree, "kind", "unknown member kind `%s`", kind)
	}

	return member, nil
}

// -----------------------------------------------------------------------------

func (d decoder) visibility(tree *toml.Tree) (Visibility, error) {
	vis, err := d.optString(tree, "visibility", "public")
	if err != nil {
		return 0, err
	}

	switch vis {
	case "public":
		return VisPublic, nil
	case "module":
		return VisModule, nil
	case "private":
		return VisPrivate, nil
	}

	return 0, d.errorf(tree, "visibility", "unknown visibility `%s`", vis)
}

func (d decoder) modifiers(tree *toml.Tree) ([]Modifier, error) {
	if !tree.Has("modifiers") {
		return nil, nil
	}

	values, err := d.list(tree, "modifiers")
	if err != nil {
		return nil, err
	}

	var mods []Modifier
	for _, v := range values {
		switch v {
		case "static":
			mods = append(mods, ModStatic)
		case "abstract":
			mods = append(mods, ModAbstract)
		case "native":
			mods = append(mods, ModNative)
		default:
			return nil, d.errorf(tree, "modifiers", "unknown modifier `%v`", v)
		}
	}

	return mods, nil
}

// labels decodes an optional list of type labels
func (d decoder) labels(tree *toml.Tree, key string) ([]*TypeLabel, error) {
	if !tree.Has(key) {
		return nil, nil
	}

	values, err := d.list(tree, key)
	if err != nil {
		return nil, err
	}

	var labels []*TypeLabel
	for _, v := range values {
		label, err := d.label(tree, key, v)
		if err != nil {
			return nil, err
		}

		labels = append(labels, label)
	}

	return labels, nil
}

// label decodes a single type label.  A bare string is shorthand for a label
// with only a path.
func (d decoder) label(parent *toml.Tree, key string, value interface{}) (*TypeLabel, error) {
	label := &TypeLabel{}
	var err error

	switch v := value.(type) {
	case string:
		label.Path = splitPath(v)
		return label, nil
	case *toml.Tree:
		if label.Span, err = d.span(v); err != nil {
			return nil, err
		}

		if label.Path, err = d.path(v, "path"); err != nil {
			return nil, err
		}

		if label.Generics, err = d.labels(v, "generics"); err != nil {
			return nil, err
		}

		dim, err := d.optInt(v, "array-dim")
		if err != nil {
			return nil, err
		} else if dim < 0 {
			return nil, d.errorf(v, "array-dim", "negative array dimension")
		}

		label.ArrayDim = dim
		return label, nil
	}

	return nil, d.errorf(parent, key, "expected a type label")
}

func (d decoder) block(tree *toml.Tree, key string) (*Block, error) {
	values, err := d.list(tree, key)
	if err != nil {
		return nil, err
	}

	block := &Block{}
	for _, v := range values {
		st, ok := v.(*toml.Tree)
		if !ok {
			return nil, d.errorf(tree, key, "expected a statement table")
		}

		stmt, err := d.stmt(st)
		if err != nil {
			return nil, err
		}

		block.Stmts = append(block.Stmts, stmt)
	}

	if len(block.Stmts) > 0 {
		block.Pos = logging.TextPositionFromRange(block.Stmts[0].Position(), block.Stmts[len(block.Stmts)-1].Position())
	}

	return block, nil
}

func (d decoder) stmt(tree *toml.Tree) (Stmt, error) {
	span, err := d.span(tree)
	if err != nil {
		return nil, err
	}

	kind, err := d.str(tree, "kind")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "local":
		local := &LocalStmt{Span: span}
		if local.Name, err = d.str(tree, "name"); err != nil {
			return nil, err
		}

		if tree.Has("type") {
			if local.Type, err = d.label(tree, "type", tree.Get("type")); err != nil {
				return nil, err
			}
		}

		if tree.Has("value") {
			if local.Value, err = d.expr(tree, "value", tree.Get("value")); err != nil {
				return nil, err
			}
		}

		return local, nil
	case "expr":
		es := &ExprStmt{Span: span}
		if es.Expr, err = d.expr(tree, "expr", tree.Get("expr")); err != nil {
			return nil, err
		}

		if es.Ending, err = d.optBool(tree, "ending"); err != nil {
			return nil, err
		}

		return es, nil
	}

	return nil, d.errorf(tree, "kind", "unknown statement kind `%s`", kind)
}

// -----------------------------------------------------------------------------

func (d decoder) span(tree *toml.Tree) (Span, error) {
	if !tree.Has("span") {
		return Span{}, nil
	}

	values, err := d.list(tree, "span")
	if err != nil {
		return Span{}, err
	}

	if len(values) != 4 {
		return Span{}, d.errorf(tree, "span", "span must have 4 elements")
	}

	var coords [4]int
	for i, v := range values {
		n, ok := v.(int64)
		if !ok {
			return Span{}, d.errorf(tree, "span", "span elements must be integers")
		}

		coords[i] = int(n)
	}

	return Span{Pos: &logging.TextPosition{
		StartLn:  coords[0],
		StartCol: coords[1],
		EndLn:    coords[2],
		EndCol:   coords[3],
	}}, nil
}

func (d decoder) path(tree *toml.Tree, key string) (Path, error) {
	if !tree.Has(key) {
		return nil, d.errorf(tree, key, "missing path")
	}

	return d.pathValue(tree, key, tree.Get(key))
}

// pathValue decodes a path written either as `"a::b"` or `["a", "b"]`
func (d decoder) pathValue(tree *toml.Tree, key string, value interface{}) (Path, error) {
	switch v := value.(type) {
	case string:
		return splitPath(v), nil
	case []interface{}:
		path := make(Path, len(v))
		for i, seg := range v {
			s, ok := seg.(string)
			if !ok {
				return nil, d.errorf(tree, key, "path segments must be strings")
			}

			path[i] = s
		}

		return path, nil
	}

	return nil, d.errorf(tree, key, "expected a path")
}

// list returns the elements of an array.  go-toml decodes arrays of tables as
// `[]*toml.Tree` and everything else as `[]interface{}`.
func (d decoder) list(tree *toml.Tree, key string) ([]interface{}, error) {
	switch v := tree.Get(key).(type) {
	case []interface{}:
		return v, nil
	case []*toml.Tree:
		values := make([]interface{}, len(v))
		for i, t := range v {
			values[i] = t
		}

		return values, nil
	}

	return nil, d.errorf(tree, key, "expected an array")
}

// tables returns an optional array of tables
func (d decoder) tables(tree *toml.Tree, key string) ([]*toml.Tree, error) {
	if !tree.Has(key) {
		return nil, nil
	}

	values, err := d.list(tree, key)
	if err != nil {
		return nil, err
	}

	tables := make([]*toml.Tree, len(values))
	for i, v := range values {
		t, ok := v.(*toml.Tree)
		if !ok {
			return nil, d.errorf(tree, key, "expected an array of tables")
		}

		tables[i] = t
	}

	return tables, nil
}

func (d decoder) str(tree *toml.Tree, key string) (string, error) {
	if s, ok := tree.Get(key).(string); ok {
		return s, nil
	}

	return "", d.errorf(tree, key, "expected a string")
}

func (d decoder) optString(tree *toml.Tree, key, def string) (string, error) {
	if !tree.Has(key) {
		return def, nil
	}

	return d.str(tree, key)
}

func (d decoder) optInt(tree *toml.Tree, key string) (int, error) {
	if !tree.Has(key) {
		return 0, nil
	}

	if n, ok := tree.Get(key).(int64); ok {
		return int(n), nil
	}

	return 0, d.errorf(tree, key, "expected an integer")
}

func (d decoder) optBool(tree *toml.Tree, key string) (bool, error) {
	if !tree.Has(key) {
		return false, nil
	}

	if b, ok := tree.Get(key).(bool); ok {
		return b, nil
	}

	return false, d.errorf(tree, key, "expected a boolean")
}

func splitPath(s string) Path {
	return strings.Split(s, common.PathSeparator)
}

// IsSyntaxFile returns whether the path names a syntax tree file
func IsSyntaxFile(path string) bool {
	return strings.HasSuffix(path, common.SyntaxFileExtension)
}
