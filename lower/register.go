package lower

import (
	"autolang/logging"
	"autolang/resolve"
	"autolang/syntax"
	"autolang/typing"
	"autolang/util"
)

// registerDecls registers every declaration of the unit in the pool (phase 1)
func (l *Lowerer) registerDecls() error {
	for _, file := range l.unit.Files {
		origin := resolve.OriginOf(file.AST)

		for _, decl := range file.AST.Types {
			if err := l.checkDeclKind(decl); err != nil {
				return &Error{File: file, Err: err}
			}

			if err := checkDuplicateModifiers(decl.Modifiers, decl.Pos); err != nil {
				return &Error{File: file, Err: err}
			}

			for _, mod := range decl.Modifiers {
				if mod != syntax.ModAbstract {
					return &Error{File: file, Err: logging.Raise(
						logging.ErrIllegalModifier,
						decl.Pos,
						"class `%s` cannot be marked `%s`",
						decl.Name,
						mod,
					)}
				}
			}

			kind := &typing.ClassKind{IsAbstract: util.Contains(decl.Modifiers, syntax.ModAbstract)}
			path := append(append(syntax.Path(nil), file.AST.Module...), decl.Name)

			index, err := l.pool.Register(path, kind)
			if err != nil {
				return &Error{File: file, Err: logging.AtPosition(err, declNamePos(decl))}
			}

			l.decls = append(l.decls, &declInfo{decl: decl, file: file, origin: origin, index: index})
		}
	}

	return nil
}

// checkDeclKind rejects the declaration kinds and features which are not
// supported yet: only classes without interface lists can be lowered.
func (l *Lowerer) checkDeclKind(decl *syntax.TypeDecl) error {
	switch decl.Kind {
	case syntax.TypeInterface:
		return logging.Raise(logging.ErrUnsupported, decl.Pos, "interfaces are not supported yet")
	case syntax.TypeEnum:
		return logging.Raise(logging.ErrUnsupported, decl.Pos, "enums are not supported yet")
	case syntax.TypeImpl:
		return logging.Raise(logging.ErrUnsupported, decl.Pos, "impl blocks are not supported yet")
	}

	if len(decl.Interfaces) > 0 {
		return logging.Raise(
			logging.ErrUnsupported,
			decl.Interfaces[0].Pos,
			"class `%s` implements interfaces which are not supported yet",
			decl.Name,
		)
	}

	return nil
}

// registerGenerics adds the boundless generic slots of a declaration (phase 2)
func (l *Lowerer) registerGenerics(info *declInfo) error {
	for _, gd := range info.decl.Generics {
		if _, err := l.pool.AddGeneric(info.index, gd.Name); err != nil {
			return logging.AtPosition(err, gd.Pos)
		}
	}

	return nil
}

// registerSuperClass resolves and stores the superclass of a declaration
// (phase 3).  The superclass is resolved without any generic context.
func (l *Lowerer) registerSuperClass(info *declInfo) error {
	label := info.decl.SuperClass
	if label == nil {
		return nil
	}

	rt, err := l.resolver.ResolveType(info.origin, nil, label)
	if err != nil {
		return err
	}

	super, ok := rt.(*typing.TypeRefType)
	if !ok || super.ArrayDim > 0 {
		return logging.Raise(
			logging.ErrInvalidSuperClass,
			label.Pos,
			"class `%s` cannot extend `%s`: only classes can be extended",
			info.decl.Name,
			l.pool.Repr(rt),
		)
	}

	l.pool.At(info.index).Kind.(*typing.ClassKind).SuperClass = super
	return nil
}

// registerBounds resolves the super bounds of every generic slot of a
// declaration (phase 4).  Bounds are resolved in the context of the owning
// type so they may refer to the owner itself and to any of its generics.
func (l *Lowerer) registerBounds(info *declInfo) error {
	ctx := resolve.NewGenericContext(l.pool, info.index)
	slots := l.pool.At(info.index).Generics

	for i, gd := range info.decl.Generics {
		if len(gd.ImplBounds) > 0 {
			return logging.Raise(
				logging.ErrUnsupported,
				gd.ImplBounds[0].Pos,
				"interface bounds on generic `%s` are not supported yet",
				gd.Name,
			)
		}

		for _, label := range gd.SuperBounds {
			rt, err := l.resolver.ResolveType(info.origin, ctx, label)
			if err != nil {
				return err
			}

			slots[i].SuperRequirements = append(slots[i].SuperRequirements, rt)
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// checkDuplicateModifiers checks that no modifier occurs twice
func checkDuplicateModifiers(mods []syntax.Modifier, pos *logging.TextPosition) error {
	for i, mod := range mods {
		if util.Contains(mods[:i], mod) {
			return logging.Raise(logging.ErrDuplicateModifier, pos, "modifier `%s` specified multiple times", mod)
		}
	}

	return nil
}

// declNamePos returns the position of the name of a declaration if it is known
func declNamePos(decl *syntax.TypeDecl) *logging.TextPosition {
	if decl.NameSpan != nil {
		return decl.NameSpan
	}

	return decl.Pos
}
