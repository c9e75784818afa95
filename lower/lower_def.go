package lower

import (
	"autolang/logging"
	"autolang/resolve"
	"autolang/sem"
	"autolang/syntax"
	"autolang/typing"
	"autolang/util"
)

// memberScope is the state used to lower the members of one type
type memberScope struct {
	info *declInfo
	ctx  *resolve.GenericContext
}

// lowerType lowers a validated type declaration and records its members
func (l *Lowerer) lowerType(info *declInfo) (*sem.TIRType, error) {
	tr := l.pool.At(info.index)
	ck := tr.Kind.(*typing.ClassKind)

	tt := &sem.TIRType{
		Span:       info.decl.Pos,
		Index:      info.index,
		File:       info.file.RelPath(),
		Visibility: info.decl.Visibility,
		IsAbstract: ck.IsAbstract,
		SuperClass: ck.SuperClass,
	}

	scope := &memberScope{info: info, ctx: resolve.NewGenericContext(l.pool, info.index)}
	for _, member := range info.decl.Members {
		tm, err := l.lowerMember(scope, member)
		if err != nil {
			return nil, err
		}

		tt.Members = append(tt.Members, tm)
	}

	return tt, nil
}

func (l *Lowerer) lowerMember(scope *memberScope, member *syntax.Member) (*sem.TIRMember, error) {
	if err := checkDuplicateModifiers(member.Modifiers, member.Pos); err != nil {
		return nil, err
	}

	tm := &sem.TIRMember{
		Span:       member.Pos,
		Kind:       member.Kind,
		Visibility: member.Visibility,
		Name:       member.Name,
		Static:     util.Contains(member.Modifiers, syntax.ModStatic),
		Abstract:   util.Contains(member.Modifiers, syntax.ModAbstract),
		Native:     util.Contains(member.Modifiers, syntax.ModNative),
	}

	var err error
	if tm.Type, err = l.resolveChecked(scope, member.Type); err != nil {
		return nil, err
	}

	switch member.Kind {
	case syntax.MemberField:
		if tm.Abstract || tm.Native {
			return nil, logging.Raise(
				logging.ErrIllegalModifier,
				member.Pos,
				"field `%s` cannot be marked `abstract` or `native`",
				member.Name,
			)
		}

		if member.Init != nil {
			if tm.Init, err = l.lowerExpr(scope, member.Init); err != nil {
				return nil, err
			}
		}

		if _, ok := l.members.AddField(&sem.FieldRef{
			Owner:  scope.info.index,
			Name:   member.Name,
			Type:   tm.Type,
			Static: tm.Static,
		}); !ok {
			return nil, logging.Raise(
				logging.ErrDuplicateMember,
				member.Pos,
				"field `%s` declared multiple times on `%s`",
				member.Name,
				scope.info.decl.Name,
			)
		}
	case syntax.MemberMethod:
		if err := l.checkMethodModifiers(scope, member, tm); err != nil {
			return nil, err
		}

		tm.Params, err = util.MapErr(member.Params, func(param *syntax.Param) (*sem.TIRParam, error) {
			pt, err := l.resolveChecked(scope, param.Type)
			if err != nil {
				return nil, err
			}

			return &sem.TIRParam{Span: param.Pos, Name: param.Name, Type: pt}, nil
		})
		if err != nil {
			return nil, err
		}

		if member.Body != nil {
			if tm.Body, err = l.lowerBlock(scope, member.Body); err != nil {
				return nil, err
			}
		}

		if _, ok := l.members.AddMethod(&sem.MethodRef{
			Owner:    scope.info.index,
			Name:     member.Name,
			Return:   tm.Type,
			Params:   tm.ParamTypes(),
			Static:   tm.Static,
			Abstract: tm.Abstract,
			Native:   tm.Native,
		}); !ok {
			return nil, logging.Raise(
				logging.ErrDuplicateMember,
				member.Pos,
				"method `%s` with the same parameter types declared multiple times on `%s`",
				member.Name,
				scope.info.decl.Name,
			)
		}
	}

	return tm, nil
}

// checkMethodModifiers checks the modifiers of a method against its body and
// its owning class: abstract and native methods have no body, and only
// abstract classes may declare abstract methods.
func (l *Lowerer) checkMethodModifiers(scope *memberScope, member *syntax.Member, tm *sem.TIRMember) error {
	switch {
	case tm.Abstract && tm.Native:
		return logging.Raise(
			logging.ErrIllegalModifier,
			member.Pos,
			"method `%s` cannot be both `abstract` and `native`",
			member.Name,
		)
	case (tm.Abstract || tm.Native) && member.Body != nil:
		return logging.Raise(
			logging.ErrIllegalModifier,
			member.Pos,
			"abstract and native method `%s` cannot have a body",
			member.Name,
		)
	case tm.Abstract && !util.Contains(scope.info.decl.Modifiers, syntax.ModAbstract):
		return logging.Raise(
			logging.ErrIllegalModifier,
			member.Pos,
			"abstract method `%s` declared in non-abstract class `%s`",
			member.Name,
			scope.info.decl.Name,
		)
	}

	return nil
}

// resolveChecked resolves a type mention in the scope of the type being lowered
// and runs deep arity and bound checking on it.
func (l *Lowerer) resolveChecked(scope *memberScope, label *syntax.TypeLabel) (typing.ResolvedType, error) {
	rt, err := l.resolver.ResolveType(scope.info.origin, scope.ctx, label)
	if err != nil {
		return nil, err
	}

	if err := l.pool.CheckDeep(rt); err != nil {
		return nil, logging.AtPosition(err, label.Pos)
	}

	return rt, nil
}
