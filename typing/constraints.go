package typing

import (
	"autolang/logging"
)

// Inherits returns whether candidate "is a" target: either they are equal, the
// candidate's superclass chain reaches target, or (for a generic) one of its
// slot's super requirements inherits target.  Bounds are disjunctive: a single
// satisfying bound is enough.
//
// Superclass chains and bare generic bound chains must be acyclic before this
// is called.  Array types are invariant and only match by equality, as do
// primitives.
func (p *TypeRefPool) Inherits(candidate, target ResolvedType) bool {
	if Equals(candidate, target) {
		return true
	}

	if candidate.Dim() > 0 {
		return false
	}

	switch v := candidate.(type) {
	case *TypeRefType:
		if super, ok := p.TypeRefs[v.Index].SuperClass(); ok {
			return p.Inherits(Substitute(super, v.Index, v.Generics), target)
		}
	case *GenericType:
		for _, req := range p.TypeRefs[v.Owner].Generics[v.Slot].SuperRequirements {
			if p.Inherits(req, target) {
				return true
			}
		}
	}

	return false
}

// CheckGenericArityAndBounds checks that an instantiated type supplies exactly
// as many generic arguments as its type declares and that every argument
// inherits all the super requirements of its slot.  Requirements are
// substituted with the arguments first so that F-bounded requirements such as
// `T: Comparable<T>` are checked against the argument itself.  Only the
// outermost type is checked: see `CheckDeep`.
func (p *TypeRefPool) CheckGenericArityAndBounds(rt ResolvedType) error {
	trt, ok := rt.(*TypeRefType)
	if !ok {
		return nil
	}

	tr := p.TypeRefs[trt.Index]
	if len(trt.Generics) != len(tr.Generics) {
		return logging.Raise(
			logging.ErrArityMismatch,
			nil,
			"`%s` expects %d generic arguments but received %d",
			tr.Name(),
			len(tr.Generics),
			len(trt.Generics),
		)
	}

	for i, slot := range tr.Generics {
		for _, req := range slot.SuperRequirements {
			want := Substitute(req, trt.Index, trt.Generics)

			if !p.Inherits(trt.Generics[i], want) {
				return logging.Raise(
					logging.ErrBoundViolation,
					nil,
					"`%s` does not satisfy the bound `%s` of generic `%s` of `%s`",
					p.Repr(trt.Generics[i]),
					p.Repr(want),
					slot.Name,
					tr.Name(),
				)
			}
		}
	}

	return nil
}

// CheckDeep runs arity and bound checking on rt and every type nested in its
// generic arguments, innermost first.
func (p *TypeRefPool) CheckDeep(rt ResolvedType) error {
	if trt, ok := rt.(*TypeRefType); ok {
		for _, g := range trt.Generics {
			if err := p.CheckDeep(g); err != nil {
				return err
			}
		}

		return p.CheckGenericArityAndBounds(trt)
	}

	return nil
}
