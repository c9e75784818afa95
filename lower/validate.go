package lower

import (
	"autolang/common"
	"autolang/logging"
	"autolang/typing"
	"autolang/util"
)

// checkSelfExtension rejects classes which directly extend themselves.  It runs
// over every type before the cycle checks so that a class extending itself is
// reported as such rather than as a cycle found from one of its subclasses.
func (l *Lowerer) checkSelfExtension(info *declInfo) error {
	if super, ok := l.pool.At(info.index).SuperClass(); ok && super.Index == info.index {
		return logging.Raise(
			logging.ErrSelfExtension,
			info.decl.SuperClass.Pos,
			"class `%s` cannot extend itself",
			info.decl.Name,
		)
	}

	return nil
}

// checkGraph validates the inheritance and generic bound graph around a type.
// It runs for every type before any bound is checked: bound checking walks
// superclass chains and bare generic bounds which must therefore be acyclic.
func (l *Lowerer) checkGraph(info *declInfo) error {
	tr := l.pool.At(info.index)

	if util.HasCycle(info.index, l.pool.SuperClassOf) {
		return logging.Raise(
			logging.ErrInheritanceCycle,
			info.decl.SuperClass.Pos,
			"the superclass chain of `%s` contains a cycle",
			common.JoinPath(tr.FullPath),
		)
	}

	for i, slot := range tr.Generics {
		gd := info.decl.Generics[i]

		if len(slot.SuperRequirements) > 1 {
			return logging.Raise(
				logging.ErrMultipleSuperBounds,
				gd.SuperBounds[1].Pos,
				"generic `%s` may only have one super bound",
				slot.Name,
			)
		}

		if util.HasCycle(i, l.genericBoundOf(info.index)) {
			return logging.Raise(
				logging.ErrGenericBoundCycle,
				gd.Pos,
				"the bound of generic `%s` refers back to itself",
				slot.Name,
			)
		}
	}

	return nil
}

// genericBoundOf returns the successor function of the bare generic bound
// chains of the type at owner: `T: U` makes `U` the successor of `T`.  Bounds
// which are declared types or arrays end the chain.
func (l *Lowerer) genericBoundOf(owner int) func(int) (int, bool) {
	slots := l.pool.At(owner).Generics

	return func(slot int) (int, bool) {
		reqs := slots[slot].SuperRequirements
		if len(reqs) == 0 {
			return -1, false
		}

		if gt, ok := reqs[0].(*typing.GenericType); ok && gt.Owner == owner && gt.ArrayDim == 0 {
			return gt.Slot, true
		}

		return -1, false
	}
}

// checkBounds runs arity and bound checking on the superclass of a type and on
// the bounds of its generics, nested types first.
func (l *Lowerer) checkBounds(info *declInfo) error {
	tr := l.pool.At(info.index)

	if super, ok := tr.SuperClass(); ok {
		if err := l.pool.CheckDeep(super); err != nil {
			return logging.AtPosition(err, info.decl.SuperClass.Pos)
		}
	}

	for i, slot := range tr.Generics {
		for j, req := range slot.SuperRequirements {
			if err := l.pool.CheckDeep(req); err != nil {
				return logging.AtPosition(err, info.decl.Generics[i].SuperBounds[j].Pos)
			}
		}
	}

	return nil
}
