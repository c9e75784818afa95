package typing

// Substitution Rules
// ------------------
// Superclasses and generic bounds are declared in terms of the generics of the
// type that declares them.  For example, in `class A<T> : B<T>` the superclass
// of `A` mentions `A`'s own slot 0.  Whenever we look at a superclass or a
// bound "through" an instantiation such as `A<X>`, every reference to a slot of
// `A` is replaced by the corresponding argument, giving `B<X>`.  Array
// dimensions stack: substituting `T[]` with `X[]` yields `X[][]`.

// Substitute replaces every generic of owner in rt with the matching entry of
// args.  Generics of other owners (and slots with no matching argument) are
// left unchanged.  rt itself is never mutated.
func Substitute(rt ResolvedType, owner int, args []ResolvedType) ResolvedType {
	switch v := rt.(type) {
	case *GenericType:
		if v.Owner == owner && v.Slot < len(args) {
			arg := args[v.Slot]
			return arg.withDim(arg.Dim() + v.ArrayDim)
		}
	case *TypeRefType:
		if len(v.Generics) == 0 {
			return v
		}

		generics := make([]ResolvedType, len(v.Generics))
		for i, g := range v.Generics {
			generics[i] = Substitute(g, owner, args)
		}

		return &TypeRefType{Index: v.Index, Generics: generics, ArrayDim: v.ArrayDim}
	}

	return rt
}
