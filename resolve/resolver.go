package resolve

import (
	"autolang/common"
	"autolang/logging"
	"autolang/syntax"
	"autolang/typing"
)

// PathKind enumerates the possible outcomes of looking up a path
type PathKind int

// Enumeration of path kinds
const (
	PathNotFound PathKind = iota
	PathPrimitive
	PathTypeRef
	PathGeneric
)

// PathResult is the result of looking up a path.  Which fields are meaningful
// depends on the kind.
type PathResult struct {
	Kind PathKind

	Prim  typing.PrimKind // PathPrimitive
	Index int             // PathTypeRef
	Owner int             // PathGeneric
	Slot  int             // PathGeneric
}

// Resolver resolves syntactic type mentions against a type pool.  It never
// modifies the pool: resolving the same label against the same pool state
// always gives the same result.
type Resolver struct {
	pool     *typing.TypeRefPool
	strategy PathStrategy
}

// NewResolver creates a new resolver over pool.  If strategy is `nil`, the
// default strategy is used.
func NewResolver(pool *typing.TypeRefPool, strategy PathStrategy) *Resolver {
	if strategy == nil {
		strategy = DefaultStrategy()
	}

	return &Resolver{pool: pool, strategy: strategy}
}

// LookupPath determines what path refers to.  Single segment paths are first
// checked against the primitives and then against the generics of ctx (which
// may be `nil`).  Afterwards, every candidate produced by the resolver's
// strategy is looked up in the pool.
func (r *Resolver) LookupPath(origin Origin, ctx *GenericContext, path syntax.Path) PathResult {
	if len(path) == 0 {
		return PathResult{Kind: PathNotFound}
	}

	if len(path) == 1 {
		if prim, ok := typing.PrimitiveFromName(path[0]); ok {
			return PathResult{Kind: PathPrimitive, Prim: prim}
		}

		if slot, ok := ctx.lookup(path[0]); ok {
			return PathResult{Kind: PathGeneric, Owner: ctx.Owner, Slot: slot}
		}
	}

	for _, candidate := range r.strategy.Candidates(origin, path) {
		if index, ok := r.pool.LookupByPath(candidate); ok {
			return PathResult{Kind: PathTypeRef, Index: index}
		}
	}

	return PathResult{Kind: PathNotFound}
}

// ResolveType converts a type label into a resolved type.  Generic arguments
// are resolved with the same origin and context.  The resolved type is not
// checked for arity or bounds: that is the job of the constraint checker.
func (r *Resolver) ResolveType(origin Origin, ctx *GenericContext, label *syntax.TypeLabel) (typing.ResolvedType, error) {
	res := r.LookupPath(origin, ctx, label.Path)

	switch res.Kind {
	case PathPrimitive:
		if len(label.Generics) > 0 {
			return nil, logging.Raise(
				logging.ErrGenericOnPrimitive,
				label.Pos,
				"primitive type `%s` does not accept generic arguments",
				res.Prim,
			)
		}

		return &typing.PrimType{Kind: res.Prim, ArrayDim: label.ArrayDim}, nil
	case PathGeneric:
		if len(label.Generics) > 0 {
			return nil, logging.Raise(
				logging.ErrGenericOnGeneric,
				label.Pos,
				"generic `%s` does not accept generic arguments",
				label.Path[0],
			)
		}

		return &typing.GenericType{Owner: res.Owner, Slot: res.Slot, ArrayDim: label.ArrayDim}, nil
	case PathTypeRef:
		generics := make([]typing.ResolvedType, len(label.Generics))
		for i, g := range label.Generics {
			rt, err := r.ResolveType(origin, ctx, g)
			if err != nil {
				return nil, err
			}

			generics[i] = rt
		}

		return &typing.TypeRefType{Index: res.Index, Generics: generics, ArrayDim: label.ArrayDim}, nil
	}

	return nil, logging.Raise(
		logging.ErrUnresolvedType,
		label.Pos,
		"undefined type: `%s`",
		common.JoinPath(label.Path),
	)
}

// ResolveTypeRef resolves a path that must name a declared type (such as a
// path used as an expression) to its pool index.
func (r *Resolver) ResolveTypeRef(origin Origin, path syntax.Path, pos *logging.TextPosition) (int, error) {
	if res := r.LookupPath(origin, nil, path); res.Kind == PathTypeRef {
		return res.Index, nil
	}

	return -1, logging.Raise(logging.ErrUnresolvedType, pos, "undefined type: `%s`", common.JoinPath(path))
}
