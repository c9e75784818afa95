package typing

// ResolvedType is a fully resolved type mention: every syntactic type label is
// replaced by one of these during lowering.  The concrete types are
// `*TypeRefType`, `*GenericType` and `*PrimType`.
type ResolvedType interface {
	// Dim returns the array nesting depth of the type (0 for scalars)
	Dim() int

	// withDim returns a copy of the type with the given array dimension
	withDim(dim int) ResolvedType

	// equals takes in another resolved type and returns whether the two are
	// structurally equal.
	equals(other ResolvedType) bool
}

// TypeRefType is an instantiation of a type declared in the pool
type TypeRefType struct {
	Index    int
	Generics []ResolvedType
	ArrayDim int
}

// GenericType is a reference to a generic slot of the type that was being
// declared when the mention was resolved.
type GenericType struct {
	Owner, Slot int
	ArrayDim    int
}

// PrimType is a primitive type such as `i32` or `bool`
type PrimType struct {
	Kind     PrimKind
	ArrayDim int
}

func (trt *TypeRefType) Dim() int { return trt.ArrayDim }
func (gt *GenericType) Dim() int  { return gt.ArrayDim }
func (pt *PrimType) Dim() int     { return pt.ArrayDim }

func (trt *TypeRefType) withDim(dim int) ResolvedType {
	return &TypeRefType{Index: trt.Index, Generics: trt.Generics, ArrayDim: dim}
}

func (gt *GenericType) withDim(dim int) ResolvedType {
	return &GenericType{Owner: gt.Owner, Slot: gt.Slot, ArrayDim: dim}
}

func (pt *PrimType) withDim(dim int) ResolvedType {
	return &PrimType{Kind: pt.Kind, ArrayDim: dim}
}

func (trt *TypeRefType) equals(other ResolvedType) bool {
	if otrt, ok := other.(*TypeRefType); ok {
		if trt.Index != otrt.Index || trt.ArrayDim != otrt.ArrayDim || len(trt.Generics) != len(otrt.Generics) {
			return false
		}

		for i, g := range trt.Generics {
			if !Equals(g, otrt.Generics[i]) {
				return false
			}
		}

		return true
	}

	return false
}

func (gt *GenericType) equals(other ResolvedType) bool {
	if ogt, ok := other.(*GenericType); ok {
		return *gt == *ogt
	}

	return false
}

func (pt *PrimType) equals(other ResolvedType) bool {
	if opt, ok := other.(*PrimType); ok {
		return *pt == *opt
	}

	return false
}

// -----------------------------------------------------------------------------

// Equals computes structural equality between two resolved types.  `nil` is
// only equal to `nil`.
func Equals(a, b ResolvedType) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.equals(b)
}

// IsVoid returns whether the type is the scalar `void` primitive
func IsVoid(rt ResolvedType) bool {
	pt, ok := rt.(*PrimType)
	return ok && pt.Kind == PrimVoid && pt.ArrayDim == 0
}
