package typing

import (
	"testing"

	"autolang/logging"

	"github.com/nalgeon/be"
)

// class registers a class with the given generic names and returns its index
func class(pool *TypeRefPool, name string, generics ...string) int {
	index, err := pool.Register([]string{name}, &ClassKind{})
	if err != nil {
		panic(err)
	}

	for _, g := range generics {
		if _, err := pool.AddGeneric(index, g); err != nil {
			panic(err)
		}
	}

	return index
}

func extend(pool *TypeRefPool, index int, super *TypeRefType) {
	pool.At(index).Kind.(*ClassKind).SuperClass = super
}

func bound(pool *TypeRefPool, index, slot int, req ResolvedType) {
	gs := pool.At(index).Generics[slot]
	gs.SuperRequirements = append(gs.SuperRequirements, req)
}

func ref(index int, generics ...ResolvedType) *TypeRefType {
	return &TypeRefType{Index: index, Generics: generics}
}

func TestInheritsReflexive(t *testing.T) {
	pool := NewTypeRefPool()
	a := class(pool, "A", "T")

	types := []ResolvedType{
		ref(a, &PrimType{Kind: PrimI32}),
		&GenericType{Owner: a, Slot: 0},
		&PrimType{Kind: PrimChar, ArrayDim: 2},
		&TypeRefType{Index: a, Generics: []ResolvedType{&PrimType{}}, ArrayDim: 1},
	}

	for _, rt := range types {
		be.True(t, pool.Inherits(rt, rt))
	}
}

func TestInheritsChain(t *testing.T) {
	pool := NewTypeRefPool()
	a := class(pool, "A")
	b := class(pool, "B")
	c := class(pool, "C")
	extend(pool, a, ref(b))
	extend(pool, b, ref(c))

	be.True(t, pool.Inherits(ref(a), ref(c)))
	be.True(t, pool.Inherits(ref(a), ref(b)))
	be.True(t, !pool.Inherits(ref(c), ref(a)))

	// arrays are invariant
	be.True(t, !pool.Inherits(&TypeRefType{Index: a, ArrayDim: 1}, &TypeRefType{Index: c, ArrayDim: 1}))
}

func TestInheritsSubstitutesSuperclass(t *testing.T) {
	// class Wrapper<T> {}  class Named<U> : Wrapper<U> {}
	pool := NewTypeRefPool()
	wrapper := class(pool, "Wrapper", "T")
	named := class(pool, "Named", "U")
	extend(pool, named, ref(wrapper, &GenericType{Owner: named, Slot: 0}))

	i32 := &PrimType{Kind: PrimI32}
	be.True(t, pool.Inherits(ref(named, i32), ref(wrapper, i32)))
	be.True(t, !pool.Inherits(ref(named, i32), ref(wrapper, &PrimType{Kind: PrimBool})))
}

func TestInheritsThroughBounds(t *testing.T) {
	pool := NewTypeRefPool()
	number := class(pool, "Number")
	holder := class(pool, "Holder", "T", "U")
	bound(pool, holder, 0, ref(number))

	be.True(t, pool.Inherits(&GenericType{Owner: holder, Slot: 0}, ref(number)))
	be.True(t, !pool.Inherits(&GenericType{Owner: holder, Slot: 1}, ref(number)))
}

func TestArityMismatch(t *testing.T) {
	pool := NewTypeRefPool()
	box := class(pool, "Box", "T")
	x := class(pool, "X")
	y := class(pool, "Y")

	err := pool.CheckGenericArityAndBounds(ref(box, ref(x), ref(y)))
	be.True(t, logging.IsKind(err, logging.ErrArityMismatch))

	err = pool.CheckGenericArityAndBounds(ref(box))
	be.True(t, logging.IsKind(err, logging.ErrArityMismatch))

	be.Err(t, pool.CheckGenericArityAndBounds(ref(box, ref(x))), nil)
}

func TestBoundViolation(t *testing.T) {
	pool := NewTypeRefPool()
	box := class(pool, "Box", "T")
	number := class(pool, "Number")
	text := class(pool, "Text")
	bound(pool, box, 0, ref(number))

	err := pool.CheckGenericArityAndBounds(ref(box, ref(text)))
	be.True(t, logging.IsKind(err, logging.ErrBoundViolation))
	be.Err(t, err, "`Text` does not satisfy")

	be.Err(t, pool.CheckGenericArityAndBounds(ref(box, ref(number))), nil)
}

func TestFBoundedCheck(t *testing.T) {
	// class Comparable<T: Comparable<T>> {}  class Int : Comparable<Int> {}
	pool := NewTypeRefPool()
	comparable := class(pool, "Comparable", "T")
	integer := class(pool, "Int")
	bound(pool, comparable, 0, ref(comparable, &GenericType{Owner: comparable, Slot: 0}))
	extend(pool, integer, ref(comparable, ref(integer)))

	super, _ := pool.At(integer).SuperClass()
	be.Err(t, pool.CheckDeep(super), nil)

	// the bound itself, checked within Comparable's own scope
	req := pool.At(comparable).Generics[0].SuperRequirements[0]
	be.Err(t, pool.CheckDeep(req), nil)

	// some unrelated class does not satisfy the bound
	other := class(pool, "Other")
	err := pool.CheckDeep(ref(comparable, ref(other)))
	be.True(t, logging.IsKind(err, logging.ErrBoundViolation))
}

func TestCheckDeepInnermostFirst(t *testing.T) {
	pool := NewTypeRefPool()
	box := class(pool, "Box", "T")
	pair := class(pool, "Pair", "A", "B")

	// Box<Pair<i32>>: the nested arity error is found
	err := pool.CheckDeep(ref(box, ref(pair, &PrimType{Kind: PrimI32})))
	be.True(t, logging.IsKind(err, logging.ErrArityMismatch))
	be.Err(t, err, "`Pair` expects 2")
}

func TestSubstituteStacksArrays(t *testing.T) {
	arg := &PrimType{Kind: PrimU8, ArrayDim: 1}
	got := Substitute(&GenericType{Owner: 4, Slot: 0, ArrayDim: 1}, 4, []ResolvedType{arg})
	be.True(t, Equals(got, &PrimType{Kind: PrimU8, ArrayDim: 2}))

	// generics of other owners are untouched
	other := &GenericType{Owner: 5, Slot: 0}
	be.True(t, Equals(Substitute(other, 4, []ResolvedType{arg}), other))
}

func TestRepr(t *testing.T) {
	pool := NewTypeRefPool()
	box := class(pool, "Box", "T")
	number := class(pool, "Number")

	be.Equal(t, pool.Repr(&TypeRefType{Index: box, Generics: []ResolvedType{ref(number)}, ArrayDim: 1}), "Box<Number>[]")
	be.Equal(t, pool.Repr(&GenericType{Owner: box, Slot: 0}), "T")
	be.Equal(t, pool.Repr(&PrimType{Kind: PrimF64, ArrayDim: 2}), "f64[][]")
}
