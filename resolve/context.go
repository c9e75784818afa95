package resolve

import (
	"autolang/syntax"
	"autolang/typing"
)

// Origin is the lexical scope a path is resolved from: the module the file
// declares and the paths it `use`s.
type Origin struct {
	Module syntax.Path
	Uses   []syntax.Path
}

// OriginOf returns the origin of every path mentioned in a file
func OriginOf(root *syntax.Root) Origin {
	return Origin{Module: root.Module, Uses: root.Uses}
}

// GenericContext makes the generics of a type visible to resolution.  It only
// borrows the owner's name map: resolution never mutates it.
type GenericContext struct {
	Owner         int
	NameToGeneric map[string]int
}

// NewGenericContext creates the generic context of the type at owner
func NewGenericContext(pool *typing.TypeRefPool, owner int) *GenericContext {
	return &GenericContext{Owner: owner, NameToGeneric: pool.At(owner).NameToGeneric}
}

// lookup returns the slot named name if there is one
func (gc *GenericContext) lookup(name string) (int, bool) {
	if gc == nil {
		return -1, false
	}

	slot, ok := gc.NameToGeneric[name]
	return slot, ok
}
