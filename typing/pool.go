package typing

import (
	"autolang/common"
	"autolang/logging"
)

// TypeKind is the kind of a declared type.  It is a closed set: currently the
// only kind is `*ClassKind`.  Interfaces and enums will get their own kinds.
type TypeKind interface {
	isTypeKind()
}

// ClassKind is the kind of a class declaration
type ClassKind struct {
	// SuperClass is `nil` if the class extends nothing
	SuperClass *TypeRefType

	IsAbstract bool
}

func (*ClassKind) isTypeKind() {}

// GenericSlot is a generic parameter position declared on a type
type GenericSlot struct {
	Name string

	// SuperRequirements are the upper bounds of the slot.  They may mention
	// generics of the owning type (including the slot itself).
	SuperRequirements []ResolvedType
}

// TypeRef is a type declared in the pool
type TypeRef struct {
	FullPath []string
	Kind     TypeKind

	Generics      []*GenericSlot
	NameToGeneric map[string]int
}

// Name returns the last segment of the type's path
func (tr *TypeRef) Name() string {
	return tr.FullPath[len(tr.FullPath)-1]
}

// SuperClass returns the superclass of the type if it has one
func (tr *TypeRef) SuperClass() (*TypeRefType, bool) {
	if ck, ok := tr.Kind.(*ClassKind); ok && ck.SuperClass != nil {
		return ck.SuperClass, true
	}

	return nil, false
}

// -----------------------------------------------------------------------------

// TypeRefPool is the registry of every type declared in a compilation unit.
// Types are addressed by their index which never changes once assigned: types
// are only ever appended.
type TypeRefPool struct {
	TypeRefs []*TypeRef

	// pathIndex maps joined full paths to indices
	pathIndex map[string]int
}

// NewTypeRefPool creates a new empty pool
func NewTypeRefPool() *TypeRefPool {
	return &TypeRefPool{pathIndex: make(map[string]int)}
}

// Register appends a new type with the given path and kind and returns its
// index.  It fails if a type with the same path already exists, in which case
// the pool is left unchanged.
func (p *TypeRefPool) Register(path []string, kind TypeKind) (int, error) {
	key := common.JoinPath(path)
	if _, ok := p.pathIndex[key]; ok {
		return -1, logging.Raise(logging.ErrDuplicateType, nil, "type `%s` declared multiple times", key)
	}

	index := len(p.TypeRefs)
	p.TypeRefs = append(p.TypeRefs, &TypeRef{
		FullPath:      append([]string(nil), path...),
		Kind:          kind,
		NameToGeneric: make(map[string]int),
	})
	p.pathIndex[key] = index

	return index, nil
}

// LookupByPath performs an exact lookup of a full path
func (p *TypeRefPool) LookupByPath(path []string) (int, bool) {
	index, ok := p.pathIndex[common.JoinPath(path)]
	return index, ok
}

// At returns the type stored at index.  The returned entry may be mutated by
// the registration phases.
func (p *TypeRefPool) At(index int) *TypeRef {
	return p.TypeRefs[index]
}

// Len returns the number of types in the pool
func (p *TypeRefPool) Len() int {
	return len(p.TypeRefs)
}

// AddGeneric appends a boundless generic slot to the type at index and returns
// the index of the new slot.
func (p *TypeRefPool) AddGeneric(index int, name string) (int, error) {
	tr := p.TypeRefs[index]
	if _, ok := tr.NameToGeneric[name]; ok {
		return -1, logging.Raise(
			logging.ErrDuplicateGeneric,
			nil,
			"generic `%s` declared multiple times on `%s`",
			name,
			common.JoinPath(tr.FullPath),
		)
	}

	slot := len(tr.Generics)
	tr.Generics = append(tr.Generics, &GenericSlot{Name: name})
	tr.NameToGeneric[name] = slot
	return slot, nil
}

// SuperClassOf returns the superclass of the type at index.  It is the
// successor function used when walking inheritance chains.
func (p *TypeRefPool) SuperClassOf(index int) (int, bool) {
	if sc, ok := p.TypeRefs[index].SuperClass(); ok {
		return sc.Index, true
	}

	return -1, false
}
