package sem

import "autolang/typing"

// FieldRef is a field declared on a type
type FieldRef struct {
	Owner  int
	Name   string
	Type   typing.ResolvedType
	Static bool
}

// MethodRef is a method declared on a type.  Methods of the same type may share
// a name as long as their parameter types differ.
type MethodRef struct {
	Owner  int
	Name   string
	Return typing.ResolvedType
	Params []typing.ResolvedType

	Static, Abstract, Native bool
}

// CollidesWith returns whether two methods have the same owner, name and
// parameter types.  Return types do not participate in overloading.
func (mr *MethodRef) CollidesWith(other *MethodRef) bool {
	if mr.Owner != other.Owner || mr.Name != other.Name || len(mr.Params) != len(other.Params) {
		return false
	}

	for i, p := range mr.Params {
		if !typing.Equals(p, other.Params[i]) {
			return false
		}
	}

	return true
}

// memberKey identifies the members of a type with a given name
type memberKey struct {
	owner int
	name  string
}

// MemberPool records every field and method of a compilation unit.  Like the
// type pool, it is append only and addressed by index.
type MemberPool struct {
	Fields  []*FieldRef
	Methods []*MethodRef

	fieldIndex  map[memberKey]int
	methodIndex map[memberKey][]int
}

// NewMemberPool creates a new empty member pool
func NewMemberPool() *MemberPool {
	return &MemberPool{
		fieldIndex:  make(map[memberKey]int),
		methodIndex: make(map[memberKey][]int),
	}
}

// AddField adds a new field.  It returns false if the owner already has a field
// with the same name.
func (mp *MemberPool) AddField(fr *FieldRef) (int, bool) {
	key := memberKey{owner: fr.Owner, name: fr.Name}
	if _, ok := mp.fieldIndex[key]; ok {
		return -1, false
	}

	index := len(mp.Fields)
	mp.Fields = append(mp.Fields, fr)
	mp.fieldIndex[key] = index
	return index, true
}

// AddMethod adds a new method.  It returns false if the method collides with an
// existing overload.
func (mp *MemberPool) AddMethod(mr *MethodRef) (int, bool) {
	key := memberKey{owner: mr.Owner, name: mr.Name}
	for _, overload := range mp.methodIndex[key] {
		if mp.Methods[overload].CollidesWith(mr) {
			return -1, false
		}
	}

	index := len(mp.Methods)
	mp.Methods = append(mp.Methods, mr)
	mp.methodIndex[key] = append(mp.methodIndex[key], index)
	return index, true
}

// LookupField looks up a field by owner and name
func (mp *MemberPool) LookupField(owner int, name string) (int, bool) {
	index, ok := mp.fieldIndex[memberKey{owner: owner, name: name}]
	return index, ok
}

// LookupMethod looks up the overload of a method with the given parameter types
func (mp *MemberPool) LookupMethod(owner int, name string, params []typing.ResolvedType) (int, bool) {
	probe := &MethodRef{Owner: owner, Name: name, Params: params}
	for _, overload := range mp.methodIndex[memberKey{owner: owner, name: name}] {
		if mp.Methods[overload].CollidesWith(probe) {
			return overload, true
		}
	}

	return -1, false
}

// Overloads returns the indices of all the methods of owner named name
func (mp *MemberPool) Overloads(owner int, name string) []int {
	return mp.methodIndex[memberKey{owner: owner, name: name}]
}
