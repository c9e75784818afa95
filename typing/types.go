package typing

// PrimKind enumerates the primitive types of Auto.  Primitives are not
// registered in the type pool: they are recognized by name during resolution.
type PrimKind uint

// Enumeration of primitive kinds
const (
	PrimVoid PrimKind = iota
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimU8
	PrimU16
	PrimU32
	PrimU64
	PrimF32
	PrimF64
	PrimBool
	PrimChar
)

var primNames = [...]string{
	PrimVoid: "void",
	PrimI8:   "i8",
	PrimI16:  "i16",
	PrimI32:  "i32",
	PrimI64:  "i64",
	PrimU8:   "u8",
	PrimU16:  "u16",
	PrimU32:  "u32",
	PrimU64:  "u64",
	PrimF32:  "f32",
	PrimF64:  "f64",
	PrimBool: "bool",
	PrimChar: "char",
}

var primsByName map[string]PrimKind

func init() {
	primsByName = make(map[string]PrimKind, len(primNames))
	for kind, name := range primNames {
		primsByName[name] = PrimKind(kind)
	}
}

// String of a primitive kind is just its corresponding keyword
func (pk PrimKind) String() string {
	if int(pk) < len(primNames) {
		return primNames[pk]
	}

	return "<invalid>"
}

// PrimitiveFromName looks up a primitive by its keyword
func PrimitiveFromName(name string) (PrimKind, bool) {
	kind, ok := primsByName[name]
	return kind, ok
}
