package typing

import (
	"strings"

	"autolang/common"
)

// Repr renders a resolved type using the names of the declarations it refers
// to: eg. `collections::Box<Number>[]`.
func (p *TypeRefPool) Repr(rt ResolvedType) string {
	sb := strings.Builder{}

	switch v := rt.(type) {
	case *TypeRefType:
		sb.WriteString(common.JoinPath(p.TypeRefs[v.Index].FullPath))

		if len(v.Generics) > 0 {
			sb.WriteRune('<')
			for i, g := range v.Generics {
				if i > 0 {
					sb.WriteString(", ")
				}

				sb.WriteString(p.Repr(g))
			}
			sb.WriteRune('>')
		}
	case *GenericType:
		sb.WriteString(p.TypeRefs[v.Owner].Generics[v.Slot].Name)
	case *PrimType:
		sb.WriteString(v.Kind.String())
	case nil:
		return "<none>"
	}

	sb.WriteString(strings.Repeat("[]", rt.Dim()))
	return sb.String()
}
