package build

import (
	"fmt"
	"io"
	"strings"

	"autolang/common"
	"autolang/lower"
	"autolang/typing"

	"github.com/davecgh/go-spew/spew"
)

// dumpConfig is the spew configuration used to dump the TIR.  Pointer addresses
// are left out so dumps of the same program are identical.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a human readable dump of a lowering result: first a summary of
// the type pool and the member pool and then the full TIR.
func Dump(w io.Writer, res *lower.Result) {
	fmt.Fprintln(w, "-- Type Pool --")
	for i, tr := range res.Pool.TypeRefs {
		fmt.Fprintf(w, "%d: %s\n", i, describeTypeRef(res.Pool, tr))
	}

	fmt.Fprintln(w, "\n-- Fields --")
	for i, fr := range res.Members.Fields {
		fmt.Fprintf(w, "%d: %s.%s: %s\n", i, res.Pool.At(fr.Owner).Name(), fr.Name, res.Pool.Repr(fr.Type))
	}

	fmt.Fprintln(w, "\n-- Methods --")
	for i, mr := range res.Members.Methods {
		params := make([]string, len(mr.Params))
		for j, p := range mr.Params {
			params[j] = res.Pool.Repr(p)
		}

		fmt.Fprintf(
			w,
			"%d: %s.%s(%s): %s\n",
			i,
			res.Pool.At(mr.Owner).Name(),
			mr.Name,
			strings.Join(params, ", "),
			res.Pool.Repr(mr.Return),
		)
	}

	fmt.Fprintln(w, "\n-- TIR --")
	dumpConfig.Fdump(w, res.Root)
}

// describeTypeRef renders a pool entry as it would be declared
func describeTypeRef(pool *typing.TypeRefPool, tr *typing.TypeRef) string {
	sb := strings.Builder{}

	if ck, ok := tr.Kind.(*typing.ClassKind); ok && ck.IsAbstract {
		sb.WriteString("abstract ")
	}

	sb.WriteString("class ")
	sb.WriteString(common.JoinPath(tr.FullPath))

	if len(tr.Generics) > 0 {
		generics := make([]string, len(tr.Generics))
		for i, slot := range tr.Generics {
			generics[i] = slot.Name
			for _, req := range slot.SuperRequirements {
				generics[i] += ": " + pool.Repr(req)
			}
		}

		sb.WriteString("<" + strings.Join(generics, ", ") + ">")
	}

	if super, ok := tr.SuperClass(); ok {
		sb.WriteString(" : " + pool.Repr(super))
	}

	return sb.String()
}
