package resolve

import (
	"autolang/syntax"
)

// PathStrategy decides which absolute paths a (possibly relative) path may
// refer to.  The resolver tries the candidates in order and the first path
// found in the pool wins.
type PathStrategy interface {
	Candidates(origin Origin, path syntax.Path) []syntax.Path
}

// LexicalStrategy tries the path as written and then the path prefixed by the
// origin's module path, from the innermost module outwards.  In module
// `a::b`, the path `C` is tried as `C`, `a::b::C` and `a::C`.
type LexicalStrategy struct{}

func (LexicalStrategy) Candidates(origin Origin, path syntax.Path) []syntax.Path {
	candidates := make([]syntax.Path, 0, len(origin.Module)+1)
	candidates = append(candidates, path)

	for n := len(origin.Module); n > 0; n-- {
		candidates = append(candidates, concatPath(origin.Module[:n], path))
	}

	return candidates
}

// UseStrategy expands the first segment of a path through the origin's `use`
// paths before deferring to another strategy: after `use a::b::C`, the path
// `C::D` is first tried as `a::b::C::D`.
type UseStrategy struct {
	Inner PathStrategy
}

func (us UseStrategy) Candidates(origin Origin, path syntax.Path) []syntax.Path {
	var candidates []syntax.Path

	for _, use := range origin.Uses {
		if len(use) > 0 && use[len(use)-1] == path[0] {
			candidates = append(candidates, concatPath(use, path[1:]))
		}
	}

	return append(candidates, us.Inner.Candidates(origin, path)...)
}

// DefaultStrategy is the strategy used by the compiler: use aliases first and
// then lexical fallback.
func DefaultStrategy() PathStrategy {
	return UseStrategy{Inner: LexicalStrategy{}}
}

func concatPath(prefix, suffix syntax.Path) syntax.Path {
	full := make(syntax.Path, 0, len(prefix)+len(suffix))
	full = append(full, prefix...)
	return append(full, suffix...)
}
