package lower

import (
	"autolang/deps"
	"autolang/resolve"
	"autolang/sem"
	"autolang/syntax"
	"autolang/typing"
)

// Lowerer converts the syntax trees of a compilation unit into the typed IR.
// Lowering happens in five phases, each of which is a full pass over every
// type declaration of the unit:
//
//  1. register declarations
//  2. register (boundless) generic slots
//  3. register superclasses
//  4. register generic bounds
//  5. validate and lower members
//
// Each phase only relies on the pool state produced by the phases before it,
// which is what makes forward references between declarations possible.  The
// first error aborts lowering.
type Lowerer struct {
	unit     *deps.Unit
	pool     *typing.TypeRefPool
	members  *sem.MemberPool
	resolver *resolve.Resolver

	// decls holds the registered declarations in declaration order
	decls []*declInfo
}

// declInfo is a type declaration together with everything needed to process it
// in the later phases.
type declInfo struct {
	decl   *syntax.TypeDecl
	file   *deps.SourceFile
	origin resolve.Origin
	index  int
}

// Result is the output of lowering a unit
type Result struct {
	Root    *sem.TIRRoot
	Pool    *typing.TypeRefPool
	Members *sem.MemberPool
}

// Error is a lowering error along with the file it occurred in
type Error struct {
	File *deps.SourceFile
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewLowerer creates a new lowerer for unit.  If strategy is `nil`, the
// resolver's default path strategy is used.
func NewLowerer(unit *deps.Unit, strategy resolve.PathStrategy) *Lowerer {
	pool := typing.NewTypeRefPool()

	return &Lowerer{
		unit:     unit,
		pool:     pool,
		members:  sem.NewMemberPool(),
		resolver: resolve.NewResolver(pool, strategy),
	}
}

// Lower runs all the phases of lowering.  No result is produced if any phase
// fails.  The returned error is always an `*Error`.
func (l *Lowerer) Lower() (*Result, error) {
	phases := []func(*declInfo) error{
		l.registerGenerics,
		l.registerSuperClass,
		l.registerBounds,
	}

	if err := l.registerDecls(); err != nil {
		return nil, err
	}

	for _, phase := range phases {
		for _, info := range l.decls {
			if err := phase(info); err != nil {
				return nil, &Error{File: info.file, Err: err}
			}
		}
	}

	// the graph checks must see the complete superclass and bound graph before
	// anything walks it
	for _, check := range []func(*declInfo) error{l.checkSelfExtension, l.checkGraph} {
		for _, info := range l.decls {
			if err := check(info); err != nil {
				return nil, &Error{File: info.file, Err: err}
			}
		}
	}

	root := &sem.TIRRoot{}
	for _, info := range l.decls {
		if err := l.checkBounds(info); err != nil {
			return nil, &Error{File: info.file, Err: err}
		}

		tt, err := l.lowerType(info)
		if err != nil {
			return nil, &Error{File: info.file, Err: err}
		}

		root.Types = append(root.Types, tt)
	}

	return &Result{Root: root, Pool: l.pool, Members: l.members}, nil
}
