package build

import (
	"os"

	"autolang/deps"
	"autolang/logging"
	"autolang/lower"
	"autolang/mods"
	"autolang/resolve"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of the Auto front-end for one module
type Compiler struct {
	// mod is the module being built
	mod *mods.AutoModule

	// strategy is the path strategy used for name resolution
	strategy resolve.PathStrategy

	// result is the result of the last successful analysis
	result *lower.Result
}

// NewCompiler creates a new compiler for a given module
func NewCompiler(mod *mods.AutoModule) *Compiler {
	return &Compiler{
		mod:      mod,
		strategy: resolve.DefaultStrategy(),
	}
}

// Compile runs the full front-end on the module and reports the outcome.  If
// the module asks for it, the type pool and TIR are dumped to standard out.  It
// returns a boolean indicating whether or not compilation succeeded.
func (c *Compiler) Compile() bool {
	logging.LogCompileHeader(c.mod.Name)

	ok := c.Analyze()
	if ok && c.mod.Dump {
		Dump(os.Stdout, c.result)
	}

	logging.LogCompilationFinished()
	return ok
}

// Analyze loads and lowers the module without printing a header or summary.
// It handles all errors appropriately.  It returns a boolean indicating whether
// or not analysis was successful.
func (c *Compiler) Analyze() bool {
	c.result = nil

	logging.LogBeginPhase("Loading")
	unit, ok := c.initUnit()
	logging.LogEndPhase()
	if !ok {
		return false
	}

	logging.LogBeginPhase("Lowering")
	res, ok := lowerUnit(unit, c.strategy)
	logging.LogEndPhase()
	if !ok {
		return false
	}

	c.result = res
	return logging.ShouldProceed()
}

// Result returns the result of the last successful analysis or `nil` if the
// last analysis failed.
func (c *Compiler) Result() *lower.Result {
	return c.result
}

// lowerUnit lowers a unit and reports the error if lowering fails
func lowerUnit(unit *deps.Unit, strategy resolve.PathStrategy) (*lower.Result, bool) {
	res, err := lower.NewLowerer(unit, strategy).Lower()
	if err != nil {
		reportError(err)
		return nil, false
	}

	return res, true
}
