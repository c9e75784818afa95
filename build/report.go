package build

import (
	"errors"

	"autolang/logging"
	"autolang/lower"
)

// reportError logs an error returned by lowering.  Lowering errors carry the
// file they occurred in; any other error is an internal error.
func reportError(err error) {
	var lerr *lower.Error
	var cerr *logging.CompileError

	if errors.As(err, &lerr) && errors.As(err, &cerr) {
		logging.LogCompileError(lerr.File.LogContext, cerr)
		return
	}

	logging.LogFatal(err.Error())
}
