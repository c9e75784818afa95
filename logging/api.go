package logging

// logger is a global reference to a shared Logger (created/initialized with the
// compiler, but separated for general usage).  It starts out silent so that
// packages using it without a CLI (eg. tests) print nothing.
var logger = newLogger(LogLevelSilent)

// Initialize initializes the global logger with the provided log level
func Initialize(loglevelname string) {
	logger = newLogger(LogLevelFromName(loglevelname))
}

// LogLevelFromName converts the name of a log level to its enumerated value
func LogLevelFromName(loglevelname string) int {
	switch loglevelname {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		return LogLevelVerbose
	}
}

// ShouldProceed indicates whether or not the log module has encountered an errors.
// This is useful for sections of the compiler where multiple items are processed
// concurrently and having an error accumulator would be practical
func ShouldProceed() bool {
	logger.m.Lock()
	defer logger.m.Unlock()

	return logger.errorCount == 0
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogCompileError logs and a compilation error (user-induced, bad code)
func LogCompileError(lctx *LogContext, err *CompileError) {
	logger.handleMsg(&CompileMessage{
		Context: lctx,
		Err:     err,
		IsError: true,
	})
}

// LogCompileWarning logs a compilation warning (user-induced, problematic code)
func LogCompileWarning(lctx *LogContext, err *CompileError) {
	logger.handleMsg(&CompileMessage{
		Context: lctx,
		Err:     err,
		IsError: false,
	})
}

// LogConfigError logs an error related to project or compiler configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogBuildWarning logs a warning in the build process
func LogBuildWarning(kind, warning string) {
	logger.handleMsg(&BuildWarning{Kind: kind, Message: warning})
}

// LogFatal logs a fatal compilation error that was not expected: ie. the
// compiler did something it wasn't supposed to.
func LogFatal(message string) {
	logger.m.Lock()
	defer logger.m.Unlock()

	logger.errorCount++
	displayFatalError(message)
}

// -----------------------------------------------------------------------------

// LogCompileHeader displays the compiler header in verbose mode
func LogCompileHeader(unitName string) {
	if logger.LogLevel == LogLevelVerbose {
		displayCompileHeader(unitName)
	}
}

// LogBeginPhase begins a new compilation phase (verbose only)
func LogBeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		logger.m.Lock()
		defer logger.m.Unlock()

		displayBeginPhase(phase)
	}
}

// LogEndPhase ends the current compilation phase
func LogEndPhase() {
	if logger.LogLevel == LogLevelVerbose {
		logger.m.Lock()
		defer logger.m.Unlock()

		displayEndPhase(logger.errorCount == 0)
	}
}

// LogCompilationFinished displays all buffered warnings and the closing message
// of compilation.  It resets the error and warning counts so that the logger
// can be reused (eg. by watch mode).
func LogCompilationFinished() {
	logger.m.Lock()
	defer logger.m.Unlock()

	if logger.LogLevel >= LogLevelWarning {
		for _, warning := range logger.warnings {
			warning.display()
		}
	}

	if logger.LogLevel > LogLevelSilent {
		displayCompilationFinished(logger.errorCount == 0, logger.errorCount, len(logger.warnings))
	}

	logger.errorCount = 0
	logger.warnings = nil
}
