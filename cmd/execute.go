package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"autolang/build"
	"autolang/common"
	"autolang/logging"
	"autolang/mods"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `autoc` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("autoc", "autoc checks and lowers Auto syntax trees", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})

	buildCmd := cli.AddSubcommand("build", "check a module and lower it to TIR", true)
	buildCmd.AddPrimaryArg("module-path", "the path to the module to build", true)

	checkCmd := cli.AddSubcommand("check", "check a single syntax tree file", true)
	checkCmd.AddPrimaryArg("file-path", "the path to the syntax tree file", true)

	dumpCmd := cli.AddSubcommand("dump", "print the type pool and TIR of a module", true)
	dumpCmd.AddPrimaryArg("module-path", "the path to the module to dump", true)

	watchCmd := cli.AddSubcommand("watch", "rebuild a module whenever its sources change", true)
	watchCmd.AddPrimaryArg("module-path", "the path to the module to watch", true)

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddStringArg("name", "n", "the name of the module", false)
	modInitCmd.AddPrimaryArg("module-path", "the path to the module directory", true)

	cli.AddSubcommand("version", "print the Auto compiler version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	loglevel := ""
	if lvl, ok := result.Arguments["loglevel"]; ok {
		loglevel = lvl.(string)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, loglevel)
	case "check":
		execCheckCommand(subResult, loglevel)
	case "dump":
		execDumpCommand(subResult, loglevel)
	case "watch":
		execWatchCommand(subResult, loglevel)
	case "mod":
		execModCommand(subResult)
	case "version":
		logging.PrintInfoMessage("Auto Version", common.AutoVersion)
	}
}

// execBuildCommand executes the build subcommand and handles all errors
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	mod, ok := loadModule(result, loglevel)
	if !ok {
		return
	}

	if !build.NewCompiler(mod).Compile() {
		os.Exit(1)
	}
}

// execCheckCommand checks one syntax tree file outside of any module
func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	path, _ := result.PrimaryArg()
	logging.Initialize(loglevel)

	ok, err := build.CheckFile(path)
	if err != nil {
		logging.PrintErrorMessage("Syntax Error", err)
		os.Exit(1)
	}

	logging.LogCompilationFinished()
	if !ok {
		os.Exit(1)
	}
}

// execDumpCommand analyzes a module and dumps the result regardless of the
// module's `dump` setting
func execDumpCommand(result *olive.ArgParseResult, loglevel string) {
	// the dump is the output so the log is quiet unless asked otherwise
	if loglevel == "" {
		loglevel = "error"
	}

	mod, ok := loadModule(result, loglevel)
	if !ok {
		return
	}

	c := build.NewCompiler(mod)
	if !c.Analyze() {
		logging.LogCompilationFinished()
		os.Exit(1)
	}

	build.Dump(os.Stdout, c.Result())
}

// execWatchCommand runs the compiler in watch mode until interrupted
func execWatchCommand(result *olive.ArgParseResult, loglevel string) {
	mod, ok := loadModule(result, loglevel)
	if !ok {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := build.Watch(ctx, mod, nil); err != nil {
		logging.PrintErrorMessage("Watch Error", err)
	}
}

// execModCommand executes the `mod` subcommand and its subcommands.  It handles
// all errors related to this command
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()

	switch subcmdName {
	case "init":
		modRelPath, _ := subResult.PrimaryArg()
		modPath, err := filepath.Abs(modRelPath)
		if err != nil {
			logging.PrintErrorMessage("Path Error", err)
			return
		}

		// the module is named after its directory unless told otherwise
		name := filepath.Base(modPath)
		if nameArg, ok := subResult.Arguments["name"]; ok {
			name = nameArg.(string)
		}

		if err := mods.InitModule(name, modPath); err != nil {
			logging.PrintErrorMessage("Module Init Error", err)
			return
		}

		logging.PrintInfoMessage("Module Created", filepath.Join(modPath, common.ModuleFileName))
	}
}

// -----------------------------------------------------------------------------

// loadModule loads the module named by the primary argument of result and
// initializes the logger.  If no log level was given on the command line, the
// module's own log level is used.
func loadModule(result *olive.ArgParseResult, loglevel string) (*mods.AutoModule, bool) {
	relPath, _ := result.PrimaryArg()

	absPath, err := filepath.Abs(relPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return nil, false
	}

	// a path inside a module is accepted as well
	root, err := mods.FindModuleRoot(absPath)
	if err != nil {
		logging.PrintErrorMessage("Module Load Error", err)
		return nil, false
	}

	mod, err := mods.LoadModule(root)
	if err != nil {
		logging.PrintErrorMessage("Module Load Error", err)
		return nil, false
	}

	if loglevel == "" {
		loglevel = mod.LogLevel
	}

	logging.Initialize(loglevel)
	return mod, true
}
