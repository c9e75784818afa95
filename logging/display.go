package logging

import (
	"autolang/common"
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------
// This section contains all the display functions for the different kinds of
// messages that can be logged -- these functions are called to print the
// message to the screen.

func (ce *ConfigError) display() {
	PrintErrorMessage(ce.Kind+" Error", errors.New(ce.Message))
}

func (bw *BuildWarning) display() {
	PrintWarningMessage(bw.Kind+" Warning", bw.Message)
}

func (cm *CompileMessage) display() {
	cm.displayBanner()
	fmt.Println(cm.Err.Message)

	if cm.Err.Position != nil && cm.Context != nil && cm.Context.SourcePath != "" {
		cm.displayCodeSelection()
	}
}

// displayBanner displays the banner on top of all compilation messages
func (cm *CompileMessage) displayBanner() {
	fmt.Print("\n\n-- ")
	kindStr := cm.Err.Kind.String()
	kindLen := len(kindStr)
	if cm.isError() {
		ErrorStyleBG.Print(kindStr + " Error")
		kindLen += 7
	} else {
		WarnStyleBG.Print(kindStr + " Warning")
		kindLen += 9
	}

	fmt.Print(" ")

	fileName := ""
	if cm.Context != nil {
		fileName = filepath.Base(cm.Context.FilePath)
	}

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 2 {
		dashCount = 2
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)

	if pos := cm.Err.Position; pos != nil {
		fmt.Printf("at %d:%d\n", pos.StartLn, pos.StartCol+1)
	}
}

// displayCodeSelection displays the erroneous code (with line numbers) and
// highlights the appropriate sections.  Syntax trees are not required to come
// with their source text so a missing source file is not an error.
func (cm *CompileMessage) displayCodeSelection() {
	pos := cm.Err.Position
	if pos.EndLn < pos.StartLn {
		return
	}

	f, err := os.Open(cm.Context.SourcePath)
	if err != nil {
		return
	}
	defer f.Close()

	// read the file line by line until we encounter the selected lines; capture
	// the lines first so we can determine how much whitespace to trim before
	// printing
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanLines)
	lines := make([]string, pos.EndLn-pos.StartLn+1)
	for lineNumber := 1; sc.Scan(); lineNumber++ {
		if lineNumber >= pos.StartLn && lineNumber <= pos.EndLn {
			lines[lineNumber-pos.StartLn] = strings.ReplaceAll(sc.Text(), "\t", "    ")
		}
	}

	fmt.Println()

	// calculate whitespace to trim
	minWhitespace := -1
	for _, line := range lines {
		leadingWhitespace := len(line) - len(strings.TrimLeft(line, " "))
		if minWhitespace == -1 || minWhitespace > leadingWhitespace {
			minWhitespace = leadingWhitespace
		}
	}

	// calculate the amount to pad line numbers by and use it to build a padding
	// format string (so we can use it to print out line numbers neatly)
	maxLineNumberWidth := len(strconv.Itoa(pos.EndLn)) + 1
	lineNumberFmtStr := "%-" + strconv.Itoa(maxLineNumberWidth) + "v"

	for i, line := range lines {
		InfoColorFG.Print(fmt.Sprintf(lineNumberFmtStr, i+pos.StartLn))
		fmt.Print("|  ")
		fmt.Println(line[minWhitespace:])

		// print the carrets
		fmt.Print(strings.Repeat(" ", maxLineNumberWidth), "|  ")

		start := 0
		if i == 0 {
			start = pos.StartCol - minWhitespace
		}

		end := len(line) - minWhitespace
		if i == len(lines)-1 {
			end = pos.EndCol - minWhitespace
		}

		if start < 0 {
			start = 0
		}

		if end <= start {
			end = start + 1
		}

		fmt.Print(strings.Repeat(" ", start))
		ErrorColorFG.Println(strings.Repeat("^", end-start))
	}

	fmt.Println()
}

const fatalErrorPostlude = `
This is likely a bug in the compiler.
Please open an issue with the syntax tree that caused it.`

func displayFatalError(msg string) {
	fmt.Print("\n\n")
	ErrorStyleBG.Print("Fatal Error ")
	ErrorColorFG.Println(msg)
	InfoColorFG.Println(fatalErrorPostlude)
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays all the compiler information before starting compilation
func displayCompileHeader(unitName string) {
	fmt.Print("autoc ")
	InfoColorFG.Print("v" + common.AutoVersion)
	fmt.Print(" -- unit: ")
	InfoColorFG.Println(unitName)
}

// phaseSpinner stores the current phase spinner
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Validating")

// displayBeginPhase displays the beginning of a compilation phase
func displayBeginPhase(phase string) {
	displayEndPhase(true)

	currentPhase = phase
	padding := maxPhaseLength - len(phase) + 2
	if padding < 1 {
		padding = 1
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	spinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	spinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner, _ = spinner.Start(phase + "..." + strings.Repeat(" ", padding))
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a compilation phase
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		padding := maxPhaseLength - len(currentPhase) + 2
		if padding < 1 {
			padding = 1
		}

		if success {
			phaseSpinner.Success(
				currentPhase+strings.Repeat(" ", padding),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + strings.Repeat(" ", padding))
		}

		phaseSpinner = nil
	}
}

// displayCompilationFinished displays a compilation finished message
func displayCompilationFinished(success bool, errorCount, warningCount int) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Print(" errors, ")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Print(" error, ")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Print(" errors, ")
	}

	switch warningCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Println(" warnings)")
	case 1:
		WarnColorFG.Print(1)
		fmt.Println(" warning)")
	default:
		WarnColorFG.Print(warningCount)
		fmt.Println(" warnings)")
	}
}
