package utils

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// DebugMode controls whether PrintDebug output is visible.
var DebugMode = false

// QuietMode controls whether verbose messages are suppressed (errors/warnings still shown)
var QuietMode = false

// projectPrefix is the standard tag for all logs.
const projectPrefix = "[jobcost]"

// ---------------------------------------------------------
// Color definitions (kept private so logic never uses raw colors)
// ---------------------------------------------------------

var (
	red       = color.New(color.FgRed).SprintFunc()
	redBold   = color.New(color.FgRed, color.Bold).SprintFunc()
	green     = color.New(color.FgGreen).SprintFunc()
	greenBold = color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
	blueBold  = color.New(color.FgBlue, color.Bold).SprintFunc()
	magenta   = color.New(color.FgMagenta).SprintFunc()
	cyan      = color.New(color.FgCyan).SprintFunc()
	gray      = color.New(color.FgWhite).SprintFunc()
	bold      = color.New(color.Bold).SprintFunc()
)

// ---------------------------------------------------------
// Semantic styles
// ---------------------------------------------------------

// StyleError formats critical failure messages (Red).
func StyleError(msg string) string { return red(msg) }

// StyleAlert formats urgent highlighted text (Red Bold).
func StyleAlert(msg string) string { return redBold(msg) }

// StyleSuccess formats success messages (Green).
func StyleSuccess(msg string) string { return green(msg) }

// StyleGood formats positive highlighted text (Green Bold).
func StyleGood(msg string) string { return greenBold(msg) }

// StyleWarning formats non-critical warnings (Yellow).
func StyleWarning(msg string) string { return yellow(msg) }

// StyleHint formats helpful tips or suggestions (Cyan).
func StyleHint(msg string) string { return cyan(msg) }

// StyleNote formats neutral notes or annotations (Magenta).
func StyleNote(msg string) string { return magenta(msg) }

// StyleDebug formats low-level technical info (Gray).
func StyleDebug(msg string) string { return gray(msg) }

// StyleTitle formats section headers (Bold).
func StyleTitle(title string) string { return bold(title) }

// StyleName formats names or identifiers (Yellow).
func StyleName(name string) string { return yellow(name) }

// StyleValue formats resource values and cost figures (Blue Bold).
func StyleValue(v interface{}) string {
	return blueBold(fmt.Sprintf("%v", v))
}

// StyleQueue formats queue names (Bold).
func StyleQueue(name string) string { return bold(name) }

// ---------------------------------------------------------
// Log printers
// ---------------------------------------------------------

// PrintMessage prints a standard info message.
// Output: [jobcost] Message...
func PrintMessage(format string, a ...interface{}) {
	if QuietMode {
		return
	}
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintf(os.Stdout, "%s %s\n", projectPrefix, msg)
}

// PrintSuccess prints a success message with a Green tag.
func PrintSuccess(format string, a ...interface{}) {
	if QuietMode {
		return
	}
	msg := fmt.Sprintf(format, a...)
	tag := StyleSuccess("[PASS]")
	fmt.Fprintf(os.Stdout, "%s%s %s\n", projectPrefix, tag, msg)
}

// PrintError prints an error message with a Red tag to Stderr.
func PrintError(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	tag := StyleError("[ERR] ")
	fmt.Fprintf(os.Stderr, "%s%s %s\n", projectPrefix, tag, msg)
}

// PrintWarning prints a warning with a Yellow tag to Stderr.
func PrintWarning(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	tag := StyleWarning("[WARN]")
	fmt.Fprintf(os.Stderr, "%s%s %s\n", projectPrefix, tag, msg)
}

// PrintHint prints a helpful hint with a Cyan tag.
func PrintHint(format string, a ...interface{}) {
	if QuietMode {
		return
	}
	msg := fmt.Sprintf(format, a...)
	tag := StyleHint("[HINT]")
	fmt.Fprintf(os.Stdout, "%s%s %s\n", projectPrefix, tag, msg)
}

// PrintDebug prints a debug message with a Gray tag (only if DebugMode is true).
func PrintDebug(format string, a ...interface{}) {
	if DebugMode {
		msg := fmt.Sprintf(format, a...)
		tag := StyleDebug("[DBG] ")
		fmt.Fprintf(os.Stderr, "%s%s %s\n", projectPrefix, tag, msg)
	}
}

// ---------------------------------------------------------
// Terminal detection
// ---------------------------------------------------------

// IsInteractiveShell checks if stdout is connected to a TTY (interactive terminal).
func IsInteractiveShell() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
