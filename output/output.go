package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	stdout      io.Writer = os.Stdout
	verboseMode bool
)

// SetOutput redirects all output functions to w. Tests use this to
// capture output in a buffer.
func SetOutput(w io.Writer) {
	stdout = w
}

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a completed-operation message in green.
func Success(msg string) {
	fmt.Fprintln(stdout, successStyle.Render("✓ "+msg))
}

// Error prints a failure message in red.
func Error(msg string) {
	fmt.Fprintln(stdout, errorStyle.Render("✗ "+msg))
}

// Info prints a status update or explanation in cyan.
func Info(msg string) {
	fmt.Fprintln(stdout, infoStyle.Render("ℹ "+msg))
}

// Step prints an indented sub-item in gray. Use this for actionable
// next steps.
//
// Example:
//
//	output.Step("cd myapp")
//	output.Step("go mod tidy")
func Step(msg string) {
	fmt.Fprintln(stdout, stepStyle.Render("  "+msg))
}

// Verbose prints a debug message only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(stdout, stepStyle.Render("· "+msg))
	}
}
