// Package output provides styled terminal output for CLI tools built
// on casual.
//
// Functions use lipgloss for styling but abstract away the details
// from callers. Results print to stdout by default; SetOutput redirects
// them, which tests use to capture lines in a buffer.
package output
