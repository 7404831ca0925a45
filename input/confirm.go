package input

import (
	"io"
	"os"
	"strings"
)

// Confirm asks a yes/no question and returns the user's answer.
// The prompt is decorated with " [y/N] "; pressing Enter answers no.
// Only y/yes/n/no (any case) are accepted — anything else prints an
// advisory error and re-prompts.
//
// Example:
//
//	if !input.Confirm("Are you sure you want to continue?") {
//		os.Exit(1)
//	}
func Confirm(prompt string) bool {
	return confirm(stdin, os.Stdout, prompt, false)
}

// ConfirmDefault is Confirm with a configurable default: when
// defaultYes is true the decoration becomes " [Y/n] " and pressing
// Enter answers yes.
func ConfirmDefault(prompt string, defaultYes bool) bool {
	return confirm(stdin, os.Stdout, prompt, defaultYes)
}

func confirm(r io.Reader, w io.Writer, prompt string, defaultYes bool) bool {
	def, hint := "n", " [y/N] "
	if defaultYes {
		def, hint = "y", " [Y/n] "
	}

	return New[string]().
		Prompt(prompt).
		Suffix(hint).
		Default(def).
		Matches(isYesNo).
		WithReader(r).
		WithWriter(w).
		Check(isYes)
}

func isYesNo(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes", "n", "no":
		return true
	}
	return false
}

func isYes(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true
	}
	return false
}
