// Package input acquires typed values interactively from the terminal.
//
// # Overview
//
// An Input is a small fluent builder: set a prompt, optionally a
// default and a validator, then call Get. The loop prompts, reads one
// line, parses it into the target type, and re-prompts on bad input
// until it has a value. Any type whose pointer implements
// encoding.TextUnmarshaler works, alongside the usual scalar kinds.
//
// # Usage
//
//	import "github.com/simonhull/casual/input"
//
//	// Ask for a typed value with a default
//	port := input.Prompt[int]("Port").Suffix(": ").Default(8080).Get()
//
//	// Validate before accepting
//	pct := input.Prompt[float64]("Coverage %: ").
//		Matches(func(f float64) bool { return f >= 0 && f <= 100 }).
//		Get()
//
//	// Ask a yes/no question
//	if input.Confirm("Run go mod tidy?") {
//		// User said yes
//	}
//
// # Blocking and errors
//
// Get blocks the calling goroutine until the user answers; there is no
// timeout or cancellation. Parse and validation failures print an
// advisory "Error:" line and retry indefinitely. A broken console
// (write, flush, or read failure, or end of input) is unrecoverable
// and panics.
//
// # Non-Interactive Mode
//
// In CI/CD or automated environments, bypass prompts with flags in
// your CLI and only fall through to this package when a value was not
// provided up front.
package input
