package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Input accumulates the configuration for one interactive acquisition:
// prompt text, optional prefix/suffix decoration, an optional default
// value, and an optional validator. Setters chain and may be called in
// any order; each field keeps its last written value. The configuration
// is resolved by a terminal operation (Get or Check) which runs the
// read-parse-validate loop to completion.
//
// Example:
//
//	age := input.Prompt[int]("How old are you").
//		Suffix(": ").
//		Matches(func(n int) bool { return n >= 0 }).
//		Get()
type Input[T any] struct {
	prompt string
	prefix string
	suffix string
	def    *T
	valid  func(T) bool
	styled bool

	in  io.Reader
	out io.Writer
}

// stdin is the process-wide buffered reader behind every default
// configuration. Sharing one buffer matters: a buffered reader slurps
// ahead of the line it returns, so a fresh buffer per acquisition
// would drop the lines a previous one had already read.
var stdin = bufio.NewReader(os.Stdin)

// New creates an empty configuration reading from stdin and writing to
// stdout.
func New[T any]() *Input[T] {
	return &Input[T]{
		in:  stdin,
		out: os.Stdout,
	}
}

// Prompt creates a configuration with the given prompt text. Shorthand
// for New followed by the Prompt setter.
func Prompt[T any](text string) *Input[T] {
	return New[T]().Prompt(text)
}

// Prompt sets the text displayed before waiting for input. Overwrites
// any prior value.
func (in *Input[T]) Prompt(text string) *Input[T] {
	in.prompt = text
	return in
}

// Prefix sets text displayed before the prompt.
func (in *Input[T]) Prefix(text string) *Input[T] {
	in.prefix = text
	return in
}

// Suffix sets text displayed after the prompt.
func (in *Input[T]) Suffix(text string) *Input[T] {
	in.suffix = text
	return in
}

// Default sets the value returned when the user submits an empty line.
// The default bypasses any validator.
func (in *Input[T]) Default(v T) *Input[T] {
	in.def = &v
	return in
}

// Matches attaches a validator run against each successfully parsed
// value. Only one validator is active at a time; attaching another
// replaces it.
func (in *Input[T]) Matches(pred func(T) bool) *Input[T] {
	in.valid = pred
	return in
}

// WithReader replaces the input stream. Useful in tests.
func (in *Input[T]) WithReader(r io.Reader) *Input[T] {
	in.in = r
	return in
}

// WithWriter replaces the output stream the prompt and advisory error
// lines are written to. CLIs that print results on stdout typically
// prompt on stderr.
func (in *Input[T]) WithWriter(w io.Writer) *Input[T] {
	in.out = w
	return in
}

// Get resolves the configuration into a value of type T. It re-prompts
// until a line parses into T and passes the validator (if any); an
// empty line yields the default when one is set. Get only panics on
// console I/O failure (including end of input) — parse and validation
// failures print an advisory line and retry.
func (in *Input[T]) Get() T {
	v, err := in.get()
	if err != nil {
		panic(fmt.Sprintf("input: %v", err))
	}
	return v
}

// Check resolves the configuration with Get, then applies pred to the
// result exactly once. Unlike a Matches validator, pred does not cause
// a retry; it maps the resolved value to a boolean.
func (in *Input[T]) Check(pred func(T) bool) bool {
	return pred(in.Get())
}

func (in *Input[T]) get() (T, error) {
	var zero T

	// bufio.NewReader hands back a full-size *bufio.Reader unchanged,
	// so callers sharing one buffered reader across acquisitions keep
	// its look-ahead.
	reader := bufio.NewReader(in.in)
	prompt := in.composed()

	for {
		line, err := readLine(reader, in.out, prompt)
		if err != nil {
			return zero, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			if in.def != nil {
				return *in.def, nil
			}
			continue
		}

		v, err := Parse[T](line)
		if err != nil {
			fmt.Fprintf(in.out, "Error: %v\n", err)
			continue
		}

		if in.valid != nil && !in.valid(v) {
			fmt.Fprintln(in.out, "Error: invalid input")
			continue
		}

		return v, nil
	}
}

// readLine writes the prompt (when non-empty) without a trailing
// newline, flushes writers that support it, and reads one line. A line
// delivered together with EOF (missing terminator) is still returned;
// a bare EOF is an error.
func readLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(w, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
		if f, ok := w.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil {
				return "", fmt.Errorf("flush prompt: %w", err)
			}
		}
	}

	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return line, nil
}
