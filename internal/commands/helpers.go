package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/simonhull/casual/input"
)

// askValue prompts for one value of the named type and returns its
// textual form. The default, when non-empty, must itself parse as the
// target type. Prompts go to w so answers can be printed elsewhere.
func askValue(r io.Reader, w io.Writer, typ, msg, def string) (string, error) {
	switch typ {
	case "", "string":
		return askTyped[string](r, w, msg, def)
	case "int":
		return askTyped[int64](r, w, msg, def)
	case "float":
		return askTyped[float64](r, w, msg, def)
	case "bool":
		return askTyped[bool](r, w, msg, def)
	case "duration":
		return askTyped[time.Duration](r, w, msg, def)
	default:
		return "", fmt.Errorf("unknown type %q (want string, int, float, bool, or duration)", typ)
	}
}

func askTyped[T any](r io.Reader, w io.Writer, msg, def string) (value string, err error) {
	// Get panics when the console breaks (closed stdin, for one).
	// At the CLI boundary that should surface as a one-line error,
	// not a stack trace.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()

	in := input.Prompt[T](msg).
		Suffix(": ").
		Styled().
		WithReader(r).
		WithWriter(w)

	if def != "" {
		d, err := input.Parse[T](def)
		if err != nil {
			return "", fmt.Errorf("invalid default %q: %w", def, err)
		}
		in.Default(d)
	}

	return fmt.Sprint(in.Get()), nil
}
