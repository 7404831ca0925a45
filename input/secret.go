package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Secret prompts for a line that should not be echoed back, such as a
// password or token. When stdin is a terminal the line is read with
// echo disabled; otherwise (pipes, CI) it falls back to a plain line
// read. The result is trimmed of surrounding whitespace.
func Secret(prompt string) (string, error) {
	return secret(int(os.Stdin.Fd()), stdin, os.Stdout, prompt)
}

func secret(fd int, in io.Reader, out io.Writer, prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(out, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}

	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		// ReadPassword swallows the terminator, so the cursor is
		// still on the prompt line.
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	// Like the acquisition loop, reuse the caller's buffered reader
	// rather than slurping ahead with a fresh one.
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimSpace(line), nil
}
