package input

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGet_ParsesTypedValue(t *testing.T) {
	var out bytes.Buffer

	v := New[int]().
		Prompt("Enter your guess").
		Suffix(": ").
		WithReader(strings.NewReader("42\n")).
		WithWriter(&out).
		Get()

	require.Equal(t, 42, v)
	require.Equal(t, "Enter your guess: ", out.String())
}

func TestGet_TrimsSurroundingWhitespace(t *testing.T) {
	v := New[int]().
		WithReader(strings.NewReader("  42  \n")).
		WithWriter(&bytes.Buffer{}).
		Get()

	require.Equal(t, 42, v)
}

func TestGet_DefaultBypassesValidator(t *testing.T) {
	// The validator rejects everything; the default must still win on
	// an empty line.
	v := New[int]().
		Default(7).
		Matches(func(int) bool { return false }).
		WithReader(strings.NewReader("\n")).
		WithWriter(&bytes.Buffer{}).
		Get()

	require.Equal(t, 7, v)
}

func TestGet_DefaultOnWhitespaceOnlyLine(t *testing.T) {
	v := New[string]().
		Default("fallback").
		WithReader(strings.NewReader("   \t  \n")).
		WithWriter(&bytes.Buffer{}).
		Get()

	require.Equal(t, "fallback", v)
}

func TestGet_EmptyLineWithoutDefaultRetriesSilently(t *testing.T) {
	var out bytes.Buffer

	v := New[int]().
		Prompt("n: ").
		WithReader(strings.NewReader("\n\n42\n")).
		WithWriter(&out).
		Get()

	require.Equal(t, 42, v)
	require.Equal(t, 3, strings.Count(out.String(), "n: "), "prompt shown once per attempt")
	require.NotContains(t, out.String(), "Error:")
}

func TestGet_ParseFailurePrintsErrorAndRetries(t *testing.T) {
	var out bytes.Buffer

	v := New[int]().
		WithReader(strings.NewReader("abc\n42\n")).
		WithWriter(&out).
		Get()

	require.Equal(t, 42, v)
	require.Equal(t, 1, strings.Count(out.String(), "Error:"))
	require.Contains(t, out.String(), "invalid syntax")
}

func TestGet_ValidatorFailurePrintsGenericError(t *testing.T) {
	var out bytes.Buffer

	v := New[int]().
		Matches(func(n int) bool { return n > 10 }).
		WithReader(strings.NewReader("3\n5\n11\n")).
		WithWriter(&out).
		Get()

	require.Equal(t, 11, v)
	require.Equal(t, 2, strings.Count(out.String(), "Error: invalid input\n"))
}

func TestGet_ComposedPromptReusedVerbatim(t *testing.T) {
	var out bytes.Buffer

	New[int]().
		Prefix("? ").
		Prompt("Pick a number").
		Suffix(" > ").
		WithReader(strings.NewReader("nope\n1\n")).
		WithWriter(&out).
		Get()

	require.Equal(t, 2, strings.Count(out.String(), "? Pick a number > "))
}

func TestGet_SettersOverwrite(t *testing.T) {
	v := New[string]().
		Prompt("first").
		Prompt("second").
		Default("one").
		Default("two").
		WithReader(strings.NewReader("\n")).
		WithWriter(&bytes.Buffer{}).
		Get()

	require.Equal(t, "two", v)
}

func TestMatches_LastValidatorWins(t *testing.T) {
	// The first validator would reject the input; only the second may
	// be consulted.
	v := New[int]().
		Matches(func(int) bool { return false }).
		Matches(func(int) bool { return true }).
		WithReader(strings.NewReader("5\n")).
		WithWriter(&bytes.Buffer{}).
		Get()

	require.Equal(t, 5, v)
}

func TestGet_PanicsOnEndOfInput(t *testing.T) {
	in := New[int]().
		WithReader(strings.NewReader("")).
		WithWriter(&bytes.Buffer{})

	require.Panics(t, func() { in.Get() })
}

func TestGet_PanicsOnEndOfInputAfterBadAttempts(t *testing.T) {
	in := New[int]().
		WithReader(strings.NewReader("abc\n")).
		WithWriter(&bytes.Buffer{})

	require.Panics(t, func() { in.Get() })
}

func TestGet_AcceptsFinalLineWithoutTerminator(t *testing.T) {
	v := New[int]().
		WithReader(strings.NewReader("42")).
		WithWriter(&bytes.Buffer{}).
		Get()

	require.Equal(t, 42, v)
}

func TestGet_NoPromptWritesNothing(t *testing.T) {
	var out bytes.Buffer

	New[string]().
		WithReader(strings.NewReader("hello\n")).
		WithWriter(&out).
		Get()

	require.Empty(t, out.String())
}

func TestGet_Duration(t *testing.T) {
	v := New[time.Duration]().
		WithReader(strings.NewReader("5m\n")).
		WithWriter(&bytes.Buffer{}).
		Get()

	require.Equal(t, 5*time.Minute, v)
}

func TestGet_PreservesInternalWhitespace(t *testing.T) {
	v := New[string]().
		WithReader(strings.NewReader("  hello world  \n")).
		WithWriter(&bytes.Buffer{}).
		Get()

	require.Equal(t, "hello world", v)
}

func TestCheck_AppliesPredicateOnce(t *testing.T) {
	calls := 0

	ok := New[int]().
		WithReader(strings.NewReader("5\n")).
		WithWriter(&bytes.Buffer{}).
		Check(func(n int) bool {
			calls++
			return n > 3
		})

	require.True(t, ok)
	require.Equal(t, 1, calls)
}

func TestCheck_FalseDoesNotRetry(t *testing.T) {
	// A failing Check predicate is not a validation failure; no retry,
	// no error line.
	var out bytes.Buffer

	ok := New[int]().
		WithReader(strings.NewReader("2\n99\n")).
		WithWriter(&out).
		Check(func(n int) bool { return n > 3 })

	require.False(t, ok)
	require.NotContains(t, out.String(), "Error:")
}

func TestGet_SequentialAcquisitionsShareBufferedReader(t *testing.T) {
	// Both answers are piped up front; the second acquisition must see
	// the line the first one's buffer read ahead of.
	r := bufio.NewReader(strings.NewReader("1\n2\n"))

	first := New[int]().WithReader(r).WithWriter(&bytes.Buffer{}).Get()
	second := New[int]().WithReader(r).WithWriter(&bytes.Buffer{}).Get()

	require.Equal(t, 1, first)
	require.Equal(t, 2, second)
}

func TestGet_ThenConfirmOverSharedReader(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("5\ny\n"))

	guess := New[int]().
		Prompt("Enter your guess: ").
		WithReader(r).
		WithWriter(&out).
		Get()

	require.Equal(t, 5, guess)
	require.True(t, confirm(r, &out, "Do you want to play again?", false))
}

func TestStyled_KeepsPromptTextVisible(t *testing.T) {
	var out bytes.Buffer

	New[string]().
		Prefix("? ").
		Prompt("Name").
		Suffix(": ").
		Styled().
		WithReader(strings.NewReader("bob\n")).
		WithWriter(&out).
		Get()

	require.Contains(t, out.String(), "Name")
	require.Contains(t, out.String(), "? ")
}
