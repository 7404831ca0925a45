// Package menu provides small interactive terminal widgets built on
// Bubble Tea: a cursor-driven selection list and a pre-filled
// single-line editor.
//
// Both widgets take over the terminal for their lifetime and return
// ErrCancelled when the user backs out with q, esc, or ctrl+c. They
// complement package input, which handles plain line-oriented prompts.
package menu
