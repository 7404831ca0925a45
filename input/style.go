package input

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Styled renders the prompt with lipgloss when the configuration is
// resolved: the prompt text in cyan and bold, the prefix and suffix in
// gray. Unstyled configurations write the composed prompt verbatim.
func (in *Input[T]) Styled() *Input[T] {
	in.styled = true
	return in
}

// composed derives the full prompt text, prefix + prompt + suffix. It
// is computed once per terminal operation and reused verbatim across
// retries.
func (in *Input[T]) composed() string {
	if !in.styled {
		return in.prefix + in.prompt + in.suffix
	}

	var b strings.Builder
	if in.prefix != "" {
		b.WriteString(hintStyle.Render(in.prefix))
	}
	if in.prompt != "" {
		b.WriteString(promptStyle.Render(in.prompt))
	}
	if in.suffix != "" {
		b.WriteString(hintStyle.Render(in.suffix))
	}
	return b.String()
}
