package menu

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Edit shows a single-line editor pre-filled with initial and returns
// the text as it stands when the user presses Enter. Unlike
// input.Prompt with a default, the initial value is visible and
// editable in place.
func Edit(prompt, initial string) (string, error) {
	p := tea.NewProgram(newEditModel(prompt, initial))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to show editor: %w", err)
	}

	m := final.(editModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.field.Value(), nil
}

type editModel struct {
	prompt    string
	field     textinput.Model
	done      bool
	cancelled bool
}

func newEditModel(prompt, initial string) editModel {
	field := textinput.New()
	field.SetValue(initial)
	field.CursorEnd()
	field.Focus()

	return editModel{
		prompt: prompt,
		field:  field,
	}
}

func (m editModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m editModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return selectedStyle.Render(m.prompt) + " " + m.field.View() + "\n"
}
