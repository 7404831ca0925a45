package menu

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user dismisses a widget without
// choosing.
var ErrCancelled = errors.New("cancelled")

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Select shows a keyboard-navigable list of choices and returns the
// index and text of the one the user picks.
//
// Example:
//
//	i, driver, err := menu.Select("Database driver", []string{"postgres", "sqlite", "none"})
func Select(title string, choices []string) (int, string, error) {
	if len(choices) == 0 {
		return 0, "", fmt.Errorf("no choices to select from")
	}

	p := tea.NewProgram(newSelectModel(title, choices))
	final, err := p.Run()
	if err != nil {
		return 0, "", fmt.Errorf("failed to show menu: %w", err)
	}

	m := final.(selectModel)
	if m.selected < 0 {
		return 0, "", ErrCancelled
	}
	return m.selected, choices[m.selected], nil
}

type selectModel struct {
	title    string
	choices  []string
	cursor   int
	selected int
}

func newSelectModel(title string, choices []string) selectModel {
	return selectModel{
		title:    title,
		choices:  choices,
		selected: -1,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}

		case "enter":
			m.selected = m.cursor
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title) + "\n\n")
	}

	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString(selectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("  " + choice + "\n")
		}
	}

	b.WriteString("\n" + mutedStyle.Render("[↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n")

	return b.String()
}
