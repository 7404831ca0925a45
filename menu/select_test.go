package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSelectModel_NavigateAndChoose(t *testing.T) {
	m := newSelectModel("Pick one", []string{"a", "b", "c"})

	next, _ := m.Update(key(tea.KeyDown))
	next, _ = next.(selectModel).Update(key(tea.KeyDown))
	next, _ = next.(selectModel).Update(key(tea.KeyEnter))

	require.Equal(t, 2, next.(selectModel).selected)
}

func TestSelectModel_CursorClampsAtEdges(t *testing.T) {
	m := newSelectModel("", []string{"a", "b"})

	next, _ := m.Update(key(tea.KeyUp))
	require.Equal(t, 0, next.(selectModel).cursor)

	next, _ = next.(selectModel).Update(key(tea.KeyDown))
	next, _ = next.(selectModel).Update(key(tea.KeyDown))
	next, _ = next.(selectModel).Update(key(tea.KeyDown))
	require.Equal(t, 1, next.(selectModel).cursor)
}

func TestSelectModel_VimKeys(t *testing.T) {
	m := newSelectModel("", []string{"a", "b"})

	next, _ := m.Update(runeKey('j'))
	require.Equal(t, 1, next.(selectModel).cursor)

	next, _ = next.(selectModel).Update(runeKey('k'))
	require.Equal(t, 0, next.(selectModel).cursor)
}

func TestSelectModel_QuitLeavesNothingSelected(t *testing.T) {
	m := newSelectModel("Pick one", []string{"a", "b"})

	next, cmd := m.Update(runeKey('q'))

	require.NotNil(t, cmd)
	require.Equal(t, -1, next.(selectModel).selected)
}

func TestSelectModel_ViewShowsChoicesAndCursor(t *testing.T) {
	m := newSelectModel("Pick one", []string{"alpha", "beta"})

	view := m.View()

	require.Contains(t, view, "Pick one")
	require.Contains(t, view, "> alpha")
	require.Contains(t, view, "  beta")
}

func TestSelect_EmptyChoices(t *testing.T) {
	_, _, err := Select("anything", nil)
	require.Error(t, err)
}

func TestEditModel_EnterKeepsInitialValue(t *testing.T) {
	m := newEditModel("Name", "bob")

	next, cmd := m.Update(key(tea.KeyEnter))

	require.NotNil(t, cmd)
	em := next.(editModel)
	require.True(t, em.done)
	require.Equal(t, "bob", em.field.Value())
}

func TestEditModel_EscCancels(t *testing.T) {
	m := newEditModel("Name", "bob")

	next, _ := m.Update(key(tea.KeyEsc))

	require.True(t, next.(editModel).cancelled)
}

func TestEditModel_TypingAppends(t *testing.T) {
	m := newEditModel("Name", "bo")

	next, _ := m.Update(runeKey('b'))

	require.Equal(t, "bob", next.(editModel).field.Value())
}
