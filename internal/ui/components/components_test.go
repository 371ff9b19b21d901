package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/wisdomquest/internal/content"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestion() content.Question {
	return content.Question{
		Question: "哪一個是水果？",
		Options: []content.Option{
			{ID: "a", Text: "汽車"},
			{ID: "b", Text: "蘋果"},
			{ID: "c", Text: "鉛筆"},
		},
		CorrectOptionID: "b",
	}
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	m := NewMultiChoice(testQuestion())
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown}) // clamped
	assert.Equal(t, 2, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.True(t, m.Submitted)
	assert.Equal(t, "b", m.Chosen)
	assert.True(t, m.IsCorrect())

	// Input after submission is ignored.
	m, _ = m.Update(key('a'))
	assert.Equal(t, "b", m.Chosen)
}

func TestMultiChoice_LetterAndNumberKeys(t *testing.T) {
	m := NewMultiChoice(testQuestion())
	m, _ = m.Update(key('c'))
	assert.Equal(t, "c", m.Chosen)
	assert.False(t, m.IsCorrect())

	m = NewMultiChoice(testQuestion())
	m, _ = m.Update(key('1'))
	assert.Equal(t, "a", m.Chosen)

	m = NewMultiChoice(testQuestion())
	m, _ = m.Update(key('9'))
	assert.False(t, m.Submitted)
}

func TestMultiChoice_View(t *testing.T) {
	m := NewMultiChoice(testQuestion())
	view := m.View(strings.ToUpper)
	assert.Contains(t, view, "A)  汽車")
	assert.Contains(t, view, "▸ A)")
}

func TestMenu_SkipsDisabled(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{
		{Label: "locked", Disabled: true},
		{Label: "one", Action: func() tea.Cmd { called = true; return nil }},
		{Label: "also locked", Disabled: true},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, called)
}

func TestStarsAndHearts(t *testing.T) {
	assert.Contains(t, Stars(2, 3), "★★")
	assert.Contains(t, Stars(2, 3), "☆")
	assert.NotContains(t, Stars(5, 3), "☆")
	assert.Contains(t, Hearts(0, 3), "♡♡♡")
}
