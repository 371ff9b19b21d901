package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wisdomquest/internal/content"
	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice is a multiple-choice selector over a question's options.
// Options can be picked with the arrow keys or by their letter or number.
type MultiChoice struct {
	Options  []content.Option
	Selected int

	// Submitted is set once an option was chosen; Chosen is its id.
	Submitted bool
	Chosen    string

	// Correct is revealed after submission.
	Correct string
}

// NewMultiChoice creates a selector for q.
func NewMultiChoice(q content.Question) MultiChoice {
	return MultiChoice{
		Options: q.Options,
		Correct: q.CorrectOptionID,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "left":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j", "right":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter":
		if len(m.Options) > 0 {
			m.submit(m.Selected)
		}
		return m, nil
	}

	if i, ok := m.indexForKey(key); ok {
		m.Selected = i
		m.submit(i)
	}
	return m, nil
}

func (m *MultiChoice) submit(i int) {
	m.Submitted = true
	m.Chosen = m.Options[i].ID
}

func (m MultiChoice) indexForKey(key string) (int, bool) {
	for i := range m.Options {
		if i >= len(choiceLabels) {
			break
		}
		if strings.EqualFold(key, choiceLabels[i]) || key == fmt.Sprint(i+1) {
			return i, true
		}
	}
	return 0, false
}

// View renders the options. text converts option text for display.
func (m MultiChoice) View(text func(string) string) string {
	var b strings.Builder
	for i, opt := range m.Options {
		label := fmt.Sprint(i + 1)
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, text(opt.Text))

		var style lipgloss.Style
		switch {
		case m.Submitted && opt.ID == m.Correct:
			style = theme.Correct
		case m.Submitted && opt.ID == m.Chosen:
			style = theme.Incorrect
		case m.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// IsCorrect returns true if the chosen option is the right one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Chosen == m.Correct
}
