// Package levelmap shows the twenty levels of a subject grouped by zone.
package levelmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/progress"
	"github.com/abhisek/wisdomquest/internal/router"
	"github.com/abhisek/wisdomquest/internal/scoring"
	"github.com/abhisek/wisdomquest/internal/screen"
	"github.com/abhisek/wisdomquest/internal/screens/env"
	"github.com/abhisek/wisdomquest/internal/screens/game"
	"github.com/abhisek/wisdomquest/internal/ui/components"
	"github.com/abhisek/wisdomquest/internal/ui/layout"
	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

const cellWidth = 9

// MapScreen is the level map of the current subject.
type MapScreen struct {
	env    *env.Env
	cursor int // level id
	notice string
}

var _ screen.Screen = (*MapScreen)(nil)
var _ screen.KeyHintProvider = (*MapScreen)(nil)

// New creates a MapScreen with the cursor on the newest unlocked level.
func New(e *env.Env) *MapScreen {
	m := &MapScreen{env: e, cursor: 1}
	for _, l := range e.Session.Levels() {
		if !l.IsLocked {
			m.cursor = l.ID
		}
	}
	return m
}

func (m *MapScreen) Init() tea.Cmd {
	return nil
}

func (m *MapScreen) Title() string {
	return curriculum.Info(m.env.Session.Subject()).Name + " 冒險地圖"
}

func (m *MapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "移動"},
		{Key: "Enter", Description: "進入關卡"},
		{Key: "Esc", Description: "回首頁"},
	}
}

func (m *MapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		// Results of abandoned loads land here and are dropped.
		return m, nil
	}

	m.notice = ""
	switch kmsg.String() {
	case "left", "h":
		m.move(-1)
	case "right", "l":
		m.move(1)
	case "up", "k":
		m.move(-curriculum.LevelsPerChapter)
	case "down", "j":
		m.move(curriculum.LevelsPerChapter)
	case "esc":
		if err := m.env.Session.ExitToHome(); err != nil {
			return m, nil
		}
		return m, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter", "space":
		return m, m.enter()
	}
	return m, nil
}

func (m *MapScreen) move(delta int) {
	next := m.cursor + delta
	if curriculum.ValidLevel(next) {
		m.cursor = next
	}
}

func (m *MapScreen) enter() tea.Cmd {
	lvl, ok := m.env.Session.Snapshot().Level(m.env.Session.Subject(), m.cursor)
	if !ok {
		return nil
	}
	if lvl.IsLocked {
		m.notice = "🔒 這一關還沒解鎖，先通過前面的關卡吧！"
		return nil
	}
	ticket, err := m.env.Session.SelectLevel(m.cursor)
	if err != nil {
		m.notice = err.Error()
		return nil
	}
	next := game.New(m.env, ticket)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// Cursor returns the highlighted level id.
func (m *MapScreen) Cursor() int {
	return m.cursor
}

func (m *MapScreen) View(width, height int) string {
	subject := m.env.Session.Subject()
	levels := m.env.Session.Levels()
	accent := theme.SubjectColor(subject)

	var rows []string
	for zi, zone := range curriculum.Zones() {
		header := lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Render(fmt.Sprintf("%s %s  %s", zone.Icon, zone.Name, curriculum.Info(subject).Chapters[zi]))

		var cells []string
		for s := 1; s <= curriculum.LevelsPerChapter; s++ {
			id := zi*curriculum.LevelsPerChapter + s
			if id-1 < len(levels) {
				cells = append(cells, m.renderCell(levels[id-1]))
			}
		}
		rows = append(rows, header+"\n"+lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var footer []string
	footer = append(footer, theme.Hint.Render(curriculum.Topic(subject, m.cursor)))
	if m.notice != "" {
		footer = append(footer, lipgloss.NewStyle().Foreground(theme.Accent).Render(m.notice))
	}

	body := strings.Join(rows, "\n") + "\n\n" + strings.Join(footer, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (m *MapScreen) renderCell(l progress.Level) string {
	style := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder())

	var label string
	if l.IsLocked {
		label = theme.Locked.Render(fmt.Sprintf("🔒%d", l.ID)) + "\n" + theme.Locked.Render("···")
		style = style.BorderForeground(theme.Border)
	} else {
		label = fmt.Sprintf("%d", l.ID) + "\n" + components.Stars(l.Stars, scoring.MaxStars)
		style = style.BorderForeground(theme.Secondary)
	}
	if l.ID == m.cursor {
		style = style.BorderForeground(theme.Gold).Bold(true)
	}
	return style.Render(label)
}
