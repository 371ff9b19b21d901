package game

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/router"
	"github.com/abhisek/wisdomquest/internal/scoring"
	"github.com/abhisek/wisdomquest/internal/screen"
	"github.com/abhisek/wisdomquest/internal/screens/env"
	"github.com/abhisek/wisdomquest/internal/session"
	"github.com/abhisek/wisdomquest/internal/ui/components"
	"github.com/abhisek/wisdomquest/internal/ui/layout"
	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

// ResultScreen shows the stars earned on a level.
type ResultScreen struct {
	env      *env.Env
	result   session.Result
	selected int // 0 = replay, 1 = map
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// NewResult creates the result screen for res.
func NewResult(e *env.Env, res session.Result) *ResultScreen {
	return &ResultScreen{env: e, result: res, selected: 1}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return curriculum.LevelTitle(r.result.LevelID) + " 結算"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "再玩一次"},
		{Key: "M", Description: "回地圖"},
		{Key: "←→ Enter", Description: "選擇"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "left", "h", "up", "k":
		r.selected = 0
	case "right", "l", "down", "j":
		r.selected = 1
	case "r":
		return r, r.replay()
	case "m", "esc":
		return r, r.toMap()
	case "enter", "space":
		if r.selected == 0 {
			return r, r.replay()
		}
		return r, r.toMap()
	}
	return r, nil
}

func (r *ResultScreen) replay() tea.Cmd {
	ticket, err := r.env.Session.Restart()
	if err != nil {
		return nil
	}
	next := New(r.env, ticket)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (r *ResultScreen) toMap() tea.Cmd {
	if err := r.env.Session.ExitToMap(); err != nil {
		return nil
	}
	return popCmd
}

func (r *ResultScreen) View(width, height int) string {
	res := r.result
	cw := components.ContentWidth(width)

	stars := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.Stars(res.Stars, scoring.MaxStars))

	message := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(scoring.Message(res.Stars))

	score := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("答對 %d / %d 題 (%d%%)", res.Score, res.Total, scoring.Percent(res.Score, res.Total)))

	lines := []string{stars, message, score}
	if res.BestStars > res.Stars {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("最佳紀錄：%s", components.Stars(res.BestStars, scoring.MaxStars))))
	}
	if res.UnlockedNext {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Success).
			Render(fmt.Sprintf("🔓 解鎖了 %s！", curriculum.LevelTitle(res.LevelID+1))))
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		components.ArcadeButton("再玩一次", r.selected == 0, 14),
		"  ",
		components.ArcadeButton("回地圖", r.selected == 1, 14),
	)
	lines = append(lines, "", buttons)

	return components.CabinetFrame(strings.Join(lines, "\n\n"), width, height)
}
