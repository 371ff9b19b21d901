// Package game plays one level: it waits for the lesson, shows the story,
// runs the quiz battle and reports the result.
package game

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/router"
	"github.com/abhisek/wisdomquest/internal/screen"
	"github.com/abhisek/wisdomquest/internal/screens/env"
	"github.com/abhisek/wisdomquest/internal/session"
	"github.com/abhisek/wisdomquest/internal/ui/components"
	"github.com/abhisek/wisdomquest/internal/ui/layout"
	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

// GameScreen covers the loading, story and quiz phases of a level entry.
type GameScreen struct {
	env     *env.Env
	ticket  session.Ticket
	levelID int
	cancel  context.CancelFunc
	spinner spinner.Model
	choice  components.MultiChoice
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates the screen for the level entry identified by ticket.
func New(e *env.Env, ticket session.Ticket) *GameScreen {
	return &GameScreen{
		env:     e,
		ticket:  ticket,
		levelID: e.Session.LevelID(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Moon),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Gold)),
		),
	}
}

func (g *GameScreen) Init() tea.Cmd {
	load, cancel := g.env.LoadLesson(g.ticket, g.env.Session.Request())
	g.cancel = cancel
	return tea.Batch(g.spinner.Tick, load)
}

func (g *GameScreen) Title() string {
	return curriculum.LevelTitle(g.levelID)
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "回地圖"}}
	b := g.env.Session.Battle()
	if g.env.Session.Phase() != session.PhaseGame || b == nil {
		return hints
	}
	switch b.Phase() {
	case session.BattleStory:
		if b.CanStart() {
			hints = append([]layout.KeyHint{{Key: "Enter", Description: "開始挑戰"}}, hints...)
		}
	case session.BattleQuiz:
		hints = append([]layout.KeyHint{
			{Key: "A-D", Description: "作答"},
			{Key: "↑↓ Enter", Description: "選擇"},
		}, hints...)
	case session.BattleFeedback:
		hints = append([]layout.KeyHint{{Key: "Enter", Description: "繼續"}}, hints...)
	}
	return append(hints, layout.KeyHint{Key: "Z", Description: "注音"})
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if g.env.Session.Phase() != session.PhaseLoading {
			return g, nil
		}
		var cmd tea.Cmd
		g.spinner, cmd = g.spinner.Update(msg)
		return g, cmd

	case env.LessonLoadedMsg:
		return g.handleLoaded(msg)

	case tea.KeyPressMsg:
		return g.handleKey(msg)
	}
	return g, nil
}

func (g *GameScreen) handleLoaded(msg env.LessonLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Ticket != g.ticket {
		return g, nil
	}
	if msg.Err != nil {
		if err := g.env.Session.ContentFailed(msg.Ticket, msg.Err); err != nil {
			return g, nil
		}
		return g, popCmd
	}
	if err := g.env.Session.ContentLoaded(msg.Ticket, msg.Content); err != nil {
		g.env.Log.Debug("ignoring lesson", zap.Error(err))
	}
	return g, nil
}

func popCmd() tea.Msg {
	return router.PopScreenMsg{}
}

func (g *GameScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		return g, g.leave()
	case "z":
		g.env.TogglePhonetics()
		return g, nil
	}

	if g.env.Session.Phase() != session.PhaseGame {
		return g, nil
	}
	b := g.env.Session.Battle()
	if b == nil {
		return g, nil
	}

	switch b.Phase() {
	case session.BattleStory:
		if key != "enter" && key != "space" {
			return g, nil
		}
		if !b.CanStart() {
			return g, g.leave()
		}
		if err := b.Start(); err != nil {
			return g, nil
		}
		g.resetChoice(b)

	case session.BattleQuiz:
		g.choice, _ = g.choice.Update(msg)
		if g.choice.Submitted {
			if _, err := b.Answer(g.choice.Chosen); err != nil {
				g.env.Log.Warn("answer rejected", zap.Error(err))
			}
		}

	case session.BattleFeedback:
		if key != "enter" && key != "space" {
			return g, nil
		}
		done, err := b.Next()
		if err != nil {
			return g, nil
		}
		if done {
			return g, g.finish(b)
		}
		g.resetChoice(b)
	}
	return g, nil
}

func (g *GameScreen) resetChoice(b *session.Battle) {
	if q, ok := b.Question(); ok {
		g.choice = components.NewMultiChoice(q)
	}
}

func (g *GameScreen) finish(b *session.Battle) tea.Cmd {
	score, total := b.Result()
	res, err := g.env.Session.FinishLevel(context.Background(), score, total)
	if err != nil {
		return nil
	}
	next := NewResult(g.env, res)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// leave abandons the level and returns to the map.
func (g *GameScreen) leave() tea.Cmd {
	if g.cancel != nil {
		g.cancel()
	}
	if err := g.env.Session.ExitToMap(); err != nil {
		return nil
	}
	return popCmd
}

func (g *GameScreen) View(width, height int) string {
	if g.env.Session.Phase() == session.PhaseLoading {
		return g.renderLoading(width, height)
	}
	b := g.env.Session.Battle()
	if b == nil {
		return ""
	}
	switch b.Phase() {
	case session.BattleStory:
		return g.renderStory(width, height)
	case session.BattleFeedback:
		return g.renderFeedback(b, width, height)
	default:
		return g.renderQuiz(b, width, height)
	}
}
