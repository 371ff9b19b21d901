package game

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wisdomquest/internal/content"
	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/progress"
	"github.com/abhisek/wisdomquest/internal/router"
	"github.com/abhisek/wisdomquest/internal/screens/env"
	"github.com/abhisek/wisdomquest/internal/session"
)

type stubLessons struct {
	lc  *content.LevelContent
	err error
}

func (s stubLessons) Generate(context.Context, content.Request) (*content.LevelContent, error) {
	return s.lc, s.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func esc() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEscape}
}

func lesson(n int) *content.LevelContent {
	qs := make([]content.Question, n)
	for i := range qs {
		qs[i] = content.Question{
			Question: "2 + 2 = ?",
			Options: []content.Option{
				{ID: "a", Text: "3"},
				{ID: "b", Text: "4"},
				{ID: "c", Text: "5"},
				{ID: "d", Text: "22"},
			},
			CorrectOptionID: "b",
			Explanation:     "二加二等於四",
		}
	}
	return &content.LevelContent{LessonTitle: "加(ㄐㄧㄚ)法(ㄈㄚˇ)", LessonText: "數一數", Questions: qs}
}

// setup puts a controller in PhaseLoading on MATH level 1 and returns the
// game screen for that entry.
func setup(t *testing.T, lessons content.Generator) (*env.Env, *GameScreen) {
	t.Helper()
	ctrl := session.New(progress.Default(), nil, session.Options{})
	e := env.New(ctrl, lessons, nil)
	require.NoError(t, ctrl.SelectSubject(curriculum.SubjectMath))
	ticket, err := ctrl.SelectLevel(1)
	require.NoError(t, err)
	return e, New(e, ticket)
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestGame_PlayThrough(t *testing.T) {
	e, g := setup(t, nil)
	assert.Equal(t, "森林試煉 1", g.Title())
	assert.Contains(t, g.View(100, 30), "數與計算大師")

	g.Update(env.LessonLoadedMsg{Ticket: g.ticket, Content: lesson(3)})
	require.Equal(t, session.PhaseGame, e.Session.Phase())
	assert.Contains(t, g.View(100, 30), "加")

	g.Update(enter())
	require.Equal(t, session.BattleQuiz, e.Session.Battle().Phase())

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		g.Update(keyPress('b'))
		require.Equal(t, session.BattleFeedback, e.Session.Battle().Phase())
		assert.Contains(t, g.View(100, 30), "答對了")
		_, cmd = g.Update(enter())
	}

	msg := runCmd(t, cmd)
	replace, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg, got %T", msg)
	rs, ok := replace.Screen.(*ResultScreen)
	require.True(t, ok)
	assert.Equal(t, 3, rs.result.Stars)
	assert.True(t, rs.result.UnlockedNext)

	assert.Equal(t, session.PhaseResult, e.Session.Phase())
	l2, _ := e.Session.Snapshot().Level(curriculum.SubjectMath, 2)
	assert.False(t, l2.IsLocked)
}

func TestGame_WrongAnswersEndBattle(t *testing.T) {
	e, g := setup(t, nil)
	g.Update(env.LessonLoadedMsg{Ticket: g.ticket, Content: lesson(8)})
	g.Update(enter())

	var cmd tea.Cmd
	for i := 0; i < session.MaxHearts; i++ {
		g.Update(keyPress('a'))
		assert.Contains(t, g.View(100, 30), "答錯了")
		_, cmd = g.Update(enter())
	}
	msg := runCmd(t, cmd)
	replace := msg.(router.ReplaceScreenMsg)
	rs := replace.Screen.(*ResultScreen)
	assert.Equal(t, 0, rs.result.Score)
	assert.Equal(t, 8, rs.result.Total)
	assert.Equal(t, 1, rs.result.Stars)
	assert.Equal(t, session.PhaseResult, e.Session.Phase())
}

func TestGame_StaleLessonIgnored(t *testing.T) {
	e, g := setup(t, nil)
	g.Update(env.LessonLoadedMsg{Ticket: "old", Content: lesson(1)})
	assert.Equal(t, session.PhaseLoading, e.Session.Phase())
}

func TestGame_LoadErrorReturnsToMap(t *testing.T) {
	e, g := setup(t, nil)
	_, cmd := g.Update(env.LessonLoadedMsg{Ticket: g.ticket, Err: errors.New("boom")})
	assert.IsType(t, router.PopScreenMsg{}, runCmd(t, cmd))
	assert.Equal(t, session.PhaseMap, e.Session.Phase())
}

func TestGame_EscWhileLoading(t *testing.T) {
	e, g := setup(t, stubLessons{lc: lesson(1)})
	_ = g.Init()

	_, cmd := g.Update(esc())
	assert.IsType(t, router.PopScreenMsg{}, runCmd(t, cmd))
	assert.Equal(t, session.PhaseMap, e.Session.Phase())
}

func TestGame_DegradedContentGoesBack(t *testing.T) {
	e, g := setup(t, nil)
	g.Update(env.LessonLoadedMsg{Ticket: g.ticket, Content: content.FallbackContent()})
	require.Equal(t, session.PhaseGame, e.Session.Phase())
	assert.Contains(t, g.View(100, 30), "回到地圖")

	_, cmd := g.Update(enter())
	assert.IsType(t, router.PopScreenMsg{}, runCmd(t, cmd))
	assert.Equal(t, session.PhaseMap, e.Session.Phase())
}

func TestGame_TogglePhonetics(t *testing.T) {
	e, g := setup(t, nil)
	g.Update(env.LessonLoadedMsg{Ticket: g.ticket, Content: lesson(1)})
	assert.Contains(t, g.View(100, 30), "ㄐㄧㄚ")

	g.Update(keyPress('z'))
	assert.False(t, e.Phonetics)
	assert.NotContains(t, g.View(100, 30), "ㄐㄧㄚ")
}

func TestLoadLesson_ReportsTicket(t *testing.T) {
	e, g := setup(t, stubLessons{lc: lesson(2)})
	cmd, cancel := e.LoadLesson(g.ticket, e.Session.Request())
	defer cancel()

	msg, ok := cmd().(env.LessonLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, g.ticket, msg.Ticket)
	assert.Len(t, msg.Content.Questions, 2)
	assert.NoError(t, msg.Err)
}

type ctxRecorder struct {
	hasDeadline bool
}

func (r *ctxRecorder) Generate(ctx context.Context, _ content.Request) (*content.LevelContent, error) {
	_, r.hasDeadline = ctx.Deadline()
	return lesson(1), nil
}

type blockingLessons struct{}

func (blockingLessons) Generate(ctx context.Context, _ content.Request) (*content.LevelContent, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestLoadLesson_LeavesDeadlineToGenerator(t *testing.T) {
	rec := &ctxRecorder{}
	e, g := setup(t, rec)
	cmd, cancel := e.LoadLesson(g.ticket, e.Session.Request())
	defer cancel()

	_, ok := cmd().(env.LessonLoadedMsg)
	require.True(t, ok)
	assert.False(t, rec.hasDeadline)
}

func TestLoadLesson_CancelAbandonsLoad(t *testing.T) {
	e, g := setup(t, blockingLessons{})
	cmd, cancel := e.LoadLesson(g.ticket, e.Session.Request())
	cancel()

	msg, ok := cmd().(env.LessonLoadedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, msg.Err, context.Canceled)
}

func TestResult_ReplayAndMap(t *testing.T) {
	e, g := setup(t, nil)
	g.Update(env.LessonLoadedMsg{Ticket: g.ticket, Content: lesson(1)})
	g.Update(enter())
	g.Update(keyPress('b'))
	_, cmd := g.Update(enter())
	rs := runCmd(t, cmd).(router.ReplaceScreenMsg).Screen.(*ResultScreen)
	assert.Contains(t, rs.View(100, 30), "太神啦")

	_, cmd = rs.Update(keyPress('r'))
	replay, ok := runCmd(t, cmd).(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &GameScreen{}, replay.Screen)
	assert.Equal(t, session.PhaseLoading, e.Session.Phase())
	assert.Equal(t, 1, e.Session.LevelID())

	g2 := replay.Screen.(*GameScreen)
	g2.Update(env.LessonLoadedMsg{Ticket: g2.ticket, Content: lesson(1)})
	g2.Update(enter())
	g2.Update(keyPress('a'))
	_, cmd = g2.Update(enter())
	rs2 := runCmd(t, cmd).(router.ReplaceScreenMsg).Screen.(*ResultScreen)
	assert.Equal(t, 3, rs2.result.BestStars)

	_, cmd = rs2.Update(keyPress('m'))
	assert.IsType(t, router.PopScreenMsg{}, runCmd(t, cmd))
	assert.Equal(t, session.PhaseMap, e.Session.Phase())
}
