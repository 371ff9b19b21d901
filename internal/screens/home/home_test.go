package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/progress"
	"github.com/abhisek/wisdomquest/internal/router"
	"github.com/abhisek/wisdomquest/internal/screens/env"
	"github.com/abhisek/wisdomquest/internal/screens/levelmap"
	"github.com/abhisek/wisdomquest/internal/session"
)

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newHome(snap progress.Snapshot, offline bool) (*env.Env, *HomeScreen) {
	e := env.New(session.New(snap, nil, session.Options{}), nil, nil)
	return e, New(e, offline)
}

func TestHome_SelectSubjectPushesMap(t *testing.T) {
	e, h := newHome(progress.Default(), false)

	// Display order starts with CHINESE, then MATH.
	h.Update(special(tea.KeyDown))
	_, cmd := h.Update(special(tea.KeyEnter))
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &levelmap.MapScreen{}, push.Screen)
	assert.Equal(t, session.PhaseMap, e.Session.Phase())
	assert.Equal(t, curriculum.SubjectMath, e.Session.Subject())
}

func TestHome_ExitItemQuits(t *testing.T) {
	_, h := newHome(progress.Default(), false)
	for i := 0; i < 10; i++ {
		h.Update(special(tea.KeyDown))
	}
	assert.Equal(t, len(curriculum.AllSubjects()), h.menu.Selected)

	_, cmd := h.Update(special(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHome_StatsAndMascot(t *testing.T) {
	snap := progress.ApplyResult(progress.Default(), curriculum.SubjectLife, 1, 3)
	_, h := newHome(snap, true)

	stats, total, cleared := h.stats()
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, cleared)
	assert.Equal(t, MascotHappy, mascotFor(stats, total))

	view := h.View(120, 40)
	assert.Contains(t, view, "GEMINI_API_KEY")
	assert.Contains(t, view, "★ 3")
}

func TestMascotFor(t *testing.T) {
	assert.Equal(t, MascotIdle, mascotFor(nil, 0))
	stats := []subjectStat{{Subject: curriculum.SubjectMath, Stars: 40, Unlocked: curriculum.LevelCount}}
	assert.Equal(t, MascotCelebrating, mascotFor(stats, 40))
}
