package levelmap

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/progress"
	"github.com/abhisek/wisdomquest/internal/router"
	"github.com/abhisek/wisdomquest/internal/screens/env"
	"github.com/abhisek/wisdomquest/internal/screens/game"
	"github.com/abhisek/wisdomquest/internal/session"
)

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newMap(t *testing.T, snap progress.Snapshot) (*env.Env, *MapScreen) {
	t.Helper()
	ctrl := session.New(snap, nil, session.Options{})
	require.NoError(t, ctrl.SelectSubject(curriculum.SubjectChinese))
	e := env.New(ctrl, nil, nil)
	return e, New(e)
}

func TestMap_CursorStartsOnNewestUnlocked(t *testing.T) {
	snap := progress.ApplyResult(progress.Default(), curriculum.SubjectChinese, 1, 2)
	snap = progress.ApplyResult(snap, curriculum.SubjectChinese, 2, 3)
	_, m := newMap(t, snap)
	assert.Equal(t, 3, m.Cursor())
}

func TestMap_Navigation(t *testing.T) {
	_, m := newMap(t, progress.Default())
	m.Update(special(tea.KeyDown))
	assert.Equal(t, 6, m.Cursor())
	m.Update(special(tea.KeyRight))
	assert.Equal(t, 7, m.Cursor())
	m.Update(special(tea.KeyUp))
	m.Update(special(tea.KeyUp)) // stays on the map
	assert.Equal(t, 2, m.Cursor())
	m.Update(special(tea.KeyLeft))
	m.Update(special(tea.KeyLeft))
	assert.Equal(t, 1, m.Cursor())
}

func TestMap_LockedLevelShowsNotice(t *testing.T) {
	e, m := newMap(t, progress.Default())
	m.Update(special(tea.KeyRight))
	_, cmd := m.Update(special(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, session.PhaseMap, e.Session.Phase())
	assert.Contains(t, m.View(100, 30), "還沒解鎖")
}

func TestMap_EnterUnlockedLevel(t *testing.T) {
	e, m := newMap(t, progress.Default())
	_, cmd := m.Update(special(tea.KeyEnter))
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &game.GameScreen{}, push.Screen)
	assert.Equal(t, session.PhaseLoading, e.Session.Phase())
	assert.Equal(t, 1, e.Session.LevelID())
}

func TestMap_EscGoesHome(t *testing.T) {
	e, m := newMap(t, progress.Default())
	_, cmd := m.Update(special(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
	assert.Equal(t, session.PhaseHome, e.Session.Phase())
}

func TestMap_ViewShowsZones(t *testing.T) {
	_, m := newMap(t, progress.Default())
	view := m.View(120, 40)
	for _, z := range curriculum.Zones() {
		assert.Contains(t, view, z.Name)
	}
	assert.Equal(t, "國語 冒險地圖", m.Title())
}
