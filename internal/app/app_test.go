package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/progress"
	"github.com/abhisek/wisdomquest/internal/screens/env"
	"github.com/abhisek/wisdomquest/internal/screens/home"
	"github.com/abhisek/wisdomquest/internal/screens/welcome"
	"github.com/abhisek/wisdomquest/internal/session"
)

func newEnv(snap progress.Snapshot) *env.Env {
	return env.New(session.New(snap, nil, session.Options{}), nil, nil)
}

func TestNewAppModel_StartScreen(t *testing.T) {
	m := newAppModel(Options{Env: newEnv(progress.Default())})
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())

	m = newAppModel(Options{Env: newEnv(progress.Default()), SkipWelcome: true})
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Env: newEnv(progress.Default()), SkipWelcome: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_EscDoesNotPopGlobally(t *testing.T) {
	m := newAppModel(Options{Env: newEnv(progress.Default()), SkipWelcome: true})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.router.Depth())
}

func TestTotalStars(t *testing.T) {
	snap := progress.ApplyResult(progress.Default(), curriculum.SubjectMath, 1, 3)
	snap = progress.ApplyResult(snap, curriculum.SubjectEnglish, 1, 2)
	m := newAppModel(Options{Env: newEnv(snap)})
	assert.Equal(t, 5, m.totalStars())
}

func TestView_HeaderAndFooter(t *testing.T) {
	m := newAppModel(Options{Env: newEnv(progress.Default()), SkipWelcome: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := updated.(AppModel).View()
	assert.True(t, view.AltScreen)
}

func TestRun_RequiresEnv(t *testing.T) {
	assert.Error(t, Run(Options{}))
}
