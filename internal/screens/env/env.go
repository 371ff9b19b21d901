// Package env holds the state shared by every game screen: the session
// controller, the lesson generator and display preferences.
package env

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wisdomquest/internal/content"
	"github.com/abhisek/wisdomquest/internal/phonetic"
	"github.com/abhisek/wisdomquest/internal/session"
	"github.com/abhisek/wisdomquest/internal/ui/theme"
)

// Env is passed by pointer so preference changes are seen by all screens.
type Env struct {
	Session *session.Controller
	Lessons content.Generator

	// Phonetics shows zhuyin readings next to annotated characters.
	Phonetics bool

	Log *zap.Logger
}

// New creates an Env. A nil logger discards output.
func New(ctrl *session.Controller, lessons content.Generator, log *zap.Logger) *Env {
	if log == nil {
		log = zap.NewNop()
	}
	return &Env{
		Session:   ctrl,
		Lessons:   lessons,
		Phonetics: true,
		Log:       log,
	}
}

// Text prepares generated text for display, rendering or stripping the
// zhuyin readings.
func (e *Env) Text(s string) string {
	if !e.Phonetics {
		return phonetic.Strip(s)
	}
	return phonetic.Format(s, func(char, ruby string) string {
		return char + theme.Reading.Render("("+ruby+")")
	})
}

// TogglePhonetics flips the zhuyin display.
func (e *Env) TogglePhonetics() {
	e.Phonetics = !e.Phonetics
}

// LessonLoadedMsg reports the outcome of a content load.
type LessonLoadedMsg struct {
	Ticket  session.Ticket
	Content *content.LevelContent
	Err     error
}

// LoadLesson returns a command that generates the content for req and
// reports it under ticket. cancel abandons the load; the generator bounds
// how long it may take.
func (e *Env) LoadLesson(ticket session.Ticket, req content.Request) (cmd tea.Cmd, cancel context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	lessons := e.Lessons
	cmd = func() tea.Msg {
		defer cancel()
		if lessons == nil {
			return LessonLoadedMsg{Ticket: ticket, Content: content.FallbackContent()}
		}
		lc, err := lessons.Generate(ctx, req)
		return LessonLoadedMsg{Ticket: ticket, Content: lc, Err: err}
	}
	return cmd, cancel
}
