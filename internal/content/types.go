// Package content produces the lesson and quiz for a level by asking an LLM
// provider, and masks generation failures behind a static stub.
package content

import (
	"context"

	"github.com/abhisek/wisdomquest/internal/curriculum"
)

// Option is one answer choice of a question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a multiple-choice quiz question.
type Question struct {
	Question        string   `json:"question"`
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correctOptionId"`
	Explanation     string   `json:"explanation"`
}

// IsCorrect reports whether optionID is the right answer.
func (q Question) IsCorrect(optionID string) bool {
	return optionID != "" && optionID == q.CorrectOptionID
}

// Option returns the option with the given id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// LevelContent is the lesson plus quiz for one level.
type LevelContent struct {
	LessonTitle string     `json:"lessonTitle"`
	LessonText  string     `json:"lessonText"`
	Questions   []Question `json:"questions"`

	// Degraded is set when the content is the static stub substituted for a
	// failed generation. It is never persisted.
	Degraded bool `json:"-"`
}

// Playable reports whether the content has at least one question.
func (c *LevelContent) Playable() bool {
	return c != nil && len(c.Questions) > 0
}

func (c *LevelContent) clone() *LevelContent {
	out := *c
	out.Questions = make([]Question, len(c.Questions))
	for i, q := range c.Questions {
		q.Options = append([]Option(nil), q.Options...)
		out.Questions[i] = q
	}
	return &out
}

// Request identifies the level to generate content for.
type Request struct {
	Subject curriculum.Subject
	Topic   string
	LevelID int
}

// Generator produces level content.
type Generator interface {
	Generate(ctx context.Context, req Request) (*LevelContent, error)
}
