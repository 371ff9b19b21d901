package session

import (
	"fmt"

	"github.com/abhisek/wisdomquest/internal/content"
)

// MaxHearts is the health a battle starts with.
const MaxHearts = 3

// BattlePhase is the sub-phase of a level being played.
type BattlePhase int

const (
	BattleStory    BattlePhase = iota // Lesson text shown before the quiz
	BattleQuiz                        // Waiting for an answer
	BattleFeedback                    // Showing whether the last answer was right
	BattleOver                        // Out of hearts or questions
)

func (p BattlePhase) String() string {
	switch p {
	case BattleStory:
		return "story"
	case BattleQuiz:
		return "quiz"
	case BattleFeedback:
		return "feedback"
	case BattleOver:
		return "over"
	default:
		return fmt.Sprintf("BattlePhase(%d)", int(p))
	}
}

// Battle runs the quiz loop of one level: one question at a time, a wrong
// answer costs a heart, and the battle ends when the hearts run out or every
// question has been answered.
type Battle struct {
	questions []content.Question
	phase     BattlePhase
	index     int
	hearts    int
	score     int

	lastAnswer  string
	lastCorrect bool
}

// NewBattle creates a battle over questions. The battle starts in the story
// phase.
func NewBattle(questions []content.Question) *Battle {
	return &Battle{
		questions: questions,
		phase:     BattleStory,
		hearts:    MaxHearts,
	}
}

// CanStart reports whether there is a quiz to start.
func (b *Battle) CanStart() bool {
	return b.phase == BattleStory && len(b.questions) > 0
}

// Start leaves the story and shows the first question.
func (b *Battle) Start() error {
	if b.phase != BattleStory {
		return fmt.Errorf("start battle in %s: %w", b.phase, ErrInvalidTransition)
	}
	if len(b.questions) == 0 {
		return ErrNoQuestions
	}
	b.phase = BattleQuiz
	return nil
}

// Answer checks optionID against the current question.
func (b *Battle) Answer(optionID string) (bool, error) {
	if b.phase == BattleOver {
		return false, ErrBattleOver
	}
	if b.phase != BattleQuiz {
		return false, fmt.Errorf("answer in %s: %w", b.phase, ErrInvalidTransition)
	}
	q := b.questions[b.index]
	correct := q.IsCorrect(optionID)
	if correct {
		b.score++
	} else {
		b.hearts--
	}
	b.lastAnswer = optionID
	b.lastCorrect = correct
	b.phase = BattleFeedback
	return correct, nil
}

// Next moves past the feedback. It returns true once the battle is over.
func (b *Battle) Next() (bool, error) {
	if b.phase == BattleOver {
		return true, nil
	}
	if b.phase != BattleFeedback {
		return false, fmt.Errorf("next in %s: %w", b.phase, ErrInvalidTransition)
	}
	if b.hearts <= 0 || b.index+1 >= len(b.questions) {
		b.phase = BattleOver
		return true, nil
	}
	b.index++
	b.lastAnswer = ""
	b.lastCorrect = false
	b.phase = BattleQuiz
	return false, nil
}

// Result returns the correct answers and the number of questions in the
// level.
func (b *Battle) Result() (score, total int) {
	return b.score, len(b.questions)
}

func (b *Battle) Phase() BattlePhase { return b.phase }
func (b *Battle) Index() int         { return b.index }
func (b *Battle) Hearts() int        { return b.hearts }
func (b *Battle) Score() int         { return b.score }
func (b *Battle) Total() int         { return len(b.questions) }
func (b *Battle) LastAnswer() string { return b.lastAnswer }
func (b *Battle) LastCorrect() bool  { return b.lastCorrect }

// Question returns the current question. ok is false before the quiz starts
// or when there are no questions.
func (b *Battle) Question() (content.Question, bool) {
	if b.phase == BattleStory || b.index >= len(b.questions) {
		return content.Question{}, false
	}
	return b.questions[b.index], true
}
