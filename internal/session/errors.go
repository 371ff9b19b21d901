package session

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is not valid in the
	// current phase.
	ErrInvalidTransition = errors.New("session: invalid transition")

	// ErrUnknownSubject is returned for a subject outside the catalog.
	ErrUnknownSubject = errors.New("session: unknown subject")

	// ErrUnknownLevel is returned for a level id the subject does not have.
	ErrUnknownLevel = errors.New("session: unknown level")

	// ErrLevelLocked is returned when entering a level that is still locked.
	ErrLevelLocked = errors.New("session: level is locked")

	// ErrNoQuestions is returned when finishing a level with no questions.
	ErrNoQuestions = errors.New("session: level has no questions")

	// ErrInvalidScore is returned when a score lies outside [0, total].
	ErrInvalidScore = errors.New("session: score out of range")

	// ErrStaleTicket is returned when a content load reports back for a
	// level entry that is no longer current.
	ErrStaleTicket = errors.New("session: stale content ticket")

	// ErrBattleOver is returned when the battle has already ended.
	ErrBattleOver = errors.New("session: battle is over")
)
