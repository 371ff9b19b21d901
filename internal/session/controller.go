// Package session drives the game screens: which subject and level are
// selected, the content load for a level entry, the quiz battle, and the
// result that feeds back into the progress snapshot.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/wisdomquest/internal/content"
	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/progress"
	"github.com/abhisek/wisdomquest/internal/scoring"
)

// Phase is the screen-level state of a session.
type Phase int

const (
	PhaseHome    Phase = iota // Subject selection
	PhaseMap                  // Level map of the current subject
	PhaseLoading              // Waiting for level content
	PhaseGame                 // Playing a level
	PhaseResult               // Showing the outcome of a level
)

func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhaseMap:
		return "map"
	case PhaseLoading:
		return "loading"
	case PhaseGame:
		return "game"
	case PhaseResult:
		return "result"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Ticket identifies one level entry. Only the content load carrying the
// current ticket may move the session out of PhaseLoading.
type Ticket string

// Saver persists progress snapshots.
type Saver interface {
	Save(ctx context.Context, snap progress.Snapshot) error
}

// Options configures a Controller.
type Options struct {
	// Strict makes misuse panic instead of returning an error.
	Strict bool

	Logger *zap.Logger

	// NewTicket overrides ticket generation. Defaults to random UUIDs.
	NewTicket func() Ticket
}

// Result is the outcome of a finished level.
type Result struct {
	Subject curriculum.Subject
	LevelID int
	Score   int
	Total   int
	Stars   int

	// BestStars is the level's rating after this attempt was recorded.
	BestStars int

	// UnlockedNext is true when this attempt unlocked the following level.
	UnlockedNext bool
}

// Controller holds the transient session state. It owns the current
// progress snapshot and replaces it on every recorded result. All methods
// must be called from a single goroutine.
type Controller struct {
	phase   Phase
	snap    progress.Snapshot
	saver   Saver
	strict  bool
	log     *zap.Logger
	newTick func() Ticket

	subject curriculum.Subject
	levelID int
	ticket  Ticket
	content *content.LevelContent
	battle  *Battle
	result  *Result
}

// New creates a controller in PhaseHome over snap. saver may be nil, in
// which case results are kept in memory only.
func New(snap progress.Snapshot, saver Saver, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	newTick := opts.NewTicket
	if newTick == nil {
		newTick = func() Ticket { return Ticket(uuid.NewString()) }
	}
	if snap.IsZero() {
		snap = progress.Default()
	}
	return &Controller{
		phase:   PhaseHome,
		snap:    snap,
		saver:   saver,
		strict:  opts.Strict,
		log:     log.Named("session"),
		newTick: newTick,
	}
}

// fail reports caller misuse. Strict controllers panic.
func (c *Controller) fail(err error) error {
	if c.strict {
		panic(err)
	}
	c.log.Warn("session misuse", zap.Stringer("phase", c.phase), zap.Error(err))
	return err
}

func (c *Controller) expect(op string, phases ...Phase) error {
	for _, p := range phases {
		if c.phase == p {
			return nil
		}
	}
	return c.fail(fmt.Errorf("%s from %s: %w", op, c.phase, ErrInvalidTransition))
}

// SelectSubject opens the level map of s.
func (c *Controller) SelectSubject(s curriculum.Subject) error {
	if err := c.expect("select subject", PhaseHome); err != nil {
		return err
	}
	if !s.Valid() {
		return c.fail(fmt.Errorf("select subject %q: %w", s, ErrUnknownSubject))
	}
	c.subject = s
	c.phase = PhaseMap
	return nil
}

// SelectLevel enters an unlocked level of the current subject. The returned
// ticket must accompany the content load result.
func (c *Controller) SelectLevel(levelID int) (Ticket, error) {
	if err := c.expect("select level", PhaseMap); err != nil {
		return "", err
	}
	lvl, ok := c.snap.Level(c.subject, levelID)
	if !ok {
		return "", c.fail(fmt.Errorf("select level %d of %s: %w", levelID, c.subject, ErrUnknownLevel))
	}
	if lvl.IsLocked {
		return "", c.fail(fmt.Errorf("select level %d of %s: %w", levelID, c.subject, ErrLevelLocked))
	}
	c.levelID = levelID
	return c.beginLoad(), nil
}

func (c *Controller) beginLoad() Ticket {
	c.ticket = c.newTick()
	c.content = nil
	c.battle = nil
	c.result = nil
	c.phase = PhaseLoading
	c.log.Debug("loading level",
		zap.String("subject", string(c.subject)),
		zap.Int("level", c.levelID),
		zap.String("ticket", string(c.ticket)))
	return c.ticket
}

func (c *Controller) checkTicket(op string, t Ticket) error {
	if c.phase != PhaseLoading || t == "" || t != c.ticket {
		c.log.Debug("dropping stale content", zap.String("op", op), zap.String("ticket", string(t)))
		return ErrStaleTicket
	}
	return nil
}

// ContentLoaded enters the game with lc. Results for superseded tickets are
// dropped with ErrStaleTicket.
func (c *Controller) ContentLoaded(t Ticket, lc *content.LevelContent) error {
	if err := c.checkTicket("content loaded", t); err != nil {
		return err
	}
	if lc == nil {
		lc = content.FallbackContent()
	}
	c.ticket = ""
	c.content = lc
	c.battle = NewBattle(lc.Questions)
	c.phase = PhaseGame
	return nil
}

// ContentFailed abandons the level entry and returns to the map.
func (c *Controller) ContentFailed(t Ticket, cause error) error {
	if err := c.checkTicket("content failed", t); err != nil {
		return err
	}
	c.log.Warn("level content failed",
		zap.String("subject", string(c.subject)),
		zap.Int("level", c.levelID),
		zap.Error(cause))
	c.toMap()
	return nil
}

// FinishLevel rates the attempt, records it in the snapshot, saves the
// snapshot and shows the result. A save failure is logged and the in-memory
// snapshot stays authoritative.
func (c *Controller) FinishLevel(ctx context.Context, score, total int) (Result, error) {
	if err := c.expect("finish level", PhaseGame); err != nil {
		return Result{}, err
	}
	if total <= 0 {
		return Result{}, c.fail(fmt.Errorf("finish level %d: %w", c.levelID, ErrNoQuestions))
	}
	if score < 0 || score > total {
		return Result{}, c.fail(fmt.Errorf("finish level %d with %d/%d: %w", c.levelID, score, total, ErrInvalidScore))
	}

	stars := scoring.Rate(score, total)
	next, hadNext := c.snap.Level(c.subject, c.levelID+1)
	wasLocked := hadNext && next.IsLocked

	c.snap = progress.ApplyResult(c.snap, c.subject, c.levelID, stars)
	if c.saver != nil {
		if err := c.saver.Save(ctx, c.snap); err != nil {
			c.log.Error("failed to save progress", zap.Error(err))
		}
	}

	res := Result{
		Subject: c.subject,
		LevelID: c.levelID,
		Score:   score,
		Total:   total,
		Stars:   stars,
	}
	if lvl, ok := c.snap.Level(c.subject, c.levelID); ok {
		res.BestStars = lvl.Stars
	}
	if wasLocked {
		if n, ok := c.snap.Level(c.subject, c.levelID+1); ok && !n.IsLocked {
			res.UnlockedNext = true
		}
	}

	c.log.Info("level finished",
		zap.String("subject", string(c.subject)),
		zap.Int("level", c.levelID),
		zap.Int("score", score),
		zap.Int("total", total),
		zap.Int("stars", stars))

	c.result = &res
	c.battle = nil
	c.phase = PhaseResult
	return res, nil
}

// ExitToMap leaves the game, the result screen or a pending load.
func (c *Controller) ExitToMap() error {
	if err := c.expect("exit to map", PhaseGame, PhaseResult, PhaseLoading); err != nil {
		return err
	}
	c.toMap()
	return nil
}

func (c *Controller) toMap() {
	c.ticket = ""
	c.content = nil
	c.battle = nil
	c.result = nil
	c.levelID = 0
	c.phase = PhaseMap
}

// ExitToHome leaves the level map.
func (c *Controller) ExitToHome() error {
	if err := c.expect("exit to home", PhaseMap); err != nil {
		return err
	}
	c.subject = ""
	c.levelID = 0
	c.phase = PhaseHome
	return nil
}

// Restart replays the level just finished. Content is fetched again under a
// new ticket.
func (c *Controller) Restart() (Ticket, error) {
	if err := c.expect("restart", PhaseResult); err != nil {
		return "", err
	}
	return c.beginLoad(), nil
}

func (c *Controller) Phase() Phase                { return c.phase }
func (c *Controller) Subject() curriculum.Subject { return c.subject }
func (c *Controller) LevelID() int                { return c.levelID }
func (c *Controller) Ticket() Ticket              { return c.ticket }
func (c *Controller) Snapshot() progress.Snapshot { return c.snap }
func (c *Controller) Content() *content.LevelContent {
	return c.content
}
func (c *Controller) Battle() *Battle { return c.battle }

// Levels returns the levels of the current subject.
func (c *Controller) Levels() []progress.Level {
	if c.subject == "" {
		return nil
	}
	return c.snap.Levels(c.subject)
}

// Level returns the current level record.
func (c *Controller) Level() (progress.Level, bool) {
	if c.levelID == 0 {
		return progress.Level{}, false
	}
	return c.snap.Level(c.subject, c.levelID)
}

// Result returns the last result while in PhaseResult.
func (c *Controller) Result() (Result, bool) {
	if c.result == nil {
		return Result{}, false
	}
	return *c.result, true
}

// Topic returns the topic of the current level.
func (c *Controller) Topic() string {
	return curriculum.Topic(c.subject, c.levelID)
}

// Request builds the content request for the current level entry.
func (c *Controller) Request() content.Request {
	return content.Request{
		Subject: c.subject,
		Topic:   c.Topic(),
		LevelID: c.levelID,
	}
}
