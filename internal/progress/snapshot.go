// Package progress owns the durable level-unlock and star state of every
// subject. A Snapshot is an immutable value: mutations return a new
// Snapshot and leave the receiver untouched.
package progress

import (
	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/scoring"
)

// Level is one persisted level record. Its JSON shape is the save format.
type Level struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	IsLocked bool   `json:"isLocked"`
	Stars    int    `json:"stars"`
}

// Snapshot maps each subject to its levels ordered by id, with the level of
// id n stored at position n-1.
type Snapshot struct {
	levels map[curriculum.Subject][]Level
}

// DefaultLevels returns the initial level list of a subject: level 1
// unlocked, everything else locked, no stars.
func DefaultLevels() []Level {
	out := make([]Level, curriculum.LevelCount)
	for i := range out {
		id := i + 1
		out[i] = Level{
			ID:       id,
			Title:    curriculum.LevelTitle(id),
			IsLocked: id != 1,
		}
	}
	return out
}

// Default returns a fresh snapshot covering every subject.
func Default() Snapshot {
	m := make(map[curriculum.Subject][]Level, len(curriculum.AllSubjects()))
	for _, s := range curriculum.AllSubjects() {
		m[s] = DefaultLevels()
	}
	return Snapshot{levels: m}
}

// IsZero reports whether the snapshot holds no data at all.
func (s Snapshot) IsZero() bool {
	return s.levels == nil
}

// Levels returns a copy of the levels of a subject, ordered by id.
func (s Snapshot) Levels(subject curriculum.Subject) []Level {
	src := s.levels[subject]
	out := make([]Level, len(src))
	copy(out, src)
	return out
}

// Level looks up a level by id.
func (s Snapshot) Level(subject curriculum.Subject, id int) (Level, bool) {
	lv := s.levels[subject]
	if id < 1 || id > len(lv) {
		return Level{}, false
	}
	return lv[id-1], true
}

// TotalStars sums the stars earned in a subject.
func (s Snapshot) TotalStars(subject curriculum.Subject) int {
	n := 0
	for _, l := range s.levels[subject] {
		n += l.Stars
	}
	return n
}

// Unlocked counts the unlocked levels of a subject.
func (s Snapshot) Unlocked(subject curriculum.Subject) int {
	n := 0
	for _, l := range s.levels[subject] {
		if !l.IsLocked {
			n++
		}
	}
	return n
}

// Equal reports whether two snapshots hold the same records.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.levels) != len(other.levels) {
		return false
	}
	for subj, a := range s.levels {
		b, ok := other.levels[subj]
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

// ApplyResult records a finished level. When stars is positive the level
// keeps the better of its old and new rating and the next level is
// unlocked. A zero rating, an unknown subject or an unknown level id
// returns s unchanged. Subjects other than the target share their backing
// slices with s.
func ApplyResult(s Snapshot, subject curriculum.Subject, levelID, stars int) Snapshot {
	if stars <= 0 {
		return s
	}
	src, ok := s.levels[subject]
	if !ok || levelID < 1 || levelID > len(src) {
		return s
	}
	if stars > scoring.MaxStars {
		stars = scoring.MaxStars
	}

	idx := levelID - 1
	needStars := src[idx].Stars < stars
	needUnlock := idx+1 < len(src) && src[idx+1].IsLocked
	if !needStars && !needUnlock {
		return s
	}

	updated := make([]Level, len(src))
	copy(updated, src)
	if needStars {
		updated[idx].Stars = stars
	}
	if needUnlock {
		updated[idx+1].IsLocked = false
	}

	m := make(map[curriculum.Subject][]Level, len(s.levels))
	for k, v := range s.levels {
		m[k] = v
	}
	m[subject] = updated
	return Snapshot{levels: m}
}
