package progress

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/scoring"
)

// MarshalJSON encodes the snapshot as {"MATH":[{...}], ...}.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	out := make(map[string][]Level, len(s.levels))
	for subj, lv := range s.levels {
		out[string(subj)] = lv
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a save blob verbatim. Use Normalize to reconcile the
// result with the catalog.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw map[string][]Level
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("progress: empty save data")
	}
	m := make(map[curriculum.Subject][]Level, len(raw))
	for k, v := range raw {
		m[curriculum.Subject(k)] = v
	}
	s.levels = m
	return nil
}

// Normalize projects a decoded snapshot onto the catalog. Unknown subjects
// and out-of-range ids are dropped, missing subjects and levels come from
// the defaults, stars are clamped to [0, 3] and level 1 is always unlocked.
// The second return value reports whether anything had to change.
func Normalize(s Snapshot) (Snapshot, bool) {
	changed := false
	m := make(map[curriculum.Subject][]Level, len(curriculum.AllSubjects()))
	for subj := range s.levels {
		if !subj.Valid() {
			changed = true
		}
	}
	for _, subj := range curriculum.AllSubjects() {
		levels := DefaultLevels()
		saved, ok := s.levels[subj]
		if !ok {
			changed = true
			m[subj] = levels
			continue
		}
		seen := make([]bool, len(levels))
		for _, l := range saved {
			if !curriculum.ValidLevel(l.ID) || seen[l.ID-1] {
				changed = true
				continue
			}
			seen[l.ID-1] = true
			if l.Stars < 0 || l.Stars > scoring.MaxStars {
				l.Stars = max(0, min(l.Stars, scoring.MaxStars))
				changed = true
			}
			if l.ID == 1 && l.IsLocked {
				l.IsLocked = false
				changed = true
			}
			if l.Title == "" {
				l.Title = levels[l.ID-1].Title
				changed = true
			}
			levels[l.ID-1] = l
		}
		for _, ok := range seen {
			if !ok {
				changed = true
			}
		}
		m[subj] = levels
	}
	return Snapshot{levels: m}, changed
}
