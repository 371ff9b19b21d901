package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/scoring"
)

func TestDefault(t *testing.T) {
	snap := Default()
	for _, subj := range curriculum.AllSubjects() {
		levels := snap.Levels(subj)
		require.Len(t, levels, curriculum.LevelCount, "subject %s", subj)
		for i, l := range levels {
			assert.Equal(t, i+1, l.ID)
			assert.Equal(t, 0, l.Stars)
			assert.Equal(t, l.ID != 1, l.IsLocked, "level %d lock state", l.ID)
			assert.NotEmpty(t, l.Title)
		}
	}
}

func TestLevelsReturnsCopy(t *testing.T) {
	snap := Default()
	levels := snap.Levels(curriculum.SubjectMath)
	levels[0].Stars = 3
	got, _ := snap.Level(curriculum.SubjectMath, 1)
	assert.Equal(t, 0, got.Stars)
}

func TestScenarioPerfectRun(t *testing.T) {
	stars := scoring.Rate(8, 8)
	require.Equal(t, 3, stars)

	snap := ApplyResult(Default(), curriculum.SubjectMath, 1, stars)

	l1, _ := snap.Level(curriculum.SubjectMath, 1)
	l2, _ := snap.Level(curriculum.SubjectMath, 2)
	assert.Equal(t, 3, l1.Stars)
	assert.False(t, l2.IsLocked)
}

func TestScenarioTwoStars(t *testing.T) {
	stars := scoring.Rate(5, 8)
	require.Equal(t, 2, stars)

	snap := ApplyResult(Default(), curriculum.SubjectMath, 1, stars)

	l1, _ := snap.Level(curriculum.SubjectMath, 1)
	l2, _ := snap.Level(curriculum.SubjectMath, 2)
	assert.Equal(t, 2, l1.Stars)
	assert.False(t, l2.IsLocked)
}

func TestScenarioZeroScoreStillUnlocks(t *testing.T) {
	stars := scoring.Rate(0, 8)
	require.Equal(t, 1, stars)

	snap := ApplyResult(Default(), curriculum.SubjectMath, 1, stars)

	l1, _ := snap.Level(curriculum.SubjectMath, 1)
	l2, _ := snap.Level(curriculum.SubjectMath, 2)
	assert.Equal(t, 1, l1.Stars)
	assert.False(t, l2.IsLocked)
}

func TestScenarioReplayKeepsBest(t *testing.T) {
	snap := ApplyResult(Default(), curriculum.SubjectMath, 1, 3)
	snap = ApplyResult(snap, curriculum.SubjectMath, 1, scoring.Rate(2, 8))

	l1, _ := snap.Level(curriculum.SubjectMath, 1)
	assert.Equal(t, 3, l1.Stars)
}

func TestApplyResultZeroStarsIsIdentity(t *testing.T) {
	in := ApplyResult(Default(), curriculum.SubjectEnglish, 1, 2)
	out := ApplyResult(in, curriculum.SubjectEnglish, 2, 0)
	assert.True(t, in.Equal(out))
}

func TestApplyResultUnknownInputsAreIdentity(t *testing.T) {
	in := Default()
	assert.True(t, in.Equal(ApplyResult(in, curriculum.Subject("ART"), 1, 3)))
	assert.True(t, in.Equal(ApplyResult(in, curriculum.SubjectMath, 0, 3)))
	assert.True(t, in.Equal(ApplyResult(in, curriculum.SubjectMath, curriculum.LevelCount+1, 3)))
}

func TestApplyResultDoesNotMutateInput(t *testing.T) {
	in := Default()
	_ = ApplyResult(in, curriculum.SubjectMath, 1, 3)
	assert.True(t, in.Equal(Default()))
}

func TestApplyResultOnlyUnlocksNext(t *testing.T) {
	in := Default()
	out := ApplyResult(in, curriculum.SubjectLife, 1, 2)

	for _, subj := range curriculum.AllSubjects() {
		for _, l := range out.Levels(subj) {
			want := l.ID == 1 || (subj == curriculum.SubjectLife && l.ID == 2)
			assert.Equal(t, !want, l.IsLocked, "%s level %d", subj, l.ID)
		}
	}
}

func TestApplyResultLastLevel(t *testing.T) {
	out := ApplyResult(Default(), curriculum.SubjectMath, curriculum.LevelCount, 2)
	last, _ := out.Level(curriculum.SubjectMath, curriculum.LevelCount)
	assert.Equal(t, 2, last.Stars)
	assert.Equal(t, curriculum.LevelCount, len(out.Levels(curriculum.SubjectMath)))
}

func TestApplyResultNeverLowersStars(t *testing.T) {
	snap := Default()
	for _, stars := range []int{2, 1, 3, 1, 2} {
		before, _ := snap.Level(curriculum.SubjectChinese, 1)
		snap = ApplyResult(snap, curriculum.SubjectChinese, 1, stars)
		after, _ := snap.Level(curriculum.SubjectChinese, 1)
		assert.GreaterOrEqual(t, after.Stars, before.Stars)
	}
}

func TestApplyResultIdempotent(t *testing.T) {
	once := ApplyResult(Default(), curriculum.SubjectMath, 3, 2)
	twice := ApplyResult(once, curriculum.SubjectMath, 3, 2)
	assert.True(t, once.Equal(twice))

	lower := ApplyResult(once, curriculum.SubjectMath, 3, 1)
	assert.True(t, once.Equal(lower))
}

func TestApplyResultSharesUntouchedSubjects(t *testing.T) {
	in := Default()
	out := ApplyResult(in, curriculum.SubjectMath, 1, 3)

	for _, subj := range curriculum.AllSubjects() {
		if subj == curriculum.SubjectMath {
			assert.NotSame(t, &in.levels[subj][0], &out.levels[subj][0])
			continue
		}
		assert.Same(t, &in.levels[subj][0], &out.levels[subj][0], "subject %s", subj)
	}
}

func TestApplyResultNoChangeReturnsSameSnapshot(t *testing.T) {
	in := ApplyResult(Default(), curriculum.SubjectMath, 1, 3)
	out := ApplyResult(in, curriculum.SubjectMath, 1, 2)
	assert.Same(t, &in.levels[curriculum.SubjectMath][0], &out.levels[curriculum.SubjectMath][0])
}

func TestTotals(t *testing.T) {
	snap := ApplyResult(Default(), curriculum.SubjectMath, 1, 3)
	snap = ApplyResult(snap, curriculum.SubjectMath, 2, 2)
	assert.Equal(t, 5, snap.TotalStars(curriculum.SubjectMath))
	assert.Equal(t, 3, snap.Unlocked(curriculum.SubjectMath))
	assert.Equal(t, 0, snap.TotalStars(curriculum.SubjectLife))
}
