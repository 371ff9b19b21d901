package progress

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/wisdomquest/internal/curriculum"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	s := NewStore(NewMemoryKV(), zap.NewNop())
	assert.True(t, s.Load(context.Background()).Equal(Default()))
}

func TestLoadCorruptReturnsDefault(t *testing.T) {
	ctx := context.Background()
	for _, blob := range []string{"{not json", "null", "[]", `"hello"`} {
		kv := NewMemoryKV()
		require.NoError(t, kv.Put(ctx, SaveKey, []byte(blob)))
		s := NewStore(kv, nil)
		snap := s.Load(ctx)
		assert.True(t, snap.Equal(Default()), "blob %q", blob)
	}
}

func TestLoadReadErrorReturnsDefault(t *testing.T) {
	kv := NewMemoryKV()
	kv.Err = errors.New("disk on fire")
	s := NewStore(kv, nil)
	assert.True(t, s.Load(context.Background()).Equal(Default()))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryKV(), nil)

	snap := Default()
	snap = ApplyResult(snap, curriculum.SubjectMath, 1, 3)
	snap = ApplyResult(snap, curriculum.SubjectMath, 2, 1)
	snap = ApplyResult(snap, curriculum.SubjectEnglish, 1, 2)

	require.NoError(t, s.Save(ctx, snap))
	assert.True(t, s.Load(ctx).Equal(snap))
}

func TestSaveFailure(t *testing.T) {
	kv := NewMemoryKV()
	kv.Err = errors.New("read-only")
	s := NewStore(kv, nil)
	err := s.Save(context.Background(), Default())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}

func TestSaveFormat(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := NewStore(kv, nil)
	require.NoError(t, s.Save(ctx, Default()))

	data, err := kv.Get(ctx, SaveKey)
	require.NoError(t, err)

	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "MATH")
	first := raw["MATH"][0]
	assert.EqualValues(t, 1, first["id"])
	assert.Equal(t, false, first["isLocked"])
	assert.EqualValues(t, 0, first["stars"])
	assert.Equal(t, "森林試煉 1", first["title"])
}

func TestLoadNormalizesPartialData(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	blob := `{
		"MATH": [
			{"id": 1, "title": "森林試煉 1", "isLocked": true, "stars": 9},
			{"id": 2, "title": "", "isLocked": false, "stars": 2},
			{"id": 99, "title": "ghost", "isLocked": false, "stars": 3}
		],
		"ART": [{"id": 1, "title": "x", "isLocked": false, "stars": 1}]
	}`
	require.NoError(t, kv.Put(ctx, SaveKey, []byte(blob)))

	snap := NewStore(kv, nil).Load(ctx)

	math := snap.Levels(curriculum.SubjectMath)
	require.Len(t, math, curriculum.LevelCount)
	assert.False(t, math[0].IsLocked)
	assert.Equal(t, 3, math[0].Stars)
	assert.Equal(t, 2, math[1].Stars)
	assert.Equal(t, "海洋探險 6", math[5].Title)
	assert.Equal(t, curriculum.LevelTitle(2), math[1].Title)
	assert.True(t, math[2].IsLocked)

	_, ok := snap.Level(curriculum.Subject("ART"), 1)
	assert.False(t, ok)
	assert.Len(t, snap.Levels(curriculum.SubjectChinese), curriculum.LevelCount)
}

func TestNormalizeWellFormedUnchanged(t *testing.T) {
	snap := ApplyResult(Default(), curriculum.SubjectLife, 1, 2)
	norm, changed := Normalize(snap)
	assert.False(t, changed)
	assert.True(t, norm.Equal(snap))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryKV(), nil)
	require.NoError(t, s.Save(ctx, ApplyResult(Default(), curriculum.SubjectMath, 1, 3)))

	snap, err := s.Reset(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Equal(Default()))
	assert.True(t, s.Load(ctx).Equal(Default()))
}
