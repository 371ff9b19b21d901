package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// SaveKey is the fixed key the snapshot blob is stored under.
const SaveKey = "wisdomquest_save_v1"

// ErrNotFound is returned by a KV when the key has never been written.
var ErrNotFound = errors.New("progress: key not found")

// KV is the key-value persistence collaborator.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store loads and saves snapshots through a KV.
type Store struct {
	kv  KV
	log *zap.Logger
}

// NewStore creates a Store. A nil logger discards log output.
func NewStore(kv KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log.Named("progress")}
}

// Load returns the persisted snapshot, or the default snapshot when nothing
// usable is stored. It never fails; read and parse problems are logged.
func (s *Store) Load(ctx context.Context) Snapshot {
	data, err := s.kv.Get(ctx, SaveKey)
	if errors.Is(err, ErrNotFound) {
		s.log.Info("no saved progress, starting fresh")
		return Default()
	}
	if err != nil {
		s.log.Warn("reading saved progress failed, using defaults", zap.Error(err))
		return Default()
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Warn("saved progress is corrupt, using defaults",
			zap.Error(err), zap.Int("bytes", len(data)))
		return Default()
	}
	norm, changed := Normalize(snap)
	if changed {
		s.log.Info("saved progress normalized onto current catalog")
	}
	return norm
}

// Save writes the whole snapshot.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.kv.Put(ctx, SaveKey, data); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	s.log.Debug("progress saved", zap.Int("bytes", len(data)))
	return nil
}

// Reset overwrites the stored progress with the default snapshot.
func (s *Store) Reset(ctx context.Context) (Snapshot, error) {
	snap := Default()
	if err := s.Save(ctx, snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// MemoryKV is an in-process KV, used when no durable backend is configured
// and in tests.
type MemoryKV struct {
	data map[string][]byte
	// Err, when set, is returned by every call.
	Err error
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}
