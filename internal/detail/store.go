package detail

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// SelectionStore persists selection snapshots by key.
type SelectionStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore keeps selections in process. Entries expire after ttl
// without access.
type MemoryStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewMemoryStore creates an in-process store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	b := v.([]byte)
	m.cache.Set(key, b, m.ttl)
	return b, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.cache.Set(key, value, m.ttl)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}
