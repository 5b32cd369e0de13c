// Package storage persists the board in a string key-value store.
// The whole task collection lives under a single key as one JSON array.
package storage

import (
	"context"
	"fmt"
	"sync"
)

// Store is a string key-value store in the shape of browser local storage.
// A missing key is reported with ok == false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Size returns the bytes held by all keys and values
	Size(ctx context.Context) (int, error)
}

// MemoryStore keeps all keys in a map; used by tests and --memory runs
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Size(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for k, v := range s.data {
		total += len(k) + len(v)
	}
	return total, nil
}

// DefaultQuotaBytes matches the usual per-origin local storage limit
const DefaultQuotaBytes = 5 << 20

// QuotaStore rejects writes whose total stored size would exceed Limit bytes.
// Sizes count both keys and values across every key in the backend.
type QuotaStore struct {
	Store
	Limit int

	mu     sync.Mutex
	loaded bool
	used   int
}

// WithQuota wraps store with a byte quota; a non-positive limit disables it
func WithQuota(store Store, limit int) Store {
	if limit <= 0 {
		return store
	}
	return &QuotaStore{Store: store, Limit: limit}
}

func (q *QuotaStore) Set(ctx context.Context, key, value string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.load(ctx); err != nil {
		return err
	}
	prev, err := q.sizeOf(ctx, key)
	if err != nil {
		return err
	}

	next := len(key) + len(value)
	if q.used-prev+next > q.Limit {
		return fmt.Errorf("writing %q (%d bytes): %w", key, next, ErrQuotaExceeded)
	}

	if err := q.Store.Set(ctx, key, value); err != nil {
		return err
	}
	q.used += next - prev
	return nil
}

func (q *QuotaStore) Remove(ctx context.Context, key string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.load(ctx); err != nil {
		return err
	}
	prev, err := q.sizeOf(ctx, key)
	if err != nil {
		return err
	}

	if err := q.Store.Remove(ctx, key); err != nil {
		return err
	}
	q.used -= prev
	return nil
}

// Size reports the bytes in use as tracked by the quota
func (q *QuotaStore) Size(ctx context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.load(ctx); err != nil {
		return 0, err
	}
	return q.used, nil
}

// load measures the backend once; later writes adjust the total by delta
func (q *QuotaStore) load(ctx context.Context) error {
	if q.loaded {
		return nil
	}
	n, err := q.Store.Size(ctx)
	if err != nil {
		return fmt.Errorf("failed to measure storage: %w", err)
	}
	q.used, q.loaded = n, true
	return nil
}

func (q *QuotaStore) sizeOf(ctx context.Context, key string) (int, error) {
	v, ok, err := q.Store.Get(ctx, key)
	if err != nil || !ok {
		return 0, err
	}
	return len(key) + len(v), nil
}
