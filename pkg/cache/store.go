package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNilClient = errors.New("cache: nil redis client")
	ErrBackend   = errors.New("cache: backend failure")
)

// Store is a byte cache. Get reports a miss with ok=false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// Config selects and sizes the page cache.
type Config struct {
	Size int           `env:"CACHE_SIZE" envDefault:"512" validate:"gte=0"`
	TTL  time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

// MemoryStore is a Store over an LRU. Values are copied on the way in and
// out so callers may reuse their buffers.
type MemoryStore struct {
	lru *LRU[string, []byte]
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{lru: NewLRU[string, []byte](size, ttl)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return clone(v), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.lru.Add(key, clone(value))
	return nil
}

func (s *MemoryStore) Len() int { return s.lru.Len() }

// Nop caches nothing. It is used when CACHE_SIZE is 0.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte) error         { return nil }

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
