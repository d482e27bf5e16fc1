// pkg/memcache/idempotency.go
package mem

import (
	"sync"
	"time"
)

// IdempotencyStore remembers the outcome of a settlement request keyed
// by the caller-supplied Idempotency-Key header, so a retried purchase
// replays the stored response instead of creating a second order.
type IdempotencyStore interface {
	Set(key string, value any, ttl time.Duration)

	// Get returns the stored value if the key has not expired.
	Get(key string) (any, bool)
}

type idemEntry struct {
	value     any
	expiresAt time.Time
}

type IdempotencyKeys struct {
	mu   sync.RWMutex
	data map[string]idemEntry
}

func NewIdempotencyKeys() *IdempotencyKeys {
	return &IdempotencyKeys{
		data: make(map[string]idemEntry),
	}
}

func (s *IdempotencyKeys) Set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = idemEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *IdempotencyKeys) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key) // cleanup expired
		return nil, false
	}
	return e.value, true
}
