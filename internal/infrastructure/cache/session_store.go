package cache

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"dokan_payments/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// SessionStore is the Redis-backed transaction session cache with a
// transparent in-memory fallback.
//
// Every operation tries Redis first; on any client error it serves the
// process-local map with the same TTL semantics (lazy expiry on read).
// Callers never see cache errors, only misses. Without Redis configured the
// store is memory-only and state does not survive a restart.

type SessionStore struct {
	rdb   *redis.Client
	local *memoryStore
}

var _ interfaces.ISessionStore = (*SessionStore)(nil)

// NewSessionStoreFromEnv builds the store from REDIS_URL. An empty or
// unparseable URL degrades to memory-only with a log line rather than
// failing startup; checkout must not depend on the cache being up.
func NewSessionStoreFromEnv() *SessionStore {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Printf("[session][cache] REDIS_URL not set; using in-memory store only")
		return NewSessionStore(nil)
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[session][cache] invalid REDIS_URL; using in-memory store only err=%v", err)
		return NewSessionStore(nil)
	}
	return NewSessionStore(redis.NewClient(opts))
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb, local: newMemoryStore()}
}

func (s *SessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if s.rdb != nil {
		if err := s.rdb.Set(ctx, key, value, ttl).Err(); err == nil {
			return
		} else {
			log.Printf("[session][cache] redis set failed; falling back to memory key=%s err=%v", key, err)
		}
	}
	s.local.set(key, value, ttl)
}

func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, bool) {
	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			return val, true
		}
		if err == redis.Nil {
			// Redis is authoritative for a clean miss, but a value written
			// during an earlier outage may only live in the local map.
			if v, ok := s.local.get(key); ok {
				return v, true
			}
			return nil, false
		}
		log.Printf("[session][cache] redis get failed; falling back to memory key=%s err=%v", key, err)
	}
	return s.local.get(key)
}

func (s *SessionStore) Delete(ctx context.Context, key string) {
	if s.rdb != nil {
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			log.Printf("[session][cache] redis del failed key=%s err=%v", key, err)
		}
	}
	s.local.delete(key)
}

func (s *SessionStore) Exists(ctx context.Context, key string) bool {
	_, ok := s.Get(ctx, key)
	return ok
}

// memoryStore is the process-local TTL map behind the Redis fallback.
// Expiry is lazy: entries are dropped when read past their deadline.

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (m *memoryStore) set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = e
}

func (m *memoryStore) get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}
	return e.value, true
}

func (m *memoryStore) delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}
