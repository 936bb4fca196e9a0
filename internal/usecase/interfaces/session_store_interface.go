package interfaces

import (
	"context"
	"time"
)

// ISessionStore abstracts the transaction session cache.
//
// Contract: operations never surface cache errors. The Redis-backed
// implementation falls back transparently to a process-local map when the
// networked cache is unreachable, so callers only ever observe hits and
// misses. State not surviving a restart without Redis is a known
// degradation, not a failure.
type ISessionStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Get(ctx context.Context, key string) ([]byte, bool)
	Delete(ctx context.Context, key string)
	Exists(ctx context.Context, key string) bool
}
