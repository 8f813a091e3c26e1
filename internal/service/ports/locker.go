package ports

import (
	"context"
	"time"
)

// Locker serializes critical sections on a string key. Do returns the
// callback's error unchanged, or a lock error when the key could not be
// claimed within waitTimeout.
type Locker interface {
	Do(ctx context.Context, key string, ttl, waitTimeout time.Duration, fn func(ctx context.Context) error) error
}
