package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

var (
	// ErrTimeout means the key stayed held by someone else for the whole
	// wait window. Callers may retry the whole operation later.
	ErrTimeout = errors.New("lock wait timeout")

	// ErrBackend means the lock store itself failed, so mutual exclusion
	// cannot be guaranteed. Callers must fail the protected operation.
	ErrBackend = errors.New("lock backend unavailable")
)

// BackendError wraps a store failure with the key it happened on.
// errors.Is(err, ErrBackend) matches it.
type BackendError struct {
	Key string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("lock backend failed for %q: %v", e.Key, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

func (e *BackendError) Is(target error) bool { return target == ErrBackend }

// Handle proves ownership of an acquired lock. Only the holder of the
// token can release the key; stale handles turn Release into a no-op.
type Handle struct {
	Key        string
	Token      string
	AcquiredAt time.Time
	TTL        time.Duration
}

// Store is the backing implementation of the two atomic lock primitives:
// set-if-absent-or-expired and delete-if-token-matches.
type Store interface {
	// TryAcquire claims key for token with the given ttl. It returns
	// false when the key is currently held by another live token.
	TryAcquire(ctx context.Context, key, token string, ttl time.Duration) (bool, error)

	// Release deletes key only if it is still held by token. It reports
	// whether a deletion happened.
	Release(ctx context.Context, key, token string) (bool, error)
}

const (
	defaultPollInterval    = 25 * time.Millisecond
	defaultMaxPollInterval = 250 * time.Millisecond

	// releaseTimeout bounds the post-operation release call so a hung
	// store cannot stall the request goroutine. TTL expiry covers the
	// failure case.
	releaseTimeout = 3 * time.Second
)

// Service hands out TTL-guarded exclusive locks on string keys. Waiting
// is a poll loop with exponential backoff against the store's atomic
// claim, bounded by the caller's wait window.
type Service struct {
	store   Store
	logger  logger.Logger
	poll    time.Duration
	maxPoll time.Duration
}

type Option func(*Service)

// WithPollInterval overrides the contention retry cadence. Tests use a
// tighter cadence to keep timing-sensitive cases fast.
func WithPollInterval(initial, max time.Duration) Option {
	return func(s *Service) {
		s.poll = initial
		s.maxPoll = max
	}
}

func NewService(store Store, logger logger.Logger, opts ...Option) *Service {
	s := &Service{
		store:   store,
		logger:  logger,
		poll:    defaultPollInterval,
		maxPoll: defaultMaxPollInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Acquire claims key for at most ttl, waiting up to waitTimeout for the
// current holder to release or expire. A cancelled caller context ends
// the wait early with ErrTimeout.
func (s *Service) Acquire(ctx context.Context, key string, ttl, waitTimeout time.Duration) (Handle, error) {
	if key == "" {
		return Handle{}, fmt.Errorf("lock: key must not be empty")
	}
	if ttl <= 0 {
		return Handle{}, fmt.Errorf("lock: ttl must be positive, got %s", ttl)
	}

	token := uuid.New().String()

	waitCtx, cancel := context.WithTimeout(ctx, waitTimeout)
	defer cancel()

	delay := s.poll
	for {
		acquired, err := s.store.TryAcquire(ctx, key, token, ttl)
		if err != nil {
			return Handle{}, &BackendError{Key: key, Err: err}
		}
		if acquired {
			return Handle{
				Key:        key,
				Token:      token,
				AcquiredAt: time.Now().UTC(),
				TTL:        ttl,
			}, nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-waitCtx.Done():
			timer.Stop()
			return Handle{}, fmt.Errorf("%w: key %q still held after %s", ErrTimeout, key, waitTimeout)
		case <-timer.C:
		}

		if delay < s.maxPoll {
			delay *= 2
			if delay > s.maxPoll {
				delay = s.maxPoll
			}
		}
	}
}

// Release frees the handle's key. Releasing after TTL expiry, or after
// the key moved to a new holder, is a silent no-op.
func (s *Service) Release(ctx context.Context, h Handle) error {
	released, err := s.store.Release(ctx, h.Key, h.Token)
	if err != nil {
		return &BackendError{Key: h.Key, Err: err}
	}
	if !released {
		s.logger.Debug("lock already released or taken over",
			logger.String("key", h.Key),
		)
	}
	return nil
}

// Do runs fn while holding key. The lock is released when fn returns or
// panics; fn's error passes through unchanged so callers can classify it.
// Results are captured by the closure.
func (s *Service) Do(ctx context.Context, key string, ttl, waitTimeout time.Duration, fn func(ctx context.Context) error) error {
	h, err := s.Acquire(ctx, key, ttl, waitTimeout)
	if err != nil {
		return err
	}

	defer func() {
		// release must survive caller cancellation, otherwise the key
		// stays wedged until TTL expiry
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()

		if rerr := s.Release(rctx, h); rerr != nil {
			s.logger.Warn("lock release failed, ttl will reclaim",
				logger.String("key", h.Key),
				logger.String("error", rerr.Error()),
			)
		}
	}()

	return fn(ctx)
}
