package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestService(t *testing.T) (*Service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	svc := NewService(store, newTestLogger(t), WithPollInterval(5*time.Millisecond, 20*time.Millisecond))
	return svc, store
}

func TestService_AcquireRelease(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	h, err := svc.Acquire(ctx, "reg:e1:r1", time.Second, 100*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "reg:e1:r1", h.Key)
	assert.NotEmpty(t, h.Token)

	// held: a second claim must not get through
	_, err = svc.Acquire(ctx, "reg:e1:r1", time.Second, 30*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)

	require.NoError(t, svc.Release(ctx, h))

	h2, err := svc.Acquire(ctx, "reg:e1:r1", time.Second, 100*time.Millisecond)
	require.NoError(t, err)
	assert.NotEqual(t, h.Token, h2.Token)
}

func TestService_Acquire_ContendedTimesOut(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Acquire(ctx, "k", time.Minute, 100*time.Millisecond)
	require.NoError(t, err)

	const wait = 200 * time.Millisecond
	start := time.Now()
	_, err = svc.Acquire(ctx, "k", time.Minute, wait)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, elapsed, wait)
	assert.Less(t, elapsed, wait+50*time.Millisecond)
}

func TestService_Acquire_WaitsForRelease(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	h, err := svc.Acquire(ctx, "k", time.Minute, 100*time.Millisecond)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = svc.Release(context.Background(), h)
	}()

	start := time.Now()
	h2, err := svc.Acquire(ctx, "k", time.Minute, time.Second)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.NotEqual(t, h.Token, h2.Token)
}

func TestService_Acquire_CallerContextCancelled(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Acquire(context.Background(), "k", time.Minute, 100*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err = svc.Acquire(ctx, "k", time.Minute, 5*time.Second)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestService_Acquire_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Acquire(ctx, "", time.Second, time.Second)
	require.Error(t, err)

	_, err = svc.Acquire(ctx, "k", 0, time.Second)
	require.Error(t, err)
}

type failingStore struct {
	err error
}

func (f *failingStore) TryAcquire(context.Context, string, string, time.Duration) (bool, error) {
	return false, f.err
}

func (f *failingStore) Release(context.Context, string, string) (bool, error) {
	return false, f.err
}

func TestService_Acquire_BackendError(t *testing.T) {
	svc := NewService(&failingStore{err: errors.New("connection refused")}, newTestLogger(t))

	_, err := svc.Acquire(context.Background(), "k", time.Second, time.Second)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackend)
	assert.NotErrorIs(t, err, ErrTimeout)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "k", backendErr.Key)
}

func TestService_Release_StaleTokenIsNoop(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// first holder expires without releasing
	old, err := svc.Acquire(ctx, "k", 40*time.Millisecond, 100*time.Millisecond)
	require.NoError(t, err)

	cur, err := svc.Acquire(ctx, "k", time.Minute, time.Second)
	require.NoError(t, err)

	// the expired handle must not free the new holder's lock
	require.NoError(t, svc.Release(ctx, old))

	taken, err := store.TryAcquire(ctx, "k", "intruder", time.Minute)
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, svc.Release(ctx, cur))
}

func TestService_Do_MutualExclusion(t *testing.T) {
	svc, _ := newTestService(t)

	const workers = 16
	var (
		inFlight  atomic.Int32
		violation atomic.Bool
		wg        sync.WaitGroup
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			err := svc.Do(context.Background(), "k", time.Minute, 5*time.Second, func(context.Context) error {
				if inFlight.Add(1) > 1 {
					violation.Store(true)
				}
				time.Sleep(2 * time.Millisecond)
				inFlight.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.False(t, violation.Load(), "two goroutines entered the critical section at once")
}

func TestService_Do_PropagatesCallbackError(t *testing.T) {
	svc, _ := newTestService(t)
	wantErr := errors.New("capacity exceeded")

	err := svc.Do(context.Background(), "k", time.Second, time.Second, func(context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)

	// error paths release too
	_, err = svc.Acquire(context.Background(), "k", time.Second, 20*time.Millisecond)
	require.NoError(t, err)
}

func TestService_Do_ReleasesOnPanic(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Panics(t, func() {
		_ = svc.Do(context.Background(), "k", time.Minute, time.Second, func(context.Context) error {
			panic("handler blew up")
		})
	})

	_, err := svc.Acquire(context.Background(), "k", time.Second, 20*time.Millisecond)
	require.NoError(t, err)
}

func TestMemoryStore_ExpiredEntryReplaced(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	ok, err := store.TryAcquire(ctx, "k", "a", 10*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.TryAcquire(ctx, "k", "b", 10*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(11 * time.Second)

	ok, err = store.TryAcquire(ctx, "k", "b", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	// the expired token cannot release the new holder
	released, err := store.Release(ctx, "k", "a")
	require.NoError(t, err)
	assert.False(t, released)

	released, err = store.Release(ctx, "k", "b")
	require.NoError(t, err)
	assert.True(t, released)
}
