package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/ndmitr1/EventRegistrar/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresStale(t *testing.T) {
	expirer := mocks.NewMockTransactionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, nil, 50*time.Millisecond, log)

	expired := []*domain.PendingTransaction{
		{ID: "t1", EventID: "e1", Actor: domain.ActorIdentity{UserID: "u1"}},
	}
	expirer.EXPECT().ExpireStale(mock.Anything).Return(expired, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	expirer := mocks.NewMockTransactionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, nil, 50*time.Millisecond, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_Tick_PurgesLocks(t *testing.T) {
	expirer := mocks.NewMockTransactionExpirer(t)
	janitor := mocks.NewMockLockJanitor(t)
	log := newTestLogger(t)

	s := New(expirer, janitor, 50*time.Millisecond, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil)
	janitor.EXPECT().DeleteExpired(mock.Anything, mock.Anything).Return(int64(3), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
	assert.GreaterOrEqual(t, len(janitor.Calls), 1)
}

func TestScheduler_Tick_JanitorErrorIgnored(t *testing.T) {
	expirer := mocks.NewMockTransactionExpirer(t)
	janitor := mocks.NewMockLockJanitor(t)
	log := newTestLogger(t)

	s := New(expirer, janitor, 50*time.Millisecond, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil)
	janitor.EXPECT().DeleteExpired(mock.Anything, mock.Anything).Return(int64(0), errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockTransactionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, nil, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockTransactionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, nil, 30*time.Millisecond, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(expirer.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
