package scheduler

import (
	"context"
	"time"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type transactionExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.PendingTransaction, error)
}

// lockJanitor removes lock rows whose TTL has long passed. Expired rows
// are already claimable, this only keeps the table small.
type lockJanitor interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type Scheduler struct {
	payments transactionExpirer
	locks    lockJanitor
	interval time.Duration
	logger   logger.Logger
}

// New builds the background sweeper. locks may be nil when the lock
// store does not live in the database.
func New(
	payments transactionExpirer,
	locks lockJanitor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		payments: payments,
		locks:    locks,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.payments.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale checkouts",
			logger.String("error", err.Error()),
		)
	} else {
		for _, txn := range expired {
			s.logger.Info("checkout expired",
				logger.String("transaction_id", txn.ID),
				logger.String("actor", txn.Actor.String()),
				logger.String("event_id", txn.EventID),
			)
		}
	}

	if s.locks == nil {
		return
	}

	purged, err := s.locks.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("failed to purge expired locks",
			logger.String("error", err.Error()),
		)
		return
	}
	if purged > 0 {
		s.logger.Debug("expired locks purged",
			logger.Int64("count", purged),
		)
	}
}
