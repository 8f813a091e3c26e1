package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/ndmitr1/EventRegistrar/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultCheckoutTTL = 30 * time.Minute

	// sweepLockWait keeps the expiry sweep from stalling on a contended
	// lock: contention means the transaction is being settled right now,
	// so the sweep just moves on.
	sweepLockWait = time.Second
)

// PaymentService owns the lifecycle of pending transactions: checkout
// creation, gateway-confirmed settlement and expiry of abandoned
// checkouts. Both creation and settlement serialize on the lock key
// derived from the transaction id at creation time, so a completion
// signal arriving mid-initiation waits until initiation has finished
// writing.
type PaymentService struct {
	txnRepo   ports.TransactionRepo
	roleRepo  ports.RoleRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	gateway   ports.PaymentGateway
	locker    ports.Locker
	notifier  ports.Notifier
	logger    logger.Logger

	lockTTL     time.Duration
	lockWait    time.Duration
	checkoutTTL time.Duration
}

type PaymentOption func(*PaymentService)

// WithCheckoutTTL sets how long a pending transaction may stay pending
// before the sweep fails it.
func WithCheckoutTTL(d time.Duration) PaymentOption {
	return func(s *PaymentService) {
		if d > 0 {
			s.checkoutTTL = d
		}
	}
}

// WithPaymentLocking overrides the completion lock's ttl and the wait
// timeout for contenders.
func WithPaymentLocking(ttl, wait time.Duration) PaymentOption {
	return func(s *PaymentService) {
		if ttl > 0 {
			s.lockTTL = ttl
		}
		if wait > 0 {
			s.lockWait = wait
		}
	}
}

func NewPaymentService(
	txnRepo ports.TransactionRepo,
	roleRepo ports.RoleRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	locker ports.Locker,
	notifier ports.Notifier,
	logger logger.Logger,
	opts ...PaymentOption,
) *PaymentService {
	s := &PaymentService{
		txnRepo:     txnRepo,
		roleRepo:    roleRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		locker:      locker,
		notifier:    notifier,
		logger:      logger,
		lockTTL:     defaultLockTTL,
		lockWait:    defaultLockWait,
		checkoutTTL: defaultCheckoutTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitiatePending opens a checkout for a paid role. The transaction id
// and its lock key exist before the gateway ever hears about the session,
// and the row is persisted before the gateway call: a crash in between
// leaves a pending row the sweep reconciles, never a paid-but-unrecorded
// transaction. The whole write sequence runs under the transaction's own
// lock so a completion signal racing the initiation blocks until the row
// is fully written.
func (s *PaymentService) InitiatePending(ctx context.Context, eventID, roleID string, actor domain.ActorIdentity) (*domain.PendingTransaction, string, error) {
	if err := actor.Validate(); err != nil {
		return nil, "", err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, "", fmt.Errorf("check event: %w", err)
	}

	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, "", fmt.Errorf("check role: %w", err)
	}
	if role.EventID != eventID {
		return nil, "", domain.ErrRoleNotFound
	}
	if !role.RequiresPayment() {
		return nil, "", domain.ErrPaymentNotRequired
	}

	var user *domain.User
	if actor.UserID != "" {
		user, err = s.userRepo.GetByID(ctx, actor.UserID)
		if err != nil {
			return nil, "", fmt.Errorf("check user: %w", err)
		}
	}

	open, err := s.txnRepo.FindOpenByRoleAndActor(ctx, roleID, actor)
	if err != nil {
		return nil, "", fmt.Errorf("find open checkout: %w", err)
	}
	if open != nil {
		if open.Status == domain.TransactionStatusCompleted {
			return nil, "", domain.ErrAlreadyPurchased
		}
		return nil, "", domain.ErrCheckoutInProgress
	}

	txn := &domain.PendingTransaction{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RoleID:      roleID,
		Actor:       actor,
		AmountCents: role.PriceCents,
		Status:      domain.TransactionStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	txn.LockKey = domain.CompletionLockKey(txn.ID)

	var session *ports.CheckoutSession
	err = s.locker.Do(ctx, txn.LockKey, s.lockTTL, s.lockWait, func(ctx context.Context) error {
		if err := s.txnRepo.Create(ctx, txn); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		created, err := s.gateway.CreateSession(ctx, txn, event.Title+" / "+role.Name)
		if err != nil {
			// the row exists but no session does; fail it right away so
			// the actor can retry instead of waiting for the sweep
			now := time.Now().UTC()
			if serr := s.txnRepo.MarkSettled(ctx, txn.ID, domain.TransactionStatusFailed, "", now); serr != nil {
				s.logger.Error("failed to void transaction after gateway error",
					logger.String("transaction_id", txn.ID),
					logger.String("error", serr.Error()),
				)
			}
			return fmt.Errorf("create checkout session: %w", err)
		}
		session = created

		if err := s.txnRepo.SetExternalRef(ctx, txn.ID, created.Reference); err != nil {
			// best effort: completion can still match on the id carried
			// in the session metadata
			s.logger.Warn("failed to store external ref",
				logger.String("transaction_id", txn.ID),
				logger.String("external_ref", created.Reference),
				logger.String("error", err.Error()),
			)
		} else {
			txn.ExternalRef = created.Reference
		}

		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("initiate checkout %s: %w", txn.ID, err)
	}

	s.logger.Info("checkout created",
		logger.String("transaction_id", txn.ID),
		logger.String("resource_key", role.ResourceKey()),
		logger.String("actor", actor.String()),
		logger.Int64("amount_cents", txn.AmountCents),
	)

	if user != nil {
		go s.notifier.NotifyCheckoutStarted(context.WithoutCancel(ctx), user, event, role, session.CheckoutURL)
	}

	return txn, session.CheckoutURL, nil
}

// Complete applies a verified gateway signal to the transaction it
// refers to. Redelivered signals return the already settled record
// unchanged; the pending-to-settled transition happens exactly once.
func (s *PaymentService) Complete(ctx context.Context, signal domain.CompletionSignal) (*domain.PendingTransaction, error) {
	if err := signal.Validate(); err != nil {
		return nil, err
	}

	txnID := signal.TransactionID
	var lockKey string
	if txnID != "" {
		lockKey = domain.CompletionLockKey(txnID)
	} else {
		// legacy signal without the correlation id: locate the row by the
		// session reference, serialize on the reference-derived key
		located, err := s.txnRepo.FindByExternalRef(ctx, signal.ExternalRef)
		if err != nil {
			return nil, fmt.Errorf("locate transaction by ref: %w", err)
		}
		if located == nil {
			return nil, domain.ErrTransactionNotFound
		}
		txnID = located.ID
		lockKey = domain.LegacyCompletionLockKey(signal.ExternalRef)
	}

	var (
		result       *domain.PendingTransaction
		transitioned bool
	)
	err := s.locker.Do(ctx, lockKey, s.lockTTL, s.lockWait, func(ctx context.Context) error {
		txn, err := s.txnRepo.GetByID(ctx, txnID)
		if err != nil {
			return fmt.Errorf("get transaction: %w", err)
		}
		if txn.Settled() {
			result = txn
			return nil
		}

		status := domain.TransactionStatusFailed
		if signal.Succeeded {
			status = domain.TransactionStatusCompleted
		}

		now := time.Now().UTC()
		if err = s.txnRepo.MarkSettled(ctx, txn.ID, status, signal.ExternalRef, now); err != nil {
			if errors.Is(err, domain.ErrTransactionSettled) {
				// settled between our read and our write; report whatever
				// won
				settled, rerr := s.txnRepo.GetByID(ctx, txnID)
				if rerr != nil {
					return fmt.Errorf("re-read settled transaction: %w", rerr)
				}
				result = settled
				return nil
			}
			return fmt.Errorf("settle transaction: %w", err)
		}

		txn.Status = status
		txn.CompletedAt = &now
		if signal.ExternalRef != "" {
			txn.ExternalRef = signal.ExternalRef
		}
		result = txn
		transitioned = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("complete transaction %s: %w", txnID, err)
	}

	if !transitioned {
		s.logger.Info("completion signal replayed",
			logger.String("transaction_id", result.ID),
			logger.String("status", string(result.Status)),
		)
		return result, nil
	}

	s.logger.Info("transaction settled",
		logger.String("transaction_id", result.ID),
		logger.String("status", string(result.Status)),
		logger.String("external_ref", result.ExternalRef),
	)

	if result.Status == domain.TransactionStatusCompleted {
		go s.notifyCompleted(context.WithoutCancel(ctx), result)
	}

	return result, nil
}

func (s *PaymentService) GetByID(ctx context.Context, id string) (*domain.PendingTransaction, error) {
	return s.txnRepo.GetByID(ctx, id)
}

// ExpireStale fails pending transactions older than the checkout TTL.
// Each one is settled under its own completion lock, so a signal that
// arrives mid-sweep still serializes correctly. One bad item never stops
// the sweep.
func (s *PaymentService) ExpireStale(ctx context.Context) ([]*domain.PendingTransaction, error) {
	cutoff := time.Now().UTC().Add(-s.checkoutTTL)

	stale, err := s.txnRepo.ListStalePending(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list stale transactions: %w", err)
	}

	var expired []*domain.PendingTransaction
	for _, txn := range stale {
		lockKey := txn.LockKey
		if lockKey == "" {
			lockKey = domain.CompletionLockKey(txn.ID)
		}

		err := s.locker.Do(ctx, lockKey, s.lockTTL, sweepLockWait, func(ctx context.Context) error {
			current, err := s.txnRepo.GetByID(ctx, txn.ID)
			if err != nil {
				return err
			}
			if current.Settled() {
				return nil
			}

			now := time.Now().UTC()
			if err = s.txnRepo.MarkSettled(ctx, txn.ID, domain.TransactionStatusFailed, "", now); err != nil {
				if errors.Is(err, domain.ErrTransactionSettled) {
					return nil
				}
				return err
			}

			txn.Status = domain.TransactionStatusFailed
			txn.CompletedAt = &now
			expired = append(expired, txn)
			return nil
		})
		if err != nil {
			s.logger.Error("failed to expire transaction",
				logger.String("transaction_id", txn.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
	}

	if len(expired) > 0 {
		s.logger.Info("stale checkouts expired",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *PaymentService) notifyCompleted(ctx context.Context, txn *domain.PendingTransaction) {
	user, event, role, ok := s.loadNotificationTargets(ctx, txn)
	if !ok {
		return
	}
	s.notifier.NotifyPaymentCompleted(ctx, user, event, role)
}

func (s *PaymentService) notifyExpired(ctx context.Context, txns []*domain.PendingTransaction) {
	for _, txn := range txns {
		user, event, role, ok := s.loadNotificationTargets(ctx, txn)
		if !ok {
			continue
		}
		s.notifier.NotifyPaymentExpired(ctx, user, event, role)
	}
}

// loadNotificationTargets resolves the rows a notification needs. Guests
// have no chat to deliver to, so ok is false for them.
func (s *PaymentService) loadNotificationTargets(ctx context.Context, txn *domain.PendingTransaction) (*domain.User, *domain.Event, *domain.Role, bool) {
	if txn.Actor.UserID == "" {
		return nil, nil, nil, false
	}

	user, err := s.userRepo.GetByID(ctx, txn.Actor.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", txn.Actor.UserID),
		)
		return nil, nil, nil, false
	}

	event, err := s.eventRepo.GetByID(ctx, txn.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", txn.EventID),
		)
		return nil, nil, nil, false
	}

	role, err := s.roleRepo.GetByID(ctx, txn.RoleID)
	if err != nil {
		s.logger.Error("failed to get role for notification",
			logger.String("role_id", txn.RoleID),
		)
		return nil, nil, nil, false
	}

	return user, event, role, true
}
