package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/ndmitr1/EventRegistrar/internal/schedule"
	"github.com/ndmitr1/EventRegistrar/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultLockTTL     = 10 * time.Second
	defaultLockWait    = 10 * time.Second
	defaultRoleCeiling = 3
)

// RegistrationService owns the only code path that creates registration
// records. Validation runs outside the role's lock; everything that reads
// or writes occupancy runs inside it.
type RegistrationService struct {
	regRepo   ports.RegistrationRepo
	roleRepo  ports.RoleRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	occupancy ports.OccupancyReader
	locker    ports.Locker
	notifier  ports.Notifier
	logger    logger.Logger

	lockTTL     time.Duration
	lockWait    time.Duration
	roleCeiling int
}

type RegistrationOption func(*RegistrationService)

// WithRoleCeiling caps how many distinct roles one actor may hold within
// a single event.
func WithRoleCeiling(n int) RegistrationOption {
	return func(s *RegistrationService) {
		if n > 0 {
			s.roleCeiling = n
		}
	}
}

// WithRegistrationLocking overrides how long the role lock is held (ttl)
// and how long a contender waits for it (wait).
func WithRegistrationLocking(ttl, wait time.Duration) RegistrationOption {
	return func(s *RegistrationService) {
		if ttl > 0 {
			s.lockTTL = ttl
		}
		if wait > 0 {
			s.lockWait = wait
		}
	}
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	roleRepo ports.RoleRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	occupancy ports.OccupancyReader,
	locker ports.Locker,
	notifier ports.Notifier,
	logger logger.Logger,
	opts ...RegistrationOption,
) *RegistrationService {
	s := &RegistrationService{
		regRepo:     regRepo,
		roleRepo:    roleRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		occupancy:   occupancy,
		locker:      locker,
		notifier:    notifier,
		logger:      logger,
		lockTTL:     defaultLockTTL,
		lockWait:    defaultLockWait,
		roleCeiling: defaultRoleCeiling,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register claims one slot of the role for the actor. Inside the role's
// lock the order is fixed: duplicate check first, then the per-event role
// ceiling, then schedule conflicts, then capacity, then the insert. The
// duplicate check running first is what makes a replayed request succeed
// even when the role has filled up since the original attempt.
func (s *RegistrationService) Register(ctx context.Context, intent domain.RegistrationIntent) (*domain.RegistrationResult, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	// проверка, что event, role, user exist
	event, err := s.eventRepo.GetByID(ctx, intent.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	role, err := s.roleRepo.GetByID(ctx, intent.RoleID)
	if err != nil {
		return nil, fmt.Errorf("check role: %w", err)
	}
	if role.EventID != intent.EventID {
		return nil, domain.ErrRoleNotFound
	}
	if role.RequiresPayment() {
		return nil, domain.ErrPaymentRequired
	}

	var user *domain.User
	if intent.Actor.UserID != "" {
		user, err = s.userRepo.GetByID(ctx, intent.Actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("check user: %w", err)
		}
	}

	var result domain.RegistrationResult
	err = s.locker.Do(ctx, role.ResourceKey(), s.lockTTL, s.lockWait, func(ctx context.Context) error {
		existing, err := s.regRepo.FindActive(ctx, role.ID, intent.Actor)
		if err != nil {
			return fmt.Errorf("find existing registration: %w", err)
		}
		if existing != nil {
			result = domain.RegistrationResult{Registration: existing, Duplicate: true}
			return nil
		}

		held, err := s.regRepo.CountActiveByEventAndActor(ctx, intent.EventID, intent.Actor)
		if err != nil {
			return fmt.Errorf("count held roles: %w", err)
		}
		if held >= s.roleCeiling {
			return &domain.RoleLimitExceededError{EventID: intent.EventID, Ceiling: s.roleCeiling}
		}

		if role.HasWindow() {
			if err = s.checkScheduleConflict(ctx, intent, role); err != nil {
				return err
			}
		}

		snapshot, err := s.occupancy.Occupancy(ctx, intent.EventID, role.ID)
		if err != nil {
			return fmt.Errorf("read occupancy: %w", err)
		}
		if snapshot.Available <= 0 {
			return &domain.CapacityExceededError{ResourceKey: role.ResourceKey(), Limit: snapshot.Limit}
		}

		now := time.Now().UTC()
		record := &domain.RegistrationRecord{
			ID:        uuid.New().String(),
			EventID:   intent.EventID,
			RoleID:    role.ID,
			Actor:     intent.Actor,
			Status:    domain.RegistrationStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err = s.regRepo.Create(ctx, record); err != nil {
			if errors.Is(err, domain.ErrDuplicateRegistration) {
				// the partial unique index fired: someone created the same
				// registration between our check and our insert. Re-read
				// and report it as a replay.
				existing, rerr := s.regRepo.FindActive(ctx, role.ID, intent.Actor)
				if rerr != nil {
					return fmt.Errorf("re-read after duplicate: %w", rerr)
				}
				if existing != nil {
					result = domain.RegistrationResult{Registration: existing, Duplicate: true}
					return nil
				}
			}
			return fmt.Errorf("create registration: %w", err)
		}

		result = domain.RegistrationResult{Registration: record}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", role.ResourceKey(), err)
	}

	if result.Duplicate {
		s.logger.Info("registration replayed",
			logger.String("registration_id", result.Registration.ID),
			logger.String("resource_key", role.ResourceKey()),
			logger.String("actor", intent.Actor.String()),
		)
		return &result, nil
	}

	s.logger.Info("registration created",
		logger.String("registration_id", result.Registration.ID),
		logger.String("resource_key", role.ResourceKey()),
		logger.String("actor", intent.Actor.String()),
	)

	if user != nil {
		go s.notifier.NotifyRegistrationConfirmed(context.WithoutCancel(ctx), user, event, role)
	}

	return &result, nil
}

// checkScheduleConflict rejects the intent when the role's time window
// overlaps a window of another role the actor already holds in the same
// event.
func (s *RegistrationService) checkScheduleConflict(ctx context.Context, intent domain.RegistrationIntent, role *domain.Role) error {
	held, err := s.regRepo.ListActiveRoles(ctx, intent.EventID, intent.Actor)
	if err != nil {
		return fmt.Errorf("list held roles: %w", err)
	}

	for _, other := range held {
		if !other.HasWindow() {
			continue
		}
		if schedule.Overlaps(*role.WindowStart, *role.WindowEnd, *other.WindowStart, *other.WindowEnd) {
			return fmt.Errorf("%w: window overlaps role %q", domain.ErrScheduleConflict, other.Name)
		}
	}

	return nil
}

func (s *RegistrationService) ListByUser(ctx context.Context, userID string) ([]*domain.RegistrationRecord, error) {
	return s.regRepo.ListByUser(ctx, userID)
}
