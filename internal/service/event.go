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
)

type EventService struct {
	repo     ports.EventRepo
	roleRepo ports.RoleRepo
}

func NewEventService(repo ports.EventRepo, roleRepo ports.RoleRepo) *EventService {
	return &EventService{
		repo:     repo,
		roleRepo: roleRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if err := schedule.ValidateTimezone(input.Timezone); err != nil {
		if errors.Is(err, schedule.ErrUnknownTimezone) {
			return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrValidation, input.Timezone)
		}
		return nil, fmt.Errorf("validate timezone: %w", err)
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Timezone:    input.Timezone,
		StartsAt:    input.StartsAt.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// CreateRole adds a role to an event. The optional time window arrives as
// civil wall-clock values in the event's timezone and is stored as UTC
// instants, resolved deterministically even when the window falls on a
// DST transition.
func (s *EventService) CreateRole(ctx context.Context, input domain.CreateRoleInput) (*domain.Role, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price_cents must not be negative", domain.ErrValidation)
	}

	event, err := s.repo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	role := &domain.Role{
		ID:         uuid.New().String(),
		EventID:    event.ID,
		Name:       input.Name,
		Capacity:   input.Capacity,
		PriceCents: input.PriceCents,
		CreatedAt:  time.Now().UTC(),
	}

	if input.WindowDate != "" || input.WindowStart != "" || input.WindowEnd != "" {
		start, end, err := resolveWindow(input, event.Timezone)
		if err != nil {
			return nil, err
		}
		role.WindowStart = &start
		role.WindowEnd = &end
	}

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}

	return role, nil
}

func resolveWindow(input domain.CreateRoleInput, tzID string) (time.Time, time.Time, error) {
	var zero time.Time

	if input.WindowDate == "" || input.WindowStart == "" || input.WindowEnd == "" {
		return zero, zero, fmt.Errorf("%w: window_date, window_start and window_end must be set together", domain.ErrValidation)
	}

	date, err := schedule.ParseDate(input.WindowDate)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	startClock, err := schedule.ParseWallClock(input.WindowStart)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	endClock, err := schedule.ParseWallClock(input.WindowEnd)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	start, err := schedule.ToAbsolute(date, startClock, tzID)
	if err != nil {
		return zero, zero, fmt.Errorf("resolve window start: %w", err)
	}
	end, err := schedule.ToAbsolute(date, endClock, tzID)
	if err != nil {
		return zero, zero, fmt.Errorf("resolve window end: %w", err)
	}
	if !end.After(start) {
		return zero, zero, fmt.Errorf("%w: window_end must be after window_start", domain.ErrValidation)
	}

	return start, end, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// GetDetails returns the event together with every role and its current
// occupancy. This is the reporting read: unlocked, so a busy role may be
// a moment stale.
func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roles, err := s.roleRepo.ListOccupancy(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list role occupancy: %w", err)
	}

	details := &domain.EventDetails{
		Event: *event,
		Roles: make([]domain.RoleOccupancy, len(roles)),
	}
	for i, r := range roles {
		details.Roles[i] = *r
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
