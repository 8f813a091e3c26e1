package ports

import (
	"context"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type RoleRepo interface {
	Create(ctx context.Context, role *domain.Role) error
	GetByID(ctx context.Context, id string) (*domain.Role, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Role, error)
	ListOccupancy(ctx context.Context, eventID string) ([]*domain.RoleOccupancy, error)
}
