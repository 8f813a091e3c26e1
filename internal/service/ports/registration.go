package ports

import (
	"context"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
)

type RegistrationRepo interface {
	Create(ctx context.Context, reg *domain.RegistrationRecord) error
	FindActive(ctx context.Context, roleID string, actor domain.ActorIdentity) (*domain.RegistrationRecord, error)
	CountActiveByRole(ctx context.Context, roleID string) (int, error)
	CountActiveByEventAndActor(ctx context.Context, eventID string, actor domain.ActorIdentity) (int, error)
	ListActiveRoles(ctx context.Context, eventID string, actor domain.ActorIdentity) ([]*domain.Role, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.RegistrationRecord, error)
}

// OccupancyReader is the capacity service as seen by the registration
// orchestrator.
type OccupancyReader interface {
	Occupancy(ctx context.Context, eventID, roleID string) (domain.CapacitySnapshot, error)
}
