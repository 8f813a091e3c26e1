package ports

import (
	"context"
	"time"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
)

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.PendingTransaction) error
	GetByID(ctx context.Context, id string) (*domain.PendingTransaction, error)
	FindByExternalRef(ctx context.Context, ref string) (*domain.PendingTransaction, error)
	FindOpenByRoleAndActor(ctx context.Context, roleID string, actor domain.ActorIdentity) (*domain.PendingTransaction, error)
	SetExternalRef(ctx context.Context, id, ref string) error
	MarkSettled(ctx context.Context, id string, status domain.TransactionStatus, externalRef string, completedAt time.Time) error
	ListStalePending(ctx context.Context, cutoff time.Time) ([]*domain.PendingTransaction, error)
}
