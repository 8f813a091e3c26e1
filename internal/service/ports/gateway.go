package ports

import (
	"context"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
)

// CheckoutSession is what the payment provider hands back for a created
// checkout: its session reference and the URL the participant pays at.
type CheckoutSession struct {
	Reference   string
	CheckoutURL string
}

type PaymentGateway interface {
	CreateSession(ctx context.Context, txn *domain.PendingTransaction, description string) (*CheckoutSession, error)
}
