package ports

import (
	"context"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
)

// Notifier delivers best-effort messages to registered users. Calls run
// outside the lock scope; failures are logged, never propagated.
type Notifier interface {
	NotifyRegistrationConfirmed(ctx context.Context, user *domain.User, event *domain.Event, role *domain.Role)
	NotifyCheckoutStarted(ctx context.Context, user *domain.User, event *domain.Event, role *domain.Role, checkoutURL string)
	NotifyPaymentCompleted(ctx context.Context, user *domain.User, event *domain.Event, role *domain.Role)
	NotifyPaymentExpired(ctx context.Context, user *domain.User, event *domain.Event, role *domain.Role)
}
