package domain

import "time"

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// PendingTransaction tracks one paid registration attempt from checkout
// creation until the gateway reports an outcome. The stored LockKey is
// the key every mutation of this row must hold.
type PendingTransaction struct {
	ID          string            `json:"id"`
	EventID     string            `json:"event_id"`
	RoleID      string            `json:"role_id"`
	Actor       ActorIdentity     `json:"actor"`
	AmountCents int64             `json:"amount_cents"`
	Status      TransactionStatus `json:"status"`
	ExternalRef string            `json:"external_ref,omitempty"`
	LockKey     string            `json:"-"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

func (t *PendingTransaction) Settled() bool {
	return t.Status != TransactionStatusPending
}

// CompletionLockKey derives the lock key shared by every code path that
// settles the given transaction: checkout creation, webhook completion
// and the expiry sweep.
func CompletionLockKey(transactionID string) string {
	return "txn:complete:" + transactionID
}

// LegacyCompletionLockKey covers gateway signals that only carry the
// external session reference. Signals for the same session serialize on
// it even before the transaction row has been located.
func LegacyCompletionLockKey(externalRef string) string {
	return "txn:complete:ref:" + externalRef
}

// CompletionSignal is the provider-independent form of a gateway
// notification. TransactionID may be empty on legacy signals; ExternalRef
// is always set.
type CompletionSignal struct {
	TransactionID string
	ExternalRef   string
	Succeeded     bool
}

func (s CompletionSignal) Validate() error {
	if s.ExternalRef == "" {
		return ErrValidation
	}
	return nil
}
