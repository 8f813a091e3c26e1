package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TransactionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTransactionRepo(db *dbpg.DB) *TransactionRepository {
	return &TransactionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the row in status pending. The partial unique indexes
// on (role_id, user_id) and (role_id, guest_email) over non-failed rows
// reject a second open checkout for the same role and actor.
func (r *TransactionRepository) Create(ctx context.Context, t *domain.PendingTransaction) error {
	query := `INSERT INTO pending_transactions
				  (id, event_id, role_id, user_id, guest_email, amount_cents, status, external_ref, lock_key, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.EventID, t.RoleID,
		nullable(t.Actor.UserID), nullable(t.Actor.GuestEmail),
		t.AmountCents, t.Status, nullable(t.ExternalRef), t.LockKey, t.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrCheckoutInProgress
			case "23503":
				return domain.ErrRoleNotFound
			}
		}
		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.PendingTransaction, error) {
	query := selectTransaction + ` WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	t, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}

	return t, nil
}

// FindByExternalRef locates a transaction by the gateway's session
// reference, or returns (nil, nil). Legacy completion signals carry only
// this reference.
func (r *TransactionRepository) FindByExternalRef(ctx context.Context, ref string) (*domain.PendingTransaction, error) {
	query := selectTransaction + ` WHERE external_ref = $1 ORDER BY created_at DESC LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ref)
	if err != nil {
		return nil, fmt.Errorf("find transaction by ref: %w", err)
	}

	t, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}

	return t, nil
}

// FindOpenByRoleAndActor returns the actor's pending or completed
// transaction for the role, or (nil, nil). Failed transactions do not
// block a new checkout.
func (r *TransactionRepository) FindOpenByRoleAndActor(ctx context.Context, roleID string, actor domain.ActorIdentity) (*domain.PendingTransaction, error) {
	query := selectTransaction + `
			  WHERE role_id = $1
			    AND status <> $2
			    AND (user_id = $3 OR guest_email = $4)
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		roleID, domain.TransactionStatusFailed,
		nullable(actor.UserID), nullable(actor.GuestEmail),
	)
	if err != nil {
		return nil, fmt.Errorf("find open transaction: %w", err)
	}

	t, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}

	return t, nil
}

// SetExternalRef attaches the gateway session reference to a still
// pending transaction.
func (r *TransactionRepository) SetExternalRef(ctx context.Context, id, ref string) error {
	query := `UPDATE pending_transactions
			  SET external_ref = $2
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, ref, domain.TransactionStatusPending)
	if err != nil {
		return fmt.Errorf("set external ref: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("external ref rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTransactionSettled
	}

	return nil
}

// MarkSettled moves a pending transaction to a terminal status. The
// status guard in the WHERE clause makes the write idempotent even if a
// second settle attempt ever got past the lock.
func (r *TransactionRepository) MarkSettled(ctx context.Context, id string, status domain.TransactionStatus, externalRef string, completedAt time.Time) error {
	query := `UPDATE pending_transactions
			  SET status = $2,
				  external_ref = COALESCE(NULLIF($3, ''), external_ref),
				  completed_at = $4
			  WHERE id = $1 AND status = $5`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, status, externalRef, completedAt, domain.TransactionStatusPending,
	)
	if err != nil {
		return fmt.Errorf("settle transaction: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("settle rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTransactionSettled
	}

	return nil
}

// ListStalePending returns pending transactions created before the
// cutoff. The sweep settles them one by one under their own locks.
func (r *TransactionRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]*domain.PendingTransaction, error) {
	query := selectTransaction + ` WHERE status = $1 AND created_at < $2 ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.TransactionStatusPending, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list stale transactions: %w", err)
	}
	defer rows.Close()

	var res []*domain.PendingTransaction
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan stale transaction: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

const selectTransaction = `SELECT id, event_id, role_id, user_id, guest_email, amount_cents, status, external_ref, lock_key, created_at, completed_at
						   FROM pending_transactions`

func scanTransaction(scan func(...any) error) (*domain.PendingTransaction, error) {
	var (
		t           domain.PendingTransaction
		userID      sql.NullString
		guestEmail  sql.NullString
		externalRef sql.NullString
		completedAt sql.NullTime
	)
	if err := scan(
		&t.ID, &t.EventID, &t.RoleID,
		&userID, &guestEmail,
		&t.AmountCents, &t.Status, &externalRef, &t.LockKey,
		&t.CreatedAt, &completedAt,
	); err != nil {
		return nil, err
	}
	t.Actor = domain.ActorIdentity{UserID: userID.String, GuestEmail: guestEmail.String}
	t.ExternalRef = externalRef.String
	if completedAt.Valid {
		done := completedAt.Time
		t.CompletedAt = &done
	}
	return &t, nil
}
