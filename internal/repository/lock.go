package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
)

// LockStore backs the lock service with a Postgres table so mutual
// exclusion holds across service instances. Each primitive is a single
// statement, so atomicity comes from the database itself.
//
// Calls go straight to the master without the usual retry strategy:
// retrying is the lock service's poll loop's job, and a stale success
// response must not be able to claim a key twice.
type LockStore struct {
	db *dbpg.DB
}

func NewLockStore(db *dbpg.DB) *LockStore {
	return &LockStore{db: db}
}

// TryAcquire claims the key unless a live entry with a different token
// holds it. Re-claiming with the same token refreshes the expiry, which
// keeps the call safe to repeat after a lost response.
func (s *LockStore) TryAcquire(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	query := `INSERT INTO resource_locks (lock_key, holder_token, acquired_at, expires_at)
			  VALUES ($1, $2, now(), now() + make_interval(secs => $3))
			  ON CONFLICT (lock_key) DO UPDATE
			  SET holder_token = EXCLUDED.holder_token,
				  acquired_at  = EXCLUDED.acquired_at,
				  expires_at   = EXCLUDED.expires_at
			  WHERE resource_locks.expires_at <= now()
				 OR resource_locks.holder_token = EXCLUDED.holder_token`

	res, err := s.db.Master.ExecContext(ctx, query, key, token, ttl.Seconds())
	if err != nil {
		return false, fmt.Errorf("claim lock: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim lock rows affected: %w", err)
	}

	return rows > 0, nil
}

// Release deletes the key only while the caller's token still holds it.
func (s *LockStore) Release(ctx context.Context, key, token string) (bool, error) {
	query := `DELETE FROM resource_locks
			  WHERE lock_key = $1 AND holder_token = $2`

	res, err := s.db.Master.ExecContext(ctx, query, key, token)
	if err != nil {
		return false, fmt.Errorf("release lock: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("release lock rows affected: %w", err)
	}

	return rows > 0, nil
}

// DeleteExpired removes lock rows whose TTL ran out before the cutoff.
// Expired rows are already claimable in place, this just keeps the table
// from accumulating dead keys.
func (s *LockStore) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM resource_locks WHERE expires_at <= $1`

	res, err := s.db.Master.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired locks: %w", err)
	}

	return res.RowsAffected()
}
