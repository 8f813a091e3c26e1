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

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the record. Capacity is not checked here: callers hold
// the role's lock, and the partial unique indexes on (role_id, user_id)
// and (role_id, guest_email) are the last line of defence against
// duplicates slipping past it.
func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.RegistrationRecord) error {
	query := `INSERT INTO registrations (id, event_id, role_id, user_id, guest_email, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		reg.ID, reg.EventID, reg.RoleID,
		nullable(reg.Actor.UserID), nullable(reg.Actor.GuestEmail),
		reg.Status, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrDuplicateRegistration
			case "23503":
				return domain.ErrRoleNotFound
			}
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

// FindActive returns the actor's active registration for the role, or
// (nil, nil) when there is none.
func (r *RegistrationRepository) FindActive(ctx context.Context, roleID string, actor domain.ActorIdentity) (*domain.RegistrationRecord, error) {
	query := `SELECT id, event_id, role_id, user_id, guest_email, status, created_at, updated_at
			  FROM registrations
			  WHERE role_id = $1
			    AND status = $2
			    AND (user_id = $3 OR guest_email = $4)
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		roleID, domain.RegistrationStatusActive,
		nullable(actor.UserID), nullable(actor.GuestEmail),
	)
	if err != nil {
		return nil, fmt.Errorf("find registration: %w", err)
	}

	reg, err := scanRegistration(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) CountActiveByRole(ctx context.Context, roleID string) (int, error) {
	query := `SELECT COUNT(*) FROM registrations
			  WHERE role_id = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roleID, domain.RegistrationStatusActive)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan registration count: %w", err)
	}

	return count, nil
}

// CountActiveByEventAndActor counts how many distinct roles of the event
// the actor already holds. Backs the per-participant role ceiling.
func (r *RegistrationRepository) CountActiveByEventAndActor(ctx context.Context, eventID string, actor domain.ActorIdentity) (int, error) {
	query := `SELECT COUNT(*) FROM registrations
			  WHERE event_id = $1
			    AND status = $2
			    AND (user_id = $3 OR guest_email = $4)`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		eventID, domain.RegistrationStatusActive,
		nullable(actor.UserID), nullable(actor.GuestEmail),
	)
	if err != nil {
		return 0, fmt.Errorf("count actor registrations: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan actor registration count: %w", err)
	}

	return count, nil
}

// ListActiveRoles returns the roles of the event the actor is actively
// registered for, including their time windows. Backs the
// schedule-conflict check.
func (r *RegistrationRepository) ListActiveRoles(ctx context.Context, eventID string, actor domain.ActorIdentity) ([]*domain.Role, error) {
	query := `SELECT r.id, r.event_id, r.name, r.capacity, r.price_cents, r.window_start, r.window_end, r.created_at
			  FROM registrations g
			  JOIN event_roles r ON r.id = g.role_id
			  WHERE g.event_id = $1
			    AND g.status = $2
			    AND (g.user_id = $3 OR g.guest_email = $4)
			  ORDER BY r.created_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		eventID, domain.RegistrationStatusActive,
		nullable(actor.UserID), nullable(actor.GuestEmail),
	)
	if err != nil {
		return nil, fmt.Errorf("list actor roles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Role
	for rows.Next() {
		role, err := scanRole(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan actor role: %w", err)
		}
		res = append(res, role)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.RegistrationRecord, error) {
	query := `SELECT id, event_id, role_id, user_id, guest_email, status, created_at, updated_at
			  FROM registrations
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.RegistrationRecord
	for rows.Next() {
		reg, err := scanRegistration(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func scanRegistration(scan func(...any) error) (*domain.RegistrationRecord, error) {
	var (
		reg        domain.RegistrationRecord
		userID     sql.NullString
		guestEmail sql.NullString
	)
	if err := scan(
		&reg.ID, &reg.EventID, &reg.RoleID,
		&userID, &guestEmail,
		&reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	reg.Actor = domain.ActorIdentity{UserID: userID.String, GuestEmail: guestEmail.String}
	return &reg, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
