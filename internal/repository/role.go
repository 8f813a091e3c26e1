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

type RoleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoleRepo(db *dbpg.DB) *RoleRepository {
	return &RoleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	query := `INSERT INTO event_roles (id, event_id, name, capacity, price_cents, window_start, window_end, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		role.ID, role.EventID, role.Name, role.Capacity, role.PriceCents,
		role.WindowStart, role.WindowEnd, role.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrRoleNameTaken
			case "23503":
				return domain.ErrEventNotFound
			}
		}
		return fmt.Errorf("insert role: %w", err)
	}

	return nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	query := `SELECT id, event_id, name, capacity, price_cents, window_start, window_end, created_at
			  FROM event_roles
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}

	role, err := scanRole(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("scan role: %w", err)
	}

	return role, nil
}

func (r *RoleRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Role, error) {
	query := `SELECT id, event_id, name, capacity, price_cents, window_start, window_end, created_at
			  FROM event_roles
			  WHERE event_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Role
	for rows.Next() {
		role, err := scanRole(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		res = append(res, role)
	}

	return res, rows.Err()
}

// ListOccupancy returns every role of the event together with its active
// registration count. The reading is advisory; the authoritative check
// happens under the role's lock.
func (r *RoleRepository) ListOccupancy(ctx context.Context, eventID string) ([]*domain.RoleOccupancy, error) {
	query := `SELECT r.id, r.event_id, r.name, r.capacity, r.price_cents,
					 r.window_start, r.window_end, r.created_at,
					 COUNT(g.id) AS occupied
			  FROM event_roles r
			  LEFT JOIN registrations g
				  ON g.role_id = r.id
				  AND g.status = $2
			  WHERE r.event_id = $1
			  GROUP BY r.id
			  ORDER BY r.created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.RegistrationStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list role occupancy: %w", err)
	}
	defer rows.Close()

	var res []*domain.RoleOccupancy
	for rows.Next() {
		var (
			role        domain.Role
			windowStart sql.NullTime
			windowEnd   sql.NullTime
			occupied    int
		)
		if err = rows.Scan(
			&role.ID, &role.EventID, &role.Name, &role.Capacity, &role.PriceCents,
			&windowStart, &windowEnd, &role.CreatedAt,
			&occupied,
		); err != nil {
			return nil, fmt.Errorf("scan role occupancy: %w", err)
		}
		role.WindowStart, role.WindowEnd = nullableTimes(windowStart, windowEnd)

		res = append(res, &domain.RoleOccupancy{
			Role:      role,
			Occupancy: domain.NewCapacitySnapshot(role.Capacity, occupied),
		})
	}

	return res, rows.Err()
}

func scanRole(scan func(...any) error) (*domain.Role, error) {
	var (
		role        domain.Role
		windowStart sql.NullTime
		windowEnd   sql.NullTime
	)
	if err := scan(
		&role.ID, &role.EventID, &role.Name, &role.Capacity, &role.PriceCents,
		&windowStart, &windowEnd, &role.CreatedAt,
	); err != nil {
		return nil, err
	}
	role.WindowStart, role.WindowEnd = nullableTimes(windowStart, windowEnd)
	return &role, nil
}

func nullableTimes(start, end sql.NullTime) (*time.Time, *time.Time) {
	var s, e *time.Time
	if start.Valid {
		t := start.Time
		s = &t
	}
	if end.Valid {
		t := end.Time
		e = &t
	}
	return s, e
}
