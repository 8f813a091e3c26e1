package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusActive    RegistrationStatus = "active"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

type RegistrationRecord struct {
	ID        string             `json:"id"`
	EventID   string             `json:"event_id"`
	RoleID    string             `json:"role_id"`
	Actor     ActorIdentity      `json:"actor"`
	Status    RegistrationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// RegistrationIntent is a validated request to occupy one slot of a role.
type RegistrationIntent struct {
	EventID string
	RoleID  string
	Actor   ActorIdentity
}

func (i RegistrationIntent) Validate() error {
	if i.EventID == "" {
		return ErrValidation
	}
	if i.RoleID == "" {
		return ErrValidation
	}
	return i.Actor.Validate()
}

// RegistrationResult distinguishes a freshly created registration from a
// replayed duplicate. Both outcomes carry the surviving record.
type RegistrationResult struct {
	Registration *RegistrationRecord `json:"registration"`
	Duplicate    bool                `json:"duplicate"`
}

// CapacitySnapshot is a point-in-time occupancy reading for one role.
// It is only authoritative while the caller holds the role's lock.
type CapacitySnapshot struct {
	Limit     int `json:"limit"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

func NewCapacitySnapshot(limit, occupied int) CapacitySnapshot {
	available := limit - occupied
	if available < 0 {
		available = 0
	}
	return CapacitySnapshot{Limit: limit, Occupied: occupied, Available: available}
}
