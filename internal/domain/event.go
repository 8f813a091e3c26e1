package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timezone    string    `json:"timezone"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Role is a bookable slot category within an event (speaker, volunteer,
// attendee...). Capacity is enforced per role, not per event. A role with
// PriceCents > 0 requires payment before a registration is created.
type Role struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	Name        string     `json:"name"`
	Capacity    int        `json:"capacity"`
	PriceCents  int64      `json:"price_cents"`
	WindowStart *time.Time `json:"window_start,omitempty"`
	WindowEnd   *time.Time `json:"window_end,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ResourceKey names the capacity-protected resource a role represents.
// All writers competing for the same role serialize on this key.
func (r *Role) ResourceKey() string {
	return r.EventID + ":" + r.ID
}

func (r *Role) RequiresPayment() bool {
	return r.PriceCents > 0
}

// HasWindow reports whether the role occupies a concrete time span.
// Roles without a window never participate in schedule-conflict checks.
func (r *Role) HasWindow() bool {
	return r.WindowStart != nil && r.WindowEnd != nil
}

type EventDetails struct {
	Event Event           `json:"event"`
	Roles []RoleOccupancy `json:"roles"`
}

type RoleOccupancy struct {
	Role      Role             `json:"role"`
	Occupancy CapacitySnapshot `json:"occupancy"`
}

type CreateEventInput struct {
	Title       string
	Description string
	Timezone    string
	StartsAt    time.Time
}

// CreateRoleInput carries the role window as civil wall-clock values in
// the event timezone; conversion to absolute instants happens in the
// service layer.
type CreateRoleInput struct {
	EventID     string
	Name        string
	Capacity    int
	PriceCents  int64
	WindowDate  string
	WindowStart string
	WindowEnd   string
}
