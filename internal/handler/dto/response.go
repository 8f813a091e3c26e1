package dto

import (
	"time"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timezone    string `json:"timezone"`
	StartsAt    string `json:"starts_at"`
	CreatedAt   string `json:"created_at"`
}

type RoleResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	PriceCents  int64  `json:"price_cents"`
	WindowStart string `json:"window_start,omitempty"`
	WindowEnd   string `json:"window_end,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type OccupancyResponse struct {
	Limit     int `json:"limit"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

type RoleOccupancyResponse struct {
	Role      RoleResponse      `json:"role"`
	Occupancy OccupancyResponse `json:"occupancy"`
}

type EventDetailsResponse struct {
	Event EventResponse           `json:"event"`
	Roles []RoleOccupancyResponse `json:"roles"`
}

type RegistrationResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	RoleID     string `json:"role_id"`
	UserID     string `json:"user_id,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// RegisterResultResponse marks replays: duplicate is true when the
// registration already existed and the request changed nothing.
type RegisterResultResponse struct {
	Registration RegistrationResponse `json:"registration"`
	Duplicate    bool                 `json:"duplicate"`
}

type TransactionResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	RoleID      string `json:"role_id"`
	UserID      string `json:"user_id,omitempty"`
	GuestEmail  string `json:"guest_email,omitempty"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	ExternalRef string `json:"external_ref,omitempty"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

type CheckoutResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	CheckoutURL string              `json:"checkout_url"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Timezone:    e.Timezone,
		StartsAt:    e.StartsAt.Format(time.RFC3339),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToRoleResponse(r *domain.Role) RoleResponse {
	resp := RoleResponse{
		ID:         r.ID,
		EventID:    r.EventID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		PriceCents: r.PriceCents,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
	if r.WindowStart != nil {
		resp.WindowStart = r.WindowStart.Format(time.RFC3339)
	}
	if r.WindowEnd != nil {
		resp.WindowEnd = r.WindowEnd.Format(time.RFC3339)
	}
	return resp
}

func ToOccupancyResponse(s domain.CapacitySnapshot) OccupancyResponse {
	return OccupancyResponse{
		Limit:     s.Limit,
		Occupied:  s.Occupied,
		Available: s.Available,
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	roles := make([]RoleOccupancyResponse, 0, len(d.Roles))
	for i := range d.Roles {
		roles = append(roles, RoleOccupancyResponse{
			Role:      ToRoleResponse(&d.Roles[i].Role),
			Occupancy: ToOccupancyResponse(d.Roles[i].Occupancy),
		})
	}

	return EventDetailsResponse{
		Event: ToEventResponse(&d.Event),
		Roles: roles,
	}
}

func ToRegistrationResponse(r *domain.RegistrationRecord) RegistrationResponse {
	return RegistrationResponse{
		ID:         r.ID,
		EventID:    r.EventID,
		RoleID:     r.RoleID,
		UserID:     r.Actor.UserID,
		GuestEmail: r.Actor.GuestEmail,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRegisterResultResponse(res *domain.RegistrationResult) RegisterResultResponse {
	return RegisterResultResponse{
		Registration: ToRegistrationResponse(res.Registration),
		Duplicate:    res.Duplicate,
	}
}

func ToTransactionResponse(t *domain.PendingTransaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID,
		EventID:     t.EventID,
		RoleID:      t.RoleID,
		UserID:      t.Actor.UserID,
		GuestEmail:  t.Actor.GuestEmail,
		AmountCents: t.AmountCents,
		Status:      string(t.Status),
		ExternalRef: t.ExternalRef,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.CompletedAt != nil {
		resp.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
