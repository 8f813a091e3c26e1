package dto

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Timezone    string `json:"timezone" binding:"required"`
	StartsAt    string `json:"starts_at" binding:"required"`
}

// CreateRoleRequest carries the optional time window as wall-clock
// strings in the event's timezone ("2026-07-14", "18:00", "20:00").
type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	PriceCents  int64  `json:"price_cents"`
	WindowDate  string `json:"window_date"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
}

// RegisterRequest identifies the actor: exactly one of user_id or
// guest_email, checked in the service.
type RegisterRequest struct {
	UserID     string `json:"user_id" binding:"omitempty,uuid"`
	GuestEmail string `json:"guest_email" binding:"omitempty,email"`
}

type CheckoutRequest struct {
	EventID    string `json:"event_id" binding:"required,uuid"`
	RoleID     string `json:"role_id" binding:"required,uuid"`
	UserID     string `json:"user_id" binding:"omitempty,uuid"`
	GuestEmail string `json:"guest_email" binding:"omitempty,email"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
