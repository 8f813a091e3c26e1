package domain

import (
	"fmt"
	"strings"
)

// ActorIdentity identifies who a registration belongs to: either a
// registered user by ID or a guest by e-mail. Exactly one side is set.
type ActorIdentity struct {
	UserID     string `json:"user_id,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`
}

func (a ActorIdentity) IsGuest() bool {
	return a.UserID == "" && a.GuestEmail != ""
}

func (a ActorIdentity) Validate() error {
	switch {
	case a.UserID == "" && a.GuestEmail == "":
		return fmt.Errorf("%w: either user_id or guest_email is required", ErrValidation)
	case a.UserID != "" && a.GuestEmail != "":
		return fmt.Errorf("%w: user_id and guest_email are mutually exclusive", ErrValidation)
	case a.GuestEmail != "" && !strings.Contains(a.GuestEmail, "@"):
		return fmt.Errorf("%w: guest_email must be a valid e-mail address", ErrValidation)
	}
	return nil
}

// String renders the identity for logs and error messages.
func (a ActorIdentity) String() string {
	if a.IsGuest() {
		return "guest:" + a.GuestEmail
	}
	return "user:" + a.UserID
}
