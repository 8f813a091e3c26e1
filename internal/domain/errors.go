package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRoleNotFound         = errors.New("role not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
)

var (
	// ErrDuplicateRegistration surfaces a unique-index violation on the
	// (role, actor) pair. Callers treat it as a successful replay, not a
	// failure.
	ErrDuplicateRegistration = errors.New("registration already exists")
	ErrScheduleConflict      = errors.New("registration overlaps another role's time window")
	ErrPaymentRequired       = errors.New("role requires payment, use checkout")
	ErrPaymentNotRequired    = errors.New("role is free, register directly")
	ErrTransactionSettled    = errors.New("transaction is already settled")
	ErrCheckoutInProgress    = errors.New("checkout already in progress for this role")
	ErrAlreadyPurchased      = errors.New("role already purchased")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrRoleNameTaken = errors.New("role name is already taken for this event")
)

var (
	ErrValidation = errors.New("validation error")
)

// CapacityExceededError is terminal: the role was full at the moment the
// check ran under the lock. Retrying cannot succeed until someone cancels.
type CapacityExceededError struct {
	ResourceKey string
	Limit       int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded for %s: limit %d reached", e.ResourceKey, e.Limit)
}

// RoleLimitExceededError is returned when an actor already holds the
// maximum number of distinct roles allowed within one event.
type RoleLimitExceededError struct {
	EventID string
	Ceiling int
}

func (e *RoleLimitExceededError) Error() string {
	return fmt.Sprintf("role limit exceeded for event %s: at most %d roles per participant", e.EventID, e.Ceiling)
}
