package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/ndmitr1/EventRegistrar/internal/gateway"
	"github.com/ndmitr1/EventRegistrar/internal/handler/dto"
	"github.com/ndmitr1/EventRegistrar/internal/lock"
	"github.com/wb-go/wbf/ginext"
)

// maxWebhookBody bounds how much of a webhook request is read before
// signature verification.
const maxWebhookBody = 1 << 20

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	CreateRole(ctx context.Context, input domain.CreateRoleInput) (*domain.Role, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, intent domain.RegistrationIntent) (*domain.RegistrationResult, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.RegistrationRecord, error)
}

type PaymentSvc interface {
	InitiatePending(ctx context.Context, eventID, roleID string, actor domain.ActorIdentity) (*domain.PendingTransaction, string, error)
	Complete(ctx context.Context, signal domain.CompletionSignal) (*domain.PendingTransaction, error)
	GetByID(ctx context.Context, id string) (*domain.PendingTransaction, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type CapacitySvc interface {
	Occupancy(ctx context.Context, eventID, roleID string) (domain.CapacitySnapshot, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	paymentService      PaymentSvc
	userService         UserSvc
	capacityService     CapacitySvc
	verifier            *gateway.Verifier
}

func NewHandler(
	eventService EventSvc,
	registrationService RegistrationSvc,
	paymentService PaymentSvc,
	userService UserSvc,
	capacityService CapacitySvc,
	verifier *gateway.Verifier,
) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		paymentService:      paymentService,
		userService:         userService,
		capacityService:     capacityService,
		verifier:            verifier,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Timezone:    req.Timezone,
		StartsAt:    startsAt,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Roles

func (h *Handler) CreateRole(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateRoleInput{
		EventID:     eventID,
		Name:        req.Name,
		Capacity:    req.Capacity,
		PriceCents:  req.PriceCents,
		WindowDate:  req.WindowDate,
		WindowStart: req.WindowStart,
		WindowEnd:   req.WindowEnd,
	}

	role, err := h.eventService.CreateRole(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoleResponse(role))
}

func (h *Handler) GetRoleOccupancy(c *ginext.Context) {
	eventID := c.Param("id")
	roleID := c.Param("role")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}
	if _, err := uuid.Parse(roleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid role id"})
		return
	}

	snapshot, err := h.capacityService.Occupancy(c.Request.Context(), eventID, roleID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOccupancyResponse(snapshot))
}

// Registrations

func (h *Handler) Register(c *ginext.Context) {
	eventID := c.Param("id")
	roleID := c.Param("role")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}
	if _, err := uuid.Parse(roleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid role id"})
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	intent := domain.RegistrationIntent{
		EventID: eventID,
		RoleID:  roleID,
		Actor: domain.ActorIdentity{
			UserID:     req.UserID,
			GuestEmail: req.GuestEmail,
		},
	}

	result, err := h.registrationService.Register(c.Request.Context(), intent)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}

	c.JSON(status, dto.ToRegisterResultResponse(result))
}

func (h *Handler) GetUserRegistrations(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	regs, err := h.registrationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Payments

func (h *Handler) Checkout(c *ginext.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actor := domain.ActorIdentity{
		UserID:     req.UserID,
		GuestEmail: req.GuestEmail,
	}

	txn, checkoutURL, err := h.paymentService.InitiatePending(c.Request.Context(), req.EventID, req.RoleID, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Transaction: dto.ToTransactionResponse(txn),
		CheckoutURL: checkoutURL,
	})
}

// PaymentWebhook receives completion signals from the gateway. The
// signature covers the raw body, so it is read and verified before any
// parsing. Non-2xx answers make the gateway redeliver: only a settled
// transaction (or a terminal rejection) gets a 2xx.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable body"})
		return
	}

	if err := h.verifier.Verify(body, c.Request.Header.Get(gateway.SignatureHeader)); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "signature verification failed"})
		return
	}

	signal, err := gateway.ParseSignal(body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	txn, err := h.paymentService.Complete(c.Request.Context(), signal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(txn.Status)})
}

func (h *Handler) GetTransaction(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid transaction id"})
		return
	}

	txn, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var capErr *domain.CapacityExceededError
	var ceilingErr *domain.RoleLimitExceededError

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &capErr),
		errors.As(err, &ceilingErr),
		errors.Is(err, domain.ErrScheduleConflict),
		errors.Is(err, domain.ErrCheckoutInProgress),
		errors.Is(err, domain.ErrAlreadyPurchased),
		errors.Is(err, domain.ErrTransactionSettled),
		errors.Is(err, domain.ErrRoleNameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPaymentNotRequired),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, lock.ErrTimeout),
		errors.Is(err, lock.ErrBackend):
		// retryable: the row was not touched, the caller may simply try
		// again
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
