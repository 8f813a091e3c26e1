package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/ndmitr1/EventRegistrar/internal/gateway"
	"github.com/ndmitr1/EventRegistrar/internal/handler/dto"
	hmocks "github.com/ndmitr1/EventRegistrar/internal/handler/mocks"
	"github.com/ndmitr1/EventRegistrar/internal/lock"
)

const testWebhookSecret = "test-secret"

type svcMocks struct {
	events        *hmocks.MockEventSvc
	registrations *hmocks.MockRegistrationSvc
	payments      *hmocks.MockPaymentSvc
	users         *hmocks.MockUserSvc
	capacity      *hmocks.MockCapacitySvc
}

func setupRouter(t *testing.T, webhookSecret string) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		events:        hmocks.NewMockEventSvc(t),
		registrations: hmocks.NewMockRegistrationSvc(t),
		payments:      hmocks.NewMockPaymentSvc(t),
		users:         hmocks.NewMockUserSvc(t),
		capacity:      hmocks.NewMockCapacitySvc(t),
	}

	h := NewHandler(m.events, m.registrations, m.payments, m.users, m.capacity, gateway.NewVerifier(webhookSecret))

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/roles", h.CreateRole)
		api.GET("/events/:id/roles/:role/occupancy", h.GetRoleOccupancy)
		api.POST("/events/:id/roles/:role/register", h.Register)
		api.POST("/checkout", h.Checkout)
		api.POST("/payments/webhook", h.PaymentWebhook)
		api.GET("/transactions/:id", h.GetTransaction)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/registrations", h.GetUserRegistrations)
	}

	return m, r
}

func postJSON(t *testing.T, r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       "GopherCon",
		Description: "Annual Go conference",
		Timezone:    "Europe/Berlin",
		StartsAt:    time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
	}
	m.events.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:       "GopherCon",
		Description: "Annual Go conference",
		Timezone:    "Europe/Berlin",
		StartsAt:    "2026-10-01T10:00:00+02:00",
	})

	w := postJSON(t, r, "/api/events", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GopherCon", resp.Title)
	assert.Equal(t, "Europe/Berlin", resp.Timezone)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	w := postJSON(t, r, "/api/events", []byte(`{"title":""}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	body := []byte(`{"title":"X","description":"Y","timezone":"UTC","starts_at":"not-a-date"}`)

	w := postJSON(t, r, "/api/events", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event: domain.Event{ID: eventID, Title: "GopherCon", Timezone: "UTC", StartsAt: time.Now(), CreatedAt: time.Now()},
		Roles: []domain.RoleOccupancy{
			{
				Role:      domain.Role{ID: "r1", EventID: eventID, Name: "speaker", Capacity: 10},
				Occupancy: domain.NewCapacitySnapshot(10, 4),
			},
		},
	}
	m.events.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := getPath(t, r, "/api/events/"+eventID)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Roles, 1)
	assert.Equal(t, 6, resp.Roles[0].Occupancy.Available)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	w := getPath(t, r, "/api/events/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	m.events.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := getPath(t, r, "/api/events/"+eventID)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	events := []*domain.Event{
		{ID: "e1", Title: "Event 1", StartsAt: time.Now(), CreatedAt: time.Now()},
		{ID: "e2", Title: "Event 2", StartsAt: time.Now(), CreatedAt: time.Now()},
	}
	m.events.EXPECT().List(mock.Anything).Return(events, nil)

	w := getPath(t, r, "/api/events")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Roles ---

func TestHandler_CreateRole_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	ws := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	we := ws.Add(2 * time.Hour)
	role := &domain.Role{
		ID:          uuid.New().String(),
		EventID:     eventID,
		Name:        "workshop",
		Capacity:    20,
		PriceCents:  0,
		WindowStart: &ws,
		WindowEnd:   &we,
		CreatedAt:   time.Now().UTC(),
	}
	m.events.EXPECT().CreateRole(mock.Anything, mock.Anything).Return(role, nil)

	body, _ := json.Marshal(dto.CreateRoleRequest{
		Name:        "workshop",
		Capacity:    20,
		WindowDate:  "2026-10-01",
		WindowStart: "10:00",
		WindowEnd:   "12:00",
	})

	w := postJSON(t, r, "/api/events/"+eventID+"/roles", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RoleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "workshop", resp.Name)
	assert.NotEmpty(t, resp.WindowStart)
	assert.NotEmpty(t, resp.WindowEnd)
}

func TestHandler_CreateRole_InvalidEventID(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	body := []byte(`{"name":"speaker","capacity":5}`)

	w := postJSON(t, r, "/api/events/bad-id/roles", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRole_ZeroCapacity(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	body := []byte(`{"name":"speaker","capacity":0}`)

	w := postJSON(t, r, "/api/events/"+eventID+"/roles", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRole_NameTaken(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	m.events.EXPECT().CreateRole(mock.Anything, mock.Anything).Return(nil, domain.ErrRoleNameTaken)

	body, _ := json.Marshal(dto.CreateRoleRequest{Name: "speaker", Capacity: 5})

	w := postJSON(t, r, "/api/events/"+eventID+"/roles", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetRoleOccupancy_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	m.capacity.EXPECT().Occupancy(mock.Anything, eventID, roleID).Return(domain.NewCapacitySnapshot(10, 7), nil)

	w := getPath(t, r, "/api/events/"+eventID+"/roles/"+roleID+"/occupancy")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OccupancyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, 7, resp.Occupied)
	assert.Equal(t, 3, resp.Available)
}

func TestHandler_GetRoleOccupancy_RoleNotFound(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	m.capacity.EXPECT().Occupancy(mock.Anything, eventID, roleID).Return(domain.CapacitySnapshot{}, domain.ErrRoleNotFound)

	w := getPath(t, r, "/api/events/"+eventID+"/roles/"+roleID+"/occupancy")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Registrations ---

func TestHandler_Register_Created(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	userID := uuid.New().String()
	result := &domain.RegistrationResult{
		Registration: &domain.RegistrationRecord{
			ID:        uuid.New().String(),
			EventID:   eventID,
			RoleID:    roleID,
			Actor:     domain.ActorIdentity{UserID: userID},
			Status:    domain.RegistrationStatusActive,
			CreatedAt: time.Now().UTC(),
		},
	}

	m.registrations.EXPECT().
		Register(mock.Anything, domain.RegistrationIntent{
			EventID: eventID,
			RoleID:  roleID,
			Actor:   domain.ActorIdentity{UserID: userID},
		}).
		Return(result, nil)

	body, _ := json.Marshal(dto.RegisterRequest{UserID: userID})

	w := postJSON(t, r, "/api/events/"+eventID+"/roles/"+roleID+"/register", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegisterResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Duplicate)
	assert.Equal(t, "active", resp.Registration.Status)
}

func TestHandler_Register_Replayed(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	result := &domain.RegistrationResult{
		Registration: &domain.RegistrationRecord{
			ID:      "reg-1",
			EventID: eventID,
			RoleID:  roleID,
			Actor:   domain.ActorIdentity{GuestEmail: "guest@example.com"},
			Status:  domain.RegistrationStatusActive,
		},
		Duplicate: true,
	}
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything).Return(result, nil)

	body, _ := json.Marshal(dto.RegisterRequest{GuestEmail: "guest@example.com"})

	// повтор не создаёт ничего нового, поэтому 200, а не 201
	w := postJSON(t, r, "/api/events/"+eventID+"/roles/"+roleID+"/register", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegisterResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Duplicate)
}

func TestHandler_Register_CapacityFull(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, &domain.CapacityExceededError{ResourceKey: eventID + ":" + roleID, Limit: 10})

	body, _ := json.Marshal(dto.RegisterRequest{GuestEmail: "late@example.com"})

	w := postJSON(t, r, "/api/events/"+eventID+"/roles/"+roleID+"/register", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Register_ScheduleConflict(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrScheduleConflict)

	body, _ := json.Marshal(dto.RegisterRequest{GuestEmail: "busy@example.com"})

	w := postJSON(t, r, "/api/events/"+eventID+"/roles/"+roleID+"/register", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Register_PaymentRequired(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrPaymentRequired)

	body, _ := json.Marshal(dto.RegisterRequest{GuestEmail: "payer@example.com"})

	w := postJSON(t, r, "/api/events/"+eventID+"/roles/"+roleID+"/register", body)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestHandler_Register_LockBusy(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, lock.ErrTimeout)

	body, _ := json.Marshal(dto.RegisterRequest{GuestEmail: "waiting@example.com"})

	w := postJSON(t, r, "/api/events/"+eventID+"/roles/"+roleID+"/register", body)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_Register_InvalidRoleID(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	body := []byte(`{"guest_email":"guest@example.com"}`)

	w := postJSON(t, r, "/api/events/"+eventID+"/roles/bad-id/register", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_MalformedGuestEmail(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	body := []byte(`{"guest_email":"not-an-email"}`)

	w := postJSON(t, r, "/api/events/"+eventID+"/roles/"+roleID+"/register", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Payments ---

func TestHandler_Checkout_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	userID := uuid.New().String()
	txn := &domain.PendingTransaction{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RoleID:      roleID,
		Actor:       domain.ActorIdentity{UserID: userID},
		AmountCents: 5000,
		Status:      domain.TransactionStatusPending,
		ExternalRef: "cs_123",
		CreatedAt:   time.Now().UTC(),
	}

	m.payments.EXPECT().
		InitiatePending(mock.Anything, eventID, roleID, domain.ActorIdentity{UserID: userID}).
		Return(txn, "https://pay.example.com/cs_123", nil)

	body, _ := json.Marshal(dto.CheckoutRequest{EventID: eventID, RoleID: roleID, UserID: userID})

	w := postJSON(t, r, "/api/checkout", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://pay.example.com/cs_123", resp.CheckoutURL)
	assert.Equal(t, "pending", resp.Transaction.Status)
	assert.Equal(t, int64(5000), resp.Transaction.AmountCents)
}

func TestHandler_Checkout_InProgress(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	m.payments.EXPECT().InitiatePending(mock.Anything, eventID, roleID, mock.Anything).
		Return(nil, "", domain.ErrCheckoutInProgress)

	body, _ := json.Marshal(dto.CheckoutRequest{EventID: eventID, RoleID: roleID, GuestEmail: "payer@example.com"})

	w := postJSON(t, r, "/api/checkout", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Checkout_AlreadyPurchased(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	m.payments.EXPECT().InitiatePending(mock.Anything, eventID, roleID, mock.Anything).
		Return(nil, "", domain.ErrAlreadyPurchased)

	body, _ := json.Marshal(dto.CheckoutRequest{EventID: eventID, RoleID: roleID, GuestEmail: "payer@example.com"})

	w := postJSON(t, r, "/api/checkout", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Checkout_FreeRole(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	eventID := uuid.New().String()
	roleID := uuid.New().String()
	m.payments.EXPECT().InitiatePending(mock.Anything, eventID, roleID, mock.Anything).
		Return(nil, "", domain.ErrPaymentNotRequired)

	body, _ := json.Marshal(dto.CheckoutRequest{EventID: eventID, RoleID: roleID, GuestEmail: "payer@example.com"})

	w := postJSON(t, r, "/api/checkout", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Checkout_MissingRole(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	body := []byte(`{"event_id":"` + uuid.New().String() + `","guest_email":"payer@example.com"}`)

	w := postJSON(t, r, "/api/checkout", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Webhook ---

func signedWebhook(t *testing.T, r http.Handler, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(gateway.SignatureHeader, signature)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_PaymentWebhook_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	txnID := uuid.New().String()
	body := []byte(`{"type":"checkout.session.completed","data":{"session_id":"cs_1","status":"succeeded","metadata":{"transaction_id":"` + txnID + `"}}}`)

	m.payments.EXPECT().
		Complete(mock.Anything, domain.CompletionSignal{
			TransactionID: txnID,
			ExternalRef:   "cs_1",
			Succeeded:     true,
		}).
		Return(&domain.PendingTransaction{ID: txnID, Status: domain.TransactionStatusCompleted}, nil)

	w := signedWebhook(t, r, body, gateway.Sign(body, testWebhookSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"completed"}`, w.Body.String())
}

func TestHandler_PaymentWebhook_LegacySignal(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	// старый формат без metadata: транзакцию ищем по session_id
	body := []byte(`{"type":"checkout.session.completed","data":{"session_id":"cs_9","status":"failed"}}`)

	m.payments.EXPECT().
		Complete(mock.Anything, domain.CompletionSignal{ExternalRef: "cs_9"}).
		Return(&domain.PendingTransaction{ID: "t9", Status: domain.TransactionStatusFailed}, nil)

	w := signedWebhook(t, r, body, gateway.Sign(body, testWebhookSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"failed"}`, w.Body.String())
}

func TestHandler_PaymentWebhook_TamperedBody(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	body := []byte(`{"type":"checkout.session.completed","data":{"session_id":"cs_1","status":"succeeded"}}`)
	signature := gateway.Sign([]byte(`different body`), testWebhookSecret)

	w := signedWebhook(t, r, body, signature)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_PaymentWebhook_MissingSignature(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	body := []byte(`{"type":"checkout.session.completed","data":{"session_id":"cs_1","status":"succeeded"}}`)

	w := signedWebhook(t, r, body, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_PaymentWebhook_EmptySecretRejectsAll(t *testing.T) {
	_, r := setupRouter(t, "")

	// даже корректно подписанный запрос отклоняется, пока секрет не задан
	body := []byte(`{"type":"checkout.session.completed","data":{"session_id":"cs_1","status":"succeeded"}}`)

	w := signedWebhook(t, r, body, gateway.Sign(body, ""))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_PaymentWebhook_MalformedPayload(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	body := []byte(`{"data":{"status":"succeeded"}}`) // session_id отсутствует

	w := signedWebhook(t, r, body, gateway.Sign(body, testWebhookSecret))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PaymentWebhook_UnknownTransaction(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	body := []byte(`{"type":"checkout.session.completed","data":{"session_id":"cs_ghost","status":"succeeded"}}`)

	m.payments.EXPECT().Complete(mock.Anything, mock.Anything).Return(nil, domain.ErrTransactionNotFound)

	// не 2xx: шлюз будет доставлять повторно, пока строка не появится
	w := signedWebhook(t, r, body, gateway.Sign(body, testWebhookSecret))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Transactions ---

func TestHandler_GetTransaction_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	txnID := uuid.New().String()
	completedAt := time.Now().UTC()
	txn := &domain.PendingTransaction{
		ID:          txnID,
		Status:      domain.TransactionStatusCompleted,
		ExternalRef: "cs_123",
		CreatedAt:   time.Now().UTC(),
		CompletedAt: &completedAt,
	}
	m.payments.EXPECT().GetByID(mock.Anything, txnID).Return(txn, nil)

	w := getPath(t, r, "/api/transactions/"+txnID)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.NotEmpty(t, resp.CompletedAt)
}

func TestHandler_GetTransaction_InvalidID(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	w := getPath(t, r, "/api/transactions/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTransaction_NotFound(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	txnID := uuid.New().String()
	m.payments.EXPECT().GetByID(mock.Anything, txnID).Return(nil, domain.ErrTransactionNotFound)

	w := getPath(t, r, "/api/transactions/"+txnID)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now().UTC(),
	}
	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice", Email: "alice@example.com"})

	w := postJSON(t, r, "/api/users", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	w := postJSON(t, r, "/api/users", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice", Email: "alice@example.com"})

	w := postJSON(t, r, "/api/users", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	users := []*domain.User{
		{ID: "u1", Username: "alice", Email: "alice@example.com", CreatedAt: time.Now()},
	}
	m.users.EXPECT().List(mock.Anything).Return(users, nil)

	w := getPath(t, r, "/api/users")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserRegistrations_Success(t *testing.T) {
	m, r := setupRouter(t, testWebhookSecret)

	userID := uuid.New().String()
	regs := []*domain.RegistrationRecord{
		{
			ID:        "reg-1",
			EventID:   "e1",
			RoleID:    "r1",
			Actor:     domain.ActorIdentity{UserID: userID},
			Status:    domain.RegistrationStatusActive,
			CreatedAt: time.Now().UTC(),
		},
	}
	m.registrations.EXPECT().ListByUser(mock.Anything, userID).Return(regs, nil)

	w := getPath(t, r, "/api/users/"+userID+"/registrations")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, userID, resp[0].UserID)
}

func TestHandler_GetUserRegistrations_InvalidID(t *testing.T) {
	_, r := setupRouter(t, testWebhookSecret)

	w := getPath(t, r, "/api/users/not-a-uuid/registrations")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
