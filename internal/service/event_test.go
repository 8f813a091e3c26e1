package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/ndmitr1/EventRegistrar/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateEventInput{
		Title:       "GopherCon",
		Description: "Three days of Go",
		Timezone:    "Europe/Berlin",
		StartsAt:    time.Now().Add(24 * time.Hour),
	}

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "GopherCon", event.Title)
	assert.Equal(t, "Three days of Go", event.Description)
	assert.Equal(t, "Europe/Berlin", event.Timezone)
	assert.Equal(t, time.UTC, event.StartsAt.Location())
	assert.NotEmpty(t, event.ID)
}

func TestEventService_CreateEvent_EmptyTitle(t *testing.T) {
	svc := NewEventService(nil, nil)

	input := domain.CreateEventInput{
		Timezone: "UTC",
		StartsAt: time.Now().Add(time.Hour),
	}

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_UnknownTimezone(t *testing.T) {
	svc := NewEventService(nil, nil)

	input := domain.CreateEventInput{
		Title:    "Test",
		Timezone: "Mars/Olympus",
		StartsAt: time.Now().Add(time.Hour),
	}

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_PastDate(t *testing.T) {
	svc := NewEventService(nil, nil)

	input := domain.CreateEventInput{
		Title:    "Test",
		Timezone: "UTC",
		StartsAt: time.Now().Add(-time.Hour),
	}

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_RepoError(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	repoErr := errors.New("db error")
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	input := domain.CreateEventInput{
		Title:    "Test",
		Timezone: "UTC",
		StartsAt: time.Now().Add(time.Hour),
	}

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_CreateRole_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	event := &domain.Event{ID: "e1", Title: "Conf", Timezone: "UTC"}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	roleRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateRoleInput{
		EventID:    "e1",
		Name:       "speaker",
		Capacity:   10,
		PriceCents: 2500,
	}

	role, err := svc.CreateRole(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "e1", role.EventID)
	assert.Equal(t, "speaker", role.Name)
	assert.Equal(t, 10, role.Capacity)
	assert.Equal(t, int64(2500), role.PriceCents)
	assert.False(t, role.HasWindow())
	assert.NotEmpty(t, role.ID)
}

func TestEventService_CreateRole_WithWindow(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	event := &domain.Event{ID: "e1", Timezone: "Europe/Berlin"}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	roleRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateRoleInput{
		EventID:     "e1",
		Name:        "workshop",
		Capacity:    20,
		WindowDate:  "2026-07-10",
		WindowStart: "10:00",
		WindowEnd:   "12:00",
	}

	role, err := svc.CreateRole(context.Background(), input)

	require.NoError(t, err)
	require.True(t, role.HasWindow())
	// Berlin is UTC+2 in July
	assert.Equal(t, time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC), role.WindowStart.UTC())
	assert.Equal(t, time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC), role.WindowEnd.UTC())
}

func TestEventService_CreateRole_AmbiguousWallClock(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	event := &domain.Event{ID: "e1", Timezone: "Europe/Berlin"}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	roleRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	// clocks in Berlin fall back 03:00 -> 02:00 that night, so 02:30
	// happens twice; the earlier instant (still CEST, UTC+2) wins
	input := domain.CreateRoleInput{
		EventID:     "e1",
		Name:        "night shift",
		Capacity:    5,
		WindowDate:  "2026-10-25",
		WindowStart: "02:30",
		WindowEnd:   "04:00",
	}

	role, err := svc.CreateRole(context.Background(), input)

	require.NoError(t, err)
	require.True(t, role.HasWindow())
	assert.Equal(t, time.Date(2026, 10, 25, 0, 30, 0, 0, time.UTC), role.WindowStart.UTC())
}

func TestEventService_CreateRole_PartialWindow(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	event := &domain.Event{ID: "e1", Timezone: "UTC"}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	input := domain.CreateRoleInput{
		EventID:    "e1",
		Name:       "usher",
		Capacity:   5,
		WindowDate: "2026-07-10",
	}

	_, err := svc.CreateRole(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateRole_WindowEndBeforeStart(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	event := &domain.Event{ID: "e1", Timezone: "UTC"}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	input := domain.CreateRoleInput{
		EventID:     "e1",
		Name:        "usher",
		Capacity:    5,
		WindowDate:  "2026-07-10",
		WindowStart: "12:00",
		WindowEnd:   "10:00",
	}

	_, err := svc.CreateRole(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateRole_EventNotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	input := domain.CreateRoleInput{
		EventID:  "missing",
		Name:     "speaker",
		Capacity: 10,
	}

	_, err := svc.CreateRole(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_CreateRole_ZeroCapacity(t *testing.T) {
	svc := NewEventService(nil, nil)

	input := domain.CreateRoleInput{
		EventID:  "e1",
		Name:     "speaker",
		Capacity: 0,
	}

	_, err := svc.CreateRole(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateRole_NegativePrice(t *testing.T) {
	svc := NewEventService(nil, nil)

	input := domain.CreateRoleInput{
		EventID:    "e1",
		Name:       "speaker",
		Capacity:   10,
		PriceCents: -1,
	}

	_, err := svc.CreateRole(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_GetDetails_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	event := &domain.Event{ID: "e1", Title: "Conf"}
	occupancy := []*domain.RoleOccupancy{
		{
			Role:      domain.Role{ID: "r1", EventID: "e1", Name: "speaker", Capacity: 10},
			Occupancy: domain.NewCapacitySnapshot(10, 4),
		},
		{
			Role:      domain.Role{ID: "r2", EventID: "e1", Name: "attendee", Capacity: 100},
			Occupancy: domain.NewCapacitySnapshot(100, 100),
		},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	roleRepo.EXPECT().ListOccupancy(mock.Anything, "e1").Return(occupancy, nil)

	details, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", details.Event.ID)
	require.Len(t, details.Roles, 2)
	assert.Equal(t, 6, details.Roles[0].Occupancy.Available)
	assert.Equal(t, 0, details.Roles[1].Occupancy.Available)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	roleRepo := mocks.NewMockRoleRepo(t)
	svc := NewEventService(eventRepo, roleRepo)

	events := []*domain.Event{
		{ID: "e1", Title: "Event 1"},
		{ID: "e2", Title: "Event 2"},
	}
	eventRepo.EXPECT().List(mock.Anything).Return(events, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
