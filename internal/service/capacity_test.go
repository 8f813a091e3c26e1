package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/ndmitr1/EventRegistrar/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCapacityService_Occupancy_Success(t *testing.T) {
	roleRepo := mocks.NewMockRoleRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewCapacityService(roleRepo, regRepo)

	role := &domain.Role{ID: "r1", EventID: "e1", Capacity: 10}
	roleRepo.EXPECT().GetByID(mock.Anything, "r1").Return(role, nil)
	regRepo.EXPECT().CountActiveByRole(mock.Anything, "r1").Return(7, nil)

	snapshot, err := svc.Occupancy(context.Background(), "e1", "r1")

	require.NoError(t, err)
	assert.Equal(t, 10, snapshot.Limit)
	assert.Equal(t, 7, snapshot.Occupied)
	assert.Equal(t, 3, snapshot.Available)
}

func TestCapacityService_Occupancy_Full(t *testing.T) {
	roleRepo := mocks.NewMockRoleRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewCapacityService(roleRepo, regRepo)

	role := &domain.Role{ID: "r1", EventID: "e1", Capacity: 5}
	roleRepo.EXPECT().GetByID(mock.Anything, "r1").Return(role, nil)
	regRepo.EXPECT().CountActiveByRole(mock.Anything, "r1").Return(5, nil)

	snapshot, err := svc.Occupancy(context.Background(), "e1", "r1")

	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Available)
}

func TestCapacityService_Occupancy_RoleNotFound(t *testing.T) {
	roleRepo := mocks.NewMockRoleRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewCapacityService(roleRepo, regRepo)

	roleRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoleNotFound)

	_, err := svc.Occupancy(context.Background(), "e1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestCapacityService_Occupancy_RoleFromAnotherEvent(t *testing.T) {
	roleRepo := mocks.NewMockRoleRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewCapacityService(roleRepo, regRepo)

	role := &domain.Role{ID: "r1", EventID: "other-event", Capacity: 10}
	roleRepo.EXPECT().GetByID(mock.Anything, "r1").Return(role, nil)

	_, err := svc.Occupancy(context.Background(), "e1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestCapacityService_Occupancy_CountError(t *testing.T) {
	roleRepo := mocks.NewMockRoleRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewCapacityService(roleRepo, regRepo)

	role := &domain.Role{ID: "r1", EventID: "e1", Capacity: 10}
	roleRepo.EXPECT().GetByID(mock.Anything, "r1").Return(role, nil)
	regRepo.EXPECT().CountActiveByRole(mock.Anything, "r1").Return(0, errors.New("db error"))

	_, err := svc.Occupancy(context.Background(), "e1", "r1")

	require.Error(t, err)
}
