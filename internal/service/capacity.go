package service

import (
	"context"
	"fmt"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/ndmitr1/EventRegistrar/internal/service/ports"
)

// CapacityService answers "how full is this role" by counting active
// registrations. It never caches and never writes: the count is computed
// fresh on every call, so a reading taken under the role's lock is exact.
type CapacityService struct {
	roleRepo ports.RoleRepo
	regRepo  ports.RegistrationRepo
}

func NewCapacityService(roleRepo ports.RoleRepo, regRepo ports.RegistrationRepo) *CapacityService {
	return &CapacityService{
		roleRepo: roleRepo,
		regRepo:  regRepo,
	}
}

func (s *CapacityService) Occupancy(ctx context.Context, eventID, roleID string) (domain.CapacitySnapshot, error) {
	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return domain.CapacitySnapshot{}, fmt.Errorf("get role: %w", err)
	}
	if role.EventID != eventID {
		return domain.CapacitySnapshot{}, domain.ErrRoleNotFound
	}

	occupied, err := s.regRepo.CountActiveByRole(ctx, roleID)
	if err != nil {
		return domain.CapacitySnapshot{}, fmt.Errorf("count occupancy: %w", err)
	}

	return domain.NewCapacitySnapshot(role.Capacity, occupied), nil
}
