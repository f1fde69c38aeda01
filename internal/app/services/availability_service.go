package services

import (
	"context"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/wish2work/internal/app/auth"
	"github.com/yigit/wish2work/internal/app/models"
)

// AvailabilityService defines the interface for availability slots
type AvailabilityService interface {
	CreateAvailability(ctx context.Context, p appauth.Principal, slot *models.Availability) error
	GetAvailabilityByID(ctx context.Context, id int64) (*models.Availability, error)
	GetAllAvailability(ctx context.Context) ([]*models.Availability, error)
	UpdateAvailability(ctx context.Context, p appauth.Principal, slot *models.Availability) error
	DeleteAvailability(ctx context.Context, p appauth.Principal, id int64) error
}

type availabilityServiceImpl struct {
	slots  AvailabilityStore
	authz  *appauth.AuthorizationService
	logger zerolog.Logger
}

// NewAvailabilityService creates a new availability service instance
func NewAvailabilityService(slots AvailabilityStore, authz *appauth.AuthorizationService, logger zerolog.Logger) AvailabilityService {
	return &availabilityServiceImpl{slots: slots, authz: authz, logger: logger}
}

func (s *availabilityServiceImpl) CreateAvailability(ctx context.Context, p appauth.Principal, slot *models.Availability) error {
	owner, err := profileOwner(s.authz, p, slot.StudentID)
	if err != nil {
		return err
	}
	slot.StudentID = owner
	if err := validateWindow(slot.Window()); err != nil {
		return err
	}
	return s.slots.Create(ctx, slot)
}

func (s *availabilityServiceImpl) GetAvailabilityByID(ctx context.Context, id int64) (*models.Availability, error) {
	if err := requireID("availability_id", id); err != nil {
		return nil, err
	}
	return s.slots.GetByID(ctx, id)
}

func (s *availabilityServiceImpl) GetAllAvailability(ctx context.Context) ([]*models.Availability, error) {
	return s.slots.GetAll(ctx)
}

// UpdateAvailability moves the window of a slot; the owning student stays the same.
func (s *availabilityServiceImpl) UpdateAvailability(ctx context.Context, p appauth.Principal, slot *models.Availability) error {
	existing, err := s.GetAvailabilityByID(ctx, slot.ID)
	if err != nil {
		return err
	}
	if err := s.authz.CanManageStudentProfile(p, existing.StudentID); err != nil {
		return err
	}
	if err := validateWindow(slot.Window()); err != nil {
		return err
	}
	slot.StudentID = existing.StudentID
	slot.CreatedAt = existing.CreatedAt
	return s.slots.Update(ctx, slot)
}

// DeleteAvailability removes a slot without creating a request. Clients that
// chain POST /requests and this call get no atomicity; from-availability does.
func (s *availabilityServiceImpl) DeleteAvailability(ctx context.Context, p appauth.Principal, id int64) error {
	existing, err := s.GetAvailabilityByID(ctx, id)
	if err != nil {
		return err
	}
	// Staff may remove any slot, as the legacy claim flow does.
	if p.Role != models.RoleStaff {
		if err := s.authz.CanManageStudentProfile(p, existing.StudentID); err != nil {
			return err
		}
	}
	if err := s.slots.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Debug().Int64("availabilityID", id).Str("role", string(p.Role)).Msg("Availability deleted")
	return nil
}
