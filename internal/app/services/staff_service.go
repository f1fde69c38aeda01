package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
	"github.com/yigit/wish2work/internal/pkg/auth"
)

// StaffService defines the interface for staff management
type StaffService interface {
	CreateStaff(ctx context.Context, staff *models.Staff, password string) error
	GetStaffByID(ctx context.Context, id int64) (*models.Staff, error)
	GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error)
	GetAllStaff(ctx context.Context) ([]*models.Staff, error)
	UpdateStaff(ctx context.Context, staff *models.Staff) error
	SetStaffActive(ctx context.Context, id int64, active bool) error
	DeleteStaff(ctx context.Context, id int64) error
	GetStaffRequests(ctx context.Context, staffID int64) ([]*models.Request, error)
}

type staffServiceImpl struct {
	stores Stores
	tx     Transactor
	logger zerolog.Logger
}

// NewStaffService creates a new staff service instance
func NewStaffService(stores Stores, tx Transactor, logger zerolog.Logger) StaffService {
	return &staffServiceImpl{
		stores: stores,
		tx:     tx,
		logger: logger,
	}
}

// CreateStaff inserts the staff member and, when a password is given, its
// STAFF login account in the same transaction.
func (s *staffServiceImpl) CreateStaff(ctx context.Context, staff *models.Staff, password string) error {
	if err := normalizePerson(&staff.FirstName, &staff.LastName, &staff.Email); err != nil {
		return err
	}

	var hash string
	if password != "" {
		var err error
		if hash, err = auth.HashPassword(password); err != nil {
			return err
		}
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		if err := tx.Staff.Create(ctx, staff); err != nil {
			return err
		}
		if hash == "" {
			return nil
		}
		return tx.Accounts.Create(ctx, &models.Account{
			Email:        staff.Email,
			PasswordHash: hash,
			Role:         models.RoleStaff,
			SubjectID:    staff.ID,
		})
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("staffID", staff.ID).Bool("withAccount", hash != "").Msg("Staff member created")
	return nil
}

func (s *staffServiceImpl) GetStaffByID(ctx context.Context, id int64) (*models.Staff, error) {
	if err := requireID("staff_id", id); err != nil {
		return nil, err
	}
	return s.stores.Staff.GetByID(ctx, id)
}

func (s *staffServiceImpl) GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error) {
	email = strings.TrimSpace(email)
	if err := requireText("email", email); err != nil {
		return nil, err
	}
	return s.stores.Staff.GetByEmail(ctx, email)
}

func (s *staffServiceImpl) GetAllStaff(ctx context.Context) ([]*models.Staff, error) {
	return s.stores.Staff.GetAll(ctx)
}

func (s *staffServiceImpl) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	if err := requireID("staff_id", staff.ID); err != nil {
		return err
	}
	if err := normalizePerson(&staff.FirstName, &staff.LastName, &staff.Email); err != nil {
		return err
	}
	return s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		if err := tx.Staff.Update(ctx, staff); err != nil {
			return err
		}
		return tx.Accounts.UpdateEmailBySubject(ctx, models.RoleStaff, staff.ID, staff.Email)
	})
}

// SetStaffActive activates or deactivates a staff member. Deactivated staff keep their history.
func (s *staffServiceImpl) SetStaffActive(ctx context.Context, id int64, active bool) error {
	if err := requireID("staff_id", id); err != nil {
		return err
	}
	if err := s.stores.Staff.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.logger.Info().Int64("staffID", id).Bool("active", active).Msg("Staff activation changed")
	return nil
}

// DeleteStaff removes a staff member without requests, along with their account
func (s *staffServiceImpl) DeleteStaff(ctx context.Context, id int64) error {
	if err := requireID("staff_id", id); err != nil {
		return err
	}
	return s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		if err := tx.Accounts.DeleteBySubject(ctx, models.RoleStaff, id); err != nil {
			return err
		}
		return tx.Staff.Delete(ctx, id)
	})
}

// GetStaffRequests lists the requests of an existing staff member. No requests is a not-found.
func (s *staffServiceImpl) GetStaffRequests(ctx context.Context, staffID int64) ([]*models.Request, error) {
	if _, err := s.GetStaffByID(ctx, staffID); err != nil {
		return nil, err
	}
	requests, err := s.stores.Requests.GetByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, apperrors.NewResourceNotFoundError("no requests found for this staff member")
	}
	return requests, nil
}
