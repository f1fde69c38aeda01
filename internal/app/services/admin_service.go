package services

import (
	"context"
	"strings"

	"github.com/yigit/wish2work/internal/app/models"
)

// AdminService defines the interface for admin management
type AdminService interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	GetAdminByID(ctx context.Context, id int64) (*models.Admin, error)
	GetAllAdmins(ctx context.Context) ([]*models.Admin, error)
	UpdateAdmin(ctx context.Context, admin *models.Admin) error
	DeleteAdmin(ctx context.Context, id int64) error
}

type adminServiceImpl struct {
	admins AdminStore
	tx     Transactor
}

// NewAdminService creates a new admin service instance
func NewAdminService(admins AdminStore, tx Transactor) AdminService {
	return &adminServiceImpl{admins: admins, tx: tx}
}

func normalizePerson(first, last, email *string) error {
	*first = strings.TrimSpace(*first)
	*last = strings.TrimSpace(*last)
	*email = strings.ToLower(strings.TrimSpace(*email))
	if err := requireText("first_name", *first); err != nil {
		return err
	}
	if err := requireText("last_name", *last); err != nil {
		return err
	}
	return requireText("email", *email)
}

func (s *adminServiceImpl) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	if err := normalizePerson(&admin.FirstName, &admin.LastName, &admin.Email); err != nil {
		return err
	}
	return s.admins.Create(ctx, admin)
}

func (s *adminServiceImpl) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	if err := requireID("admin_id", id); err != nil {
		return nil, err
	}
	return s.admins.GetByID(ctx, id)
}

func (s *adminServiceImpl) GetAllAdmins(ctx context.Context) ([]*models.Admin, error) {
	return s.admins.GetAll(ctx)
}

func (s *adminServiceImpl) UpdateAdmin(ctx context.Context, admin *models.Admin) error {
	if err := requireID("admin_id", admin.ID); err != nil {
		return err
	}
	if err := normalizePerson(&admin.FirstName, &admin.LastName, &admin.Email); err != nil {
		return err
	}
	return s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		if err := tx.Admins.Update(ctx, admin); err != nil {
			return err
		}
		return tx.Accounts.UpdateEmailBySubject(ctx, models.RoleAdmin, admin.ID, admin.Email)
	})
}

// DeleteAdmin removes the admin and its login account together
func (s *adminServiceImpl) DeleteAdmin(ctx context.Context, id int64) error {
	if err := requireID("admin_id", id); err != nil {
		return err
	}
	return s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		if err := tx.Accounts.DeleteBySubject(ctx, models.RoleAdmin, id); err != nil {
			return err
		}
		return tx.Admins.Delete(ctx, id)
	})
}
