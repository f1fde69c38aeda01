package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

var adminColumns = []string{"admin_id", "first_name", "last_name", "email", "phone_number", "created_at", "updated_at"}

// AdminRepository handles database operations for admins
type AdminRepository struct {
	db DBTX
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) error {
	q := psql.Insert("admin").
		Columns("first_name", "last_name", "email", "phone_number").
		Values(a.FirstName, a.LastName, a.Email, a.PhoneNumber).
		Suffix("RETURNING admin_id, created_at, updated_at")
	return insertReturning(ctx, r.db, q, "admin", &a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	q := psql.Select(adminColumns...).From("admin").Where(squirrel.Eq{"admin_id": id})
	return fetchOne[models.Admin](ctx, r.db, q, "admin", apperrors.ErrAdminNotFound)
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	q := psql.Select(adminColumns...).From("admin").Where(squirrel.Eq{"email": email})
	return fetchOne[models.Admin](ctx, r.db, q, "admin", apperrors.ErrAdminNotFound)
}

func (r *AdminRepository) GetAll(ctx context.Context) ([]*models.Admin, error) {
	q := psql.Select(adminColumns...).From("admin").OrderBy("admin_id")
	return fetchAll[models.Admin](ctx, r.db, q, "admins")
}

func (r *AdminRepository) Update(ctx context.Context, a *models.Admin) error {
	q := psql.Update("admin").
		Set("first_name", a.FirstName).
		Set("last_name", a.LastName).
		Set("email", a.Email).
		Set("phone_number", a.PhoneNumber).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"admin_id": a.ID})
	return execAffecting(ctx, r.db, q, "admin", "updating", apperrors.ErrAdminNotFound)
}

func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	q := psql.Delete("admin").Where(squirrel.Eq{"admin_id": id})
	return execAffecting(ctx, r.db, q, "admin", "deleting", apperrors.ErrAdminNotFound)
}
