package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

var staffColumns = []string{
	"staff_id", "first_name", "last_name", "email", "phone_number", "department_id",
	"is_active", "activated_at", "created_at", "updated_at",
}

// StaffRepository handles database operations for staff members
type StaffRepository struct {
	db DBTX
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db DBTX) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create inserts an active staff member
func (r *StaffRepository) Create(ctx context.Context, s *models.Staff) error {
	q := psql.Insert("staff").
		Columns("first_name", "last_name", "email", "phone_number", "department_id", "is_active", "activated_at").
		Values(s.FirstName, s.LastName, s.Email, s.PhoneNumber, s.DepartmentID, true, squirrel.Expr("NOW()")).
		Suffix("RETURNING staff_id, is_active, activated_at, created_at, updated_at")
	return insertReturning(ctx, r.db, q, "staff", &s.ID, &s.IsActive, &s.ActivatedAt, &s.CreatedAt, &s.UpdatedAt)
}

func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	q := psql.Select(staffColumns...).From("staff").Where(squirrel.Eq{"staff_id": id})
	return fetchOne[models.Staff](ctx, r.db, q, "staff", apperrors.ErrStaffNotFound)
}

// GetByEmail matches the email case-insensitively
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	q := psql.Select(staffColumns...).From("staff").Where(squirrel.Expr("LOWER(email) = LOWER(?)", email))
	return fetchOne[models.Staff](ctx, r.db, q, "staff", apperrors.ErrStaffNotFound)
}

func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.Staff, error) {
	q := psql.Select(staffColumns...).From("staff").OrderBy("staff_id")
	return fetchAll[models.Staff](ctx, r.db, q, "staff")
}

func (r *StaffRepository) Update(ctx context.Context, s *models.Staff) error {
	q := psql.Update("staff").
		Set("first_name", s.FirstName).
		Set("last_name", s.LastName).
		Set("email", s.Email).
		Set("phone_number", s.PhoneNumber).
		Set("department_id", s.DepartmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"staff_id": s.ID})
	return execAffecting(ctx, r.db, q, "staff", "updating", apperrors.ErrStaffNotFound)
}

// SetActive toggles the soft activation flag. activated_at records the last activation.
func (r *StaffRepository) SetActive(ctx context.Context, id int64, active bool) error {
	q := psql.Update("staff").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"staff_id": id})
	if active {
		q = q.Set("activated_at", squirrel.Expr("NOW()"))
	}
	return execAffecting(ctx, r.db, q, "staff", "updating", apperrors.ErrStaffNotFound)
}

func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	q := psql.Delete("staff").Where(squirrel.Eq{"staff_id": id})
	return execAffecting(ctx, r.db, q, "staff", "deleting", apperrors.ErrStaffNotFound)
}
