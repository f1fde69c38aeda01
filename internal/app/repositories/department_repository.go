package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

var departmentColumns = []string{"department_id", "name", "details", "created_at", "updated_at"}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db DBTX
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db DBTX) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create inserts a department and fills in its generated fields
func (r *DepartmentRepository) Create(ctx context.Context, d *models.Department) error {
	q := psql.Insert("department").
		Columns("name", "details").
		Values(d.Name, d.Details).
		Suffix("RETURNING department_id, created_at, updated_at")
	return insertReturning(ctx, r.db, q, "department", &d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	q := psql.Select(departmentColumns...).From("department").Where(squirrel.Eq{"department_id": id})
	return fetchOne[models.Department](ctx, r.db, q, "department", apperrors.ErrDepartmentNotFound)
}

// GetAll retrieves all departments ordered by id
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	q := psql.Select(departmentColumns...).From("department").OrderBy("department_id")
	return fetchAll[models.Department](ctx, r.db, q, "departments")
}

// GetByName finds a department by exact name
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	q := psql.Select(departmentColumns...).From("department").Where(squirrel.Eq{"name": name})
	return fetchOne[models.Department](ctx, r.db, q, "department", apperrors.ErrDepartmentNotFound)
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, d *models.Department) error {
	q := psql.Update("department").
		Set("name", d.Name).
		Set("details", d.Details).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"department_id": d.ID})
	return execAffecting(ctx, r.db, q, "department", "updating", apperrors.ErrDepartmentNotFound)
}

// Delete deletes a department by ID. Departments still owning programs or courses are refused.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	q := psql.Delete("department").Where(squirrel.Eq{"department_id": id})
	return execAffecting(ctx, r.db, q, "department", "deleting", apperrors.ErrDepartmentNotFound)
}
