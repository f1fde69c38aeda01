package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

var courseColumns = []string{"course_id", "name", "description", "department_id", "created_at", "updated_at"}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db DBTX
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	q := psql.Insert("course").
		Columns("name", "description", "department_id").
		Values(c.Name, c.Description, c.DepartmentID).
		Suffix("RETURNING course_id, created_at, updated_at")
	return insertReturning(ctx, r.db, q, "course", &c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	q := psql.Select(courseColumns...).From("course").Where(squirrel.Eq{"course_id": id})
	return fetchOne[models.Course](ctx, r.db, q, "course", apperrors.ErrCourseNotFound)
}

func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	q := psql.Select(courseColumns...).From("course").OrderBy("course_id")
	return fetchAll[models.Course](ctx, r.db, q, "courses")
}

// IDsByName returns the ids of courses whose name contains term
func (r *CourseRepository) IDsByName(ctx context.Context, term string) ([]int64, error) {
	q := psql.Select("course_id").From("course").
		Where(squirrel.ILike{"name": containsPattern(term)}).
		OrderBy("course_id")
	return fetchIDs(ctx, r.db, q, "course ids")
}

func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	q := psql.Update("course").
		Set("name", c.Name).
		Set("description", c.Description).
		Set("department_id", c.DepartmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"course_id": c.ID})
	return execAffecting(ctx, r.db, q, "course", "updating", apperrors.ErrCourseNotFound)
}

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	q := psql.Delete("course").Where(squirrel.Eq{"course_id": id})
	return execAffecting(ctx, r.db, q, "course", "deleting", apperrors.ErrCourseNotFound)
}
