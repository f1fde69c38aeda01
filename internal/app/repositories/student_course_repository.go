package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
	"github.com/yigit/wish2work/internal/pkg/dberrors"
)

const studentCourseUniqueConstraint = "student_course_unique"

var studentCourseColumns = []string{"student_course_id", "student_id", "course_id", "created_at"}

// StudentCourseRepository handles course enrollments
type StudentCourseRepository struct {
	db DBTX
}

// NewStudentCourseRepository creates a new enrollment repository
func NewStudentCourseRepository(db DBTX) *StudentCourseRepository {
	return &StudentCourseRepository{db: db}
}

// Create enrolls a student. A second enrollment in the same course is a conflict.
func (r *StudentCourseRepository) Create(ctx context.Context, sc *models.StudentCourse) error {
	q := psql.Insert("student_course").
		Columns("student_id", "course_id").
		Values(sc.StudentID, sc.CourseID).
		Suffix("RETURNING student_course_id, created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return err
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&sc.ID, &sc.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentCourseUniqueConstraint) {
			return apperrors.ErrAlreadyEnrolled
		}
		return classify(err, "student course", "creating")
	}
	return nil
}

func (r *StudentCourseRepository) GetByID(ctx context.Context, id int64) (*models.StudentCourse, error) {
	q := psql.Select(studentCourseColumns...).From("student_course").Where(squirrel.Eq{"student_course_id": id})
	return fetchOne[models.StudentCourse](ctx, r.db, q, "student course", apperrors.ErrStudentCourseNotFound)
}

func (r *StudentCourseRepository) GetAll(ctx context.Context) ([]*models.StudentCourse, error) {
	q := psql.Select(studentCourseColumns...).From("student_course").OrderBy("student_course_id")
	return fetchAll[models.StudentCourse](ctx, r.db, q, "student courses")
}

func (r *StudentCourseRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.StudentCourse, error) {
	q := psql.Select(studentCourseColumns...).From("student_course").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("student_course_id")
	return fetchAll[models.StudentCourse](ctx, r.db, q, "student courses")
}

// StudentIDsByCourses returns the distinct students enrolled in any of courseIDs
func (r *StudentCourseRepository) StudentIDsByCourses(ctx context.Context, courseIDs []int64) ([]int64, error) {
	if len(courseIDs) == 0 {
		return []int64{}, nil
	}
	q := psql.Select("DISTINCT student_id").From("student_course").
		Where(squirrel.Eq{"course_id": courseIDs}).
		OrderBy("student_id")
	return fetchIDs(ctx, r.db, q, "course student ids")
}

// Delete removes one enrollment addressed by course and student
func (r *StudentCourseRepository) Delete(ctx context.Context, courseID, studentID int64) error {
	q := psql.Delete("student_course").Where(squirrel.Eq{"course_id": courseID, "student_id": studentID})
	return execAffecting(ctx, r.db, q, "student course", "deleting", apperrors.ErrStudentCourseNotFound)
}
