package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
	"github.com/yigit/wish2work/internal/pkg/logger"
)

var studentColumns = []string{
	"student_id", "program_id", "first_name", "last_name", "email", "phone_number",
	"personal_description", "average_rating", "is_active", "activated_at", "created_at", "updated_at",
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db DBTX
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts an active student without a rating
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	q := psql.Insert("student").
		Columns("program_id", "first_name", "last_name", "email", "phone_number", "personal_description", "is_active", "activated_at").
		Values(s.ProgramID, s.FirstName, s.LastName, s.Email, s.PhoneNumber, s.PersonalDescription, true, squirrel.Expr("NOW()")).
		Suffix("RETURNING student_id, is_active, activated_at, created_at, updated_at")
	return insertReturning(ctx, r.db, q, "student", &s.ID, &s.IsActive, &s.ActivatedAt, &s.CreatedAt, &s.UpdatedAt)
}

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	q := psql.Select(studentColumns...).From("student").Where(squirrel.Eq{"student_id": id})
	return fetchOne[models.Student](ctx, r.db, q, "student", apperrors.ErrStudentNotFound)
}

// List returns one page of students ordered by id, plus the total count
func (r *StudentRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	var total int64
	countSQL, countArgs, err := psql.Select("COUNT(*)").From("student").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building student count query: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	q := psql.Select(studentColumns...).From("student").
		OrderBy("student_id").
		Offset(offset).
		Limit(uint64(limit))
	students, err := fetchAll[models.Student](ctx, r.db, q, "students")
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// BuildSearchQuery compiles a resolved search into a single select ordered by id.
//
// Discrete mode: program scope AND name AND skill ids AND course ids.
// Free-text mode: program scope AND (name OR skill ids OR course ids).
// An empty id set renders as a false predicate, so a filter that matched
// nothing empties the result under AND and drops out under OR.
func BuildSearchQuery(s *models.StudentSearch) squirrel.SelectBuilder {
	q := psql.Select(studentColumns...).From("student").
		Where(squirrel.Eq{"program_id": nonNil(s.ProgramIDs)}).
		OrderBy("student_id")

	names := namePredicates(s)

	if s.FreeText {
		either := squirrel.Or{}
		if len(names) > 0 {
			either = append(either, names)
		}
		if len(s.SkillStudentIDs) > 0 {
			either = append(either, squirrel.Eq{"student_id": s.SkillStudentIDs})
		}
		if len(s.CourseStudentIDs) > 0 {
			either = append(either, squirrel.Eq{"student_id": s.CourseStudentIDs})
		}
		return q.Where(either)
	}

	if len(names) > 0 {
		q = q.Where(names)
	}
	if s.SkillStudentIDs != nil {
		q = q.Where(squirrel.Eq{"student_id": s.SkillStudentIDs})
	}
	if s.CourseStudentIDs != nil {
		q = q.Where(squirrel.Eq{"student_id": s.CourseStudentIDs})
	}
	return q
}

func namePredicates(s *models.StudentSearch) squirrel.Or {
	var or squirrel.Or
	if s.NameTerm != "" {
		p := containsPattern(s.NameTerm)
		or = append(or, squirrel.ILike{"first_name": p}, squirrel.ILike{"last_name": p})
	}
	if s.FirstTerm != "" {
		or = append(or, squirrel.ILike{"first_name": containsPattern(s.FirstTerm)})
	}
	if s.LastTerm != "" {
		or = append(or, squirrel.ILike{"last_name": containsPattern(s.LastTerm)})
	}
	if s.FullNameTerm != "" {
		or = append(or, squirrel.Expr("(first_name || ' ' || last_name) ILIKE ?", containsPattern(s.FullNameTerm)))
	}
	return or
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

// Search runs a resolved student search
func (r *StudentRepository) Search(ctx context.Context, s *models.StudentSearch) ([]*models.Student, error) {
	return fetchAll[models.Student](ctx, r.db, BuildSearchQuery(s), "students")
}

// Update writes profile fields. average_rating is owned by UpdateAverageRating.
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	q := psql.Update("student").
		Set("program_id", s.ProgramID).
		Set("first_name", s.FirstName).
		Set("last_name", s.LastName).
		Set("email", s.Email).
		Set("phone_number", s.PhoneNumber).
		Set("personal_description", s.PersonalDescription).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"student_id": s.ID})
	return execAffecting(ctx, r.db, q, "student", "updating", apperrors.ErrStudentNotFound)
}

// UpdateAverageRating stores a recomputed average; nil clears it.
func (r *StudentRepository) UpdateAverageRating(ctx context.Context, id int64, avg *float64) error {
	q := psql.Update("student").
		Set("average_rating", avg).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"student_id": id})
	return execAffecting(ctx, r.db, q, "student", "updating", apperrors.ErrStudentNotFound)
}

// SetActive toggles the soft activation flag
func (r *StudentRepository) SetActive(ctx context.Context, id int64, active bool) error {
	q := psql.Update("student").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"student_id": id})
	if active {
		q = q.Set("activated_at", squirrel.Expr("NOW()"))
	}
	return execAffecting(ctx, r.db, q, "student", "updating", apperrors.ErrStudentNotFound)
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	q := psql.Delete("student").Where(squirrel.Eq{"student_id": id})
	return execAffecting(ctx, r.db, q, "student", "deleting", apperrors.ErrStudentNotFound)
}
