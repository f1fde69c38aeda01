package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

var skillColumns = []string{"skill_id", "student_id", "title", "description", "date_added"}

// SkillRepository handles database operations for student skills
type SkillRepository struct {
	db DBTX
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db DBTX) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, s *models.Skill) error {
	q := psql.Insert("skill").
		Columns("student_id", "title", "description").
		Values(s.StudentID, s.Title, s.Description).
		Suffix("RETURNING skill_id, date_added")
	return insertReturning(ctx, r.db, q, "skill", &s.ID, &s.DateAdded)
}

func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	q := psql.Select(skillColumns...).From("skill").Where(squirrel.Eq{"skill_id": id})
	return fetchOne[models.Skill](ctx, r.db, q, "skill", apperrors.ErrSkillNotFound)
}

func (r *SkillRepository) GetAll(ctx context.Context) ([]*models.Skill, error) {
	q := psql.Select(skillColumns...).From("skill").OrderBy("skill_id")
	return fetchAll[models.Skill](ctx, r.db, q, "skills")
}

func (r *SkillRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Skill, error) {
	q := psql.Select(skillColumns...).From("skill").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("skill_id")
	return fetchAll[models.Skill](ctx, r.db, q, "skills")
}

// StudentIDsMatching returns the distinct owners of skills whose title or description contains term
func (r *SkillRepository) StudentIDsMatching(ctx context.Context, term string) ([]int64, error) {
	p := containsPattern(term)
	q := psql.Select("DISTINCT student_id").From("skill").
		Where(squirrel.Or{
			squirrel.ILike{"title": p},
			squirrel.ILike{"description": p},
		}).
		OrderBy("student_id")
	return fetchIDs(ctx, r.db, q, "skill student ids")
}

func (r *SkillRepository) Update(ctx context.Context, s *models.Skill) error {
	q := psql.Update("skill").
		Set("title", s.Title).
		Set("description", s.Description).
		Where(squirrel.Eq{"skill_id": s.ID})
	return execAffecting(ctx, r.db, q, "skill", "updating", apperrors.ErrSkillNotFound)
}

func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	q := psql.Delete("skill").Where(squirrel.Eq{"skill_id": id})
	return execAffecting(ctx, r.db, q, "skill", "deleting", apperrors.ErrSkillNotFound)
}
