package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

var programColumns = []string{"program_id", "name", "details", "department_id", "created_at", "updated_at"}

// ProgramRepository handles database operations for programs of study
type ProgramRepository struct {
	db DBTX
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db DBTX) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) Create(ctx context.Context, p *models.Program) error {
	q := psql.Insert("program_of_study").
		Columns("name", "details", "department_id").
		Values(p.Name, p.Details, p.DepartmentID).
		Suffix("RETURNING program_id, created_at, updated_at")
	return insertReturning(ctx, r.db, q, "program", &p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	q := psql.Select(programColumns...).From("program_of_study").Where(squirrel.Eq{"program_id": id})
	return fetchOne[models.Program](ctx, r.db, q, "program", apperrors.ErrProgramNotFound)
}

func (r *ProgramRepository) GetAll(ctx context.Context) ([]*models.Program, error) {
	q := psql.Select(programColumns...).From("program_of_study").OrderBy("program_id")
	return fetchAll[models.Program](ctx, r.db, q, "programs")
}

// GetByDepartment lists the programs offered by a department
func (r *ProgramRepository) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Program, error) {
	q := psql.Select(programColumns...).From("program_of_study").
		Where(squirrel.Eq{"department_id": departmentID}).
		OrderBy("program_id")
	return fetchAll[models.Program](ctx, r.db, q, "programs")
}

// IDsByDepartment returns the ids of the department's programs, optionally
// narrowed to names containing nameTerm (case-insensitive).
func (r *ProgramRepository) IDsByDepartment(ctx context.Context, departmentID int64, nameTerm string) ([]int64, error) {
	q := psql.Select("program_id").From("program_of_study").
		Where(squirrel.Eq{"department_id": departmentID}).
		OrderBy("program_id")
	if nameTerm != "" {
		q = q.Where(squirrel.ILike{"name": containsPattern(nameTerm)})
	}
	return fetchIDs(ctx, r.db, q, "program ids")
}

func (r *ProgramRepository) Update(ctx context.Context, p *models.Program) error {
	q := psql.Update("program_of_study").
		Set("name", p.Name).
		Set("details", p.Details).
		Set("department_id", p.DepartmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"program_id": p.ID})
	return execAffecting(ctx, r.db, q, "program", "updating", apperrors.ErrProgramNotFound)
}

func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	q := psql.Delete("program_of_study").Where(squirrel.Eq{"program_id": id})
	return execAffecting(ctx, r.db, q, "program", "deleting", apperrors.ErrProgramNotFound)
}
