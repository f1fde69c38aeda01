package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
	"github.com/yigit/wish2work/internal/pkg/dberrors"
	"github.com/yigit/wish2work/internal/pkg/logger"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx, so every repository can run
// either standalone or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builds PostgreSQL statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository    *DepartmentRepository
	ProgramRepository       *ProgramRepository
	CourseRepository        *CourseRepository
	AdminRepository         *AdminRepository
	StaffRepository         *StaffRepository
	StudentRepository       *StudentRepository
	AccountRepository       *AccountRepository
	SkillRepository         *SkillRepository
	StudentCourseRepository *StudentCourseRepository
	AvailabilityRepository  *AvailabilityRepository
	RequestRepository       *RequestRepository
}

// NewRepositories initializes all repositories on the same connection or transaction
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		DepartmentRepository:    NewDepartmentRepository(db),
		ProgramRepository:       NewProgramRepository(db),
		CourseRepository:        NewCourseRepository(db),
		AdminRepository:         NewAdminRepository(db),
		StaffRepository:         NewStaffRepository(db),
		StudentRepository:       NewStudentRepository(db),
		AccountRepository:       NewAccountRepository(db),
		SkillRepository:         NewSkillRepository(db),
		StudentCourseRepository: NewStudentCourseRepository(db),
		AvailabilityRepository:  NewAvailabilityRepository(db),
		RequestRepository:       NewRequestRepository(db),
	}
}

// containsPattern builds an ILIKE pattern matching term anywhere, with LIKE
// metacharacters in term matched literally.
func containsPattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// fetchAll runs a select and maps each row onto T by column name.
func fetchAll[T any](ctx context.Context, db DBTX, q squirrel.Sqlizer, what string) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error building SQL")
		return nil, fmt.Errorf("error building %s query: %w", what, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error executing query")
		return nil, fmt.Errorf("error retrieving %s: %w", what, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error scanning rows")
		return nil, fmt.Errorf("error scanning %s: %w", what, err)
	}
	return items, nil
}

// fetchOne runs a select expected to return one row. No row yields notFound.
func fetchOne[T any](ctx context.Context, db DBTX, q squirrel.Sqlizer, what string, notFound error) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error building SQL")
		return nil, fmt.Errorf("error building %s query: %w", what, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error executing query")
		return nil, fmt.Errorf("error retrieving %s: %w", what, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		logger.Error().Err(err).Str("query", what).Msg("Error scanning row")
		return nil, fmt.Errorf("error retrieving %s: %w", what, err)
	}
	return item, nil
}

// fetchIDs runs a single-column select of ids
func fetchIDs(ctx context.Context, db DBTX, q squirrel.Sqlizer, what string) ([]int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building %s query: %w", what, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error executing id query")
		return nil, fmt.Errorf("error retrieving %s: %w", what, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", what, err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// insertReturning runs an INSERT ... RETURNING into the given destinations
func insertReturning(ctx context.Context, db DBTX, q squirrel.InsertBuilder, what string, dest ...any) error {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error building insert SQL")
		return fmt.Errorf("error building insert %s: %w", what, err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		return classify(err, what, "creating")
	}
	return nil
}

// execAffecting runs a statement and maps zero affected rows to notFound
func execAffecting(ctx context.Context, db DBTX, q squirrel.Sqlizer, what, action string, notFound error) error {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error building SQL")
		return fmt.Errorf("error building %s %s: %w", action, what, err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return classify(err, what, action)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// classify translates constraint violations into domain errors and wraps the rest as store errors.
func classify(err error, what, action string) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		if strings.HasSuffix(dberrors.ConstraintName(err), "_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.NewConflictError(what + " already exists")
	case dberrors.IsForeignKeyViolation(err):
		if action == "deleting" {
			return apperrors.ErrInUse
		}
		return apperrors.ErrUnknownReference
	case dberrors.IsCheckViolation(err):
		return apperrors.NewValidationError(what, "value violates a "+what+" constraint")
	}
	logger.Error().Err(err).Str("entity", what).Str("action", action).Msg("Database error")
	return fmt.Errorf("error %s %s: %w", action, what, err)
}
