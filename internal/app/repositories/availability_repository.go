package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

// DATE and TIME columns travel as YYYY-MM-DD and HH:MM strings
const (
	dateColumn  = "to_char(availability_date, 'YYYY-MM-DD') AS availability_date"
	startColumn = "to_char(start_time, 'HH24:MI') AS start_time"
	endColumn   = "to_char(end_time, 'HH24:MI') AS end_time"
)

var availabilityColumns = []string{"availability_id", "student_id", dateColumn, startColumn, endColumn, "created_at"}

// AvailabilityRepository handles database operations for availability slots
type AvailabilityRepository struct {
	db DBTX
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Create(ctx context.Context, a *models.Availability) error {
	q := psql.Insert("availability").
		Columns("student_id", "availability_date", "start_time", "end_time").
		Values(a.StudentID,
			squirrel.Expr("?::date", a.AvailabilityDate),
			squirrel.Expr("?::time", a.StartTime),
			squirrel.Expr("?::time", a.EndTime)).
		Suffix("RETURNING availability_id, created_at")
	return insertReturning(ctx, r.db, q, "availability", &a.ID, &a.CreatedAt)
}

func (r *AvailabilityRepository) GetByID(ctx context.Context, id int64) (*models.Availability, error) {
	q := psql.Select(availabilityColumns...).From("availability").Where(squirrel.Eq{"availability_id": id})
	return fetchOne[models.Availability](ctx, r.db, q, "availability", apperrors.ErrAvailabilityNotFound)
}

func (r *AvailabilityRepository) GetAll(ctx context.Context) ([]*models.Availability, error) {
	q := psql.Select(availabilityColumns...).From("availability").OrderBy("availability_date", "start_time", "availability_id")
	return fetchAll[models.Availability](ctx, r.db, q, "availability")
}

func (r *AvailabilityRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Availability, error) {
	q := psql.Select(availabilityColumns...).From("availability").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("availability_date", "start_time", "availability_id")
	return fetchAll[models.Availability](ctx, r.db, q, "availability")
}

func (r *AvailabilityRepository) Update(ctx context.Context, a *models.Availability) error {
	q := psql.Update("availability").
		Set("availability_date", squirrel.Expr("?::date", a.AvailabilityDate)).
		Set("start_time", squirrel.Expr("?::time", a.StartTime)).
		Set("end_time", squirrel.Expr("?::time", a.EndTime)).
		Where(squirrel.Eq{"availability_id": a.ID})
	return execAffecting(ctx, r.db, q, "availability", "updating", apperrors.ErrAvailabilityNotFound)
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id int64) error {
	q := psql.Delete("availability").Where(squirrel.Eq{"availability_id": id})
	return execAffecting(ctx, r.db, q, "availability", "deleting", apperrors.ErrAvailabilityNotFound)
}

// Claim deletes the slot and returns what it was. Only one caller can claim a
// given slot; every other caller gets ErrAvailabilityNotFound.
func (r *AvailabilityRepository) Claim(ctx context.Context, id int64) (*models.Availability, error) {
	q := psql.Delete("availability").
		Where(squirrel.Eq{"availability_id": id}).
		Suffix("RETURNING availability_id, student_id, " + dateColumn + ", " + startColumn + ", " + endColumn + ", created_at")
	return fetchOne[models.Availability](ctx, r.db, q, "availability", apperrors.ErrAvailabilityNotFound)
}
