package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

var requestColumns = []string{
	"request_id", "staff_id", "student_id", "title", "message",
	dateColumn, startColumn, endColumn,
	"status", "rating", "feedback", "rated_at", "created_at", "updated_at",
}

// RequestRepository handles database operations for requests and the rating ledger derived from them
type RequestRepository struct {
	db DBTX
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db DBTX) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts a request with whatever status the caller set
func (r *RequestRepository) Create(ctx context.Context, req *models.Request) error {
	q := psql.Insert("request").
		Columns("staff_id", "student_id", "title", "message", "availability_date", "start_time", "end_time", "status").
		Values(req.StaffID, req.StudentID, req.Title, req.Message,
			squirrel.Expr("?::date", req.AvailabilityDate),
			squirrel.Expr("?::time", req.StartTime),
			squirrel.Expr("?::time", req.EndTime),
			string(req.Status)).
		Suffix("RETURNING request_id, created_at, updated_at")
	return insertReturning(ctx, r.db, q, "request", &req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *RequestRepository) selectRequests() squirrel.SelectBuilder {
	return psql.Select(requestColumns...).From("request")
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*models.Request, error) {
	q := r.selectRequests().Where(squirrel.Eq{"request_id": id})
	return fetchOne[models.Request](ctx, r.db, q, "request", apperrors.ErrRequestNotFound)
}

// GetByIDForUpdate locks the row until the surrounding transaction ends
func (r *RequestRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Request, error) {
	q := r.selectRequests().Where(squirrel.Eq{"request_id": id}).Suffix("FOR UPDATE")
	return fetchOne[models.Request](ctx, r.db, q, "request", apperrors.ErrRequestNotFound)
}

func (r *RequestRepository) GetAll(ctx context.Context) ([]*models.Request, error) {
	return fetchAll[models.Request](ctx, r.db, r.selectRequests().OrderBy("request_id"), "requests")
}

func (r *RequestRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Request, error) {
	q := r.selectRequests().Where(squirrel.Eq{"student_id": studentID}).OrderBy("request_id")
	return fetchAll[models.Request](ctx, r.db, q, "requests")
}

func (r *RequestRepository) GetByStaff(ctx context.Context, staffID int64) ([]*models.Request, error) {
	q := r.selectRequests().Where(squirrel.Eq{"staff_id": staffID}).OrderBy("request_id")
	return fetchAll[models.Request](ctx, r.db, q, "requests")
}

// Update edits title and message only
func (r *RequestRepository) Update(ctx context.Context, req *models.Request) error {
	q := psql.Update("request").
		Set("title", req.Title).
		Set("message", req.Message).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"request_id": req.ID})
	return execAffecting(ctx, r.db, q, "request", "updating", apperrors.ErrRequestNotFound)
}

// errStaleRow marks a conditional write that found the row in another state
var errStaleRow = errors.New("row changed concurrently")

// TransitionStatus moves the request from one status to another. The write
// only applies while the row still has status from.
func (r *RequestRepository) TransitionStatus(ctx context.Context, id int64, from, to models.RequestStatus) error {
	q := psql.Update("request").
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"request_id": id, "status": string(from)})
	err := execAffecting(ctx, r.db, q, "request", "updating", errStaleRow)
	if errors.Is(err, errStaleRow) {
		return apperrors.ErrInvalidStatusTransition
	}
	return err
}

// SetRating records the one-time rating of an approved request
func (r *RequestRepository) SetRating(ctx context.Context, id int64, rating int, feedback *string) error {
	q := psql.Update("request").
		Set("rating", rating).
		Set("feedback", feedback).
		Set("rated_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"request_id": id, "status": string(models.RequestApproved)}).
		Where("rating IS NULL")
	err := execAffecting(ctx, r.db, q, "request", "rating", errStaleRow)
	if errors.Is(err, errStaleRow) {
		return apperrors.ErrRequestAlreadyRated
	}
	return err
}

// RatingsByStudent returns every rating the student has received, oldest request first.
func (r *RequestRepository) RatingsByStudent(ctx context.Context, studentID int64) ([]int, error) {
	q := psql.Select("rating").From("request").
		Where(squirrel.Eq{"student_id": studentID}).
		Where("rating IS NOT NULL").
		OrderBy("request_id")
	ids, err := fetchIDs(ctx, r.db, q, "student ratings")
	if err != nil {
		return nil, err
	}
	ratings := make([]int, len(ids))
	for i, v := range ids {
		ratings[i] = int(v)
	}
	return ratings, nil
}

// LedgerFilter narrows the rated-request ledger
type LedgerFilter struct {
	StudentID *int64
	StaffID   *int64
	RequestID *int64
}

// RatedRequests returns the rated requests matching f, most recently rated first
func (r *RequestRepository) RatedRequests(ctx context.Context, f LedgerFilter) ([]*models.Request, error) {
	q := r.selectRequests().Where("rating IS NOT NULL").OrderBy("rated_at DESC", "request_id DESC")
	if f.StudentID != nil {
		q = q.Where(squirrel.Eq{"student_id": *f.StudentID})
	}
	if f.StaffID != nil {
		q = q.Where(squirrel.Eq{"staff_id": *f.StaffID})
	}
	if f.RequestID != nil {
		q = q.Where(squirrel.Eq{"request_id": *f.RequestID})
	}
	return fetchAll[models.Request](ctx, r.db, q, "rated requests")
}

func (r *RequestRepository) Delete(ctx context.Context, id int64) error {
	q := psql.Delete("request").Where(squirrel.Eq{"request_id": id})
	return execAffecting(ctx, r.db, q, "request", "deleting", apperrors.ErrRequestNotFound)
}
