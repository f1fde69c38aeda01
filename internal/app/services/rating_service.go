package services

import (
	"context"
	"math"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/wish2work/internal/app/auth"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/app/repositories"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Steps of rating reconciliation, reported on failure
const (
	StepLoadRequest      = "load_request"
	StepRecordRating     = "record_rating"
	StepRecomputeAverage = "recompute_average"
)

// RatingOutcome is the state after a rating was recorded
type RatingOutcome struct {
	Request       *models.Request
	AverageRating *float64
	RatedCount    int
}

// RatingService defines the interface for rating reconciliation and the rating ledger
type RatingService interface {
	CompleteWithRating(ctx context.Context, p appauth.Principal, requestID int64, rating int, feedback *string) (*RatingOutcome, error)
	RecomputeAverage(ctx context.Context, studentID int64) (*float64, int, error)
	LedgerByStudent(ctx context.Context, studentID int64) ([]models.RatingEntry, error)
	LedgerByStaff(ctx context.Context, staffID int64) ([]models.RatingEntry, error)
	LedgerEntry(ctx context.Context, ratingID int64) (*models.RatingEntry, error)
}

type ratingServiceImpl struct {
	requests RequestStore
	tx       Transactor
	authz    *appauth.AuthorizationService
	logger   zerolog.Logger
}

// NewRatingService creates a new rating service instance
func NewRatingService(requests RequestStore, tx Transactor, authz *appauth.AuthorizationService, logger zerolog.Logger) RatingService {
	return &ratingServiceImpl{
		requests: requests,
		tx:       tx,
		authz:    authz,
		logger:   logger,
	}
}

// ValidateRating rejects values outside [MinRating, MaxRating]
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return apperrors.ErrRatingOutOfRange
	}
	return nil
}

// MeanRating is the arithmetic mean of ratings rounded to two decimals; nil when there are none.
func MeanRating(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := math.Round(float64(sum)/float64(len(ratings))*100) / 100
	return &mean
}

// CompleteWithRating rates an approved request of the calling staff member and
// recomputes the student's average from all of their rated requests. Every
// write happens in one transaction.
func (s *ratingServiceImpl) CompleteWithRating(ctx context.Context, p appauth.Principal, requestID int64, rating int, feedback *string) (*RatingOutcome, error) {
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	if err := requireID("request_id", requestID); err != nil {
		return nil, err
	}

	var outcome *RatingOutcome
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		req, err := tx.Requests.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return apperrors.NewStepError(StepLoadRequest, err)
		}
		if err := s.authz.CanRateRequest(p, req); err != nil {
			return err
		}
		if req.Status != models.RequestApproved {
			return apperrors.NewStepError(StepRecordRating, apperrors.ErrRequestNotApproved)
		}
		if req.IsRated() {
			return apperrors.NewStepError(StepRecordRating, apperrors.ErrRequestAlreadyRated)
		}

		if err := tx.Requests.SetRating(ctx, requestID, rating, feedback); err != nil {
			return apperrors.NewStepError(StepRecordRating, err)
		}

		avg, count, err := recompute(ctx, tx, req.StudentID)
		if err != nil {
			return apperrors.NewStepError(StepRecomputeAverage, err)
		}

		req.Rating = &rating
		req.Feedback = feedback
		outcome = &RatingOutcome{Request: req, AverageRating: avg, RatedCount: count}
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("step", apperrors.StepOf(err)).Int64("requestID", requestID).Msg("Rating failed")
		return nil, err
	}

	// rated_at is set by the database
	rated, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("requestID", requestID).Msg("Failed to reload rated request")
	} else {
		outcome.Request = rated
	}

	s.logger.Info().
		Int64("requestID", requestID).
		Int64("studentID", outcome.Request.StudentID).
		Int("rating", rating).
		Int("ratedCount", outcome.RatedCount).
		Msg("Request rated")
	return outcome, nil
}

// recompute stores the mean of every rating the student has received
func recompute(ctx context.Context, tx Stores, studentID int64) (*float64, int, error) {
	ratings, err := tx.Requests.RatingsByStudent(ctx, studentID)
	if err != nil {
		return nil, 0, err
	}
	avg := MeanRating(ratings)
	if err := tx.Students.UpdateAverageRating(ctx, studentID, avg); err != nil {
		return nil, 0, err
	}
	return avg, len(ratings), nil
}

// RecomputeAverage rewrites a student's stored average from their rated
// requests. Running it again without new ratings changes nothing.
func (s *ratingServiceImpl) RecomputeAverage(ctx context.Context, studentID int64) (*float64, int, error) {
	if err := requireID("student_id", studentID); err != nil {
		return nil, 0, err
	}
	var (
		avg   *float64
		count int
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		if _, err := tx.Students.GetByID(ctx, studentID); err != nil {
			return err
		}
		var err error
		avg, count, err = recompute(ctx, tx, studentID)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	s.logger.Info().Int64("studentID", studentID).Int("ratedCount", count).Msg("Average rating recomputed")
	return avg, count, nil
}

func (s *ratingServiceImpl) ledger(ctx context.Context, f repositories.LedgerFilter, notFound error) ([]models.RatingEntry, error) {
	rated, err := s.requests.RatedRequests(ctx, f)
	if err != nil {
		return nil, err
	}
	entries := make([]models.RatingEntry, 0, len(rated))
	for _, req := range rated {
		if entry, ok := req.LedgerEntry(); ok {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return nil, notFound
	}
	return entries, nil
}

// LedgerByStudent lists the ratings a student received, latest first
func (s *ratingServiceImpl) LedgerByStudent(ctx context.Context, studentID int64) ([]models.RatingEntry, error) {
	if err := requireID("student_id", studentID); err != nil {
		return nil, err
	}
	return s.ledger(ctx, repositories.LedgerFilter{StudentID: &studentID},
		apperrors.NewResourceNotFoundError("no ratings found for this student"))
}

// LedgerByStaff lists the ratings a staff member gave, latest first
func (s *ratingServiceImpl) LedgerByStaff(ctx context.Context, staffID int64) ([]models.RatingEntry, error) {
	if err := requireID("staff_id", staffID); err != nil {
		return nil, err
	}
	return s.ledger(ctx, repositories.LedgerFilter{StaffID: &staffID},
		apperrors.NewResourceNotFoundError("no ratings found from this staff member"))
}

// LedgerEntry returns one ledger entry. Rating ids are request ids.
func (s *ratingServiceImpl) LedgerEntry(ctx context.Context, ratingID int64) (*models.RatingEntry, error) {
	if err := requireID("rating_id", ratingID); err != nil {
		return nil, err
	}
	entries, err := s.ledger(ctx, repositories.LedgerFilter{RequestID: &ratingID}, apperrors.ErrRatingNotFound)
	if err != nil {
		return nil, err
	}
	return &entries[0], nil
}
