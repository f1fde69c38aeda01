package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/wish2work/internal/app/auth"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

// Steps of the slot claim, reported on failure
const (
	StepLoadAvailability  = "load_availability"
	StepClaimAvailability = "claim_availability"
	StepCreateRequest     = "create_request"
	StepCommit            = "commit"
)

// RequestService defines the interface for the request workflow
type RequestService interface {
	GetRequests(ctx context.Context, p appauth.Principal) ([]*models.Request, error)
	GetRequestByID(ctx context.Context, p appauth.Principal, id int64) (*models.Request, error)
	CreateRequest(ctx context.Context, p appauth.Principal, req *models.Request) error
	UpdateRequest(ctx context.Context, p appauth.Principal, id int64, title string, message *string) (*models.Request, error)
	DeleteRequest(ctx context.Context, p appauth.Principal, id int64) error
	UpdateStatus(ctx context.Context, p appauth.Principal, id int64, status string) (*models.Request, error)
	FromAvailability(ctx context.Context, p appauth.Principal, availabilityID int64, title string, message *string) (*models.Request, error)
}

type requestServiceImpl struct {
	stores Stores
	tx     Transactor
	authz  *appauth.AuthorizationService
	logger zerolog.Logger
}

// NewRequestService creates a new request service instance
func NewRequestService(stores Stores, tx Transactor, authz *appauth.AuthorizationService, logger zerolog.Logger) RequestService {
	return &requestServiceImpl{
		stores: stores,
		tx:     tx,
		authz:  authz,
		logger: logger,
	}
}

// GetRequests lists every request for admins and the caller's own requests otherwise
func (s *requestServiceImpl) GetRequests(ctx context.Context, p appauth.Principal) ([]*models.Request, error) {
	switch p.Role {
	case models.RoleAdmin:
		return s.stores.Requests.GetAll(ctx)
	case models.RoleStaff:
		return s.stores.Requests.GetByStaff(ctx, p.SubjectID)
	case models.RoleStudent:
		return s.stores.Requests.GetByStudent(ctx, p.SubjectID)
	}
	return nil, s.authz.RequireRole(p, models.RoleAdmin, models.RoleStaff, models.RoleStudent)
}

func (s *requestServiceImpl) GetRequestByID(ctx context.Context, p appauth.Principal, id int64) (*models.Request, error) {
	if err := requireID("request_id", id); err != nil {
		return nil, err
	}
	req, err := s.stores.Requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanViewRequest(p, req); err != nil {
		return nil, err
	}
	return req, nil
}

// activeStaff loads the calling staff member and rejects deactivated accounts
func (s *requestServiceImpl) activeStaff(ctx context.Context, p appauth.Principal) (*models.Staff, error) {
	if err := s.authz.RequireRole(p, models.RoleStaff); err != nil {
		return nil, err
	}
	staff, err := s.stores.Staff.GetByID(ctx, p.SubjectID)
	if err != nil {
		return nil, err
	}
	if !staff.IsActive {
		return nil, apperrors.NewForbiddenError("deactivated staff members cannot create requests")
	}
	return staff, nil
}

// CreateRequest is the direct create. The caller becomes the requesting staff
// member and the status is always Pending. No availability row is touched.
func (s *requestServiceImpl) CreateRequest(ctx context.Context, p appauth.Principal, req *models.Request) error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return apperrors.ErrTitleRequired
	}
	if err := requireID("student_id", req.StudentID); err != nil {
		return err
	}
	window := models.TimeWindow{Date: req.AvailabilityDate, Start: req.StartTime, End: req.EndTime}
	if err := validateWindow(window); err != nil {
		return err
	}

	staff, err := s.activeStaff(ctx, p)
	if err != nil {
		return err
	}

	req.StaffID = staff.ID
	req.Status = models.RequestPending
	req.Rating, req.Feedback, req.RatedAt = nil, nil, nil
	if err := s.stores.Requests.Create(ctx, req); err != nil {
		return err
	}

	s.logger.Info().Int64("requestID", req.ID).Int64("staffID", req.StaffID).Int64("studentID", req.StudentID).Msg("Request created")
	return nil
}

// UpdateRequest edits title and message of a request
func (s *requestServiceImpl) UpdateRequest(ctx context.Context, p appauth.Principal, id int64, title string, message *string) (*models.Request, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}
	req, err := s.GetRequestByID(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanModifyRequest(p, req); err != nil {
		return nil, err
	}
	req.Title = title
	req.Message = message
	if err := s.stores.Requests.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *requestServiceImpl) DeleteRequest(ctx context.Context, p appauth.Principal, id int64) error {
	req, err := s.GetRequestByID(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.authz.CanModifyRequest(p, req); err != nil {
		return err
	}
	return s.stores.Requests.Delete(ctx, id)
}

// UpdateStatus lets the requested student approve or disapprove a pending request.
func (s *requestServiceImpl) UpdateStatus(ctx context.Context, p appauth.Principal, id int64, status string) (*models.Request, error) {
	next, err := models.ParseRequestStatus(status)
	if err != nil || !next.IsTerminal() {
		return nil, apperrors.ErrInvalidStatus
	}

	req, err := s.GetRequestByID(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanRespondToRequest(p, req); err != nil {
		return nil, err
	}
	if !req.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	if err := s.stores.Requests.TransitionStatus(ctx, id, req.Status, next); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("requestID", id).Str("from", string(req.Status)).Str("to", string(next)).Msg("Request status changed")
	req.Status = next
	return req, nil
}

// FromAvailability claims an availability slot for the calling staff member.
// The slot delete and the Pending request insert commit together; a slot that
// disappears between lookup and claim was taken by someone else.
func (s *requestServiceImpl) FromAvailability(ctx context.Context, p appauth.Principal, availabilityID int64, title string, message *string) (*models.Request, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}
	if err := requireID("availability_id", availabilityID); err != nil {
		return nil, err
	}

	staff, err := s.activeStaff(ctx, p)
	if err != nil {
		return nil, err
	}

	if _, err := s.stores.Availability.GetByID(ctx, availabilityID); err != nil {
		return nil, s.stepFailed(StepLoadAvailability, availabilityID, err)
	}

	var created *models.Request
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context, tx Stores) error {
		slot, err := tx.Availability.Claim(ctx, availabilityID)
		if err != nil {
			if errors.Is(err, apperrors.ErrAvailabilityNotFound) {
				err = apperrors.ErrAvailabilityClaimed
			}
			return apperrors.NewStepError(StepClaimAvailability, err)
		}

		req := &models.Request{
			StaffID:          staff.ID,
			StudentID:        slot.StudentID,
			Title:            title,
			Message:          message,
			AvailabilityDate: slot.AvailabilityDate,
			StartTime:        slot.StartTime,
			EndTime:          slot.EndTime,
			Status:           models.RequestPending,
		}
		if err := tx.Requests.Create(ctx, req); err != nil {
			return apperrors.NewStepError(StepCreateRequest, err)
		}
		created = req
		return nil
	})
	if err != nil {
		step := apperrors.StepOf(err)
		if step == "" {
			step = StepCommit
		}
		return nil, s.stepFailed(step, availabilityID, err)
	}

	s.logger.Info().
		Int64("requestID", created.ID).
		Int64("availabilityID", availabilityID).
		Int64("staffID", created.StaffID).
		Int64("studentID", created.StudentID).
		Msg("Availability claimed")
	return created, nil
}

func (s *requestServiceImpl) stepFailed(step string, availabilityID int64, err error) error {
	s.logger.Warn().Err(err).Str("step", step).Int64("availabilityID", availabilityID).Msg("Availability claim failed")
	if apperrors.StepOf(err) == "" {
		return apperrors.NewStepError(step, err)
	}
	return err
}
