package services

import (
	"errors"

	appauth "github.com/yigit/wish2work/internal/app/auth"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

// profileOwner picks the student a profile write applies to. Students always
// act on themselves; admins name the student explicitly.
func profileOwner(authz *appauth.AuthorizationService, p appauth.Principal, requested int64) (int64, error) {
	switch p.Role {
	case models.RoleStudent:
		if requested != 0 && requested != p.SubjectID {
			return 0, apperrors.NewForbiddenError("you can only manage your own profile")
		}
		return p.SubjectID, nil
	case models.RoleAdmin:
		if err := requireID("student_id", requested); err != nil {
			return 0, err
		}
		return requested, nil
	}
	return 0, authz.RequireRole(p, models.RoleStudent, models.RoleAdmin)
}

// validateWindow maps time window errors onto validation errors
func validateWindow(w models.TimeWindow) error {
	err := w.Validate()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrEmptyWindow):
		return apperrors.ErrInvalidTimeRange
	case errors.Is(err, models.ErrInvalidDate):
		return apperrors.NewValidationError("availability_date", err.Error())
	default:
		return apperrors.NewValidationError("start_time", err.Error())
	}
}
